package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/msomdec/autoshop/internal/domain"
)

// CarRepository implements domain.CarRepository using SQLite.
type CarRepository struct {
	db *sql.DB
}

// NewCarRepository creates a new SQLite-backed CarRepository.
func NewCarRepository(db *DB) *CarRepository {
	return &CarRepository{db: db.SqlDB}
}

func (r *CarRepository) Create(ctx context.Context, car *domain.Car) error {
	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO cars (company, model, created_at, updated_at)
		 VALUES (?, ?, ?, ?)`,
		car.Company, car.Model, now, now,
	)
	if err != nil {
		return fmt.Errorf("insert car: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}

	car.ID = id
	car.CreatedAt = now
	car.UpdatedAt = now
	return nil
}

func (r *CarRepository) GetByID(ctx context.Context, id int64) (*domain.Car, error) {
	car := &domain.Car{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, company, model, created_at, updated_at
		 FROM cars WHERE id = ?`, id,
	).Scan(&car.ID, &car.Company, &car.Model, &car.CreatedAt, &car.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query car by id: %w", err)
	}
	return car, nil
}

func (r *CarRepository) List(ctx context.Context) ([]domain.Car, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, company, model, created_at, updated_at FROM cars ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list cars: %w", err)
	}
	defer rows.Close()

	var cars []domain.Car
	for rows.Next() {
		var c domain.Car
		if err := rows.Scan(&c.ID, &c.Company, &c.Model, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan car: %w", err)
		}
		cars = append(cars, c)
	}
	return cars, rows.Err()
}

// Update overwrites company and model and refreshes updated_at. CreatedAt and
// the id are never touched.
func (r *CarRepository) Update(ctx context.Context, car *domain.Car) error {
	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`UPDATE cars SET company = ?, model = ?, updated_at = ? WHERE id = ?`,
		car.Company, car.Model, now, car.ID,
	)
	if err != nil {
		return fmt.Errorf("update car: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrNotFound
	}

	car.UpdatedAt = now
	return nil
}

// Delete removes the car. The ON DELETE SET NULL clause on users.car_id clears
// the association on every referencing user atomically with the delete; the
// users themselves survive.
func (r *CarRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM cars WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete car: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *CarRepository) HasUsers(ctx context.Context, carID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM users WHERE car_id = ?)", carID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check car users: %w", err)
	}
	return exists, nil
}
