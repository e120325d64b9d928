package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/msomdec/autoshop/internal/domain"
)

// UserRepository implements domain.UserRepository using SQLite. Reads resolve
// the car association eagerly with a LEFT JOIN.
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new SQLite-backed UserRepository.
func NewUserRepository(db *DB) *UserRepository {
	return &UserRepository{db: db.SqlDB}
}

const userSelect = `
	SELECT u.id, u.name, u.email, u.password, u.car_id, u.created_at, u.updated_at,
	       c.id, c.company, c.model, c.created_at, c.updated_at
	  FROM users u
	  LEFT JOIN cars c ON c.id = u.car_id`

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO users (name, email, password, car_id, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		user.Name, user.Email, user.Password, user.CarID, now, now,
	)
	if err != nil {
		if isUniqueConstraintError(err) {
			return domain.ErrDuplicateEmail
		}
		if isForeignKeyError(err) {
			return domain.ErrUnknownCar
		}
		return fmt.Errorf("insert user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}

	user.ID = id
	user.CreatedAt = now
	user.UpdatedAt = now
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx, userSelect+" WHERE u.id = ?", id)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query user by id: %w", err)
	}
	return user, nil
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	rows, err := r.db.QueryContext(ctx, userSelect+" ORDER BY u.id")
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, *user)
	}
	return users, rows.Err()
}

// Update overwrites name, email, password and car_id (clearing the association
// when CarID is nil) and refreshes updated_at.
func (r *UserRepository) Update(ctx context.Context, user *domain.User) error {
	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`UPDATE users SET name = ?, email = ?, password = ?, car_id = ?, updated_at = ?
		 WHERE id = ?`,
		user.Name, user.Email, user.Password, user.CarID, now, user.ID,
	)
	if err != nil {
		if isUniqueConstraintError(err) {
			return domain.ErrDuplicateEmail
		}
		if isForeignKeyError(err) {
			return domain.ErrUnknownCar
		}
		return fmt.Errorf("update user: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrNotFound
	}

	user.UpdatedAt = now
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM users WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
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

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanUser(s scanner) (*domain.User, error) {
	user := &domain.User{}
	var (
		carID      sql.NullInt64
		carRowID   sql.NullInt64
		carCompany sql.NullString
		carModel   sql.NullString
		carCreated sql.NullTime
		carUpdated sql.NullTime
	)

	err := s.Scan(
		&user.ID, &user.Name, &user.Email, &user.Password, &carID,
		&user.CreatedAt, &user.UpdatedAt,
		&carRowID, &carCompany, &carModel, &carCreated, &carUpdated,
	)
	if err != nil {
		return nil, err
	}

	if carID.Valid {
		user.CarID = &carID.Int64
	}
	if carRowID.Valid {
		user.Car = &domain.Car{
			ID:        carRowID.Int64,
			Company:   carCompany.String,
			Model:     carModel.String,
			CreatedAt: carCreated.Time,
			UpdatedAt: carUpdated.Time,
		}
	}
	return user, nil
}
