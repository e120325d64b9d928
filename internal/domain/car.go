package domain

import (
	"context"
	"time"
)

// Car represents a car that users may own. The set of owning users is not
// stored on the car; it is a query (see CarRepository.HasUsers).
type Car struct {
	ID        int64
	Company   string
	Model     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CarRepository defines persistence operations for cars.
type CarRepository interface {
	Create(ctx context.Context, car *Car) error
	GetByID(ctx context.Context, id int64) (*Car, error)
	List(ctx context.Context) ([]Car, error)
	Update(ctx context.Context, car *Car) error
	// Delete removes the car. Users referencing it keep existing with their
	// car_id cleared, atomically with the delete.
	Delete(ctx context.Context, id int64) error
	// HasUsers reports whether at least one user currently references the car.
	HasUsers(ctx context.Context, carID int64) (bool, error)
}
