package domain

import (
	"context"
	"time"
)

// User represents a registered user of the auto shop.
//
// CarID is the optional foreign key to the car the user owns; Car is the
// eagerly resolved association, populated on reads when CarID is set. It is
// derived state, never written directly.
//
// Password is stored verbatim. Hashing is out of scope for this service and
// must happen before the value reaches it if credential hygiene matters.
type User struct {
	ID        int64
	Name      string
	Email     string
	Password  string
	CarID     *int64
	Car       *Car
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UserRepository defines persistence operations for users. Reads resolve the
// car association eagerly.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	List(ctx context.Context) ([]User, error)
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, id int64) error
}
