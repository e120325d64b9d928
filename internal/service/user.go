package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/msomdec/autoshop/internal/domain"
)

// UserService owns the user lifecycle. The car association travels as a plain
// foreign key value; reads come back with the car eagerly resolved by the
// repository.
type UserService struct {
	users domain.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(users domain.UserRepository) *UserService {
	return &UserService{users: users}
}

// ListAll returns every user with the car association resolved.
func (s *UserService) ListAll(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

// GetByID returns a user by ID with the car association resolved, or
// domain.ErrNotFound.
func (s *UserService) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

// Create persists a new user and returns it with its assigned id and
// timestamps. A duplicate email yields domain.ErrDuplicateEmail; a carID
// referencing no existing car yields domain.ErrUnknownCar.
func (s *UserService) Create(ctx context.Context, name, email, password string, carID *int64) (*domain.User, error) {
	user := &domain.User{Name: name, Email: email, Password: password, CarID: carID}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) || errors.Is(err, domain.ErrUnknownCar) {
			return nil, err
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Update overwrites name, email, password and carID on an existing user; a
// nil carID clears the association. Returns domain.ErrNotFound if no user has
// the given id; a duplicate email surfaces as domain.ErrDuplicateEmail, a
// distinct channel from not-found.
func (s *UserService) Update(ctx context.Context, id int64, name, email, password string, carID *int64) error {
	user := &domain.User{ID: id, Name: name, Email: email, Password: password, CarID: carID}
	return s.users.Update(ctx, user)
}

// Delete removes a user. No side effects on cars.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	return s.users.Delete(ctx, id)
}
