package service

import (
	"context"
	"fmt"

	"github.com/msomdec/autoshop/internal/domain"
)

// CarService owns the car lifecycle. It never reaches into user state beyond
// the advisory HasUsers query.
type CarService struct {
	cars domain.CarRepository
}

// NewCarService creates a new CarService.
func NewCarService(cars domain.CarRepository) *CarService {
	return &CarService{cars: cars}
}

// ListAll returns every car.
func (s *CarService) ListAll(ctx context.Context) ([]domain.Car, error) {
	return s.cars.List(ctx)
}

// GetByID returns a car by ID, or domain.ErrNotFound.
func (s *CarService) GetByID(ctx context.Context, id int64) (*domain.Car, error) {
	return s.cars.GetByID(ctx, id)
}

// Create persists a new car and returns it with its assigned id and timestamps.
func (s *CarService) Create(ctx context.Context, company, model string) (*domain.Car, error) {
	car := &domain.Car{Company: company, Model: model}
	if err := s.cars.Create(ctx, car); err != nil {
		return nil, fmt.Errorf("create car: %w", err)
	}
	return car, nil
}

// Update overwrites company and model on an existing car. Returns
// domain.ErrNotFound if no car has the given id.
func (s *CarService) Update(ctx context.Context, id int64, company, model string) error {
	car := &domain.Car{ID: id, Company: company, Model: model}
	return s.cars.Update(ctx, car)
}

// Delete removes a car unconditionally. Users referencing it keep existing
// with the association cleared by the store, in the same transaction as the
// delete. Callers who want to warn first should consult HasUsers.
func (s *CarService) Delete(ctx context.Context, id int64) error {
	return s.cars.Delete(ctx, id)
}

// HasUsers reports whether any user currently references the car. Advisory
// only; deletion does not depend on it.
func (s *CarService) HasUsers(ctx context.Context, carID int64) (bool, error) {
	return s.cars.HasUsers(ctx, carID)
}
