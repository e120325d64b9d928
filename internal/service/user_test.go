package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/msomdec/autoshop/internal/domain"
)

func TestUserService_CreateWithCar(t *testing.T) {
	users, cars := newTestServices(t)
	ctx := context.Background()

	car, err := cars.Create(ctx, "Toyota", "Corolla")
	if err != nil {
		t.Fatalf("Create car: %v", err)
	}

	user, err := users.Create(ctx, "Ann", "ann@x.com", "secret", &car.ID)
	if err != nil {
		t.Fatalf("Create user: %v", err)
	}
	if user.ID == 0 {
		t.Fatal("expected a fresh user ID")
	}

	got, err := users.GetByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Name != "Ann" || got.Email != "ann@x.com" || got.Password != "secret" {
		t.Fatalf("round-trip mismatch: %+v", got)
	}
	if got.Car == nil || got.Car.Company != "Toyota" {
		t.Fatal("expected nested car with company Toyota")
	}
}

func TestUserService_Create_DuplicateEmail(t *testing.T) {
	users, _ := newTestServices(t)
	ctx := context.Background()

	if _, err := users.Create(ctx, "First", "dup@x.com", "pw", nil); err != nil {
		t.Fatalf("Create first: %v", err)
	}

	_, err := users.Create(ctx, "Second", "dup@x.com", "pw", nil)
	if !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}

	// Exactly one user with that email exists.
	all, err := users.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	count := 0
	for _, u := range all {
		if u.Email == "dup@x.com" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected exactly 1 user with the email, got %d", count)
	}
}

func TestUserService_Create_UnknownCar(t *testing.T) {
	users, _ := newTestServices(t)

	carID := int64(12345)
	_, err := users.Create(context.Background(), "Ann", "ann@x.com", "pw", &carID)
	if !errors.Is(err, domain.ErrUnknownCar) {
		t.Fatalf("expected ErrUnknownCar, got %v", err)
	}
}

func TestUserService_GetByID_NotFound(t *testing.T) {
	users, _ := newTestServices(t)

	_, err := users.GetByID(context.Background(), 99999)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUserService_Update(t *testing.T) {
	users, cars := newTestServices(t)
	ctx := context.Background()

	car, err := cars.Create(ctx, "Honda", "Civic")
	if err != nil {
		t.Fatalf("Create car: %v", err)
	}
	user, err := users.Create(ctx, "Ann", "ann@x.com", "pw", nil)
	if err != nil {
		t.Fatalf("Create user: %v", err)
	}

	time.Sleep(5 * time.Millisecond)
	if err := users.Update(ctx, user.ID, "Ann Smith", "ann@x.com", "newpw", &car.ID); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err := users.GetByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Name != "Ann Smith" || got.Password != "newpw" {
		t.Fatalf("expected updated fields, got %+v", got)
	}
	if got.CarID == nil || *got.CarID != car.ID {
		t.Fatal("expected car association after update")
	}
	if !got.CreatedAt.Equal(user.CreatedAt) {
		t.Fatal("expected CreatedAt to never change")
	}
	if !got.UpdatedAt.After(got.CreatedAt) {
		t.Fatal("expected UpdatedAt to be refreshed")
	}
}

func TestUserService_Update_ClearsCar(t *testing.T) {
	users, cars := newTestServices(t)
	ctx := context.Background()

	car, err := cars.Create(ctx, "Honda", "Civic")
	if err != nil {
		t.Fatalf("Create car: %v", err)
	}
	user, err := users.Create(ctx, "Ann", "ann@x.com", "pw", &car.ID)
	if err != nil {
		t.Fatalf("Create user: %v", err)
	}

	if err := users.Update(ctx, user.ID, "Ann", "ann@x.com", "pw", nil); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err := users.GetByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.CarID != nil || got.Car != nil {
		t.Fatal("expected car association to be cleared")
	}
}

func TestUserService_Update_DuplicateEmail(t *testing.T) {
	users, _ := newTestServices(t)
	ctx := context.Background()

	if _, err := users.Create(ctx, "Taken", "taken@x.com", "pw", nil); err != nil {
		t.Fatalf("Create: %v", err)
	}
	user, err := users.Create(ctx, "Free", "free@x.com", "pw", nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	err = users.Update(ctx, user.ID, "Free", "taken@x.com", "pw", nil)
	if !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail (not a not-found), got %v", err)
	}
}

func TestUserService_Update_NotFound(t *testing.T) {
	users, _ := newTestServices(t)
	ctx := context.Background()

	err := users.Update(ctx, 99999, "Ghost", "ghost@x.com", "pw", nil)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	all, err := users.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(all) != 0 {
		t.Fatalf("expected no users, got %d", len(all))
	}
}

func TestUserService_Delete(t *testing.T) {
	users, _ := newTestServices(t)
	ctx := context.Background()

	user, err := users.Create(ctx, "Ann", "ann@x.com", "pw", nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := users.Delete(ctx, user.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := users.GetByID(ctx, user.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestUserService_Delete_NotFound(t *testing.T) {
	users, _ := newTestServices(t)

	if err := users.Delete(context.Background(), 99999); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

// Deleting a referenced car clears the association on its users but never
// deletes them.
func TestCarDelete_ClearsUserAssociations(t *testing.T) {
	users, cars := newTestServices(t)
	ctx := context.Background()

	car, err := cars.Create(ctx, "Toyota", "Corolla")
	if err != nil {
		t.Fatalf("Create car: %v", err)
	}
	user, err := users.Create(ctx, "Ann", "ann@x.com", "pw", &car.ID)
	if err != nil {
		t.Fatalf("Create user: %v", err)
	}

	if err := cars.Delete(ctx, car.ID); err != nil {
		t.Fatalf("Delete car: %v", err)
	}

	got, err := users.GetByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetByID after car delete: %v", err)
	}
	if got.CarID != nil {
		t.Fatalf("expected carId to be nil, got %d", *got.CarID)
	}

	all, err := cars.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll cars: %v", err)
	}
	if len(all) != 0 {
		t.Fatalf("expected the car to be gone, got %d cars", len(all))
	}
}
