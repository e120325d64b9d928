package handler

import (
	"time"

	"github.com/msomdec/autoshop/internal/domain"
)

// CarDTO is the JSON representation of a car.
type CarDTO struct {
	ID        int64  `json:"id"`
	Company   string `json:"company"`
	Model     string `json:"model"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

func toCarDTO(c *domain.Car) CarDTO {
	return CarDTO{
		ID:        c.ID,
		Company:   c.Company,
		Model:     c.Model,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
		UpdatedAt: c.UpdatedAt.Format(time.RFC3339),
	}
}

func toCarDTOs(cars []domain.Car) []CarDTO {
	dtos := make([]CarDTO, len(cars))
	for i := range cars {
		dtos[i] = toCarDTO(&cars[i])
	}
	return dtos
}

// UserDTO is the JSON representation of a user. The password is write-only
// and never echoed back.
type UserDTO struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	CarID     *int64  `json:"carId"`
	Car       *CarDTO `json:"car,omitempty"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}

func toUserDTO(u *domain.User) UserDTO {
	dto := UserDTO{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CarID:     u.CarID,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
		UpdatedAt: u.UpdatedAt.Format(time.RFC3339),
	}
	if u.Car != nil {
		car := toCarDTO(u.Car)
		dto.Car = &car
	}
	return dto
}

func toUserDTOs(users []domain.User) []UserDTO {
	dtos := make([]UserDTO, len(users))
	for i := range users {
		dtos[i] = toUserDTO(&users[i])
	}
	return dtos
}

// carRequest is the body for car create and update.
type carRequest struct {
	Company string `json:"company" validate:"required"`
	Model   string `json:"model" validate:"required"`
}

// userRequest is the body for user create and update. A null or absent carId
// means no car association.
type userRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	CarID    *int64 `json:"carId"`
}
