package domain

import "errors"

var (
	ErrNotFound       = errors.New("not found")
	ErrDuplicateEmail = errors.New("email already exists")
	ErrUnknownCar     = errors.New("referenced car does not exist")
	ErrInvalidInput   = errors.New("invalid input")
)
