package domain

import "errors"

var (
	ErrNotFound           = errors.New("booking not found")
	ErrForbidden          = errors.New("forbidden action")
	ErrInvalidStatus      = errors.New("invalid booking status")
	ErrInvalidBookingType = errors.New("invalid booking type")
	ErrInvalidCategory    = errors.New("invalid booking category")
)
