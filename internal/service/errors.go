package service

import (
	"errors"
)

var (
	ErrValidation           = errors.New("validation failed")
	ErrBasePriceUnavailable = errors.New("fare is unavailable for this flight, booking is disabled")
	ErrJourneyNotFound      = errors.New("journey not found")
	ErrBookingCancelled     = errors.New("booking has been cancelled")
)

// ValidationError is an input problem caught before any upstream call.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
