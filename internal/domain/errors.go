package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. negative odometer reading, unknown category).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrInvalidRange is returned when the end odometer reading is below the start
// reading. It wraps ErrValidation, so errors.Is matches either sentinel.
var ErrInvalidRange = fmt.Errorf("%w: ending odometer reading must be greater than starting reading", ErrValidation)

// ErrFutureDate is returned when a journey is dated after today.
// It wraps ErrValidation, so errors.Is matches either sentinel.
var ErrFutureDate = fmt.Errorf("%w: journey date cannot be in the future", ErrValidation)
