package entity

import (
	"errors"
)

// Domain error kinds. Services wrap these with fmt.Errorf("%w: ...") and
// the HTTP layer maps them with errors.Is.
var (
	// ErrValidation covers missing or invalid request fields.
	ErrValidation = errors.New("validation failed")

	// ErrDateBooked means the hall already has an active booking on that date.
	ErrDateBooked = errors.New("this date is already booked")

	// ErrBookingNotFound means no booking exists with the given id.
	ErrBookingNotFound = errors.New("booking not found")
)
