package bookings

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrBookingNotFound   = errors.New("booking not found")
	ErrShowtimeNotFound  = errors.New("showtime not found")
	ErrValidation        = errors.New("validation failed")
	ErrInvalidTransition = errors.New("invalid payment status transition")
	ErrForbidden         = errors.New("booking belongs to another user")
	ErrHoldNotFound      = errors.New("seat hold not found")
)

// SeatConflictError reports the exact seats that blocked a booking. The whole
// request is rejected; no partial booking is written.
type SeatConflictError struct {
	Seats []string
}

func (e *SeatConflictError) Error() string {
	return fmt.Sprintf("seats already booked: %s", strings.Join(e.Seats, ", "))
}

// HoldConflictError reports seats that are already held by someone else.
type HoldConflictError struct {
	Seats []string
}

func (e *HoldConflictError) Error() string {
	return fmt.Sprintf("seats already held: %s", strings.Join(e.Seats, ", "))
}
