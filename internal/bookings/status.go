package bookings

// PaymentStatus is the lifecycle state of a booking.
type PaymentStatus string

const (
	StatusPending   PaymentStatus = "pending"
	StatusPaid      PaymentStatus = "paid"
	StatusFailed    PaymentStatus = "failed"
	StatusCancelled PaymentStatus = "cancelled"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case StatusPending, StatusPaid, StatusFailed, StatusCancelled:
		return true
	default:
		return false
	}
}

// Active reports whether the booking's seats count against the showtime.
func (s PaymentStatus) Active() bool {
	return s == StatusPending || s == StatusPaid
}

// CanTransition is the full transition table. failed and cancelled are
// terminal.
func CanTransition(from, to PaymentStatus) bool {
	switch from {
	case StatusPending:
		return to == StatusPaid || to == StatusFailed || to == StatusCancelled
	case StatusPaid:
		return to == StatusCancelled
	default:
		return false
	}
}

// ReleasesSeats reports whether entering the status frees the booking's
// seats. The seat rows are deactivated in the same transaction as the
// status change.
func ReleasesSeats(to PaymentStatus) bool {
	return to == StatusFailed || to == StatusCancelled
}
