package bookings

import "time"

// BookingResponse is the flattened client view of a ledger entry.
type BookingResponse struct {
	ID            string     `json:"id"`
	BookingRef    string     `json:"booking_ref"`
	UserID        string     `json:"user_id"`
	ShowtimeID    string     `json:"showtime_id"`
	Seats         []string   `json:"seats"`
	SeatCount     int        `json:"seat_count"`
	TotalPrice    float64    `json:"total_price"`
	PaymentStatus string     `json:"payment_status"`
	ExpiresAt     *time.Time `json:"expires_at,omitempty"`
	CancelledAt   *time.Time `json:"cancelled_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

func toBookingResponse(b *Booking) *BookingResponse {
	return &BookingResponse{
		ID:            b.ID.String(),
		BookingRef:    b.BookingRef,
		UserID:        b.UserID.String(),
		ShowtimeID:    b.ShowtimeID.String(),
		Seats:         b.SeatLabels(),
		SeatCount:     b.SeatCount,
		TotalPrice:    b.TotalPrice,
		PaymentStatus: string(b.PaymentStatus),
		ExpiresAt:     b.ExpiresAt,
		CancelledAt:   b.CancelledAt,
		CreatedAt:     b.CreatedAt,
	}
}

type PaginatedBookings struct {
	Bookings   []BookingResponse `json:"bookings"`
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"total_pages"`
}

// HoldResponse describes a successful pre-checkout seat hold.
type HoldResponse struct {
	HoldID     string    `json:"hold_id"`
	ShowtimeID string    `json:"showtime_id"`
	Seats      []string  `json:"seats"`
	ExpiresAt  time.Time `json:"expires_at"`
}
