package bookings

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Booking is the ledger entry for one reservation attempt that succeeded.
type Booking struct {
	ID            uuid.UUID     `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	BookingRef    string        `json:"booking_ref" gorm:"uniqueIndex;not null"`
	UserID        uuid.UUID     `json:"user_id" gorm:"type:uuid;not null;index"`
	ShowtimeID    uuid.UUID     `json:"showtime_id" gorm:"type:uuid;not null;index"`
	SeatCount     int           `json:"seat_count" gorm:"not null"`
	TotalPrice    float64       `json:"total_price" gorm:"not null"`
	PaymentStatus PaymentStatus `json:"payment_status" gorm:"not null;default:'pending';index"`
	ExpiresAt     *time.Time    `json:"expires_at,omitempty"`
	CancelledAt   *time.Time    `json:"cancelled_at,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`

	Seats []BookingSeat `json:"seats,omitempty" gorm:"foreignKey:BookingID"`
}

// BookingSeat is one claimed seat. Active rows are the source of truth for a
// showtime's booked set; a partial unique index on (showtime_id, seat_label)
// WHERE active is the storage-level backstop against double booking.
type BookingSeat struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	BookingID  uuid.UUID `json:"booking_id" gorm:"type:uuid;not null;index"`
	ShowtimeID uuid.UUID `json:"showtime_id" gorm:"type:uuid;not null"`
	SeatLabel  string    `json:"seat_label" gorm:"not null"`
	Active     bool      `json:"active" gorm:"not null;default:true"`
	CreatedAt  time.Time `json:"created_at"`
}

// SeatLabels returns the labels of the booking's seat rows.
func (b *Booking) SeatLabels() []string {
	labels := make([]string, len(b.Seats))
	for i, seat := range b.Seats {
		labels[i] = seat.SeatLabel
	}
	return labels
}

// NewBookingRef builds a short human-readable reference like "BK-1A2B3C4D".
func NewBookingRef() string {
	id := uuid.New()
	return fmt.Sprintf("BK-%s", strings.ToUpper(strings.ReplaceAll(id.String(), "-", "")[:10]))
}
