package screens

import (
	"time"

	"github.com/google/uuid"
)

// Screen owns the physical seat map. The layout is an ordered list of seat
// labels ("A1", "A2", ...) and is frozen once any showtime references the
// screen, so bookings can trust label membership for the showtime's lifetime.
type Screen struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	TheatreID  uuid.UUID `json:"theatre_id" gorm:"type:uuid;not null;index"`
	Name       string    `json:"name" gorm:"not null"`
	SeatLayout []string  `json:"seat_layout" gorm:"serializer:json;not null"`
	TotalSeats int       `json:"total_seats" gorm:"not null"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
