package showtimes

import (
	"time"

	"github.com/google/uuid"
)

// Showtime carries no booked-seat column. The booked set for a showtime is
// always derived from active booking-seat rows, so there is no copy to drift.
type Showtime struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	MovieID   uuid.UUID `json:"movie_id" gorm:"type:uuid;not null;index"`
	TheatreID uuid.UUID `json:"theatre_id" gorm:"type:uuid;not null;index"`
	ScreenID  uuid.UUID `json:"screen_id" gorm:"type:uuid;not null;index"`
	ShowDate  time.Time `json:"show_date" gorm:"not null;index"`
	StartTime time.Time `json:"start_time" gorm:"not null"`
	EndTime   time.Time `json:"end_time" gorm:"not null"`
	Price     float64   `json:"price" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
