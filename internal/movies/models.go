package movies

import (
	"time"

	"github.com/google/uuid"
)

type Movie struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Title        string    `json:"title" gorm:"not null;index"`
	Description  string    `json:"description"`
	Genres       []string  `json:"genres" gorm:"serializer:json"`
	Language     string    `json:"language"`
	DurationMins int       `json:"duration_mins" gorm:"not null"`
	Rating       float64   `json:"rating" gorm:"default:0"`
	ReleaseDate  time.Time `json:"release_date"`
	PosterURL    string    `json:"poster_url"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
