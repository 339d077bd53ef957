package cinemas

import (
	"time"

	"github.com/google/uuid"
)

type Cinema struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Name      string    `json:"name" gorm:"not null;uniqueIndex:idx_cinema_name_city"`
	City      string    `json:"city" gorm:"not null;index;uniqueIndex:idx_cinema_name_city"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
