package database

import (
	"cinetix/internal/bookings"
	"cinetix/internal/cinemas"
	"cinetix/internal/movies"
	"cinetix/internal/screens"
	"cinetix/internal/showtimes"
	"cinetix/internal/theatres"
	"cinetix/internal/users"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&users.User{},
		&cinemas.Cinema{},
		&theatres.Theatre{},
		&screens.Screen{},
		&movies.Movie{},
		&showtimes.Showtime{},
		&bookings.Booking{},
		&bookings.BookingSeat{},
	)
}
