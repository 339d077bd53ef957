package database

import (
	"gorm.io/gorm"
)

// MigrateConstraints adds critical database constraints for concurrency control
func MigrateConstraints(db *gorm.DB) error {
	// One active claim per seat per showtime. The booking coordinator
	// serializes writers with a row lock, this index is the storage-level
	// backstop: a second active row for the same seat can never commit.
	err := db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS unique_active_seat_per_showtime
		ON booking_seats (showtime_id, seat_label)
		WHERE active;
	`).Error
	if err != nil {
		return err
	}

	// Index for seat availability queries
	err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_booking_seats_showtime_active
		ON booking_seats (showtime_id)
		WHERE active;
	`).Error
	if err != nil {
		return err
	}

	// Index for the pending-booking expiry sweep
	err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_bookings_pending_expiry
		ON bookings (expires_at)
		WHERE payment_status = 'pending';
	`).Error
	if err != nil {
		return err
	}

	return nil
}
