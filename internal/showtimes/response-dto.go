package showtimes

// SeatStatus values reported by availability and seat checks.
const (
	SeatAvailable = "AVAILABLE"
	SeatBooked    = "BOOKED"
	SeatHeld      = "HELD"
)

// AvailabilityResponse is the derived seat inventory for a showtime. The
// three label lists partition the seat map, in layout order.
type AvailabilityResponse struct {
	ShowtimeID     string   `json:"showtime_id"`
	TotalSeats     int      `json:"total_seats"`
	Booked         int      `json:"booked"`
	Held           int      `json:"held"`
	Available      int      `json:"available"`
	BookedSeats    []string `json:"booked_seats"`
	HeldSeats      []string `json:"held_seats"`
	AvailableSeats []string `json:"available_seats"`
}

type CheckSeatsResponse struct {
	ShowtimeID   string            `json:"showtime_id"`
	AllAvailable bool              `json:"all_available"`
	Seats        map[string]string `json:"seats"`
}

type PaginatedShowtimes struct {
	Showtimes  []Showtime `json:"showtimes"`
	TotalCount int64      `json:"total_count"`
	Page       int        `json:"page"`
	Limit      int        `json:"limit"`
	TotalPages int        `json:"total_pages"`
}
