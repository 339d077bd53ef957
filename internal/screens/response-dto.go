package screens

// SeatMapResponse is the row-grouped view of a screen's layout.
type SeatMapResponse struct {
	ScreenID   string    `json:"screen_id"`
	ScreenName string    `json:"screen_name"`
	TotalSeats int       `json:"total_seats"`
	Rows       []SeatRow `json:"rows"`
}

type PaginatedScreens struct {
	Screens    []Screen `json:"screens"`
	TotalCount int64    `json:"total_count"`
	Page       int      `json:"page"`
	Limit      int      `json:"limit"`
	TotalPages int      `json:"total_pages"`
}
