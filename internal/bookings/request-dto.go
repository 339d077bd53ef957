package bookings

type CreateBookingRequest struct {
	ShowtimeID string   `json:"showtime_id" binding:"required,uuid"`
	Seats      []string `json:"seats" binding:"required,min=1,max=10"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending paid failed cancelled"`
}

type HoldSeatsRequest struct {
	ShowtimeID string   `json:"showtime_id" binding:"required,uuid"`
	Seats      []string `json:"seats" binding:"required,min=1,max=10"`
}

type BookingListQuery struct {
	Page       int    `form:"page,default=1" binding:"omitempty,min=1"`
	Limit      int    `form:"limit,default=10" binding:"omitempty,min=1,max=100"`
	Status     string `form:"status" binding:"omitempty,oneof=pending paid failed cancelled"`
	UserID     string `form:"user_id" binding:"omitempty,uuid"`
	ShowtimeID string `form:"showtime_id" binding:"omitempty,uuid"`
	DateFrom   string `form:"date_from" binding:"omitempty,datetime=2006-01-02"`
	DateTo     string `form:"date_to" binding:"omitempty,datetime=2006-01-02"`
}
