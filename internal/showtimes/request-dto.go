package showtimes

import "time"

type CreateShowtimeRequest struct {
	MovieID   string    `json:"movie_id" binding:"required,uuid"`
	ScreenID  string    `json:"screen_id" binding:"required,uuid"`
	ShowDate  time.Time `json:"show_date" binding:"required"`
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`
	Price     float64   `json:"price" binding:"required,gt=0"`
}

type UpdateShowtimeRequest struct {
	ShowDate  *time.Time `json:"show_date"`
	StartTime *time.Time `json:"start_time"`
	EndTime   *time.Time `json:"end_time"`
	Price     *float64   `json:"price" binding:"omitempty,gt=0"`
}

type ShowtimeFilters struct {
	Page      int    `form:"page,default=1" binding:"omitempty,min=1"`
	Limit     int    `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	MovieID   string `form:"movie_id" binding:"omitempty,uuid"`
	TheatreID string `form:"theatre_id" binding:"omitempty,uuid"`
	ScreenID  string `form:"screen_id" binding:"omitempty,uuid"`
	Date      string `form:"date" binding:"omitempty,datetime=2006-01-02"`
}

type CheckSeatsRequest struct {
	Seats []string `json:"seats" binding:"required,min=1,max=20"`
}
