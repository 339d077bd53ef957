package screens

type CreateScreenRequest struct {
	TheatreID  string   `json:"theatre_id" binding:"required,uuid"`
	Name       string   `json:"name" binding:"required,min=1,max=100"`
	SeatLayout []string `json:"seat_layout" binding:"required,min=1"`
}

type UpdateScreenRequest struct {
	Name       *string  `json:"name" binding:"omitempty,min=1,max=100"`
	SeatLayout []string `json:"seat_layout" binding:"omitempty,min=1"`
}

type ScreenFilters struct {
	Page      int    `form:"page,default=1" binding:"omitempty,min=1"`
	Limit     int    `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	TheatreID string `form:"theatre_id" binding:"omitempty,uuid"`
}
