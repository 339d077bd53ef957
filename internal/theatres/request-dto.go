package theatres

type CreateTheatreRequest struct {
	CinemaID string `json:"cinema_id" binding:"required,uuid"`
	Name     string `json:"name" binding:"required,min=1,max=200"`
	Location string `json:"location" binding:"omitempty,max=500"`
}

type UpdateTheatreRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=1,max=200"`
	Location *string `json:"location" binding:"omitempty,max=500"`
}

type TheatreFilters struct {
	Page     int    `form:"page,default=1" binding:"omitempty,min=1"`
	Limit    int    `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	CinemaID string `form:"cinema_id" binding:"omitempty,uuid"`
}
