package cinemas

type CreateCinemaRequest struct {
	Name    string `json:"name" binding:"required,min=2,max=200"`
	City    string `json:"city" binding:"required,min=2,max=100"`
	Address string `json:"address" binding:"omitempty,max=500"`
}

type UpdateCinemaRequest struct {
	Name    *string `json:"name" binding:"omitempty,min=2,max=200"`
	City    *string `json:"city" binding:"omitempty,min=2,max=100"`
	Address *string `json:"address" binding:"omitempty,max=500"`
}

type CinemaFilters struct {
	Page  int    `form:"page,default=1" binding:"omitempty,min=1"`
	Limit int    `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	City  string `form:"city"`
	Search string `form:"search"`
}
