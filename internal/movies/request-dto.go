package movies

import "time"

type CreateMovieRequest struct {
	Title        string    `json:"title" binding:"required,min=1,max=300"`
	Description  string    `json:"description" binding:"omitempty,max=5000"`
	Genres       []string  `json:"genres" binding:"omitempty,max=10"`
	Language     string    `json:"language" binding:"omitempty,max=50"`
	DurationMins int       `json:"duration_mins" binding:"required,min=1,max=600"`
	Rating       float64   `json:"rating" binding:"omitempty,min=0,max=10"`
	ReleaseDate  time.Time `json:"release_date" binding:"omitempty"`
	PosterURL    string    `json:"poster_url" binding:"omitempty,url"`
}

type UpdateMovieRequest struct {
	Title        *string    `json:"title" binding:"omitempty,min=1,max=300"`
	Description  *string    `json:"description" binding:"omitempty,max=5000"`
	Genres       []string   `json:"genres" binding:"omitempty,max=10"`
	Language     *string    `json:"language" binding:"omitempty,max=50"`
	DurationMins *int       `json:"duration_mins" binding:"omitempty,min=1,max=600"`
	Rating       *float64   `json:"rating" binding:"omitempty,min=0,max=10"`
	ReleaseDate  *time.Time `json:"release_date"`
	PosterURL    *string    `json:"poster_url" binding:"omitempty,url"`
}

type MovieFilters struct {
	Page     int    `form:"page,default=1" binding:"omitempty,min=1"`
	Limit    int    `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	Search   string `form:"search"`
	Genre    string `form:"genre"`
	Language string `form:"language"`
}
