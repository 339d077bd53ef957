package movies

type PaginatedMovies struct {
	Movies     []Movie `json:"movies"`
	TotalCount int64   `json:"total_count"`
	Page       int     `json:"page"`
	Limit      int     `json:"limit"`
	TotalPages int     `json:"total_pages"`
}
