package theatres

type PaginatedTheatres struct {
	Theatres   []Theatre `json:"theatres"`
	TotalCount int64     `json:"total_count"`
	Page       int       `json:"page"`
	Limit      int       `json:"limit"`
	TotalPages int       `json:"total_pages"`
}
