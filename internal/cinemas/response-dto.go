package cinemas

type PaginatedCinemas struct {
	Cinemas    []Cinema `json:"cinemas"`
	TotalCount int64    `json:"total_count"`
	Page       int      `json:"page"`
	Limit      int      `json:"limit"`
	TotalPages int      `json:"total_pages"`
}
