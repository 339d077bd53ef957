package response

// StandardApiResponse is the envelope every handler returns. Status mirrors
// the HTTP outcome ("success" or "error") so clients can branch on the body
// alone; Errors carries validation detail or, on a 409, the conflicting
// seat labels.
type StandardApiResponse struct {
	Status     string      `json:"status"`
	StatusCode int         `json:"status_code"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data,omitempty"`
	Errors     interface{} `json:"errors,omitempty"`
}
