package models

// Pagination is the page descriptor returned by upstream list endpoints.
// It is always sourced from the backend response, never computed locally.
type Pagination struct {
	Total       int `json:"total"`
	TotalPages  int `json:"totalPages"`
	CurrentPage int `json:"currentPage"`
	PerPage     int `json:"perPage"`
}
