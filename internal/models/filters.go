package models

// ListQuery carries the pagination and filter parameters forwarded to an
// upstream list endpoint. Only non-empty values are appended to the query
// string, mirroring the original proxy routes.
type ListQuery struct {
	Page   string
	Limit  string
	Search string

	// Resource-specific dimensions; unused ones stay empty.
	Batch          string
	Department     string
	Role           string
	Verified       string
	Type           string
	WorkType       string
	StartMonthYear string
	EndMonthYear   string
	StartDate      string
	EndDate        string
	DateField      string
	MinReferrals   string
	MaxReferrals   string
	Resolved       string
}

// Values returns the query parameters in forwarding order.
func (q ListQuery) Values() [][2]string {
	pairs := [][2]string{
		{"page", q.Page},
		{"limit", q.Limit},
		{"search", q.Search},
		{"batch", q.Batch},
		{"department", q.Department},
		{"role", q.Role},
		{"verified", q.Verified},
		{"type", q.Type},
		{"workType", q.WorkType},
		{"startMonthYear", q.StartMonthYear},
		{"endMonthYear", q.EndMonthYear},
		{"startDate", q.StartDate},
		{"endDate", q.EndDate},
		{"dateField", q.DateField},
		{"minReferrals", q.MinReferrals},
		{"maxReferrals", q.MaxReferrals},
		{"resolved", q.Resolved},
	}
	out := pairs[:0]
	for _, pair := range pairs {
		if pair[1] != "" {
			out = append(out, pair)
		}
	}
	return out
}
