package resources

// Pagination is the envelope shared by every list endpoint.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// HasMore reports whether another page exists after the current one.
func (p Pagination) HasMore() bool {
	return p.Page*p.Limit < p.Total
}
