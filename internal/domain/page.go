package domain

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// PaginationParams selects one page of the event listing. Page counts from 1.
type PaginationParams struct {
	Page  int
	Limit int
}

// NewPaginationParams builds PaginationParams from the optional ?page= and
// ?limit= values. Missing or non-positive values fall back to page 1 and
// defaultPageLimit; Limit never exceeds maxPageLimit.
func NewPaginationParams(page, limit *int) PaginationParams {
	p := PaginationParams{Page: 1, Limit: defaultPageLimit}
	if page != nil && *page > 0 {
		p.Page = *page
	}
	if limit != nil && *limit > 0 {
		p.Limit = min(*limit, maxPageLimit)
	}
	return p
}

// Offset is the number of rows to skip for this page.
func (p PaginationParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Page is one slice of a paginated result set.
// Total counts every row matching the query, not just the ones in Items.
type Page[T any] struct {
	Items []T
	Total int64
}
