package paging

import "errors"

var (
	ErrInvalidPage    = errors.New("page number must be positive")
	ErrInvalidPerPage = errors.New("items per page must be positive")
)

// Request holds normalized pagination parameters.
type Request struct {
	Page    int
	PerPage int
}

// NewRequest validates raw pagination inputs, applying defaultPerPage when
// perPage is zero. Explicit non-positive values are rejected, never clamped
// silently.
func NewRequest(page, perPage, defaultPerPage int) (Request, error) {
	if page == 0 {
		page = 1
	}
	if page < 0 {
		return Request{}, ErrInvalidPage
	}
	if perPage == 0 {
		perPage = defaultPerPage
	}
	if perPage <= 0 {
		return Request{}, ErrInvalidPerPage
	}
	return Request{Page: page, PerPage: perPage}, nil
}

// Offset returns the row offset for the request.
func (r Request) Offset() int {
	return (r.Page - 1) * r.PerPage
}

// TotalPages returns the number of pages needed for total items.
func TotalPages(total, perPage int) int {
	if total <= 0 || perPage <= 0 {
		return 0
	}
	return (total + perPage - 1) / perPage
}
