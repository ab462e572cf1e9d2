package domain

// PaginationParams carries page/limit values from the HTTP layer to the service layer.
// Page is 1-indexed. Limit is capped at 100 by NewPaginationParams.
type PaginationParams struct {
	// Page is the current page number, starting at 1.
	Page int
	// Limit is the maximum number of items to return.
	Limit int
}

// NewPaginationParams builds a PaginationParams from optional HTTP query params.
// Nil pointers fall back to sane defaults (page=1, limit=20).
// The limit is capped at 100 to keep responses small.
func NewPaginationParams(page, limit *int) PaginationParams {
	p := PaginationParams{Page: 1, Limit: 20}
	if page != nil && *page >= 1 {
		p.Page = *page
	}
	if limit != nil && *limit >= 1 {
		p.Limit = *limit
		if p.Limit > 100 {
			p.Limit = 100
		}
	}
	return p
}

// Offset returns the zero-based index of the first item on the page.
func (p PaginationParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// SortField names a journey column the history view can be ordered by.
type SortField string

const (
	SortByDate         SortField = "date"
	SortByDistance     SortField = "distance"
	SortByStartReading SortField = "start_reading"
	SortByEndReading   SortField = "end_reading"
)

// SortParams orders a journey listing. The zero value sorts by date, newest first.
type SortParams struct {
	Field     SortField
	Ascending bool
}

// NewSortParams builds SortParams from optional query values.
// Unknown fields fall back to date; any order other than "asc" is descending.
func NewSortParams(field, order *string) SortParams {
	p := SortParams{Field: SortByDate}
	if field != nil {
		switch f := SortField(*field); f {
		case SortByDate, SortByDistance, SortByStartReading, SortByEndReading:
			p.Field = f
		}
	}
	if order != nil && *order == "asc" {
		p.Ascending = true
	}
	return p
}
