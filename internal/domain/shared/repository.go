package shared

// Filter carries the list-query options repositories understand.
// OrderBy names are whitelisted per repository against real column
// names before they reach SQL; Filters holds exact-match column
// predicates the application layer has already validated.
type Filter struct {
	Page     int
	PageSize int
	OrderBy  string
	OrderDir string
	Search   string
	Filters  map[string]interface{}
}

// Offset returns the row offset for the filter's page, treating
// out-of-range values as the first page.
func (f Filter) Offset() int {
	page := f.Page
	if page < 1 {
		page = 1
	}
	return (page - 1) * f.Limit()
}

// Limit returns the page size, bounded to keep a single request from
// dragging the whole table.
func (f Filter) Limit() int {
	switch {
	case f.PageSize < 1:
		return 20
	case f.PageSize > 200:
		return 200
	default:
		return f.PageSize
	}
}
