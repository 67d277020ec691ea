package browse

import "github.com/pexcat/pex/internal/catalog"

// Filters is the full filter state: search text, category, and pagination
// offset. It is an immutable value; every transition returns the next state,
// which keeps the offset-reset rule in one place instead of scattered across
// input handlers.
type Filters struct {
	Search   string
	Category string
	Offset   int
	PageSize int
}

// NewFilters returns the initial state: no search, all categories, first
// page.
func NewFilters(pageSize int) Filters {
	if pageSize <= 0 {
		pageSize = 12
	}
	return Filters{Category: catalog.AllCategories, PageSize: pageSize}
}

// WithSearch replaces the search text and resets to the first page.
func (f Filters) WithSearch(q string) Filters {
	f.Search = q
	f.Offset = 0
	return f
}

// WithCategory replaces the category and resets to the first page. When
// clearSearch is set, an active search term is dropped so the category
// drives the next query; otherwise the search keeps precedence.
func (f Filters) WithCategory(c string, clearSearch bool) Filters {
	f.Category = c
	f.Offset = 0
	if clearSearch {
		f.Search = ""
	}
	return f
}

// Advance moves to the next page given the current total. No-op when there
// is no next page.
func (f Filters) Advance(total int) Filters {
	if !f.PageFor(total).CanNext() {
		return f
	}
	f.Offset += f.PageSize
	return f
}

// Retreat moves to the previous page, clamping at zero. No-op on the first
// page.
func (f Filters) Retreat() Filters {
	if f.Offset <= 0 {
		return f
	}
	f.Offset -= f.PageSize
	if f.Offset < 0 {
		f.Offset = 0
	}
	return f
}

// PageFor derives pagination state for the given total count.
func (f Filters) PageFor(total int) Page {
	return Page{Offset: f.Offset, PageSize: f.PageSize, Total: total}
}

// Query builds the canonical request descriptor for this state.
func (f Filters) Query() catalog.Query {
	return catalog.BuildQuery(catalog.Filter{
		Search:   f.Search,
		Category: f.Category,
		Offset:   f.Offset,
		PageSize: f.PageSize,
	})
}
