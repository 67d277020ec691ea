package catalog

import "strings"

// Kind selects which listing endpoint a query targets.
type Kind int

const (
	KindListing Kind = iota
	KindSearch
	KindCategory
)

// AllCategories is the category value that means "no category filter".
const AllCategories = "all"

// Filter holds the raw filter dimensions as the user set them. Search and
// Category may both be non-empty at the same time; BuildQuery decides which
// one drives the outbound request.
type Filter struct {
	Search   string
	Category string
	Offset   int
	PageSize int
}

// Query is the canonical descriptor of one remote fetch. It is comparable,
// so two recomputations from the same Filter yield equal values and callers
// can skip redundant fetches.
type Query struct {
	Kind     Kind
	Value    string
	Offset   int
	PageSize int
}

// BuildQuery collapses the filter dimensions into one descriptor. Precedence:
// a non-blank search term wins, then a concrete category, then the plain
// listing. Offset and PageSize pass through unchanged.
func BuildQuery(f Filter) Query {
	q := Query{Offset: f.Offset, PageSize: f.PageSize}
	if search := strings.TrimSpace(f.Search); search != "" {
		q.Kind = KindSearch
		q.Value = f.Search
		return q
	}
	if f.Category != "" && f.Category != AllCategories {
		q.Kind = KindCategory
		q.Value = f.Category
		return q
	}
	q.Kind = KindListing
	return q
}
