package browse

// Page derives pagination facts from an offset, page size and total count.
// It is a pure value; the fields come straight from Filters and the last
// successful ResultPage.
type Page struct {
	Offset   int
	PageSize int
	Total    int
}

// CanPrev reports whether an earlier page exists.
func (p Page) CanPrev() bool {
	return p.Offset > 0
}

// CanNext reports whether a later page exists.
func (p Page) CanNext() bool {
	return p.Offset+p.PageSize < p.Total
}

// Number is the 1-based page number.
func (p Page) Number() int {
	if p.PageSize <= 0 {
		return 1
	}
	return p.Offset/p.PageSize + 1
}

// Count is the number of pages, never less than 1.
func (p Page) Count() int {
	if p.PageSize <= 0 || p.Total <= 0 {
		return 1
	}
	count := (p.Total + p.PageSize - 1) / p.PageSize
	if count < 1 {
		return 1
	}
	return count
}
