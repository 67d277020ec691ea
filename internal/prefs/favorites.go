package prefs

import (
	"context"

	"github.com/pexcat/pex/internal/catalog"
)

// Favorites is the persisted favorites list: newest toggle first, keyed by
// product id, no duplicates.
type Favorites struct {
	cell *Cell[[]catalog.Product]
}

// Toggle removes the product when an entry with the same id exists,
// otherwise prepends it. Either way the new list is written through, so a
// rapid double toggle nets out to the original list.
func (f *Favorites) Toggle(ctx context.Context, p catalog.Product) {
	items := f.cell.Get()
	next := make([]catalog.Product, 0, len(items)+1)
	removed := false
	for _, it := range items {
		if it.ID == p.ID {
			removed = true
			continue
		}
		next = append(next, it)
	}
	if !removed {
		next = append([]catalog.Product{p}, next...)
	}
	f.cell.Put(ctx, next)
}

// Contains reports membership by id.
func (f *Favorites) Contains(id int64) bool {
	for _, it := range f.cell.Get() {
		if it.ID == id {
			return true
		}
	}
	return false
}

// Items returns the favorites in order, newest first.
func (f *Favorites) Items() []catalog.Product {
	return f.cell.Get()
}

// Len returns the number of favorited products.
func (f *Favorites) Len() int {
	return len(f.cell.Get())
}
