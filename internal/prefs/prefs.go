// Package prefs handles pex user preferences: the dark-mode flag and the
// favorites list, each a durable cell mirrored to the key-value store.
// Loading never fails; any storage problem degrades to the in-memory
// default and is logged.
package prefs

import (
	"context"

	"github.com/pexcat/pex/internal/catalog"
)

const (
	darkModeKey  = "pex.dark"
	favoritesKey = "pex.favorites"
)

// Prefs aggregates the persisted user state.
type Prefs struct {
	dark      *Cell[bool]
	favorites *Favorites
}

// Load reads all preferences from the store. A nil store yields in-memory
// defaults (dark off, no favorites).
func Load(ctx context.Context, store Backend) *Prefs {
	return &Prefs{
		dark: LoadCell(ctx, store, darkModeKey, false),
		favorites: &Favorites{
			cell: LoadCell(ctx, store, favoritesKey, []catalog.Product(nil)),
		},
	}
}

// Dark returns the dark-mode flag.
func (p *Prefs) Dark() bool {
	return p.dark.Get()
}

// SetDark updates and persists the dark-mode flag.
func (p *Prefs) SetDark(ctx context.Context, v bool) {
	p.dark.Put(ctx, v)
}

// Favorites returns the favorites store.
func (p *Prefs) Favorites() *Favorites {
	return p.favorites
}
