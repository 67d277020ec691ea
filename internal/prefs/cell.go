package prefs

import (
	"context"
	"encoding/json"
	"log"
)

// Backend is the durable key→string store a cell writes through to.
// Implemented by kvstore.Store.
type Backend interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// Cell keeps one value synchronized with durable storage. It is loaded once
// at startup and written through on every change. Durability is advisory:
// storage failures are logged and the in-memory value carries on.
type Cell[T any] struct {
	store Backend
	key   string
	value T
}

// LoadCell reads and decodes the stored value for key. A nil backend, an
// absent key, a read failure or a decode failure all fall back to def;
// only decode and read failures are worth logging.
func LoadCell[T any](ctx context.Context, store Backend, key string, def T) *Cell[T] {
	c := &Cell[T]{store: store, key: key, value: def}
	if store == nil {
		return c
	}
	raw, ok, err := store.Get(ctx, key)
	if err != nil {
		log.Printf("prefs: load %q: %v", key, err)
		return c
	}
	if !ok {
		return c
	}
	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		log.Printf("prefs: decode %q: %v", key, err)
		return c
	}
	c.value = v
	return c
}

// Get returns the current in-memory value.
func (c *Cell[T]) Get() T {
	return c.value
}

// Put replaces the value and writes it through best-effort.
func (c *Cell[T]) Put(ctx context.Context, v T) {
	c.value = v
	if c.store == nil {
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		log.Printf("prefs: encode %q: %v", c.key, err)
		return
	}
	if err := c.store.Set(ctx, c.key, string(raw)); err != nil {
		log.Printf("prefs: save %q: %v", c.key, err)
	}
}
