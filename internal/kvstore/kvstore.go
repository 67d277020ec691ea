// Package kvstore is a durable key→string store backed by SQLite, used for
// user preferences and favorites. One table, one row per key.
package kvstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
)

// Entry is one persisted key/value pair.
type Entry struct {
	bun.BaseModel `bun:"table:kv_entries"`

	Key   string `bun:"key,pk"`
	Value string `bun:"value,notnull"`
}

// Store wraps the bun database handle.
type Store struct {
	db *bun.DB
}

// Open opens (creating if needed) the store at the given file path and
// ensures the schema exists. Use ":memory:" for an ephemeral store.
func Open(path string) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create state dir: %w", err)
		}
	}

	sqldb, err := sql.Open(sqliteshim.ShimName, path)
	if err != nil {
		return nil, fmt.Errorf("open state db: %w", err)
	}
	db := bun.NewDB(sqldb, sqlitedialect.New())

	if _, err := db.NewCreateTable().Model((*Entry)(nil)).IfNotExists().Exec(context.Background()); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create kv_entries table: %w", err)
	}

	return &Store{db: db}, nil
}

// Get returns the value for key. The second result is false when the key is
// absent; that is not an error.
func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	entry := new(Entry)
	err := s.db.NewSelect().Model(entry).Where("key = ?", key).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get %q: %w", key, err)
	}
	return entry.Value, true, nil
}

// Set writes the value for key, overwriting any previous value.
func (s *Store) Set(ctx context.Context, key, value string) error {
	entry := &Entry{Key: key, Value: value}
	_, err := s.db.NewInsert().
		Model(entry).
		On("CONFLICT (key) DO UPDATE").
		Set("value = EXCLUDED.value").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	return nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
