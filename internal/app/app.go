package app

import (
	"context"
	"fmt"
	"log"

	"github.com/pexcat/pex/internal/browse"
	"github.com/pexcat/pex/internal/catalog"
	"github.com/pexcat/pex/internal/config"
	"github.com/pexcat/pex/internal/kvstore"
	"github.com/pexcat/pex/internal/prefs"
	"github.com/pexcat/pex/internal/ui"
)

// Options configure the pex application.
type Options struct {
	ConfigPath string
	BaseURL    string // overrides the configured catalog endpoint
	StatePath  string // overrides the configured state database path
}

// Run boots the pex TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.BaseURL != "" {
		cfg.BaseURL = opts.BaseURL
	}
	if opts.StatePath != "" {
		cfg.StatePath = opts.StatePath
	}

	client, err := catalog.NewClient(cfg.BaseURL)
	if err != nil {
		return fmt.Errorf("init catalog client: %w", err)
	}

	// Favorites and the theme flag live in a local SQLite database. When
	// it cannot be opened the session still works, just without
	// persistence across restarts.
	var backend prefs.Backend
	store, err := kvstore.Open(cfg.StatePath)
	if err != nil {
		log.Printf("state store unavailable, preferences will not persist: %v", err)
	} else {
		backend = store
		defer func() {
			if cerr := store.Close(); cerr != nil {
				log.Printf("close state store: %v", cerr)
			}
		}()
	}

	userPrefs := prefs.Load(ctx, backend)

	return ui.Run(ui.Options{
		Context:     ctx,
		Client:      client,
		Coordinator: &browse.Coordinator{},
		Prefs:       userPrefs,
		Config:      cfg,
	})
}
