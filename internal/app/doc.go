// Package app provides the orchestration layer for the pex application.
//
// It is the composition root: configuration is loaded, the catalog client
// and the preference store are initialized, and the UI is started and
// blocks until the user exits or the context cancels.
//
// Initialization order:
//
//  1. Load configuration from ~/.config/pex/config.toml
//  2. Create the HTTP client for the product catalog API
//  3. Open the SQLite state store (preferences degrade to in-memory on failure)
//  4. Load favorites and the theme flag
//  5. Start the TUI and block
//
// The store-open failure path is deliberate: a broken or unwritable state
// database must never prevent browsing, so preferences silently fall back
// to session-only storage.
package app
