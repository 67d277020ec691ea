// Package config handles loading and parsing the pex configuration file.
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/pex/config.toml
//  3. If the config file doesn't exist, fall back to defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// Example config.toml:
//
//	base_url = "https://dummyjson.com"
//	page_size = 12
//	debounce_ms = 450
//	state_path = "~/.local/share/pex/state.db"
//	category_clears_search = true
//
// All fields are optional; tilde expansion is performed automatically.
// Missing config files are NOT an error, so pex works out of the box.
// A malformed file is an error, since silently ignoring a file the user
// wrote would be worse than refusing to start.
package config
