package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the settings pex reads from its config file.
type Config struct {
	BaseURL              string
	PageSize             int
	Debounce             time.Duration
	StatePath            string
	CategoryClearsSearch bool
}

const (
	defaultConfigPath = "~/.config/pex/config.toml"
	defaultStatePath  = "~/.local/share/pex/state.db"
	defaultBaseURL    = "https://dummyjson.com"
	defaultPageSize   = 12
	defaultDebounceMS = 450
)

// Load locates and parses the pex config, falling back to defaults when the
// file is missing. A malformed file is an error; a missing one is not.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := defaults()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		BaseURL              string `toml:"base_url"`
		PageSize             int    `toml:"page_size"`
		DebounceMS           int    `toml:"debounce_ms"`
		StatePath            string `toml:"state_path"`
		CategoryClearsSearch *bool  `toml:"category_clears_search"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.BaseURL); v != "" {
		cfg.BaseURL = v
	}
	if raw.PageSize > 0 {
		cfg.PageSize = raw.PageSize
	}
	if raw.DebounceMS > 0 {
		cfg.Debounce = time.Duration(raw.DebounceMS) * time.Millisecond
	}
	if v := strings.TrimSpace(raw.StatePath); v != "" {
		cfg.StatePath = v
	}
	if raw.CategoryClearsSearch != nil {
		cfg.CategoryClearsSearch = *raw.CategoryClearsSearch
	}
	cfg.StatePath = mustExpand(cfg.StatePath)

	return cfg, nil
}

func defaults() Config {
	return Config{
		BaseURL:              defaultBaseURL,
		PageSize:             defaultPageSize,
		Debounce:             defaultDebounceMS * time.Millisecond,
		StatePath:            mustExpand(defaultStatePath),
		CategoryClearsSearch: true,
	}
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
