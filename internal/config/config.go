// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete kubedoc configuration.
type Config struct {
	// Environment tags sessions and exports with a deployment
	// environment name ("staging", "prod").
	Environment string `toml:"environment"`

	// Input configures the query input.
	Input InputConfig `toml:"input"`

	// UI configures the terminal interface.
	UI UIConfig `toml:"ui"`

	// Export configures document export.
	Export ExportConfig `toml:"export"`
}

// InputConfig contains query input configuration.
type InputConfig struct {
	// CharLimit caps query length in runes.
	CharLimit int `toml:"char_limit"`
}

// UIConfig contains terminal interface configuration.
type UIConfig struct {
	// Title is the header bar text.
	Title string `toml:"title"`

	// SyntaxHighlight toggles chroma highlighting of fenced blocks in
	// the REPL.
	SyntaxHighlight bool `toml:"syntax_highlight"`
}

// ExportConfig contains document export configuration.
type ExportConfig struct {
	// Dir is the directory exports are written to. Empty means the
	// current working directory.
	Dir string `toml:"dir"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Environment: "",
		Input: InputConfig{
			CharLimit: 500,
		},
		UI: UIConfig{
			Title:           "Kubernetes Assistant",
			SyntaxHighlight: true,
		},
		Export: ExportConfig{
			Dir: "",
		},
	}
}

// =============================================================================
// PATHS
// =============================================================================

// ConfigDir returns the kubedoc configuration directory.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: resolving home directory: %w", err)
	}
	return filepath.Join(home, ".kubedoc"), nil
}

// ConfigPath returns the path of the TOML configuration file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// EnsureConfigDir creates the configuration directory if needed.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0o755)
}

// =============================================================================
// LOADING AND SAVING
// =============================================================================

// Load reads the configuration file, fills defaults, and applies
// environment overrides. A missing file yields the defaults.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFromPath(path)
}

// LoadFromPath reads configuration from an explicit path.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("config: parsing %s: %w", path, err)
		}
	}

	cfg.fillDefaults()
	cfg.ApplyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to the default path.
func Save(cfg *Config) error {
	if err := EnsureConfigDir(); err != nil {
		return err
	}
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return SaveToPath(cfg, path)
}

// SaveToPath writes the configuration as TOML to an explicit path.
func SaveToPath(cfg *Config, path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("config: opening %s: %w", path, err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("config: encoding %s: %w", path, err)
	}
	return nil
}

// fillDefaults backfills zero values a partial file left unset.
func (c *Config) fillDefaults() {
	d := Default()
	if c.Input.CharLimit == 0 {
		c.Input.CharLimit = d.Input.CharLimit
	}
	if c.UI.Title == "" {
		c.UI.Title = d.UI.Title
	}
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies KUBEDOC_* environment variables on top of
// the loaded configuration.
func (c *Config) ApplyEnvOverrides() {
	if env := os.Getenv("KUBEDOC_ENV"); env != "" {
		c.Environment = env
	}
	if dir := os.Getenv("KUBEDOC_EXPORT_DIR"); dir != "" {
		c.Export.Dir = dir
	}
	if limit := os.Getenv("KUBEDOC_CHAR_LIMIT"); limit != "" {
		if n, err := strconv.Atoi(limit); err == nil && n > 0 {
			c.Input.CharLimit = n
		}
	}
	if hl := os.Getenv("KUBEDOC_SYNTAX_HIGHLIGHT"); hl != "" {
		if b, err := strconv.ParseBool(hl); err == nil {
			c.UI.SyntaxHighlight = b
		}
	}
}

// =============================================================================
// VALIDATION
// =============================================================================

// Validate checks the configuration for values the application cannot
// run with.
func (c *Config) Validate() error {
	if c.Input.CharLimit < 1 {
		return fmt.Errorf("config: input.char_limit must be positive, got %d", c.Input.CharLimit)
	}
	if c.Input.CharLimit > 10000 {
		return fmt.Errorf("config: input.char_limit %d is unreasonably large", c.Input.CharLimit)
	}
	return nil
}
