package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Store constants
const (
	StoreMemory = "memory" // Ordered slice, the default
	StoreSQLite = "sqlite" // In-memory SQLite database with activity log
)

// CurrentVersion is written into new config files.
const CurrentVersion = "1"

// DefaultExportFile is the export target when none is configured.
const DefaultExportFile = "questions.json"

// Config represents the flat qbank configuration
type Config struct {
	Version      string `json:"version"`
	Store        string `json:"store"`                 // "memory" or "sqlite"
	ExportFile   string `json:"export_file,omitempty"` // default questions.json
	StrictImport bool   `json:"strict_import"`
	NoColor      bool   `json:"no_color"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Version:    CurrentVersion,
		Store:      StoreMemory,
		ExportFile: DefaultExportFile,
	}
}

// Path returns the location of config.json for dir.
func Path(dir string) string {
	return filepath.Join(dir, ".qbank", "config.json")
}

// LoadConfig reads .qbank/config.json from the specified directory.
// Resolution order: cwd only (no home fallback).
// A missing file yields DefaultConfig; unset fields take their defaults.
func LoadConfig(dir string) (*Config, error) {
	data, err := os.ReadFile(Path(dir))
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.Store == "" {
		cfg.Store = StoreMemory
	}
	if cfg.ExportFile == "" {
		cfg.ExportFile = DefaultExportFile
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SaveConfig writes config.json to directory
func SaveConfig(dir string, cfg *Config) error {
	qbankDir := filepath.Join(dir, ".qbank")
	if err := os.MkdirAll(qbankDir, 0755); err != nil {
		return fmt.Errorf("failed to create .qbank dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(Path(dir), data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Validate reports an unknown store kind.
func (c *Config) Validate() error {
	if !IsValidStore(c.Store) {
		return fmt.Errorf("invalid store %q (expected %s or %s)", c.Store, StoreMemory, StoreSQLite)
	}
	return nil
}

// IsValidStore returns true if store names a supported session store.
func IsValidStore(store string) bool {
	return store == StoreMemory || store == StoreSQLite
}
