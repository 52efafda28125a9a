package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Environment variables that override the config file.
const (
	EnvSource   = "STOREFINDER_SOURCE"
	EnvDBPath   = "STOREFINDER_DB"
	EnvLocale   = "STOREFINDER_LOCALE"
	EnvAddr     = "STOREFINDER_ADDR"
	EnvLogLevel = "STOREFINDER_LOG_LEVEL"
)

// CurrentVersion is written by SaveConfig.
const CurrentVersion = "1"

// DefaultListenAddr is used by serve when nothing else is configured.
const DefaultListenAddr = ":8080"

// Config represents the storefinder configuration
type Config struct {
	Version       string `json:"version"`
	Source        string `json:"source,omitempty"`          // URL, file path or "sqlite:"
	DBPath        string `json:"db_path,omitempty"`         // record cache; empty = ~/.storefinder/stores.db
	Locale        string `json:"locale,omitempty"`          // district collation locale, BCP 47
	ListenAddr    string `json:"listen_addr,omitempty"`     // serve address
	LogLevel      string `json:"log_level,omitempty"`       // debug, info, warn, error
	CityOrderFile string `json:"city_order_file,omitempty"` // YAML city table; empty = built-in
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Version:    CurrentVersion,
		Locale:     "und",
		ListenAddr: DefaultListenAddr,
		LogLevel:   "info",
	}
}

// Path returns the config file location inside dir.
func Path(dir string) string {
	return filepath.Join(dir, ".storefinder", "config.json")
}

// LoadConfig reads .storefinder/config.json from the specified directory.
// Resolution order: dir only (no home fallback).
// Returns error if no config found - caller should handle accordingly.
func LoadConfig(dir string) (*Config, error) {
	data, err := os.ReadFile(Path(dir))
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// Load resolves the effective configuration: defaults, then the config file
// in dir when present, then environment overrides.
func Load(dir string) (*Config, error) {
	cfg, err := LoadConfig(dir)
	if errors.Is(err, os.ErrNotExist) {
		cfg = Default()
	} else if err != nil {
		return nil, err
	}

	cfg.ApplyEnv(os.LookupEnv)
	return cfg, nil
}

// ApplyEnv overrides fields from non-empty environment variables.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	set := func(key string, field *string) {
		if v, ok := lookup(key); ok && v != "" {
			*field = v
		}
	}
	set(EnvSource, &c.Source)
	set(EnvDBPath, &c.DBPath)
	set(EnvLocale, &c.Locale)
	set(EnvAddr, &c.ListenAddr)
	set(EnvLogLevel, &c.LogLevel)
}

// SaveConfig writes config.json to directory
func SaveConfig(dir string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(Path(dir)), 0755); err != nil {
		return fmt.Errorf("failed to create .storefinder dir: %w", err)
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
