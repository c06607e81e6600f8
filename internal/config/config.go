// Package config loads and saves the application configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds the persisted application settings. Flags override any of
// these at the CLI layer.
type Config struct {
	BackendURL  string `json:"backend_url" mapstructure:"backend_url"`
	HistoryPath string `json:"history_path" mapstructure:"history_path"`
	DataDir     string `json:"data_dir" mapstructure:"data_dir"`
	AutoSave    bool   `json:"auto_save" mapstructure:"auto_save"`
}

// Default returns the configuration used on first run.
func Default() *Config {
	return &Config{
		BackendURL:  "http://localhost:8000/api/v1",
		HistoryPath: filepath.Join("data", "scans.db"),
		DataDir:     "data",
		AutoSave:    true,
	}
}

// Load reads the configuration from path. A missing file is created with
// defaults so the first run leaves a config behind; keys absent from an
// existing file fall back to their defaults.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := Default()
		if saveErr := cfg.Save(path); saveErr != nil {
			return nil, saveErr
		}
		return cfg, nil
	}

	v := newViper(path)

	// Set defaults
	defaults := Default()
	v.SetDefault("backend_url", defaults.BackendURL)
	v.SetDefault("history_path", defaults.HistoryPath)
	v.SetDefault("data_dir", defaults.DataDir)
	v.SetDefault("auto_save", defaults.AutoSave)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return &cfg, nil
}

// Save writes the configuration to path, creating parent directories as
// needed.
func (c *Config) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("config: create directory %s: %w", dir, err)
		}
	}

	v := newViper(path)
	v.Set("backend_url", c.BackendURL)
	v.Set("history_path", c.HistoryPath)
	v.Set("data_dir", c.DataDir)
	v.Set("auto_save", c.AutoSave)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}

// newViper builds a viper instance bound to path. The config file is JSON
// regardless of the path's extension.
func newViper(path string) *viper.Viper {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	return v
}

// EnsureDirectories creates the data directory and the history database's
// parent directory.
func (c *Config) EnsureDirectories() error {
	if c.DataDir != "" {
		if err := os.MkdirAll(c.DataDir, 0o755); err != nil {
			return fmt.Errorf("config: create data dir: %w", err)
		}
	}
	if dir := filepath.Dir(c.HistoryPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("config: create history dir: %w", err)
		}
	}
	return nil
}

// DefaultPath returns the conventional config file location under the
// user's config directory, falling back to the working directory.
func DefaultPath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return "packscan.json"
	}
	return filepath.Join(base, "packscan", "config.json")
}
