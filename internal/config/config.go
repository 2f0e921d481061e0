// Package config stores the user's defaults for the irail command.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mobil-koeln/irail-cli/internal/models"
)

// Config holds the persisted defaults. Empty fields fall back to the
// built-in defaults.
type Config struct {
	Language models.Language `json:"lang,omitempty"`
	From     string          `json:"from,omitempty"`
	To       string          `json:"to,omitempty"`
}

// DefaultPath returns $XDG_CONFIG_HOME/irail/config.json or the platform
// equivalent.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "irail", "config.json"), nil
}

// Load reads the config at path. A missing file yields a zero Config.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Config{}, nil
	}
	if err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path, replacing the old file atomically.
func Save(path string, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmpPath, path)
}

// Validate checks the language is one the API supports.
func (c Config) Validate() error {
	if c.Language == "" {
		return nil
	}
	_, err := models.ParseLanguage(string(c.Language))
	return err
}

// Lang returns the flag value when set, else the configured language,
// else the default.
func (c Config) Lang(flag string) (models.Language, error) {
	if flag != "" {
		return models.ParseLanguage(flag)
	}
	return models.ParseLanguage(string(c.Language))
}
