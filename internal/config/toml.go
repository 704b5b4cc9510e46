// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file. Unset keys stay nil.
type FileConfig struct {
	Session  SessionConfig  `toml:"session"`
	Feedback FeedbackConfig `toml:"feedback"`
	Storage  StorageConfig  `toml:"storage"`
	Catalog  CatalogConfig  `toml:"catalog"`
}

// SessionConfig maps session settings.
type SessionConfig struct {
	SkipThreshold *float64 `toml:"skip_threshold"`
}

// FeedbackConfig maps feedback animation timings in milliseconds.
type FeedbackConfig struct {
	CorrectMs *int `toml:"correct_ms"`
	ShakeMs   *int `toml:"shake_ms"`
	SettleMs  *int `toml:"settle_ms"`
}

// StorageConfig maps storage settings.
type StorageConfig struct {
	DB *string `toml:"db"`
}

// CatalogConfig maps catalog settings.
type CatalogConfig struct {
	Path *string `toml:"path"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}
