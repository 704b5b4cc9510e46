package config

import (
	"os"
	"path/filepath"
)

// XDGConfigHome returns the XDG config home or a default fallback.
func XDGConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}

// DefaultConfigPath returns $QUIZCARD_CONFIG or the XDG config path.
func DefaultConfigPath() string {
	if p := os.Getenv("QUIZCARD_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(XDGConfigHome(), "quizcard", "config.toml")
}
