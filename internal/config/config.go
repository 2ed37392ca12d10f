// Package config handles XDG data directory and file paths.
package config

import (
	"os"
	"path/filepath"
)

// AppName is the application directory name.
const AppName = "tido"

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the data directory path.
	Dir string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool
}

// New creates a new Config with the default or specified data directory.
// If dataDir is empty, uses XDG_DATA_HOME/tido or $HOME/.local/share/tido.
func New(dataDir string) (*Config, error) {
	dir := dataDir
	if dir == "" {
		dir = DefaultDataDir()
	}
	return &Config{Dir: dir}, nil
}

// DefaultDataDir returns the default data directory.
// Uses XDG_DATA_HOME if set, otherwise $HOME/.local/share.
func DefaultDataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".local", "share", AppName)
}

// EnsureDir creates the data directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}
