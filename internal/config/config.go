// Package config handles the machine-local khata configuration file.
//
// This is deliberately small: user-facing preferences (language, theme,
// reminder) live inside the persisted snapshot so they travel with the data.
// The config file only covers things bound to this machine, like where the
// snapshot database lives.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all khata configuration.
type Config struct {
	General GeneralConfig `toml:"general"`
}

// GeneralConfig holds general machine-local preferences.
type GeneralConfig struct {
	DataDir  string `toml:"data_dir,omitempty"`
	Language string `toml:"language,omitempty"` // seeds a fresh snapshot only
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "khata")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "khata")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// DataDir returns the directory holding the snapshot database, honoring the
// config override.
func DataDir(cfg Config) string {
	if cfg.General.DataDir != "" {
		return cfg.General.DataDir
	}
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "khata")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "khata")
}

// DBPath returns the full path to the snapshot database.
func DBPath(cfg Config) string {
	return filepath.Join(DataDir(cfg), "khata.db")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	if err := os.MkdirAll(ConfigDir(), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}
