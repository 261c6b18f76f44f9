// Package config loads and persists tmanina user preferences.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all tmanina configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Appearance AppearanceConfig `toml:"appearance"`
	Reminders  RemindersConfig  `toml:"reminders"`
}

// GeneralConfig holds location and storage preferences.
type GeneralConfig struct {
	City    string `toml:"city"`
	Country string `toml:"country"`
	// Method selects the aladhan prayer-time calculation method.
	// 5 is the Egyptian General Authority of Survey.
	Method int `toml:"method"`
	// Store selects the progress backend: "file" or "sqlite".
	Store   string `toml:"store"`
	DataDir string `toml:"data_dir,omitempty"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// RemindersConfig holds the daemon's adhkar reminder schedule.
type RemindersConfig struct {
	Enabled bool   `toml:"enabled"`
	Morning string `toml:"morning"` // local HH:MM
	Evening string `toml:"evening"` // local HH:MM
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			City:    "Cairo",
			Country: "Egypt",
			Method:  5,
			Store:   "file",
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
		Reminders: RemindersConfig{
			Morning: "05:30",
			Evening: "17:00",
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "tmanina")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "tmanina")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
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
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}
