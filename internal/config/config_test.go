package config

import (
	"os"
	"path/filepath"
	"testing"
)

func withTempConfigDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return filepath.Join(dir, "tmanina")
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	withTempConfigDir(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.General.City != "Cairo" || cfg.General.Country != "Egypt" {
		t.Fatalf("default location = %s, %s", cfg.General.City, cfg.General.Country)
	}
	if cfg.General.Method != 5 {
		t.Fatalf("default method = %d, want 5", cfg.General.Method)
	}
	if cfg.General.Store != "file" {
		t.Fatalf("default store = %q, want file", cfg.General.Store)
	}
	if cfg.Appearance.Theme != "flexoki-dark" {
		t.Fatalf("default theme = %q", cfg.Appearance.Theme)
	}
	if Exists() {
		t.Fatal("Exists() true with no config file")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	withTempConfigDir(t)

	cfg := DefaultConfig()
	cfg.General.City = "Alexandria"
	cfg.Reminders.Enabled = true
	cfg.Reminders.Morning = "05:00"

	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Fatal("Exists() false after Save")
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load after Save: %v", err)
	}
	if loaded.General.City != "Alexandria" {
		t.Fatalf("City = %q, want Alexandria", loaded.General.City)
	}
	if !loaded.Reminders.Enabled || loaded.Reminders.Morning != "05:00" {
		t.Fatalf("Reminders = %+v", loaded.Reminders)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	cfgDir := withTempConfigDir(t)
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	partial := "[general]\ncity = \"Luxor\"\n"
	if err := os.WriteFile(filepath.Join(cfgDir, "config.toml"), []byte(partial), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.General.City != "Luxor" {
		t.Fatalf("City = %q, want Luxor", cfg.General.City)
	}
	// Unset keys keep their defaults.
	if cfg.General.Method != 5 || cfg.Appearance.Theme != "flexoki-dark" {
		t.Fatalf("defaults lost: %+v", cfg)
	}
}
