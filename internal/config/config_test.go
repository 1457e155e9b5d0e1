package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.Activation.Enabled != true {
		t.Errorf("Expected Enabled=true, got %v", cfg.Activation.Enabled)
	}
	if cfg.Activation.DelayMinutes != 5 {
		t.Errorf("Expected DelayMinutes=5, got %d", cfg.Activation.DelayMinutes)
	}
	if cfg.Activation.CheckIntervalSeconds != 1 {
		t.Errorf("Expected CheckIntervalSeconds=1, got %d", cfg.Activation.CheckIntervalSeconds)
	}
	if cfg.Display.Theme != "dark" {
		t.Errorf("Expected Theme=dark, got %s", cfg.Display.Theme)
	}
	if cfg.Display.TimeFormat != "24h" {
		t.Errorf("Expected TimeFormat=24h, got %s", cfg.Display.TimeFormat)
	}
	if cfg.Display.Opacity != 0.9 {
		t.Errorf("Expected Opacity=0.9, got %f", cfg.Display.Opacity)
	}
	if cfg.System.TurnOffScreenDelayMinutes != 0 {
		t.Errorf("Expected TurnOffScreenDelayMinutes=0, got %d", cfg.System.TurnOffScreenDelayMinutes)
	}
	if cfg.Update.AutoCheck != true {
		t.Errorf("Expected AutoCheck=true, got %v", cfg.Update.AutoCheck)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config should validate, got %v", err)
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "restmode.conf")

	cfg := New()
	cfg.Activation.Enabled = false
	cfg.Activation.DelayMinutes = 10
	cfg.Activation.CheckIntervalSeconds = 2
	cfg.Display.Theme = "blue"
	cfg.Display.TimeFormat = "12h"
	cfg.Display.DateFormat = "iso"
	cfg.Display.FontSize = 96
	cfg.Display.ShowWeather = true
	cfg.System.TurnOffScreenDelayMinutes = 30
	cfg.Weather.Location = "Oslo"
	cfg.Weather.Units = "imperial"
	cfg.Dashboard.Enabled = true
	cfg.Todo.Items = []string{"Buy groceries", "Call Alice"}

	if err := Save(cfg, configPath); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Activation.Enabled != false {
		t.Errorf("Expected Enabled=false, got %v", loaded.Activation.Enabled)
	}
	if loaded.Activation.DelayMinutes != 10 {
		t.Errorf("Expected DelayMinutes=10, got %d", loaded.Activation.DelayMinutes)
	}
	if loaded.Display.Theme != "blue" {
		t.Errorf("Expected Theme=blue, got %s", loaded.Display.Theme)
	}
	if loaded.Display.TimeFormat != "12h" {
		t.Errorf("Expected TimeFormat=12h, got %s", loaded.Display.TimeFormat)
	}
	if loaded.Display.DateFormat != "iso" {
		t.Errorf("Expected DateFormat=iso, got %s", loaded.Display.DateFormat)
	}
	if loaded.Display.FontSize != 96 {
		t.Errorf("Expected FontSize=96, got %d", loaded.Display.FontSize)
	}
	if !loaded.Display.ShowWeather {
		t.Error("Expected ShowWeather=true")
	}
	if loaded.System.TurnOffScreenDelayMinutes != 30 {
		t.Errorf("Expected TurnOffScreenDelayMinutes=30, got %d", loaded.System.TurnOffScreenDelayMinutes)
	}
	if loaded.Weather.Location != "Oslo" {
		t.Errorf("Expected Location=Oslo, got %s", loaded.Weather.Location)
	}
	if len(loaded.Todo.Items) != 2 || loaded.Todo.Items[0] != "Buy groceries" {
		t.Errorf("Expected 2 todo items, got %v", loaded.Todo.Items)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.conf"))
	if err != nil {
		t.Fatalf("Load of missing file should not error, got %v", err)
	}
	if cfg.Activation.DelayMinutes != 5 {
		t.Errorf("Expected default DelayMinutes=5, got %d", cfg.Activation.DelayMinutes)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "restmode.conf")

	content := "[activation]\ndelay_minutes = 15\n"
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Activation.DelayMinutes != 15 {
		t.Errorf("Expected DelayMinutes=15, got %d", cfg.Activation.DelayMinutes)
	}
	// Unspecified values fall back to defaults
	if cfg.Display.Theme != "dark" {
		t.Errorf("Expected default Theme=dark, got %s", cfg.Display.Theme)
	}
	if cfg.Activation.CheckIntervalSeconds != 1 {
		t.Errorf("Expected default CheckIntervalSeconds=1, got %d", cfg.Activation.CheckIntervalSeconds)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"delay too small", func(c *Config) { c.Activation.DelayMinutes = 0 }, ErrInvalidDelay},
		{"delay too large", func(c *Config) { c.Activation.DelayMinutes = 1441 }, ErrInvalidDelay},
		{"interval too small", func(c *Config) { c.Activation.CheckIntervalSeconds = 0 }, ErrInvalidCheckInterval},
		{"interval too large", func(c *Config) { c.Activation.CheckIntervalSeconds = 301 }, ErrInvalidCheckInterval},
		{"opacity too low", func(c *Config) { c.Display.Opacity = 0.05 }, ErrInvalidOpacity},
		{"opacity too high", func(c *Config) { c.Display.Opacity = 1.5 }, ErrInvalidOpacity},
		{"bad time format", func(c *Config) { c.Display.TimeFormat = "48h" }, ErrInvalidTimeFormat},
		{"bad date format", func(c *Config) { c.Display.DateFormat = "roman" }, ErrInvalidDateFormat},
		{"negative screen off", func(c *Config) { c.System.TurnOffScreenDelayMinutes = -1 }, ErrInvalidScreenOffDelay},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := New()
			tt.mutate(cfg)
			if err := cfg.Validate(); err != tt.wantErr {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	cfg := New()
	cfg.Activation.DelayMinutes = 5000
	cfg.Activation.CheckIntervalSeconds = 0
	cfg.Display.Opacity = 2.0
	cfg.System.TurnOffScreenDelayMinutes = -5

	cfg.Clamp()

	if cfg.Activation.DelayMinutes != 1440 {
		t.Errorf("Expected DelayMinutes clamped to 1440, got %d", cfg.Activation.DelayMinutes)
	}
	if cfg.Activation.CheckIntervalSeconds != 1 {
		t.Errorf("Expected CheckIntervalSeconds clamped to 1, got %d", cfg.Activation.CheckIntervalSeconds)
	}
	if cfg.Display.Opacity != 1.0 {
		t.Errorf("Expected Opacity clamped to 1.0, got %f", cfg.Display.Opacity)
	}
	if cfg.System.TurnOffScreenDelayMinutes != 0 {
		t.Errorf("Expected TurnOffScreenDelayMinutes clamped to 0, got %d", cfg.System.TurnOffScreenDelayMinutes)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Clamped config should validate, got %v", err)
	}
}

func TestDurationHelpers(t *testing.T) {
	cfg := New()
	cfg.Activation.DelayMinutes = 7
	cfg.Activation.CheckIntervalSeconds = 3
	cfg.System.TurnOffScreenDelayMinutes = 2

	if got := cfg.IdleDelay().Minutes(); got != 7 {
		t.Errorf("Expected IdleDelay of 7m, got %vm", got)
	}
	if got := cfg.CheckInterval().Seconds(); got != 3 {
		t.Errorf("Expected CheckInterval of 3s, got %vs", got)
	}
	if got := cfg.ScreenOffDelay().Minutes(); got != 2 {
		t.Errorf("Expected ScreenOffDelay of 2m, got %vm", got)
	}
}

func TestTokenFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")

	if err := WriteTokenFile(path, "abc123"); err != nil {
		t.Fatalf("WriteTokenFile failed: %v", err)
	}
	got, err := ReadTokenFile(path)
	if err != nil {
		t.Fatalf("ReadTokenFile failed: %v", err)
	}
	if got != "abc123" {
		t.Errorf("Expected token abc123, got %q", got)
	}
}

func TestReadTokenFileMissing(t *testing.T) {
	got, err := ReadTokenFile(filepath.Join(t.TempDir(), "nope"))
	if err != nil {
		t.Fatalf("ReadTokenFile of missing file should not error, got %v", err)
	}
	if got != "" {
		t.Errorf("Expected empty token, got %q", got)
	}
}

func TestStoreUpdate(t *testing.T) {
	store := NewStore(New())

	updated := store.Update(func(c *Config) {
		c.Display.Theme = "purple"
	})

	if updated.Display.Theme != "purple" {
		t.Errorf("Expected updated Theme=purple, got %s", updated.Display.Theme)
	}
	if store.Get().Display.Theme != "purple" {
		t.Errorf("Expected store Theme=purple, got %s", store.Get().Display.Theme)
	}
}
