package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultInvadersConfigIsValid(t *testing.T) {
	if err := DefaultInvadersConfig().Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parseInvaders(defaultInvadersYAML)
	if err != nil {
		t.Fatalf("embedded defaults failed to parse: %v", err)
	}
	if cfg != DefaultInvadersConfig() {
		t.Errorf("embedded defaults differ from DefaultInvadersConfig:\n%+v\n%+v", cfg, DefaultInvadersConfig())
	}
}

func TestLoadInvadersCustomPathPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invaders.yaml")
	data := "formation:\n  initial_interval: 1s\nplayer:\n  speed: 8\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadInvaders(path)
	if err != nil {
		t.Fatalf("LoadInvaders returned error: %v", err)
	}
	if cfg.Formation.InitialInterval != time.Second {
		t.Errorf("InitialInterval = %v, expected 1s", cfg.Formation.InitialInterval)
	}
	if cfg.Player.Speed != 8 {
		t.Errorf("Player.Speed = %v, expected 8", cfg.Player.Speed)
	}
	// Untouched keys keep their defaults
	if cfg.Grid.CellSize != 12 || cfg.Formation.MinInterval != 200*time.Millisecond {
		t.Errorf("missing keys should keep defaults, got grid %+v formation %+v", cfg.Grid, cfg.Formation)
	}
}

func TestLoadInvadersCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadInvaders(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("player: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadInvaders(bad); err == nil {
		t.Error("expected error for unparsable custom config")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("formation:\n  min_interval: 2s\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadInvaders(invalid); err == nil {
		t.Error("expected error when min_interval exceeds initial_interval")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*InvadersConfig)
		want   string
	}{
		{"zero player speed", func(c *InvadersConfig) { c.Player.Speed = 0 }, "player speed"},
		{"zero cell size", func(c *InvadersConfig) { c.Grid.CellSize = 0 }, "cell_size"},
		{"zero min interval", func(c *InvadersConfig) { c.Formation.MinInterval = 0 }, "min_interval"},
		{"negative particles", func(c *InvadersConfig) { c.Particles.Count = -1 }, "particle count"},
		{"zero desktop", func(c *InvadersConfig) { c.Desktop.Width = 0 }, "desktop size"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultInvadersConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q should mention %q", err, tc.want)
			}
		})
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("INVADERS_TEST_VALUE", "set")

	if got := GetEnv("INVADERS_TEST_VALUE", "fallback"); got != "set" {
		t.Errorf("GetEnv = %q, expected %q", got, "set")
	}
	if got := GetEnv("INVADERS_TEST_UNSET_VALUE", "fallback"); got != "fallback" {
		t.Errorf("GetEnv = %q, expected %q", got, "fallback")
	}
}
