package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromPath_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := LoadFromPath(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.LayoutMode != LayoutModeMasterStack {
		t.Fatalf("expected default layout mode, got %q", cfg.LayoutMode)
	}
	if cfg.Screen.Width != 800 || cfg.Screen.Height != 600 {
		t.Fatalf("expected default screen, got %+v", cfg.Screen)
	}
}

func TestLoadFromPath_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
layout_mode: monocle
gap_size: 12
screen:
  width: 1920
  height: 1080
log_level: debug
float_rules:
  - class: mpv
fullscreen_rules:
  - class: games
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.LayoutMode != LayoutModeMonocle {
		t.Fatalf("expected monocle, got %q", cfg.LayoutMode)
	}
	if cfg.GapSize != 12 {
		t.Fatalf("expected gap 12, got %d", cfg.GapSize)
	}
	if !cfg.ShouldFloat("mpv") || cfg.ShouldFloat("kitty") {
		t.Fatalf("float rules misapplied")
	}
	if !cfg.ShouldFullscreen("games") || cfg.ShouldFullscreen("mpv") {
		t.Fatalf("fullscreen rules misapplied")
	}
}

func TestLoad_HonoursConfigEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "override.yaml")
	if err := os.WriteFile(path, []byte("gap_size: 7\n"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("LAYERWM_CONFIG", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.GapSize != 7 {
		t.Fatalf("expected gap 7 from override file, got %d", cfg.GapSize)
	}
}

func TestValidate_RejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad layout mode", func(c *Config) { c.LayoutMode = "spiral" }},
		{"negative gap", func(c *Config) { c.GapSize = -1 }},
		{"gap swallows screen", func(c *Config) { c.GapSize = 400 }},
		{"zero screen", func(c *Config) { c.Screen = Screen{} }},
		{"bad log level", func(c *Config) { c.LogLevel = "trace" }},
		{"empty float class", func(c *Config) { c.FloatRules = []FloatRule{{}} }},
		{"empty fullscreen class", func(c *Config) { c.FullscreenRules = []FullscreenRule{{}} }},
	}
	for _, tc := range cases {
		cfg := DefaultConfig()
		tc.mutate(cfg)
		err := cfg.Validate()
		if err == nil {
			t.Fatalf("%s: expected validation error", tc.name)
		}
		if _, ok := err.(*ValidationError); !ok {
			t.Fatalf("%s: expected *ValidationError, got %T", tc.name, err)
		}
	}
}

func TestGetPersistState_DefaultsTrue(t *testing.T) {
	cfg := DefaultConfig()
	if !cfg.GetPersistState() {
		t.Fatalf("expected persist_state default true")
	}
	off := false
	cfg.PersistState = &off
	if cfg.GetPersistState() {
		t.Fatalf("expected persist_state false")
	}
}
