package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "roulette.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return path
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
entries = 12
steps = 400
highlight_color = "00FF00"
show_metrics = true
color = false
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Entries != 12 || cfg.Steps != 400 {
		t.Fatalf("overridden values wrong. got=%+v", cfg)
	}
	if cfg.HighlightColor != "00FF00" || !cfg.ShowMetrics || cfg.Color {
		t.Fatalf("overridden values wrong. got=%+v", cfg)
	}

	// Untouched keys keep their defaults.
	def := Default()
	if cfg.Size != def.Size || cfg.Rounds != def.Rounds || cfg.TextColor != def.TextColor {
		t.Fatalf("default values lost. got=%+v", cfg)
	}
	if !cfg.ShowSource {
		t.Fatal("show_source default lost")
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, "entriess = 12\n")

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for unknown key")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := writeConfig(t, "entries = [not toml\n")

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed file")
	}
}

func TestSettingsConversion(t *testing.T) {
	cfg := Default()
	cfg.Entries = 7
	cfg.Title = "wheel"

	settings := cfg.Settings()
	if settings.Entries != 7 || settings.Title != "wheel" {
		t.Fatalf("settings wrong. got=%+v", settings)
	}
	if err := settings.Validate(); err != nil {
		t.Fatalf("converted settings invalid: %v", err)
	}
}
