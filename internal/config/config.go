// Package config loads optional spin defaults from a TOML file. Flags
// override file values, which override the built-in defaults.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/q12we34rt5/ConsoleRouletteSimulator/internal/roulette"
)

// DefaultPath is probed when no --config flag is given.
const DefaultPath = "roulette.toml"

// Config mirrors the TOML file. Absent keys keep their defaults.
type Config struct {
	Entries        int    `toml:"entries"`
	Size           int    `toml:"size"`
	Rounds         int    `toml:"rounds"`
	Steps          int    `toml:"steps"`
	TextColor      string `toml:"text_color"`
	HighlightColor string `toml:"highlight_color"`
	MaxFPS         int    `toml:"max_fps"`
	MaxTPS         int    `toml:"max_tps"`
	ShowMetrics    bool   `toml:"show_metrics"`
	PreciseTiming  bool   `toml:"precise_timing"`
	Title          string `toml:"title"`

	// Diagnostics presentation.
	Color      bool `toml:"color"`
	ShowSource bool `toml:"show_source"`
}

// Default returns the built-in configuration.
func Default() Config {
	s := roulette.DefaultSettings()
	return Config{
		Entries:        s.Entries,
		Size:           s.Size,
		Rounds:         s.Rounds,
		Steps:          s.Steps,
		TextColor:      s.TextColor,
		HighlightColor: s.HighlightColor,
		MaxFPS:         s.MaxFPS,
		MaxTPS:         s.MaxTPS,
		ShowMetrics:    s.ShowMetrics,
		PreciseTiming:  s.PreciseTiming,
		Color:          true,
		ShowSource:     true,
	}
}

// Load reads the file at path over the defaults. The file must exist.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("config: unknown key %q in %s", undecoded[0], path)
	}
	return cfg, nil
}

// LoadDefault probes DefaultPath and falls back to the built-in configuration
// when the file does not exist.
func LoadDefault() (Config, error) {
	if _, err := os.Stat(DefaultPath); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(DefaultPath)
}

// Settings converts the configuration to spin settings.
func (c Config) Settings() roulette.Settings {
	return roulette.Settings{
		Entries:        c.Entries,
		Size:           c.Size,
		Rounds:         c.Rounds,
		Steps:          c.Steps,
		TextColor:      c.TextColor,
		HighlightColor: c.HighlightColor,
		MaxFPS:         c.MaxFPS,
		MaxTPS:         c.MaxTPS,
		ShowMetrics:    c.ShowMetrics,
		PreciseTiming:  c.PreciseTiming,
		Title:          c.Title,
	}
}
