package roulette

import "errors"

// Settings collects everything a spin needs: wheel shape, animation pacing,
// frame styling and loop rate caps. The zero value is not usable; start from
// DefaultSettings.
type Settings struct {
	Entries        int
	Size           int // frame width in columns, the band is centered in it
	Rounds         int
	Steps          int
	TextColor      string // RRGGBB
	HighlightColor string // RRGGBB
	MaxFPS         int    // 0 = uncapped
	MaxTPS         int    // 0 = uncapped
	ShowMetrics    bool
	PreciseTiming  bool
	Title          string
}

// DefaultSettings returns the default spin settings.
func DefaultSettings() Settings {
	return Settings{
		Entries:        10,
		Size:           50,
		Rounds:         10,
		Steps:          200,
		TextColor:      "000000",
		HighlightColor: "FF0000",
		MaxFPS:         60,
		MaxTPS:         100,
	}
}

// Validate checks the settings for values that would break the animation.
func (s Settings) Validate() error {
	if s.Entries <= 0 {
		return errors.New("number of entries must be greater than 0")
	}
	if s.Size <= 0 {
		return errors.New("size must be greater than 0")
	}
	if s.Rounds < 0 {
		return errors.New("number of rounds must be non-negative")
	}
	if s.Steps <= 0 {
		return errors.New("number of steps must be greater than 0")
	}
	if s.MaxFPS < 0 {
		return errors.New("FPS limit must be non-negative")
	}
	if s.MaxTPS < 0 {
		return errors.New("TPS limit must be non-negative")
	}
	if _, err := NewStyles(s.TextColor, s.HighlightColor); err != nil {
		return err
	}
	return nil
}
