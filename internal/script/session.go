package script

import (
	"context"
	"fmt"
	"io"

	"github.com/q12we34rt5/ConsoleRouletteSimulator/internal/parser"
	"github.com/q12we34rt5/ConsoleRouletteSimulator/internal/roulette"
)

// Session holds the wheel settings a script builds up and runs spins against
// them. Each configuration command overwrites one setting; spin snapshots the
// settings, validates them and animates.
type Session struct {
	Settings roulette.Settings
	Out      io.Writer

	// SpinFunc runs one spin and returns the winning sector. Tests swap it
	// out; the default runs the console animator.
	SpinFunc func(ctx context.Context, settings roulette.Settings, out io.Writer) (int, error)
}

// NewSession creates a session with default settings writing to out.
func NewSession(out io.Writer) *Session {
	return &Session{
		Settings: roulette.DefaultSettings(),
		Out:      out,
		SpinFunc: runSpin,
	}
}

func runSpin(ctx context.Context, settings roulette.Settings, out io.Writer) (int, error) {
	animator, err := roulette.NewAnimator(settings, out)
	if err != nil {
		return 0, err
	}
	return animator.Run(ctx)
}

// Register binds the session's command set to e.
//
//	entries <n>              sector count
//	size <columns>           frame width
//	rounds <n>               full turns before stopping
//	steps <n>                animation steps
//	text_color "RRGGBB"      label color
//	highlight_color "RRGGBB" pointed label color
//	max_fps <n>              render cap, 0 = uncapped
//	max_tps <n>              logic cap, 0 = uncapped
//	show_metrics on|off      FPS/TPS line
//	precise_timing on|off    busy-wait timing
//	title <text>             line printed above the wheel
//	spin                     run the animation
func (s *Session) Register(e *Engine) {
	intSetting := func(dst *int) Handler {
		return func(cmd parser.Command) error {
			v, err := OneInt(cmd)
			if err != nil {
				return err
			}
			*dst = int(v)
			return nil
		}
	}
	boolSetting := func(dst *bool) Handler {
		return func(cmd parser.Command) error {
			v, err := OneBool(cmd)
			if err != nil {
				return err
			}
			*dst = v
			return nil
		}
	}
	// Colors must be quoted: a bare 000000 would lex as the integer 0.
	colorSetting := func(dst *string) Handler {
		return func(cmd parser.Command) error {
			v, err := OneString(cmd)
			if err != nil {
				return err
			}
			*dst = v
			return nil
		}
	}

	e.Register("entries", intSetting(&s.Settings.Entries))
	e.Register("size", intSetting(&s.Settings.Size))
	e.Register("rounds", intSetting(&s.Settings.Rounds))
	e.Register("steps", intSetting(&s.Settings.Steps))
	e.Register("max_fps", intSetting(&s.Settings.MaxFPS))
	e.Register("max_tps", intSetting(&s.Settings.MaxTPS))
	e.Register("show_metrics", boolSetting(&s.Settings.ShowMetrics))
	e.Register("precise_timing", boolSetting(&s.Settings.PreciseTiming))
	e.Register("text_color", colorSetting(&s.Settings.TextColor))
	e.Register("highlight_color", colorSetting(&s.Settings.HighlightColor))

	e.Register("title", func(cmd parser.Command) error {
		v, err := OneWord(cmd)
		if err != nil {
			return err
		}
		s.Settings.Title = v
		return nil
	})

	e.Register("spin", func(cmd parser.Command) error {
		if len(cmd.Arguments) != 0 {
			return fmt.Errorf("expected no arguments, got %d", len(cmd.Arguments))
		}
		if err := s.Settings.Validate(); err != nil {
			return err
		}
		winner, err := s.SpinFunc(context.Background(), s.Settings, s.Out)
		if err != nil {
			return err
		}
		fmt.Fprintf(s.Out, "Winning number: %d\n", winner)
		return nil
	})
}
