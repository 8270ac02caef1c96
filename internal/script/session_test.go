package script

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/q12we34rt5/ConsoleRouletteSimulator/internal/roulette"
)

func newSession(t *testing.T) (*Session, *Engine, *bytes.Buffer) {
	t.Helper()
	e, err := NewEngine("1.0.0")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var out bytes.Buffer
	s := NewSession(&out)
	s.Register(e)
	return s, e, &out
}

func TestSessionConfiguresSettings(t *testing.T) {
	s, e, _ := newSession(t)

	script := strings.Join([]string{
		"entries 12",
		"size 80",
		"rounds 5",
		"steps 300",
		"text_color \"FFFFFF\"",
		"highlight_color \"00FF00\"",
		"max_fps 30",
		"max_tps 0",
		"show_metrics on",
		"precise_timing off",
		"title MyWheel",
		"",
	}, "\n")

	if err := run(e, script); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := s.Settings
	if got.Entries != 12 || got.Size != 80 || got.Rounds != 5 || got.Steps != 300 {
		t.Fatalf("wheel settings wrong. got=%+v", got)
	}
	if got.TextColor != "FFFFFF" || got.HighlightColor != "00FF00" {
		t.Fatalf("colors wrong. got=%+v", got)
	}
	if got.MaxFPS != 30 || got.MaxTPS != 0 {
		t.Fatalf("rate caps wrong. got=%+v", got)
	}
	if !got.ShowMetrics || got.PreciseTiming {
		t.Fatalf("toggles wrong. got=%+v", got)
	}
	if got.Title != "MyWheel" {
		t.Fatalf("title wrong. got=%q", got.Title)
	}
}

func TestSessionSpin(t *testing.T) {
	s, e, out := newSession(t)

	var spun []roulette.Settings
	s.SpinFunc = func(ctx context.Context, settings roulette.Settings, w io.Writer) (int, error) {
		spun = append(spun, settings)
		return 7, nil
	}

	if err := run(e, "entries 9\nspin\n"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(spun) != 1 {
		t.Fatalf("spin call count wrong. got=%d", len(spun))
	}
	if spun[0].Entries != 9 {
		t.Fatalf("spin settings wrong. got=%+v", spun[0])
	}
	if !strings.Contains(out.String(), "Winning number: 7") {
		t.Fatalf("output wrong. got=%q", out.String())
	}
}

func TestSessionSpinValidatesSettings(t *testing.T) {
	s, e, _ := newSession(t)
	s.SpinFunc = func(context.Context, roulette.Settings, io.Writer) (int, error) {
		t.Fatal("spin ran with invalid settings")
		return 0, nil
	}

	if err := run(e, "entries 0\nspin\n"); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestSessionColorsMustBeQuoted(t *testing.T) {
	_, e, _ := newSession(t)

	// A bare 000000 lexes as the integer 0, so colors require quotes.
	err := run(e, "text_color 000000\n")
	if err == nil || !strings.Contains(err.Error(), "expected string") {
		t.Fatalf("error wrong. got=%v", err)
	}
}

func TestSessionBadArgumentTypes(t *testing.T) {
	tests := []string{
		"entries many\n",
		"entries 1 2\n",
		"show_metrics maybe\n",
		"spin now\n",
	}

	for i, input := range tests {
		_, e, _ := newSession(t)
		if err := run(e, input); err == nil {
			t.Fatalf("tests[%d] - expected error for %q", i, input)
		}
	}
}
