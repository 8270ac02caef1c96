package script

import (
	"errors"
	"strings"
	"testing"

	"github.com/q12we34rt5/ConsoleRouletteSimulator/internal/diagnostics"
	"github.com/q12we34rt5/ConsoleRouletteSimulator/internal/parser"
	"github.com/q12we34rt5/ConsoleRouletteSimulator/internal/stream"
)

func newEngine(t *testing.T, version string) *Engine {
	t.Helper()
	e, err := NewEngine(version)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return e
}

func run(e *Engine, input string) error {
	return e.Run(stream.NewBufferStream(input), false, false)
}

func TestEngineDispatch(t *testing.T) {
	e := newEngine(t, "1.0.0")

	var got []parser.Command
	e.Register("greet", func(cmd parser.Command) error {
		got = append(got, cmd)
		return nil
	})

	if err := run(e, "greet \"hello\"\ngreet world 2\n"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("handler call count wrong. got=%d", len(got))
	}
	if got[0].Arguments[0].Text != "hello" {
		t.Fatalf("first call arguments wrong. got=%+v", got[0].Arguments)
	}
	if len(got[1].Arguments) != 2 {
		t.Fatalf("second call arguments wrong. got=%+v", got[1].Arguments)
	}
}

func TestEngineUnknownCommand(t *testing.T) {
	e := newEngine(t, "1.0.0")

	err := run(e, "nope\n")
	if err == nil || !strings.Contains(err.Error(), `unknown command "nope"`) {
		t.Fatalf("error wrong. got=%v", err)
	}
}

func TestEngineHandlerErrorStopsScript(t *testing.T) {
	e := newEngine(t, "1.0.0")

	broken := errors.New("boom")
	calls := 0
	e.Register("fail", func(parser.Command) error { return broken })
	e.Register("after", func(parser.Command) error { calls++; return nil })

	err := run(e, "fail\nafter\n")
	if !errors.Is(err, broken) {
		t.Fatalf("error wrong. got=%v", err)
	}
	if !strings.HasPrefix(err.Error(), "fail: ") {
		t.Fatalf("error not attributed to the command. got=%v", err)
	}
	if calls != 0 {
		t.Fatal("script continued past a failing command")
	}
}

func TestEngineParseErrorPropagates(t *testing.T) {
	e := newEngine(t, "1.0.0")

	err := run(e, "cmd }\n")
	var diag *diagnostics.Error
	if !errors.As(err, &diag) {
		t.Fatalf("expected *diagnostics.Error, got %T", err)
	}
	if diag.Kind != diagnostics.MismatchedToken {
		t.Fatalf("kind wrong. got=%v", diag.Kind)
	}
}

func TestEngineEmptyScript(t *testing.T) {
	e := newEngine(t, "1.0.0")
	if err := run(e, "\n# only a comment\n"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNewEngineInvalidVersion(t *testing.T) {
	if _, err := NewEngine("not-a-version"); err == nil {
		t.Fatal("expected error")
	}
}

func TestRequireVersion(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"require_version \">= 1.0.0\"\n", false},
		{"require_version \"~1.2.0\"\n", false},
		{"require_version \">= 2.0.0\"\n", true},
		{"require_version \"not a constraint\"\n", true},
		{"require_version bare_word\n", true}, // constraint must be a string
		{"require_version\n", true},
	}

	for i, tt := range tests {
		e := newEngine(t, "1.2.3")
		err := run(e, tt.input)
		if (err != nil) != tt.wantErr {
			t.Fatalf("tests[%d] - error wrong. input=%q err=%v", i, tt.input, err)
		}
	}
}
