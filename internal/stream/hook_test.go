package stream

import (
	"strings"
	"testing"
)

func TestBufferStreamBasics(t *testing.T) {
	s := NewBufferStream("ab")

	if c, ok := s.Peek(); !ok || c != 'a' {
		t.Fatalf("peek wrong. got=%q ok=%v", c, ok)
	}
	if c, ok := s.Get(); !ok || c != 'a' {
		t.Fatalf("get wrong. got=%q ok=%v", c, ok)
	}
	if got := s.Tell(); got != 1 {
		t.Fatalf("tell wrong. expected=1, got=%d", got)
	}

	s.Unget()
	if got := s.Tell(); got != 0 {
		t.Fatalf("tell after unget wrong. expected=0, got=%d", got)
	}
	if c, _ := s.Get(); c != 'a' {
		t.Fatalf("get after unget wrong. got=%q", c)
	}
	if c, _ := s.Get(); c != 'b' {
		t.Fatalf("get wrong. got=%q", c)
	}
	if _, ok := s.Get(); ok {
		t.Fatal("expected end of input")
	}
	if _, ok := s.Peek(); ok {
		t.Fatal("expected end of input on peek")
	}
}

func TestReaderStreamBasics(t *testing.T) {
	s := NewReaderStream(strings.NewReader("xy"))

	if c, ok := s.Peek(); !ok || c != 'x' {
		t.Fatalf("peek wrong. got=%q ok=%v", c, ok)
	}
	if c, _ := s.Get(); c != 'x' {
		t.Fatalf("get wrong. got=%q", c)
	}
	s.Unget()
	if got := s.Tell(); got != 0 {
		t.Fatalf("tell after unget wrong. expected=0, got=%d", got)
	}
	if c, _ := s.Get(); c != 'x' {
		t.Fatalf("reread wrong. got=%q", c)
	}
	if c, _ := s.Get(); c != 'y' {
		t.Fatalf("get wrong. got=%q", c)
	}
	if _, ok := s.Get(); ok {
		t.Fatal("expected end of input")
	}
}

func TestHookRecordsConsumedBytes(t *testing.T) {
	h := NewHook(NewBufferStream("ab\ncd"))

	for i := 0; i < 4; i++ {
		if _, ok := h.Get(); !ok {
			t.Fatalf("get %d failed", i)
		}
	}

	if got := h.Consumed(); got != "ab\nc" {
		t.Fatalf("consumed wrong. expected=%q, got=%q", "ab\nc", got)
	}
	if got := h.Tell(); got != 4 {
		t.Fatalf("tell wrong. expected=4, got=%d", got)
	}
	if got := h.Position(); got != 0 {
		t.Fatalf("checkpoint position wrong. expected=0, got=%d", got)
	}
	if got := h.LineNumber(); got != 1 {
		t.Fatalf("checkpoint line wrong. expected=1, got=%d", got)
	}
}

func TestHookCheckpoint(t *testing.T) {
	h := NewHook(NewBufferStream("ab\ncd"))

	h.Get()
	h.Get()
	h.Get() // consumes the line break
	h.ClearConsumed()

	if got := h.Consumed(); got != "" {
		t.Fatalf("consumed not cleared. got=%q", got)
	}
	if got := h.Position(); got != 3 {
		t.Fatalf("checkpoint position wrong. expected=3, got=%d", got)
	}
	if got := h.LineNumber(); got != 2 {
		t.Fatalf("checkpoint line wrong. expected=2, got=%d", got)
	}

	h.Get()
	if got := h.Consumed(); got != "c" {
		t.Fatalf("consumed after checkpoint wrong. expected=%q, got=%q", "c", got)
	}
}

func TestHookUngetTracksLines(t *testing.T) {
	h := NewHook(NewBufferStream("a\nb"))

	h.Get()
	h.Get() // '\n'
	h.ClearConsumed()
	if got := h.LineNumber(); got != 2 {
		t.Fatalf("line wrong. expected=2, got=%d", got)
	}

	h.Get() // 'b'
	h.Unget()
	if got := h.Consumed(); got != "" {
		t.Fatalf("consumed after unget wrong. got=%q", got)
	}
	if got := h.Tell(); got != 2 {
		t.Fatalf("tell after unget wrong. expected=2, got=%d", got)
	}
}

func TestHookUngetEmptyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on unget with empty record")
		}
	}()

	h := NewHook(NewBufferStream("a"))
	h.Unget()
}
