package roulette

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestAnimatorRunsToCompletion(t *testing.T) {
	settings := DefaultSettings()
	settings.Entries = 5
	settings.Rounds = 0
	settings.Steps = 3
	settings.MaxFPS = 0
	settings.MaxTPS = 0
	settings.Title = "test wheel"

	var out bytes.Buffer
	animator, err := NewAnimator(settings, &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	winner, err := animator.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if winner < 1 || winner > settings.Entries {
		t.Fatalf("winner out of range. got=%d", winner)
	}

	output := out.String()
	if !strings.Contains(output, "\033[s") {
		t.Fatal("missing cursor save sequence")
	}
	if !strings.Contains(output, "test wheel") {
		t.Fatal("missing title")
	}
}

func TestAnimatorRejectsInvalidSettings(t *testing.T) {
	settings := DefaultSettings()
	settings.Entries = 0

	if _, err := NewAnimator(settings, &bytes.Buffer{}); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestAnimatorCanceled(t *testing.T) {
	settings := DefaultSettings()
	settings.Entries = 5
	settings.MaxTPS = 10 // slow enough that cancellation lands mid-spin

	animator, err := NewAnimator(settings, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := animator.Run(ctx); err == nil {
		t.Fatal("expected context error")
	}
}
