package roulette

import (
	"math"
	"testing"
	"time"
)

func TestSpinStopsAtTargetAngle(t *testing.T) {
	const (
		stopAngle = 1.0
		rounds    = 2
		steps     = 50
	)
	spin := NewSpin(stopAngle, rounds, steps)

	taken := 0
	for !spin.Step() {
		taken++
		if taken > steps+1 {
			t.Fatal("spin did not finish within its step budget")
		}
	}

	if math.Abs(spin.Angle()-stopAngle) > 1e-6 {
		t.Fatalf("final angle wrong. expected=%v, got=%v", stopAngle, spin.Angle())
	}
}

func TestSpinEasesOut(t *testing.T) {
	spin := NewSpin(0.5, 3, 100)

	before := spin.Angle()
	spin.Step()
	firstDelta := spin.Angle() - before

	var lastDelta float64
	for {
		before = spin.Angle()
		if spin.Step() {
			break
		}
		// Angle wraps at 2*pi; unwrap for the comparison.
		delta := spin.Angle() - before
		if delta < 0 {
			delta += 2 * math.Pi
		}
		lastDelta = delta
	}

	if firstDelta <= lastDelta {
		t.Fatalf("expected decaying step size. first=%v, last=%v", firstDelta, lastDelta)
	}
}

func TestSpinWithNothingToDo(t *testing.T) {
	spin := NewSpin(0, 0, 10)
	if !spin.Step() {
		t.Fatal("expected an immediate stop")
	}
	if spin.Angle() != 0 || spin.CurrentStep() != 0 {
		t.Fatalf("state wrong. angle=%v step=%d", spin.Angle(), spin.CurrentStep())
	}
}

func TestRateLimiterUncapped(t *testing.T) {
	limiter := NewRateLimiter(0, false)

	start := time.Now()
	for i := 0; i < 10; i++ {
		limiter.Wait()
	}
	if elapsed := time.Since(start); elapsed > 50*time.Millisecond {
		t.Fatalf("uncapped limiter blocked for %v", elapsed)
	}
}

func TestRateLimiterPacesLoop(t *testing.T) {
	limiter := NewRateLimiter(200, false) // 5ms per tick

	start := time.Now()
	for i := 0; i < 4; i++ {
		limiter.Wait()
	}
	// Four ticks at 5ms each; allow generous slack below the target to keep
	// the test stable on loaded machines.
	if elapsed := time.Since(start); elapsed < 15*time.Millisecond {
		t.Fatalf("limiter did not pace the loop. elapsed=%v", elapsed)
	}
}
