package roulette

import "math"

// Spin drives the spin animation toward a stop angle. Each step rotates by a
// fixed fraction of the remaining angle, which makes the wheel start fast and
// ease to a stop; the step budget bounds how long the decay runs.
type Spin struct {
	totalSteps     int
	currentStep    int
	currentAngle   float64
	remainingAngle float64
}

// NewSpin creates a spin that performs rounds full turns plus the delta to
// stopAngle over the given number of steps.
func NewSpin(stopAngle float64, rounds, steps int) *Spin {
	s := &Spin{totalSteps: steps + 1}
	s.remainingAngle = float64(rounds)*2*math.Pi + (stopAngle - s.currentAngle)
	return s
}

// Angle returns the current wheel angle in radians.
func (s *Spin) Angle() float64 {
	return s.currentAngle
}

// CurrentStep returns the number of steps taken so far.
func (s *Spin) CurrentStep() int {
	return s.currentStep
}

// Step advances the animation by one step and reports whether the spin has
// finished. The per-step delta is twice the remaining angle divided by the
// remaining steps, so early steps cover most of the distance and the final
// steps creep toward the stop angle.
func (s *Spin) Step() bool {
	if s.remainingAngle <= 0 {
		return true
	}
	remainingSteps := s.totalSteps - s.currentStep

	delta := s.remainingAngle * 2 / float64(remainingSteps)
	s.currentAngle = math.Mod(s.currentAngle+delta, 2*math.Pi)
	s.remainingAngle -= delta
	s.currentStep++
	return false
}
