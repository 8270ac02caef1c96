// Package roulette implements the wheel model and the spin animation: sector
// geometry, the easing controller that decays the rotation toward a random
// stop angle, rate limiting for the render and logic loops, and the console
// animator that ties them together.
package roulette

import (
	"fmt"
	"math"
)

// Wheel models a roulette wheel with n equal sectors numbered 1..n. The
// pointer sits at the top of the wheel (angle pi/2); rotating the wheel moves
// the sectors under it.
type Wheel struct {
	sectors   int
	angleStep float64
	rotation  float64
}

// NewWheel creates a wheel with the given sector count.
func NewWheel(sectors int) (*Wheel, error) {
	if sectors <= 0 {
		return nil, fmt.Errorf("roulette: sector count must be greater than 0, got %d", sectors)
	}
	return &Wheel{
		sectors:   sectors,
		angleStep: 2 * math.Pi / float64(sectors),
	}, nil
}

// Sectors returns the sector count.
func (w *Wheel) Sectors() int {
	return w.sectors
}

// Rotation returns the current rotation in radians.
func (w *Wheel) Rotation() float64 {
	return w.rotation
}

// SetRotation sets the wheel rotation in radians.
func (w *Wheel) SetRotation(angle float64) {
	w.rotation = angle
}

// Rotate advances the rotation by delta radians, wrapping at a full turn.
func (w *Wheel) Rotate(delta float64) {
	w.rotation = math.Mod(w.rotation+delta, 2*math.Pi)
}

// PointedNumber returns the 1-based sector under the pointer for the given
// rotation.
func (w *Wheel) PointedNumber(rotation float64) int {
	const pointerAngle = math.Pi / 2

	// Shift so the pointer maps to angle 0, with the half-step offset placing
	// sector boundaries between numbers rather than on them.
	delta := pointerAngle - rotation + w.angleStep/2
	for delta < 0 {
		delta += 2 * math.Pi
	}
	index := int(math.Mod(delta, 2*math.Pi) / w.angleStep)
	return index + 1
}

// Pointed returns the sector under the pointer at the current rotation.
func (w *Wheel) Pointed() int {
	return w.PointedNumber(w.rotation)
}
