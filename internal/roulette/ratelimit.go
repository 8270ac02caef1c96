package roulette

import (
	"math"
	"runtime"
	"sync/atomic"
	"time"
)

// RateLimiter paces a loop to a target rate in Hz and tracks the rate the
// loop actually achieves. A target of 0 (or +Inf) leaves the loop uncapped.
type RateLimiter struct {
	target   time.Duration
	last     time.Time
	uncapped bool
	precise  bool

	counter     int
	accumulated float64

	// Read by the metrics line on another goroutine.
	actualRate atomic.Uint64 // float64 bits
}

// NewRateLimiter creates a limiter for the given rate. With precise enabled
// the limiter sleeps short of the deadline and spins the rest of the way,
// trading CPU for accuracy around the scheduler's sleep granularity.
func NewRateLimiter(rateHz float64, precise bool) *RateLimiter {
	l := &RateLimiter{precise: precise, last: time.Now()}
	if rateHz <= 0 || math.IsInf(rateHz, 1) {
		l.uncapped = true
	} else {
		l.target = time.Duration(float64(time.Second) / rateHz)
	}
	return l
}

// Wait blocks until the next tick is due and folds the elapsed interval into
// the actual-rate estimate, which is refreshed about once per second.
func (l *RateLimiter) Wait() {
	if !l.uncapped {
		elapsed := time.Since(l.last)

		if l.precise {
			// Sleep 1ms short of the deadline to avoid overshooting, then
			// spin out the remainder.
			if wait := l.target - elapsed - time.Millisecond; wait > 0 {
				time.Sleep(wait)
			}
			for time.Since(l.last) < l.target {
				runtime.Gosched()
			}
		} else if elapsed < l.target {
			time.Sleep(l.target - elapsed)
		}
	}

	now := time.Now()
	frameTime := now.Sub(l.last).Seconds()
	l.last = now

	l.accumulated += frameTime
	l.counter++
	if l.accumulated >= 1.0 {
		l.actualRate.Store(math.Float64bits(float64(l.counter) / l.accumulated))
		l.counter = 0
		l.accumulated = 0
	}
}

// ActualRate returns the most recent measured rate in Hz. It reads 0 until
// the first full second of samples has accumulated.
func (l *RateLimiter) ActualRate() float64 {
	return math.Float64frombits(l.actualRate.Load())
}
