package roulette

import (
	"context"
	"fmt"
	"io"
	"math"
	"math/rand"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/sync/errgroup"
)

// Animator runs a spin as two loops: a logic loop that advances the easing
// controller at the tick rate and publishes frames, and a render loop that
// redraws the latest published frame at the frame rate. The loops share only
// the latest frame, guarded by a mutex, so a slow terminal never stalls the
// animation.
type Animator struct {
	settings Settings
	wheel    *Wheel
	spin     *Spin
	styles   Styles
	center   lipgloss.Style
	out      io.Writer

	mu    sync.Mutex
	frame string
}

// NewAnimator validates settings and prepares a spin toward a random stop
// angle.
func NewAnimator(settings Settings, out io.Writer) (*Animator, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	wheel, err := NewWheel(settings.Entries)
	if err != nil {
		return nil, err
	}
	styles, err := NewStyles(settings.TextColor, settings.HighlightColor)
	if err != nil {
		return nil, err
	}

	stopAngle := rand.Float64() * 2 * math.Pi

	return &Animator{
		settings: settings,
		wheel:    wheel,
		spin:     NewSpin(stopAngle, settings.Rounds, settings.Steps),
		styles:   styles,
		center:   lipgloss.NewStyle().Width(settings.Size).Align(lipgloss.Center),
		out:      out,
	}, nil
}

// Run animates the spin until the wheel stops or ctx is canceled, and returns
// the winning sector.
func (a *Animator) Run(ctx context.Context) (int, error) {
	renderTimer := NewRateLimiter(float64(a.settings.MaxFPS), a.settings.PreciseTiming)
	logicTimer := NewRateLimiter(float64(a.settings.MaxTPS), a.settings.PreciseTiming)

	if a.settings.Title != "" {
		fmt.Fprintln(a.out, a.center.Render(a.settings.Title))
	}
	// Save the cursor position; every frame restores it and redraws in place.
	fmt.Fprint(a.out, "\033[s")
	a.publish()

	done := make(chan struct{})
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-done:
				return nil
			default:
			}
			a.render(renderTimer, logicTimer)
			renderTimer.Wait()
		}
	})

	g.Go(func() error {
		defer close(done)
		for !a.spin.Step() {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			a.wheel.SetRotation(a.spin.Angle())
			a.publish()
			logicTimer.Wait()
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return 0, err
	}

	// Leave the final frame on screen.
	a.render(renderTimer, logicTimer)
	fmt.Fprintln(a.out)
	return a.wheel.Pointed(), nil
}

// publish builds the current frame and hands it to the render loop.
func (a *Animator) publish() {
	frame := a.center.Render(a.wheel.Frame(a.styles))
	a.mu.Lock()
	a.frame = frame
	a.mu.Unlock()
}

// render redraws the latest frame over the previous one.
func (a *Animator) render(renderTimer, logicTimer *RateLimiter) {
	a.mu.Lock()
	frame := a.frame
	a.mu.Unlock()

	fmt.Fprint(a.out, "\033[u\033[J")
	fmt.Fprint(a.out, frame)
	if a.settings.ShowMetrics {
		fmt.Fprintf(a.out, "\nFPS/TPS: %.1f/%.1f", renderTimer.ActualRate(), logicTimer.ActualRate())
	}
}
