// Package animation drives the point traveling along the curve.
package animation

import (
	"time"

	"github.com/gucio321/bezierviz/pkg/editor"
)

// Duration is how long one run takes.
const Duration = 2 * time.Second

// Driver animates editor.State.T from 0 to 1.
// It is a single cooperative task: the host calls Frame once per tick
// while State.Animating is set, and the task ends itself when T reaches 1.
type Driver struct {
	duration time.Duration
	start    time.Time
}

// NewDriver creates a Driver running for Duration.
func NewDriver() *Driver {
	return &Driver{
		duration: Duration,
	}
}

// Trigger starts a new run unless one is already in progress.
func (d *Driver) Trigger(s editor.State, now time.Time) (editor.State, bool) {
	if s.Animating {
		return s, false
	}

	d.start = now
	s.Animating = true
	s.T = 0

	return s, true
}

// Frame advances a running animation to now.
func (d *Driver) Frame(s editor.State, now time.Time) (editor.State, bool) {
	if !s.Animating {
		return s, false
	}

	s.T = d.Progress(now)
	if s.T >= 1 {
		s.Animating = false
	}

	return s, true
}

// Progress returns fraction of the run elapsed at now, clamped to [0, 1].
func (d *Driver) Progress(now time.Time) float64 {
	elapsed := now.Sub(d.start)
	if elapsed <= 0 {
		return 0
	}

	return min(float64(elapsed)/float64(d.duration), 1)
}
