// Package editor holds the state of the curve being edited and
// the interaction state machine mapping pointer events onto it.
package editor

import (
	"slices"

	"honnef.co/go/curve"
)

// HitRadius is how close (in canvas pixels) the pointer must be to grab a point.
const HitRadius = 10

// DragState tells which control point is being repositioned, if any.
type DragState struct {
	Index  int
	Active bool
}

// State is everything the renderer needs to draw a frame.
// Handlers never modify the Points backing array in place,
// so copies of an older State stay untouched.
type State struct {
	Points []curve.Point
	Mode   Mode
	Drag   DragState
	// T is the curve parameter in [0, 1] (the slider value).
	T float64
	// SliderMode draws the curve only up to T.
	SliderMode bool
	Animating  bool
}

// NewState returns an empty canvas in add mode with slider mode on.
func NewState() State {
	return State{
		Mode:       ModeAdd,
		SliderMode: true,
	}
}

// Dragging returns index of the dragged point.
func (s State) Dragging() (int, bool) {
	if !s.Drag.Active || s.Drag.Index < 0 || s.Drag.Index >= len(s.Points) {
		return 0, false
	}

	return s.Drag.Index, true
}

// HitTest returns index of the first point closer than HitRadius to p.
func (s State) HitTest(p curve.Point) (int, bool) {
	for i, point := range s.Points {
		if point.Distance(p) < HitRadius {
			return i, true
		}
	}

	return 0, false
}

// Drawable reports whether there are enough points to draw a curve.
func (s State) Drawable() bool {
	return len(s.Points) >= 2
}

// DemoPoints returns the cubic the program starts with after a reset.
func DemoPoints() []curve.Point {
	return []curve.Point{
		curve.Pt(50, 400),
		curve.Pt(200, 100),
		curve.Pt(300, 300),
		curve.Pt(450, 50),
	}
}

func (s State) withPoints(points []curve.Point) State {
	s.Points = points
	s.Drag = DragState{}
	return s
}

func (s State) clonePoints() []curve.Point {
	return slices.Clone(s.Points)
}
