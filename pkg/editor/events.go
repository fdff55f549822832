package editor

import (
	"slices"

	"honnef.co/go/curve"
)

// Every handler returns the new state and whether the display needs an update.

// PointerDown handles a press on the canvas at p according to the current mode.
func (s State) PointerDown(p curve.Point) (State, bool) {
	switch s.Mode {
	case ModeAdd:
		// no hit test: stacking points on top of each other is allowed
		s.Points = append(s.clonePoints(), p)
	case ModeMove:
		if i, ok := s.HitTest(p); ok {
			s.Drag = DragState{Index: i, Active: true}
		}
	case ModeRemove:
		if i, ok := s.HitTest(p); ok {
			s = s.withPoints(slices.Delete(s.clonePoints(), i, i+1))
		}
	}

	return s, true
}

// PointerMove moves the dragged point (if any) to p.
func (s State) PointerMove(p curve.Point) (State, bool) {
	i, ok := s.Dragging()
	if !ok {
		return s, false
	}

	points := s.clonePoints()
	points[i] = p
	s.Points = points

	return s, true
}

// PointerUp ends dragging, whatever the mode is.
func (s State) PointerUp() State {
	s.Drag = DragState{}
	return s
}

// SetMode changes edit mode. Nothing visible changes, so no redraw.
func (s State) SetMode(m Mode) State {
	s.Mode = m
	return s
}

// SetSliderMode toggles progressive drawing of the curve.
func (s State) SetSliderMode(on bool) (State, bool) {
	s.SliderMode = on
	return s, true
}

// SetT sets curve parameter from the slider. t is clamped to [0, 1].
// Manual input takes over a running animation.
func (s State) SetT(t float64) (State, bool) {
	s.T = clamp01(t)
	s.Animating = false

	return s, true
}

// Clear removes all control points.
func (s State) Clear() (State, bool) {
	return s.withPoints(nil), true
}

// Reset replaces control points with DemoPoints.
func (s State) Reset() (State, bool) {
	return s.withPoints(DemoPoints()), true
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}

	return v
}
