package render

import (
	"fmt"

	"golang.org/x/image/colornames"
	"honnef.co/go/curve"

	"github.com/gucio321/bezierviz/pkg/bezier"
	"github.com/gucio321/bezierviz/pkg/editor"
)

const (
	MarkerRadius = 5
	CurveWidth   = 2
	PolygonWidth = 1
)

// LabelOffset is where the P<i> label goes relative to its point.
var LabelOffset = curve.Vec(10, -10)

var (
	BackgroundColor = colornames.White
	CurveColor      = colornames.Blue
	PolygonColor    = colornames.Gray
	MarkerColor     = colornames.Red
	LabelColor      = colornames.Black
	HighlightColor  = colornames.Green
)

// Renderer draws parts of the scene. It never modifies the state.
type Renderer struct {
	surface Surface
}

func NewRenderer(surface Surface) *Renderer {
	return &Renderer{surface: surface}
}

// CurveRange returns the upper bound of t the curve is drawn to.
// In slider mode and while animating the curve is revealed progressively.
func CurveRange(s editor.State) float64 {
	if s.SliderMode || s.Animating {
		return s.T
	}

	return 1
}

// DrawCurve draws the curve sampled in bezier.Steps segments.
func (r *Renderer) DrawCurve(s editor.State) error {
	if !s.Drawable() {
		return nil
	}

	samples := bezier.Sample(s.Points, CurveRange(s), bezier.Steps)
	if err := r.surface.Polyline(samples, CurveColor, CurveWidth); err != nil {
		return fmt.Errorf("cant draw curve: %w", err)
	}

	return nil
}

// DrawControlPoints draws a labeled marker for every control point
// and the control polygon through them.
func (r *Renderer) DrawControlPoints(s editor.State) error {
	for i, p := range s.Points {
		if err := r.surface.FillCircle(p, MarkerRadius, MarkerColor); err != nil {
			return fmt.Errorf("cant draw marker of P%d: %w", i, err)
		}

		if err := r.surface.Label(fmt.Sprintf("P%d", i), p.Translate(LabelOffset), LabelColor); err != nil {
			return fmt.Errorf("cant draw label of P%d: %w", i, err)
		}
	}

	if len(s.Points) < 2 {
		return nil
	}

	if err := r.surface.Polyline(s.Points, PolygonColor, PolygonWidth); err != nil {
		return fmt.Errorf("cant draw control polygon: %w", err)
	}

	return nil
}

// DrawPointAtT marks the curve point at s.T.
func (r *Renderer) DrawPointAtT(s editor.State) error {
	if !s.Drawable() {
		return nil
	}

	if err := r.surface.FillCircle(bezier.Eval(s.T, s.Points), MarkerRadius, HighlightColor); err != nil {
		return fmt.Errorf("cant draw point at t=%.2f: %w", s.T, err)
	}

	return nil
}
