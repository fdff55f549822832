package render

import "github.com/gucio321/bezierviz/pkg/editor"

// Display is the single redraw entry point. It reads the state it was created with.
type Display struct {
	state    *editor.State
	surface  Surface
	renderer *Renderer
}

func NewDisplay(state *editor.State, surface Surface) *Display {
	return &Display{
		state:    state,
		surface:  surface,
		renderer: NewRenderer(surface),
	}
}

// Update clears the surface and draws the curve, then control points
// and polygon on top of it, then the point at t.
func (d *Display) Update() error {
	s := *d.state

	if err := d.surface.Clear(); err != nil {
		return err
	}

	if err := d.renderer.DrawCurve(s); err != nil {
		return err
	}

	if err := d.renderer.DrawControlPoints(s); err != nil {
		return err
	}

	return d.renderer.DrawPointAtT(s)
}
