// Package viewer hosts the curve editor in an ebiten window.
package viewer

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/kpango/glg"
	"golang.org/x/image/colornames"
	"honnef.co/go/curve"

	"github.com/gucio321/bezierviz/pkg/animation"
	"github.com/gucio321/bezierviz/pkg/editor"
	"github.com/gucio321/bezierviz/pkg/render"
	"github.com/gucio321/bezierviz/pkg/render/raster"
	"github.com/gucio321/bezierviz/pkg/workspace"
)

var _ ebiten.Game = &Viewer{}

// Viewer is the ebiten.Game: it turns mouse and keyboard input into editor events,
// runs the animation once per tick and shows the rendered canvas.
type Viewer struct {
	workspace *workspace.Workspace
	state     *editor.State
	canvas    *raster.Canvas
	display   *render.Display
	driver    *animation.Driver
	controls  *Controls
	now       func() time.Time

	current       *ebiten.Image
	dirty         bool
	lastCursor    image.Point
	sliderGrabbed bool
}

// NewViewer creates a Viewer with an empty curve.
func NewViewer(w *workspace.Workspace) (*Viewer, error) {
	canvas, err := raster.NewCanvas()
	if err != nil {
		return nil, fmt.Errorf("cant create canvas: %w", err)
	}

	state := editor.NewState()
	state.SliderMode = w.SliderMode

	result := &Viewer{
		workspace: w,
		state:     &state,
		canvas:    canvas,
		display:   render.NewDisplay(&state, canvas),
		driver:    animation.NewDriver(),
		controls:  newControls(),
		now:       time.Now,
	}

	result.updateDisplay()

	return result, nil
}

// State returns a copy of current editor state.
func (v *Viewer) State() editor.State {
	return *v.state
}

func (v *Viewer) Close() error {
	return v.canvas.Close()
}

func (v *Viewer) updateDisplay() {
	if err := v.display.Update(); err != nil {
		glg.Errorf("Cannot update display: %v", err)
		return
	}

	v.dirty = true
}

// apply stores result of an editor handler and redraws if asked to.
func (v *Viewer) apply(s editor.State, redraw bool) {
	*v.state = s
	if redraw {
		v.updateDisplay()
	}
}

func (v *Viewer) Update() error {
	v.handle(pollInput(), v.now())
	return nil
}

func (v *Viewer) handle(in input, now time.Time) {
	for _, key := range in.keys {
		v.handleKey(key, now)
	}

	if in.pressed {
		v.press(in.cursor, now)
	}

	if in.cursor != v.lastCursor {
		v.move(in.cursor)
		v.lastCursor = in.cursor
	}

	if in.released {
		v.release()
	}

	if v.state.Animating {
		v.apply(v.driver.Frame(*v.state, now))
		if !v.state.Animating {
			glg.Info("Animation complete!")
		}
	}
}

func onCanvas(p image.Point) bool {
	return p.In(image.Rect(0, 0, render.CanvasSize, render.CanvasSize))
}

func toCanvas(p image.Point) curve.Point {
	return curve.Pt(float64(p.X), float64(p.Y))
}

func (v *Viewer) press(p image.Point, now time.Time) {
	if onCanvas(p) {
		v.apply(v.state.PointerDown(toCanvas(p)))
		return
	}

	ctrl := v.controls.hit(p)
	if m, ok := modeControls[ctrl]; ok {
		v.setMode(m)
		return
	}

	switch ctrl {
	case controlSliderMode:
		v.apply(v.state.SetSliderMode(!v.state.SliderMode))
	case controlSlider:
		v.sliderGrabbed = true
		v.setT(v.controls.sliderValue(p.X, v.workspace.TStep))
	case controlAnimate:
		v.animate(now)
	case controlReset:
		v.apply(v.state.Reset())
	case controlClear:
		v.apply(v.state.Clear())
	}
}

func (v *Viewer) move(p image.Point) {
	if v.sliderGrabbed {
		v.setT(v.controls.sliderValue(p.X, v.workspace.TStep))
		return
	}

	if onCanvas(p) {
		v.apply(v.state.PointerMove(toCanvas(p)))
	}
}

func (v *Viewer) release() {
	v.sliderGrabbed = false
	*v.state = v.state.PointerUp()
}

func (v *Viewer) setMode(m editor.Mode) {
	if m == v.state.Mode {
		return
	}

	*v.state = v.state.SetMode(m)
	glg.Infof("Mode switched to: %s", m)
}

func (v *Viewer) setT(t float64) {
	if v.state.Animating {
		glg.Debug("Slider moved, stopping animation")
	}

	v.apply(v.state.SetT(t))
}

func (v *Viewer) animate(now time.Time) {
	s, started := v.driver.Trigger(*v.state, now)
	if !started {
		glg.Debug("Animation already running")
		return
	}

	v.apply(s, true)
}

// snapshot writes current canvas into the workspace's snapshot directory.
func (v *Viewer) snapshot(now time.Time) (string, error) {
	path := filepath.Join(v.workspace.SnapshotDir, fmt.Sprintf("bezier-%s.png", now.Format("20060102-150405.000")))

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("cant create snapshot file: %w", err)
	}

	if err := v.canvas.EncodePNG(f); err != nil {
		f.Close()
		return "", fmt.Errorf("cant encode snapshot: %w", err)
	}

	if err := f.Close(); err != nil {
		return "", fmt.Errorf("cant write snapshot: %w", err)
	}

	return path, nil
}

func (v *Viewer) Draw(screen *ebiten.Image) {
	if v.current == nil {
		v.current = ebiten.NewImage(render.CanvasSize, render.CanvasSize)
		v.dirty = true
	}

	if v.dirty {
		v.current.WritePixels(v.canvas.RGBA().Pix)
		v.dirty = false
	}

	screen.Fill(colornames.White)
	screen.DrawImage(v.current, nil)
	v.controls.draw(screen, *v.state)
}

func (v *Viewer) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return render.CanvasSize, render.CanvasSize + panelHeight
}

// WindowSize returns window size for workspace's scale.
func WindowSize(w *workspace.Workspace) (width, height int) {
	return int(render.CanvasSize * w.Scale), int((render.CanvasSize + panelHeight) * w.Scale)
}
