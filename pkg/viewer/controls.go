package viewer

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/gucio321/bezierviz/pkg/editor"
	"github.com/gucio321/bezierviz/pkg/render"
)

const panelHeight = 100

// control is a widget on the panel below the canvas.
type control int

const (
	controlNone control = iota
	controlAdd
	controlMove
	controlRemove
	controlSliderMode
	controlSlider
	controlAnimate
	controlReset
	controlClear
)

var modeControls = map[control]editor.Mode{
	controlAdd:    editor.ModeAdd,
	controlMove:   editor.ModeMove,
	controlRemove: editor.ModeRemove,
}

var (
	panelColor    = colornames.Whitesmoke
	frameColor    = colornames.Dimgray
	selectedColor = colornames.Lightskyblue
	trackColor    = colornames.Lightgray
)

// Controls lays out the panel: mode selector, slider mode toggle,
// t slider with its readout and action buttons.
type Controls struct {
	top    int
	rects  map[control]image.Rectangle
	labels map[control]string
	order  []control
}

func newControls() *Controls {
	top := render.CanvasSize
	row1 := top + 12
	row2 := top + 56
	rect := func(x, y, w, h int) image.Rectangle {
		return image.Rect(x, y, x+w, y+h)
	}

	return &Controls{
		top: top,
		rects: map[control]image.Rectangle{
			controlAdd:        rect(10, row1, 60, 24),
			controlMove:       rect(75, row1, 60, 24),
			controlRemove:     rect(140, row1, 60, 24),
			controlSliderMode: rect(215, row1, 100, 24),
			controlAnimate:    rect(330, row1, 52, 24),
			controlReset:      rect(387, row1, 52, 24),
			controlClear:      rect(444, row1, 46, 24),
			controlSlider:     rect(40, row2, 360, 20),
		},
		labels: map[control]string{
			controlAdd:        "add",
			controlMove:       "move",
			controlRemove:     "remove",
			controlSliderMode: "slider mode",
			controlAnimate:    "animate",
			controlReset:      "reset",
			controlClear:      "clear",
		},
		order: []control{
			controlAdd, controlMove, controlRemove, controlSliderMode,
			controlAnimate, controlReset, controlClear,
		},
	}
}

// hit returns control under p.
func (c *Controls) hit(p image.Point) control {
	for ctrl, r := range c.rects {
		if p.In(r) {
			return ctrl
		}
	}

	return controlNone
}

// center of ctrl, handy for synthetic clicks.
func (c *Controls) center(ctrl control) image.Point {
	r := c.rects[ctrl]
	return image.Pt((r.Min.X+r.Max.X)/2, (r.Min.Y+r.Max.Y)/2)
}

// sliderValue maps x on the slider track onto t, rounded to step.
func (c *Controls) sliderValue(x int, step float64) float64 {
	track := c.rects[controlSlider]
	v := float64(x-track.Min.X) / float64(track.Dx())
	v = math.Round(v/step) * step

	return min(max(v, 0), 1)
}

func (c *Controls) draw(screen *ebiten.Image, s editor.State) {
	vector.DrawFilledRect(screen, 0, float32(c.top), render.CanvasSize, panelHeight, panelColor, false)
	vector.StrokeLine(screen, 0, float32(c.top), render.CanvasSize, float32(c.top), 1, frameColor, false)

	for _, ctrl := range c.order {
		r := c.rects[ctrl]
		selected := false
		if m, ok := modeControls[ctrl]; ok {
			selected = m == s.Mode
		}

		switch ctrl {
		case controlSliderMode:
			selected = s.SliderMode
		case controlAnimate:
			selected = s.Animating
		}

		if selected {
			fillRect(screen, r, selectedColor)
		}

		strokeRect(screen, r, frameColor)
		ebitenutil.DebugPrintAt(screen, c.labels[ctrl], r.Min.X+4, r.Min.Y+4)
	}

	track := c.rects[controlSlider]
	fillRect(screen, track, trackColor)
	filled := track
	filled.Max.X = track.Min.X + int(s.T*float64(track.Dx()))
	fillRect(screen, filled, progressColor(s.T))
	strokeRect(screen, track, frameColor)

	ebitenutil.DebugPrintAt(screen, "t", track.Min.X-16, track.Min.Y+2)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%.2f", s.T), track.Max.X+10, track.Min.Y+2)
}

func fillRect(dst *ebiten.Image, r image.Rectangle, c color.Color) {
	vector.DrawFilledRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), c, false)
}

func strokeRect(dst *ebiten.Image, r image.Rectangle, c color.Color) {
	vector.StrokeRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 1, c, false)
}
