package viewer

import (
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/kpango/glg"

	"github.com/gucio321/bezierviz/pkg/editor"
)

// input is what happened since the previous tick.
type input struct {
	cursor   image.Point
	pressed  bool
	released bool
	keys     []ebiten.Key
}

func pollInput() input {
	x, y := ebiten.CursorPosition()

	return input{
		cursor:   image.Pt(x, y),
		pressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		released: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
		keys:     inpututil.AppendJustPressedKeys(nil),
	}
}

var keyModes = map[ebiten.Key]editor.Mode{
	ebiten.KeyA: editor.ModeAdd,
	ebiten.KeyM: editor.ModeMove,
	ebiten.KeyR: editor.ModeRemove,
}

func (v *Viewer) handleKey(key ebiten.Key, now time.Time) {
	if m, ok := keyModes[key]; ok {
		v.setMode(m)
		return
	}

	switch key {
	case ebiten.KeyS:
		v.apply(v.state.SetSliderMode(!v.state.SliderMode))
	case ebiten.KeyArrowLeft:
		v.setT(v.state.T - v.workspace.TStep)
	case ebiten.KeyArrowRight:
		v.setT(v.state.T + v.workspace.TStep)
	case ebiten.KeySpace:
		v.animate(now)
	case ebiten.KeyC:
		v.apply(v.state.Clear())
	case ebiten.KeyBackspace:
		v.apply(v.state.Reset())
	case ebiten.KeyP:
		path, err := v.snapshot(now)
		if err != nil {
			glg.Errorf("Cannot save snapshot: %v", err)
			return
		}

		glg.Infof("Snapshot saved to %s", path)
	}
}
