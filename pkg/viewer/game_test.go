package viewer

import (
	"image"
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"honnef.co/go/curve"

	"github.com/gucio321/bezierviz/pkg/animation"
	"github.com/gucio321/bezierviz/pkg/editor"
	"github.com/gucio321/bezierviz/pkg/workspace"
)

var epoch = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newTestViewer(t *testing.T) *Viewer {
	t.Helper()

	w, err := workspace.Get(workspace.Default)
	require.NoError(t, err)
	w.SnapshotDir = t.TempDir()

	v, err := NewViewer(w)
	require.NoError(t, err)
	t.Cleanup(func() { _ = v.Close() })

	return v
}

// click presses and releases the button at p within one tick.
func click(v *Viewer, p image.Point, now time.Time) {
	v.handle(input{cursor: p, pressed: true, released: true}, now)
}

func key(v *Viewer, k ebiten.Key, now time.Time) {
	v.handle(input{cursor: v.lastCursor, keys: []ebiten.Key{k}}, now)
}

func TestClicksAddPoints(t *testing.T) {
	v := newTestViewer(t)
	for _, p := range []image.Point{{10, 20}, {200, 300}, {450, 100}} {
		click(v, p, epoch)
	}

	want := []curve.Point{curve.Pt(10, 20), curve.Pt(200, 300), curve.Pt(450, 100)}
	if d := cmp.Diff(want, v.State().Points); d != "" {
		t.Error(d)
	}
}

func TestModeButtons(t *testing.T) {
	v := newTestViewer(t)
	click(v, v.controls.center(controlMove), epoch)
	assert.Equal(t, editor.ModeMove, v.State().Mode)

	click(v, v.controls.center(controlRemove), epoch)
	assert.Equal(t, editor.ModeRemove, v.State().Mode)

	key(v, ebiten.KeyA, epoch)
	assert.Equal(t, editor.ModeAdd, v.State().Mode)
	assert.Empty(t, v.State().Points, "clicking the panel never adds points")
}

func TestDragAcrossTicks(t *testing.T) {
	v := newTestViewer(t)
	click(v, image.Pt(100, 100), epoch)
	click(v, image.Pt(300, 300), epoch)
	key(v, ebiten.KeyM, epoch)

	v.handle(input{cursor: image.Pt(103, 98), pressed: true}, epoch)
	v.handle(input{cursor: image.Pt(150, 160)}, epoch)
	v.handle(input{cursor: image.Pt(180, 190)}, epoch)
	v.handle(input{cursor: image.Pt(180, 190), released: true}, epoch)
	v.handle(input{cursor: image.Pt(10, 10)}, epoch)

	assert.Equal(t, []curve.Point{curve.Pt(180, 190), curve.Pt(300, 300)}, v.State().Points)
	_, dragging := v.State().Dragging()
	assert.False(t, dragging)
}

func TestRemoveClick(t *testing.T) {
	v := newTestViewer(t)
	key(v, ebiten.KeyBackspace, epoch)
	require.Len(t, v.State().Points, 4)

	key(v, ebiten.KeyR, epoch)
	demo := editor.DemoPoints()
	click(v, image.Pt(int(demo[1].X)+2, int(demo[1].Y)), epoch)

	assert.Equal(t, []curve.Point{demo[0], demo[2], demo[3]}, v.State().Points)
}

func TestSliderAndKeys(t *testing.T) {
	v := newTestViewer(t)
	track := v.controls.rects[controlSlider]

	click(v, image.Pt(track.Min.X+track.Dx()/2, track.Min.Y+5), epoch)
	assert.InDelta(t, 0.5, v.State().T, 1e-9)

	key(v, ebiten.KeyArrowRight, epoch)
	assert.InDelta(t, 0.51, v.State().T, 1e-9)

	key(v, ebiten.KeyArrowLeft, epoch)
	key(v, ebiten.KeyArrowLeft, epoch)
	assert.InDelta(t, 0.49, v.State().T, 1e-9)

	sliderMode := v.State().SliderMode
	key(v, ebiten.KeyS, epoch)
	assert.Equal(t, !sliderMode, v.State().SliderMode)
	click(v, v.controls.center(controlSliderMode), epoch)
	assert.Equal(t, sliderMode, v.State().SliderMode)
}

func TestSliderDrag(t *testing.T) {
	v := newTestViewer(t)
	track := v.controls.rects[controlSlider]
	y := track.Min.Y + 5

	v.handle(input{cursor: image.Pt(track.Min.X, y), pressed: true}, epoch)
	assert.Equal(t, 0.0, v.State().T)

	// leaving the track keeps the slider grabbed and clamps the value
	v.handle(input{cursor: image.Pt(track.Max.X+40, y-200)}, epoch)
	assert.Equal(t, 1.0, v.State().T)
	assert.Empty(t, v.State().Points)

	v.handle(input{cursor: image.Pt(track.Max.X+40, y-200), released: true}, epoch)
	v.handle(input{cursor: image.Pt(track.Min.X, y)}, epoch)
	assert.Equal(t, 1.0, v.State().T)
}

func TestAnimationRuns(t *testing.T) {
	v := newTestViewer(t)
	key(v, ebiten.KeyBackspace, epoch)

	click(v, v.controls.center(controlAnimate), epoch)
	require.True(t, v.State().Animating)

	now := epoch
	for i := 0; i < 200 && v.State().Animating; i++ {
		now = now.Add(time.Second / 60)
		v.handle(input{cursor: v.lastCursor}, now)
	}

	assert.False(t, v.State().Animating)
	assert.Equal(t, 1.0, v.State().T)
	assert.True(t, now.Sub(epoch) >= animation.Duration)
}

func TestAnimateTwiceIsIgnored(t *testing.T) {
	v := newTestViewer(t)
	key(v, ebiten.KeySpace, epoch)
	v.handle(input{}, epoch.Add(time.Second))
	require.InDelta(t, 0.5, v.State().T, 1e-9)

	key(v, ebiten.KeySpace, epoch.Add(time.Second))
	assert.True(t, v.State().Animating)
	assert.InDelta(t, 0.5, v.State().T, 1e-9, "second trigger must not restart the run")
}

func TestSliderStopsAnimation(t *testing.T) {
	v := newTestViewer(t)
	key(v, ebiten.KeySpace, epoch)
	v.handle(input{}, epoch.Add(time.Second))

	key(v, ebiten.KeyArrowLeft, epoch.Add(time.Second))
	assert.False(t, v.State().Animating)

	v.handle(input{}, epoch.Add(1500*time.Millisecond))
	assert.InDelta(t, 0.49, v.State().T, 1e-9)
}

func TestClearButton(t *testing.T) {
	v := newTestViewer(t)
	click(v, v.controls.center(controlReset), epoch)
	require.NotEmpty(t, v.State().Points)

	click(v, v.controls.center(controlClear), epoch)
	assert.Empty(t, v.State().Points)
}

func TestSnapshot(t *testing.T) {
	v := newTestViewer(t)
	key(v, ebiten.KeyBackspace, epoch)

	path, err := v.snapshot(epoch)
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestWindowSize(t *testing.T) {
	w, err := workspace.Get("large")
	require.NoError(t, err)

	width, height := WindowSize(w)
	assert.Equal(t, 750, width)
	assert.Equal(t, 900, height)
}

func TestProgressColor(t *testing.T) {
	red := progressColor(0)
	green := progressColor(1)
	assert.Greater(t, red.R, red.G)
	assert.Greater(t, green.G, green.R)
	assert.Equal(t, progressColor(-1), red)
}
