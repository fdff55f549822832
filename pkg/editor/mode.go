package editor

import "fmt"

//go:generate stringer -type=Mode -linecomment

// Mode decides what pointer-down does on the canvas.
type Mode int

const (
	// ModeAdd appends a new control point.
	ModeAdd Mode = iota // add
	// ModeMove grabs a control point to drag it around.
	ModeMove // move
	// ModeRemove deletes the control point under the pointer.
	ModeRemove // remove
)

// Modes lists all modes in the order the mode selector shows them.
var Modes = []Mode{ModeAdd, ModeMove, ModeRemove}

var modeEnum = func() map[string]Mode {
	m := make(map[string]Mode)
	for _, mode := range Modes {
		m[mode.String()] = mode
	}

	return m
}()

// ParseMode returns the Mode called name (e.g. "move").
func ParseMode(name string) (Mode, error) {
	mode, ok := modeEnum[name]
	if !ok {
		return ModeAdd, fmt.Errorf("%w: %q", ErrUnknownMode, name)
	}

	return mode, nil
}
