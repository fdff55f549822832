// Package workspace keeps presets of the viewer window.
package workspace

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
)

//go:embed workspaces.json
var workspaces []byte

// Default is the name of the workspace used when none is given.
const Default = "default"

// Workspace represents our working area.
type Workspace struct {
	Name        string
	Description string

	// Scale of the window relative to the canvas.
	Scale float64
	// SliderMode is initial state of the "slider mode" checkbox.
	SliderMode bool
	// TStep is how much keyboard arrows move the t slider.
	TStep float64
	// SnapshotDir is where PNG snapshots are written.
	SnapshotDir string
}

func decodeWorkspaces(data []byte) ([]Workspace, error) {
	var result []Workspace
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, err
	}

	return result, nil
}

// List returns all embedded workspaces.
func List() ([]Workspace, error) {
	return decodeWorkspaces(workspaces)
}

// Get returns embedded workspace called name.
func Get(name string) (*Workspace, error) {
	workspaces, err := List()
	if err != nil {
		return nil, fmt.Errorf("cant decode embedded workspaces: %w", err)
	}

	for _, workspace := range workspaces {
		if workspace.Name == name {
			return &workspace, nil
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrNoWorkspace, name)
}

// Load reads a JSON preset from path. Fields present in the file override w.
func (w *Workspace) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("unable to read preset from %s: %w", path, err)
	}

	if err := json.Unmarshal(data, w); err != nil {
		return fmt.Errorf("unable to parse preset from %s: %w", path, err)
	}

	return w.Validate()
}

// Validate fixes values that would make the viewer unusable.
func (w *Workspace) Validate() error {
	if w.Scale <= 0 {
		return fmt.Errorf("scale must be positive, got %f", w.Scale)
	}

	if w.TStep <= 0 || w.TStep > 1 {
		return fmt.Errorf("t step must be in (0, 1], got %f", w.TStep)
	}

	if w.SnapshotDir == "" {
		w.SnapshotDir = "."
	}

	return nil
}
