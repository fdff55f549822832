package main

import (
	"encoding/json"
	"flag"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/kpango/glg"

	"github.com/gucio321/bezierviz/pkg/viewer"
	"github.com/gucio321/bezierviz/pkg/workspace"
)

type Flags struct {
	Workspace   string
	Preset      string
	MakePreset  bool
	Debug       bool
	SnapshotDir string
}

func main() {
	var f Flags
	flag.StringVar(&f.Workspace, "w", workspace.Default, "workspace name (see -list)")
	flag.StringVar(&f.Preset, "preset", "", "JSON preset file path. Overrides the workspace values it contains")
	flag.BoolVar(&f.MakePreset, "make-preset", false, "print the selected workspace as a JSON preset and exit")
	flag.BoolVar(&f.Debug, "debug", false, "verbose logging")
	flag.StringVar(&f.SnapshotDir, "snapshots", "", "directory for PNG snapshots (P key)")
	list := flag.Bool("list", false, "list workspaces and exit")
	flag.Parse()

	level := glg.INFO
	if f.Debug {
		level = glg.DEBG
	}

	glg.Get().SetLevel(level)

	if *list {
		workspaces, err := workspace.List()
		if err != nil {
			glg.Fatalf("Unable to list workspaces: %v", err)
		}

		for _, w := range workspaces {
			fmt.Printf("%-12s %s\n", w.Name, w.Description)
		}

		return
	}

	w, err := workspace.Get(f.Workspace)
	if err != nil {
		glg.Fatalf("Unable to load workspace: %v", err)
	}

	if f.Preset != "" {
		if err := w.Load(f.Preset); err != nil {
			glg.Fatalf("%v (use valid file or empty to not use presets)", err)
		}
	}

	if f.SnapshotDir != "" {
		w.SnapshotDir = f.SnapshotDir
	}

	if f.MakePreset {
		out, err := json.MarshalIndent(w, "", "\t")
		if err != nil {
			glg.Fatalf("Unable to generate preset: %v", err)
		}

		fmt.Println(string(out))
		glg.Infof("Preset generated")

		return
	}

	glg.Debugf("Using workspace %+v", *w)

	v, err := viewer.NewViewer(w)
	if err != nil {
		glg.Fatalf("Cannot create viewer: %v", err)
	}

	defer v.Close()

	ebiten.SetWindowSize(viewer.WindowSize(w))
	ebiten.SetWindowTitle("bezierviz")

	glg.Info("Click to add points. A/M/R switch mode, S slider mode, Space animates, P saves a snapshot.")

	if err := ebiten.RunGame(v); err != nil {
		glg.Fatalf("Cannot run viewer: %v", err)
	}
}
