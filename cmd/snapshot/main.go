package main

import (
	"flag"
	"os"

	"github.com/kpango/glg"

	"github.com/gucio321/bezierviz/pkg/editor"
	"github.com/gucio321/bezierviz/pkg/render"
	"github.com/gucio321/bezierviz/pkg/render/raster"
)

func main() {
	outputFile := flag.String("o", "", "Output PNG file")
	t := flag.Float64("t", 1, "curve parameter to render at")
	full := flag.Bool("full", false, "draw the whole curve regardless of -t")
	flag.Parse()

	if *outputFile == "" {
		flag.Usage()
		glg.Fatal("Output file is required")
	}

	state := editor.NewState()
	state, _ = state.Reset()
	state, _ = state.SetSliderMode(!*full)
	state, _ = state.SetT(*t)

	canvas, err := raster.NewCanvas()
	if err != nil {
		glg.Fatal(err)
	}

	defer canvas.Close()

	if err := render.NewDisplay(&state, canvas).Update(); err != nil {
		glg.Fatal(err)
	}

	out, err := os.Create(*outputFile)
	if err != nil {
		glg.Fatal(err)
	}

	defer out.Close()

	if err := canvas.EncodePNG(out); err != nil {
		glg.Fatal(err)
	}

	glg.Infof("Demo curve at t=%.2f written to %s", state.T, *outputFile)
}
