// Package render draws editor.State onto a Surface.
package render

import (
	"image/color"

	"honnef.co/go/curve"
)

// CanvasSize is the width and height of the drawing surface.
const CanvasSize = 500

// Surface is a 2D drawing target of CanvasSize x CanvasSize.
type Surface interface {
	// Clear wipes the whole surface.
	Clear() error
	// Polyline strokes straight segments through points.
	Polyline(points []curve.Point, c color.Color, width float64) error
	FillCircle(center curve.Point, radius float64, c color.Color) error
	// Label writes text with its baseline starting at at.
	Label(text string, at curve.Point, c color.Color) error
}
