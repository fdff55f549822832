// Package raster implements render.Surface on a gg software canvas.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
	"honnef.co/go/curve"

	"github.com/gucio321/bezierviz/pkg/render"
)

// LabelSize is font size of point labels.
const LabelSize = 12

var _ render.Surface = &Canvas{}

// Canvas is a render.CanvasSize square raster image.
type Canvas struct {
	dc *gg.Context
}

// NewCanvas creates a blank canvas with the label font loaded.
func NewCanvas() (*Canvas, error) {
	source, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("cant load label font: %w", err)
	}

	dc := gg.NewContext(render.CanvasSize, render.CanvasSize)
	dc.SetFont(source.Face(LabelSize))

	c := &Canvas{dc: dc}
	if err := c.Clear(); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Canvas) Clear() error {
	c.dc.ClearWithColor(gg.FromColor(render.BackgroundColor))
	return nil
}

func (c *Canvas) Polyline(points []curve.Point, col color.Color, width float64) error {
	if len(points) < 2 {
		return nil
	}

	c.dc.MoveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		c.dc.LineTo(p.X, p.Y)
	}

	c.dc.SetColor(col)
	c.dc.SetLineWidth(width)

	if err := c.dc.Stroke(); err != nil {
		return fmt.Errorf("stroke of %d points failed: %w", len(points), err)
	}

	return nil
}

func (c *Canvas) FillCircle(center curve.Point, radius float64, col color.Color) error {
	c.dc.DrawCircle(center.X, center.Y, radius)
	c.dc.SetColor(col)

	if err := c.dc.Fill(); err != nil {
		return fmt.Errorf("fill of circle at %v failed: %w", center, err)
	}

	return nil
}

func (c *Canvas) Label(s string, at curve.Point, col color.Color) error {
	c.dc.SetColor(col)
	c.dc.DrawString(s, at.X, at.Y)
	return nil
}

// RGBA returns current content of the canvas.
func (c *Canvas) RGBA() *image.RGBA {
	img := c.dc.Image()
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}

	rgba := image.NewRGBA(img.Bounds())
	draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)

	return rgba
}

// EncodePNG writes the canvas as PNG to w.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return c.dc.EncodePNG(w)
}

func (c *Canvas) Close() error {
	return c.dc.Close()
}
