package viewer

import (
	"image/color"
	"math"
)

// progressColor goes from red at t=0 through yellow to green at t=1.
func progressColor(t float64) color.RGBA {
	t = min(max(t, 0), 1)
	return hsv(t*120, 0.8, 0.9)
}

// hsv maps h in [0, 360), s, v in [0, 1] to a color.
func hsv(h, s, v float64) color.RGBA {
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	var r, g, b float64
	switch sector := int(h / 60); sector {
	case 0:
		r, g = c, x
	case 1:
		r, g = x, c
	case 2:
		g, b = c, x
	case 3:
		g, b = x, c
	case 4:
		r, b = x, c
	default:
		r, b = c, x
	}

	channel := func(f float64) uint8 {
		return uint8(math.Round((f + m) * 255))
	}

	return color.RGBA{R: channel(r), G: channel(g), B: channel(b), A: 255}
}
