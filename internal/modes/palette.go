package modes

import (
	"image/color"
	"math"
)

var (
	colorBackground = color.RGBA{R: 12, G: 16, B: 28, A: 255}
	colorPanel      = color.RGBA{R: 0, G: 0, B: 0, A: 170}
	colorText       = color.RGBA{R: 230, G: 235, B: 245, A: 255}
	colorGuide      = color.RGBA{R: 60, G: 70, B: 90, A: 255}
	colorWave       = color.RGBA{R: 0, G: 200, B: 255, A: 255}
	colorAccent     = color.RGBA{R: 255, G: 170, B: 40, A: 255}
	colorMarker     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	colorTissue     = color.RGBA{R: 40, G: 30, B: 45, A: 255}
	colorFlow       = color.RGBA{R: 120, G: 20, B: 30, A: 255}
	colorElement    = color.RGBA{R: 150, G: 170, B: 200, A: 255}
)

// hsv converts HSV to RGB (hue: 0-360, saturation: 0-1, value: 0-1).
func hsv(h, s, v float64, alpha uint8) color.RGBA {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return color.RGBA{R: uint8((r + m) * 255), G: uint8((g + m) * 255), B: uint8((b + m) * 255), A: alpha}
}

// withAlpha returns clr with its alpha scaled by a in [0,1].
func withAlpha(clr color.RGBA, a float64) color.RGBA {
	clr.A = uint8(math.Round(float64(clr.A) * clamp01(a)))
	return clr
}
