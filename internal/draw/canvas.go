// Package draw defines the drawing surface renderers emit onto and a
// display-list recorder that captures those operations for replay.
package draw

import "image/color"

// Point is a position in logical (density-independent) units.
type Point struct {
	X, Y float64
}

// Canvas receives draw operations in logical units. Implementations decide
// how logical units map to backing pixels.
type Canvas interface {
	Clear(clr color.RGBA)
	Line(x0, y0, x1, y1, width float64, clr color.RGBA)
	Circle(cx, cy, r, width float64, clr color.RGBA)
	FillCircle(cx, cy, r float64, clr color.RGBA)
	FillRect(x, y, w, h float64, clr color.RGBA)
	StrokeRect(x, y, w, h, width float64, clr color.RGBA)
	Polyline(pts []Point, width float64, clr color.RGBA)
	FillPolygon(pts []Point, clr color.RGBA)
	Text(s string, x, y float64, clr color.RGBA)
}

// Annotator is implemented by canvases that can label the next operation.
type Annotator interface {
	Annotate(label string)
}

// Annotate labels the next operation on c when c supports it.
func Annotate(c Canvas, label string) {
	if a, ok := c.(Annotator); ok {
		a.Annotate(label)
	}
}

// GlyphWidth and GlyphHeight are the logical cell size of the fixed-width
// face hosts use for Text.
const (
	GlyphWidth  = 7
	GlyphHeight = 13
)
