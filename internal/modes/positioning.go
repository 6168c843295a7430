package modes

import (
	"math"

	"sonoviz/internal/draw"
)

// positioning rotates an elliptical structure under a fixed horizontal
// imaging plane.
type positioning struct{}

func (positioning) rotation(p1 float64) float64 {
	return lerp(-90, 90, p1)
}

func (positioning) axes(in Input) (a, b float64) {
	a = math.Min(in.Width*0.35, in.Height*0.45)
	return a, a * 0.45
}

func (p positioning) Render(c draw.Canvas, in Input) {
	cx, cy := in.Width/2, in.Height/2
	a, b := p.axes(in)
	rot := radians(p.rotation(in.P1))

	outline := ellipsePoints(cx, cy, a, b, rot, 64)
	draw.Annotate(c, "ellipse")
	c.FillPolygon(outline, colorTissue)
	c.Polyline(append(outline, outline[0]), 2, colorElement)

	cosR, sinR := math.Cos(rot), math.Sin(rot)
	c.Line(cx-a*cosR, cy-a*sinR, cx+a*cosR, cy+a*sinR, 1, colorGuide)

	c.Line(0, cy, in.Width, cy, 1, withAlpha(colorWave, 0.7))
	half := chordHalfLength(a, b, rot)
	c.Line(cx-half, cy, cx+half, cy, 3, colorWave)

	t := lerp(-1, 1, in.P2) * a
	pulse := 4 + 1.5*math.Sin(phase(in.Frame, 0.1))
	draw.Annotate(c, "marker")
	c.FillCircle(cx+t*cosR, cy+t*sinR, pulse, colorMarker)

	c.FillRect(8, 8, 10, 10, colorAccent)
}

func (p positioning) Telemetry(in Input) []Reading {
	a, b := p.axes(in)
	rot := radians(p.rotation(in.P1))
	return []Reading{
		{Label: "Rotation", Value: p.rotation(in.P1), Unit: "deg", Format: "%.0f"},
		{Label: "Cross-section", Value: 100 * chordHalfLength(a, b, rot) / a, Unit: "%", Format: "%.0f"},
	}
}

// ellipsePoints samples an ellipse with semi-axes a, b rotated by rot
// (radians, clockwise on screen).
func ellipsePoints(cx, cy, a, b, rot float64, n int) []draw.Point {
	cosR, sinR := math.Cos(rot), math.Sin(rot)
	pts := make([]draw.Point, n)
	for i := range pts {
		t := 2 * math.Pi * float64(i) / float64(n)
		x, y := a*math.Cos(t), b*math.Sin(t)
		pts[i] = draw.Point{X: cx + x*cosR - y*sinR, Y: cy + x*sinR + y*cosR}
	}
	return pts
}

// chordHalfLength is the half length of the horizontal line through the
// center of the rotated ellipse.
func chordHalfLength(a, b, rot float64) float64 {
	if a <= 0 || b <= 0 {
		return 0
	}
	c, s := math.Cos(rot), math.Sin(rot)
	return 1 / math.Sqrt(c*c/(a*a)+s*s/(b*b))
}
