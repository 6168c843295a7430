package modes

import (
	"math"

	"sonoviz/internal/draw"
)

// lobe draws a main beam lobe and two symmetric side lobes. Angles are in
// degrees from the beam axis.
type lobe struct {
	mainHalfWidth float64
	minSpacing    float64
	maxSpacing    float64
}

// sideScale is the side-lobe length relative to the main lobe; it falls as
// apodization rises.
func (l lobe) sideScale(p1 float64) float64 {
	return 0.05 + 0.5*(1-p1)
}

func (l lobe) spacing(p2 float64) float64 {
	return lerp(l.minSpacing, l.maxSpacing, p2)
}

func (l lobe) Render(c draw.Canvas, in Input) {
	ox, oy := in.Width/2, in.Height*0.92
	length := in.Height * 0.8

	spacing := l.spacing(in.P2)
	scale := l.sideScale(in.P1)
	sideAlpha := 0.1 + 0.8*(1-in.P1)
	for _, side := range []struct {
		label string
		sign  float64
	}{{"side-lobe-left", -1}, {"side-lobe-right", 1}} {
		draw.Annotate(c, side.label)
		c.FillPolygon(lobeShape(ox, oy, side.sign*spacing, l.mainHalfWidth*0.8, length*scale), withAlpha(colorAccent, sideAlpha))
	}
	draw.Annotate(c, "main-lobe")
	c.FillPolygon(lobeShape(ox, oy, 0, l.mainHalfWidth, length), withAlpha(colorWave, 0.85))

	c.Line(ox, oy, ox, oy-length, 1, colorGuide)
	pulse := math.Mod(float64(in.Frame)*2, length)
	c.FillCircle(ox, oy-pulse, 3, colorText)

	c.FillRect(ox-in.Width*0.08, oy, in.Width*0.16, in.Height*0.05, colorElement)
}

func (l lobe) Telemetry(in Input) []Reading {
	return []Reading{
		{Label: "Side lobe level", Value: 20 * math.Log10(l.sideScale(in.P1)), Unit: "dB", Format: "%.1f"},
		{Label: "Lobe spacing", Value: l.spacing(in.P2), Unit: "deg", Format: "%.0f"},
	}
}

// lobeShape returns a petal r(θ) = length·cos²(πθ/2w) around centerDeg,
// anchored at the origin, pointing up the screen.
func lobeShape(ox, oy, centerDeg, halfWidthDeg, length float64) []draw.Point {
	const steps = 32
	pts := make([]draw.Point, 0, steps+2)
	pts = append(pts, draw.Point{X: ox, Y: oy})
	for i := 0; i <= steps; i++ {
		theta := -halfWidthDeg + 2*halfWidthDeg*float64(i)/steps
		k := math.Cos(math.Pi / 2 * theta / halfWidthDeg)
		r := length * k * k
		a := radians(centerDeg + theta)
		pts = append(pts, draw.Point{X: ox + r*math.Sin(a), Y: oy - r*math.Cos(a)})
	}
	return pts
}
