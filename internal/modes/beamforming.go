package modes

import (
	"math"

	"sonoviz/internal/draw"
)

// beamForming fires a linear array with geometric focusing delays.
type beamForming struct {
	elements      int
	minDepthCM    float64
	maxDepthCM    float64
	maxApertureMM float64
}

type beamGeometry struct {
	rowY     float64
	focalY   float64
	centerX  float64
	aperture float64
	elements []float64
}

func (b beamForming) geometry(in Input) beamGeometry {
	rowY := in.Height * 0.08
	near := rowY + in.Height*0.04
	far := in.Height * 0.96
	g := beamGeometry{
		rowY:     rowY,
		focalY:   lerp(near, far, in.P1),
		centerX:  in.Width / 2,
		aperture: in.Width * lerp(0.15, 0.8, in.P2),
		elements: make([]float64, b.elements),
	}
	pitch := g.aperture / float64(b.elements)
	for i := range g.elements {
		g.elements[i] = g.centerX - g.aperture/2 + pitch*(float64(i)+0.5)
	}
	return g
}

func (b beamForming) Render(c draw.Canvas, in Input) {
	g := b.geometry(in)
	depth := g.focalY - g.rowY

	// Nested translucent hulls build a gradient brightest on the axis.
	const layers = 8
	waist := math.Max(2, g.aperture*0.04)
	for l := layers; l >= 1; l-- {
		frac := float64(l) / layers
		hwRow := g.aperture / 2 * frac
		hwFocus := waist * frac
		spread := (hwRow - hwFocus) / depth * 0.5
		hwBottom := hwFocus + spread*(in.Height-g.focalY)
		c.FillPolygon([]draw.Point{
			{X: g.centerX - hwRow, Y: g.rowY},
			{X: g.centerX + hwRow, Y: g.rowY},
			{X: g.centerX + hwFocus, Y: g.focalY},
			{X: g.centerX + hwBottom, Y: in.Height},
			{X: g.centerX - hwBottom, Y: in.Height},
			{X: g.centerX - hwFocus, Y: g.focalY},
		}, withAlpha(colorWave, 0.12))
	}

	// Outer elements have the longest path to the focus and fire first.
	dists := make([]float64, len(g.elements))
	maxDist := 0.0
	for i, x := range g.elements {
		dists[i] = math.Hypot(x-g.centerX, depth)
		maxDist = math.Max(maxDist, dists[i])
	}
	cycle := maxDist + 40
	front := math.Mod(float64(in.Frame)*2, cycle)
	for i, x := range g.elements {
		r := front - (maxDist - dists[i])
		if r > 0 && r < dists[i]*1.1 {
			c.Circle(x, g.rowY, r, 1, withAlpha(colorAccent, 1-r/(dists[i]*1.1)))
		}
	}

	pitch := g.aperture / float64(len(g.elements))
	for i, x := range g.elements {
		if i == 0 {
			draw.Annotate(c, "elements")
		}
		c.FillRect(x-pitch*0.4, g.rowY-6, pitch*0.8, 6, colorElement)
	}

	draw.Annotate(c, "focal-line")
	c.Line(0, g.focalY, in.Width, g.focalY, 1, colorGuide)
	draw.Annotate(c, "focal-marker")
	c.FillCircle(g.centerX, g.focalY, 5, colorMarker)
}

func (b beamForming) Telemetry(in Input) []Reading {
	depth := lerp(b.minDepthCM, b.maxDepthCM, in.P1)
	aperture := lerp(0.15, 0.8, in.P2) / 0.8 * b.maxApertureMM
	return []Reading{
		{Label: "Focal depth", Value: depth, Unit: "cm", Format: "%.1f"},
		{Label: "Aperture", Value: aperture, Unit: "mm", Format: "%.0f"},
		{Label: "F-number", Value: depth * 10 / aperture, Format: "%.1f"},
	}
}
