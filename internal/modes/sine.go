package modes

import (
	"math"

	"sonoviz/internal/draw"
)

// sineWave is the fallback mode.
type sineWave struct {
	maxCycles float64
	speed     float64
}

func (s sineWave) cycles(p1 float64) float64 {
	return 1 + p1*(s.maxCycles-1)
}

func (s sineWave) Render(c draw.Canvas, in Input) {
	midY := in.Height / 2
	c.Line(0, midY, in.Width, midY, 1, colorGuide)
	amp := in.P2 * in.Height * 0.4
	draw.Annotate(c, "wave")
	c.Polyline(sinePoints(in.Width, midY, s.cycles(in.P1), amp, phase(in.Frame, s.speed)), 2, colorWave)
}

func (s sineWave) Telemetry(in Input) []Reading {
	return []Reading{
		{Label: "Cycles", Value: s.cycles(in.P1), Format: "%.1f"},
		{Label: "Amplitude", Value: in.P2 * 100, Unit: "%", Format: "%.0f"},
	}
}

// sinePoints samples y = midY - amp*sin(2π·cycles·x/width - ph) every few
// logical units across the width.
func sinePoints(width, midY, cycles, amp, ph float64) []draw.Point {
	steps := int(math.Max(2, math.Ceil(width/4)))
	pts := make([]draw.Point, steps+1)
	for i := range pts {
		x := width * float64(i) / float64(steps)
		pts[i] = draw.Point{X: x, Y: midY - amp*math.Sin(2*math.Pi*cycles*x/width-ph)}
	}
	return pts
}
