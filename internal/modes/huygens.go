package modes

import (
	"math"

	"sonoviz/internal/draw"
)

type huygens struct {
	maxSources  int
	ringSpacing float64
	speed       float64
}

func (h huygens) sources(p1 float64) int {
	return 1 + int(math.Round(p1*float64(h.maxSources-1)))
}

func (h huygens) sourcePositions(in Input) (x float64, ys []float64) {
	n := h.sources(in.P1)
	top, bottom := in.Height*0.1, in.Height*0.9
	ys = make([]float64, n)
	if n == 1 {
		ys[0] = (top + bottom) / 2
	} else {
		for i := range ys {
			ys[i] = top + float64(i)*(bottom-top)/float64(n-1)
		}
	}
	return in.Width * 0.15, ys
}

func (h huygens) Render(c draw.Canvas, in Input) {
	srcX, ys := h.sourcePositions(in)
	c.Line(srcX, in.Height*0.1, srcX, in.Height*0.9, 1, colorGuide)

	maxR := in.Width - srcX
	travel := math.Mod(float64(in.Frame)*h.speed, h.ringSpacing)
	rings := int(maxR/h.ringSpacing) + 1
	for _, y := range ys {
		for j := 0; j < rings; j++ {
			r := travel + float64(j)*h.ringSpacing
			if r <= 0 || r > maxR {
				continue
			}
			c.Circle(srcX, y, r, 1, withAlpha(colorWave, 0.6*(1-r/maxR)))
		}
		c.FillCircle(srcX, y, 3, colorAccent)
	}

	draw.Annotate(c, "wavefront")
	c.Polyline(h.wavefront(in, srcX, ys, maxR), 2, colorAccent)
}

// wavefront traces the envelope of equal-radius wavelets around every
// source, perturbed by the interference term.
func (h huygens) wavefront(in Input, srcX float64, ys []float64, maxR float64) []draw.Point {
	frontR := h.ringSpacing + math.Mod(float64(in.Frame)*h.speed, math.Max(h.ringSpacing, maxR*0.8))
	gap := in.Height * 0.8
	if len(ys) > 1 {
		gap = ys[1] - ys[0]
	}
	wobble := in.P2 * h.ringSpacing * 0.5 * math.Cos(phase(in.Frame, 0.07))
	top, bottom := in.Height*0.05, in.Height*0.95
	steps := int(math.Max(8, (bottom-top)/3))
	pts := make([]draw.Point, 0, steps+1)
	for i := 0; i <= steps; i++ {
		y := top + (bottom-top)*float64(i)/float64(steps)
		reach := 0.0
		for _, sy := range ys {
			dy := y - sy
			if d2 := frontR*frontR - dy*dy; d2 > 0 {
				reach = math.Max(reach, math.Sqrt(d2))
			}
		}
		if reach == 0 {
			continue
		}
		offset := wobble * math.Sin(2*math.Pi*(y-ys[0])/gap)
		pts = append(pts, draw.Point{X: srcX + reach + offset, Y: y})
	}
	return pts
}

func (h huygens) Telemetry(in Input) []Reading {
	return []Reading{
		{Label: "Sources", Value: float64(h.sources(in.P1)), Format: "%.0f"},
		{Label: "Interference", Value: in.P2 * 100, Unit: "%", Format: "%.0f"},
	}
}
