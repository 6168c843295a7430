package modes

import (
	"math"

	"sonoviz/internal/draw"
)

// longitudinalWave displaces a grid of particles along the direction of
// travel. Displacement never exceeds the column spacing, so neighbours
// never swap places.
type longitudinalWave struct {
	columns int
	rows    int
	speed   float64
}

func (l longitudinalWave) cycles(p1 float64) float64 {
	return 1 + p1*5
}

func (l longitudinalWave) Render(c draw.Canvas, in Input) {
	marginX := in.Width * 0.05
	usable := in.Width - 2*marginX
	spacing := usable / float64(l.columns-1)
	rowGap := in.Height / float64(l.rows+1)
	k := 2 * math.Pi * l.cycles(in.P1) / usable
	amp := in.P2 * spacing * 0.9
	ph := phase(in.Frame, l.speed)
	radius := math.Max(1.5, math.Min(spacing, rowGap)*0.18)

	for col := 0; col < l.columns; col++ {
		x0 := marginX + float64(col)*spacing
		arg := k*(x0-marginX) - ph
		disp := amp * math.Sin(arg)
		// Negative strain means neighbours are closing in: compression.
		strain := amp * k * math.Cos(arg)
		t := 0.5 - 0.5*math.Max(-1, math.Min(1, strain))
		clr := hsv(200-160*t, 0.8, 0.45+0.55*t, 255)
		for row := 0; row < l.rows; row++ {
			y := rowGap * float64(row+1)
			if col == l.columns/2 && row == l.rows/2 {
				draw.Annotate(c, "tracer")
				c.FillCircle(x0+disp, y, radius*1.6, colorMarker)
				continue
			}
			c.FillCircle(x0+disp, y, radius, clr)
		}
	}
	arrowY := in.Height - rowGap/2
	c.Line(marginX, arrowY, in.Width-marginX, arrowY, 1, colorGuide)
	c.Line(in.Width-marginX, arrowY, in.Width-marginX-8, arrowY-4, 1, colorGuide)
	c.Line(in.Width-marginX, arrowY, in.Width-marginX-8, arrowY+4, 1, colorGuide)
}

func (l longitudinalWave) Telemetry(in Input) []Reading {
	usable := in.Width * 0.9
	cycles := l.cycles(in.P1)
	return []Reading{
		{Label: "Cycles", Value: cycles, Format: "%.1f"},
		{Label: "Wavelength", Value: usable / cycles, Unit: "px", Format: "%.0f"},
		{Label: "Amplitude", Value: in.P2 * 100, Unit: "%", Format: "%.0f"},
	}
}

// transverseWave displaces particles perpendicular to travel.
type transverseWave struct {
	columns int
	rows    int
	speed   float64
}

func (tw transverseWave) cycles(p1 float64) float64 {
	return 1 + p1*5
}

func (tw transverseWave) Render(c draw.Canvas, in Input) {
	marginX := in.Width * 0.05
	usable := in.Width - 2*marginX
	spacing := usable / float64(tw.columns-1)
	rowGap := in.Height / float64(tw.rows+1)
	k := 2 * math.Pi * tw.cycles(in.P1) / usable
	amp := in.P2 * rowGap * 0.45
	ph := phase(in.Frame, tw.speed)
	radius := math.Max(1.5, math.Min(spacing, rowGap)*0.2)

	mid := tw.rows / 2
	rope := make([]draw.Point, 0, tw.columns)
	for col := 0; col < tw.columns; col++ {
		x := marginX + float64(col)*spacing
		disp := amp * math.Sin(k*(x-marginX)-ph)
		for row := 0; row < tw.rows; row++ {
			y := rowGap*float64(row+1) - disp
			if row == mid {
				rope = append(rope, draw.Point{X: x, Y: y})
			}
			c.FillCircle(x, y, radius, colorWave)
		}
	}
	draw.Annotate(c, "rope")
	c.Polyline(rope, 1, colorAccent)
}

func (tw transverseWave) Telemetry(in Input) []Reading {
	cycles := tw.cycles(in.P1)
	return []Reading{
		{Label: "Cycles", Value: cycles, Format: "%.1f"},
		{Label: "Wavelength", Value: in.Width * 0.9 / cycles, Unit: "px", Format: "%.0f"},
	}
}
