package modes

import (
	"math"

	"sonoviz/internal/draw"
)

// aliasing scrolls a pulsatile Doppler spectrum; shifts beyond the Nyquist
// limit wrap around the baseline.
type aliasing struct {
	maxVelocity float64 // m/s at p1 = 1
	minPRF      float64 // kHz
	maxPRF      float64 // kHz
	transmitMHz float64
	soundSpeed  float64
}

func (a aliasing) nyquistKHz(p2 float64) float64 {
	return lerp(a.minPRF, a.maxPRF, p2) / 2
}

func (a aliasing) peakShiftKHz(p1 float64) float64 {
	return 2 * a.transmitMHz * 1e6 * p1 * a.maxVelocity / a.soundSpeed / 1000
}

// wrapNyquist folds shift into [-nyq, nyq).
func wrapNyquist(shift, nyq float64) float64 {
	if nyq <= 0 {
		return 0
	}
	w := math.Mod(shift+nyq, 2*nyq)
	if w < 0 {
		w += 2 * nyq
	}
	return w - nyq
}

func (a aliasing) Render(c draw.Canvas, in Input) {
	base := in.Height / 2
	span := in.Height * 0.4
	nyq := a.nyquistKHz(in.P2)
	peak := a.peakShiftKHz(in.P1)

	draw.Annotate(c, "nyquist-top")
	c.Line(0, base-span, in.Width, base-span, 1, colorGuide)
	c.Line(0, base+span, in.Width, base+span, 1, colorGuide)

	period := math.Max(40, in.Width/2)
	scroll := float64(in.Frame) * 2
	for x := 0.0; x < in.Width; x += 3 {
		u := math.Mod((x+scroll)/period, 1)
		s := math.Max(0, math.Sin(2*math.Pi*u))
		shift := peak * (0.15 + 0.85*s*s)
		wrapped := wrapNyquist(shift, nyq)
		clr := colorWave
		if shift >= nyq {
			clr = colorMarker
		}
		c.Line(x, base, x, base-wrapped/nyq*span, 2, clr)
	}
	draw.Annotate(c, "baseline")
	c.Line(0, base, in.Width, base, 1, colorText)
}

func (a aliasing) Telemetry(in Input) []Reading {
	nyq := a.nyquistKHz(in.P2)
	peak := a.peakShiftKHz(in.P1)
	status := "no"
	if peak >= nyq {
		status = "yes"
	}
	return []Reading{
		{Label: "Nyquist", Value: nyq, Unit: "kHz", Format: "%.1f"},
		{Label: "Peak shift", Value: peak, Unit: "kHz", Format: "%.1f"},
		{Label: "Aliasing", Text: status},
	}
}
