package modes

import (
	"fmt"
	"math"

	"sonoviz/internal/draw"
)

// Input is everything a renderer may depend on. P1 and P2 are normalized
// to [0,1]; Width and Height are logical units.
type Input struct {
	P1, P2    float64
	Frame     uint64
	Width     float64
	Height    float64
	Telemetry bool
}

// Renderer draws one mode. Output must depend only on Input.
type Renderer interface {
	Render(c draw.Canvas, in Input)
}

// Reading is a single numeric readout shown by the telemetry overlay.
type Reading struct {
	Label string
	Value float64
	Unit  string
	// Format overrides the default "%.2f" value format.
	Format string
	// Text replaces the formatted value when set.
	Text string
}

func (r Reading) String() string {
	format := r.Format
	if format == "" {
		format = "%.2f"
	}
	value := r.Text
	if value == "" {
		value = fmt.Sprintf(format, r.Value)
	}
	s := r.Label + ": " + value
	if r.Unit != "" {
		s += " " + r.Unit
	}
	return s
}

// TelemetrySource is implemented by renderers that define numeric readouts.
type TelemetrySource interface {
	Telemetry(in Input) []Reading
}

// Render draws d for in onto c. Surfaces without area are skipped.
func Render(c draw.Canvas, d Descriptor, in Input) {
	if !(in.Width > 0) || !(in.Height > 0) {
		return
	}
	in.P1 = clamp01(in.P1)
	in.P2 = clamp01(in.P2)
	c.Clear(colorBackground)
	d.Renderer.Render(c, in)
	if !in.Telemetry {
		return
	}
	src, ok := d.Renderer.(TelemetrySource)
	if !ok {
		return
	}
	drawReadings(c, src.Telemetry(in), in)
}

// drawReadings stacks readouts in the top-right corner.
func drawReadings(c draw.Canvas, readings []Reading, in Input) {
	if len(readings) == 0 {
		return
	}
	longest := 0
	lines := make([]string, len(readings))
	for i, r := range readings {
		lines[i] = r.String()
		if len(lines[i]) > longest {
			longest = len(lines[i])
		}
	}
	const pad = 6
	boxW := float64(longest*draw.GlyphWidth) + 2*pad
	boxH := float64(len(lines)*draw.GlyphHeight) + 2*pad
	x := math.Max(0, in.Width-boxW-pad)
	y := float64(pad)
	c.FillRect(x, y, boxW, boxH, colorPanel)
	for i, line := range lines {
		draw.Annotate(c, "telemetry")
		c.Text(line, x+pad, y+pad+float64(i*draw.GlyphHeight), colorText)
	}
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// phase converts a frame count to radians advancing at rate per frame,
// wrapped to keep float error bounded on long runs.
func phase(frame uint64, rate float64) float64 {
	return math.Mod(float64(frame)*rate, 2*math.Pi)
}
