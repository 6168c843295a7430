package engine

import (
	"image/color"
	"math"
	"strings"

	"github.com/muesli/reflow/wordwrap"

	"sonoviz/internal/draw"
	"sonoviz/internal/modes"
)

// Overlay holds the two presentational toggles.
type Overlay struct {
	Help      bool
	Telemetry bool
}

// ToggleHelp flips the help panel and returns the new state.
func (o *Overlay) ToggleHelp() bool {
	o.Help = !o.Help
	return o.Help
}

// ToggleTelemetry flips the readouts and returns the new state.
func (o *Overlay) ToggleTelemetry() bool {
	o.Telemetry = !o.Telemetry
	return o.Telemetry
}

var (
	helpBackground = color.RGBA{R: 16, G: 20, B: 34, A: 255}
	helpTitle      = color.RGBA{R: 255, G: 170, B: 40, A: 255}
	helpText       = color.RGBA{R: 230, G: 235, B: 245, A: 255}
	helpDim        = color.RGBA{R: 140, G: 150, B: 170, A: 255}
)

const helpMargin = 12

// HelpLines wraps the descriptor's help text to fit width logical units.
func HelpLines(d modes.Descriptor, width float64) []string {
	cols := int(math.Floor((width - 2*helpMargin) / draw.GlyphWidth))
	if cols < 8 {
		cols = 8
	}
	wrapped := wordwrap.String(strings.TrimSpace(d.Help), cols)
	lines := strings.Split(wrapped, "\n")
	lines = append(lines, "",
		wordwrap.String("p1: "+d.Param1Label, cols),
		wordwrap.String("p2: "+d.Param2Label, cols))
	return lines
}

// drawHelp replaces the view with the mode's explanation panel. Lines that
// do not fit above the hint row are dropped.
func drawHelp(c draw.Canvas, d modes.Descriptor, s Surface) {
	c.Clear(helpBackground)
	y := float64(helpMargin)
	draw.Annotate(c, "help-title")
	c.Text(d.Title, helpMargin, y, helpTitle)
	y += draw.GlyphHeight * 1.5

	hintY := s.Height - helpMargin - draw.GlyphHeight
lines:
	for _, block := range HelpLines(d, s.Width) {
		for _, line := range strings.Split(block, "\n") {
			if y+draw.GlyphHeight > hintY {
				break lines
			}
			draw.Annotate(c, "help")
			c.Text(line, helpMargin, y, helpText)
			y += draw.GlyphHeight
		}
	}
	if hintY > helpMargin {
		c.Text("press H to close", helpMargin, hintY, helpDim)
	}
}
