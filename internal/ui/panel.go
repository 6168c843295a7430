// Package ui lays out and draws the parameter sliders and status line shown
// under the visualization surface.
package ui

import (
	"fmt"
	"image/color"
	"math"

	"sonoviz/internal/draw"
)

// Panel geometry in logical units.
const (
	PanelHeight  = 84
	sliderHeight = 18
	rowGap       = 8
	labelWidth   = 180
	sidePad      = 16
	handleRadius = 7
)

var (
	colorPanel     = color.RGBA{R: 20, G: 25, B: 35, A: 255}
	colorTrack     = color.RGBA{R: 25, G: 30, B: 40, A: 200}
	colorBorder    = color.RGBA{R: 70, G: 80, B: 100, A: 255}
	colorFill      = color.RGBA{R: 0, G: 170, B: 220, A: 180}
	colorHandle    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colorHandleRim = color.RGBA{R: 100, G: 110, B: 130, A: 255}
	colorLabel     = color.RGBA{R: 210, G: 215, B: 225, A: 255}
	colorStatus    = color.RGBA{R: 140, G: 150, B: 170, A: 255}
)

// Slider is a horizontal 0-100 control.
type Slider struct {
	Label string
	X, Y  float64
	W, H  float64
}

// Contains reports whether (x,y) hits the track or its handle margin.
func (s Slider) Contains(x, y float64) bool {
	return x >= s.X-handleRadius && x <= s.X+s.W+handleRadius &&
		y >= s.Y && y <= s.Y+s.H
}

// ValueAt maps an x position to a value in [0,100].
func (s Slider) ValueAt(x float64) float64 {
	if s.W <= 0 {
		return 0
	}
	return 100 * math.Max(0, math.Min(1, (x-s.X)/s.W))
}

// Draw renders the track, fill and handle for value.
func (s Slider) Draw(c draw.Canvas, value float64) {
	if s.W <= 0 {
		return
	}
	progress := math.Max(0, math.Min(1, value/100))
	c.Text(fmt.Sprintf("%s: %.0f", s.Label, value), s.X-labelWidth, s.Y+(s.H-draw.GlyphHeight)/2, colorLabel)
	c.FillRect(s.X, s.Y, s.W, s.H, colorTrack)
	c.StrokeRect(s.X, s.Y, s.W, s.H, 1, colorBorder)
	if progress > 0 {
		c.FillRect(s.X, s.Y, s.W*progress, s.H, colorFill)
	}
	hx := s.X + s.W*progress
	draw.Annotate(c, "slider-handle")
	c.FillCircle(hx, s.Y+s.H/2, handleRadius, colorHandle)
	c.Circle(hx, s.Y+s.H/2, handleRadius, 2, colorHandleRim)
}

// Panel holds the two sliders and the status line.
type Panel struct {
	Top     float64
	Width   float64
	Sliders [2]Slider
	Status  string
}

// Layout positions the panel's controls for a surface of width whose top
// edge is at top.
func (p *Panel) Layout(width, top float64) {
	p.Width = math.Max(0, width)
	p.Top = top
	trackW := math.Max(0, p.Width-labelWidth-2*sidePad)
	for i := range p.Sliders {
		p.Sliders[i].X = sidePad + labelWidth
		p.Sliders[i].Y = top + rowGap + float64(i)*(sliderHeight+rowGap)
		p.Sliders[i].W = trackW
		p.Sliders[i].H = sliderHeight
	}
}

// SetLabels names both sliders.
func (p *Panel) SetLabels(p1, p2 string) {
	p.Sliders[0].Label = p1
	p.Sliders[1].Label = p2
}

// Hit returns the index of the slider at (x,y), or -1.
func (p *Panel) Hit(x, y float64) int {
	for i, s := range p.Sliders {
		if s.Contains(x, y) {
			return i
		}
	}
	return -1
}

// Draw renders the panel background, both sliders and the status line.
func (p *Panel) Draw(c draw.Canvas, v1, v2 float64) {
	c.FillRect(0, p.Top, p.Width, PanelHeight, colorPanel)
	c.Line(0, p.Top, p.Width, p.Top, 1, colorBorder)
	p.Sliders[0].Draw(c, v1)
	p.Sliders[1].Draw(c, v2)
	if p.Status != "" {
		draw.Annotate(c, "status")
		c.Text(p.Status, sidePad, p.Top+PanelHeight-draw.GlyphHeight-6, colorStatus)
	}
}
