package ebitenhost

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"sonoviz/internal/draw"
)

var (
	whiteSubImage *ebiten.Image
	glyphAscent   = float64(basicfont.Face7x13.Metrics().Ascent.Ceil())
)

// solidSource returns a one-pixel white source for DrawTriangles, created on
// first use so the package can load without a graphics context.
func solidSource() *ebiten.Image {
	if whiteSubImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// screenCanvas replays logical draw operations onto an ebiten image,
// multiplying every coordinate by the device scale.
type screenCanvas struct {
	dst   *ebiten.Image
	scale float64

	path     vector.Path
	vertices []ebiten.Vertex
	indices  []uint16
}

var _ draw.Canvas = (*screenCanvas)(nil)

func newScreenCanvas(dst *ebiten.Image, scale float64) *screenCanvas {
	if scale <= 0 {
		scale = 1
	}
	return &screenCanvas{dst: dst, scale: scale}
}

// reset points the canvas at a new target, keeping its scratch buffers.
func (c *screenCanvas) reset(dst *ebiten.Image, scale float64) {
	if scale <= 0 {
		scale = 1
	}
	c.dst = dst
	c.scale = scale
}

func (c *screenCanvas) px(v float64) float32 { return float32(v * c.scale) }

// straight converts the display list's straight-alpha colors for ebiten.
func straight(clr color.RGBA) color.NRGBA {
	return color.NRGBA{R: clr.R, G: clr.G, B: clr.B, A: clr.A}
}

func (c *screenCanvas) Clear(clr color.RGBA) {
	c.dst.Fill(straight(clr))
}

func (c *screenCanvas) Line(x0, y0, x1, y1, width float64, clr color.RGBA) {
	vector.StrokeLine(c.dst, c.px(x0), c.px(y0), c.px(x1), c.px(y1), c.px(width), straight(clr), true)
}

func (c *screenCanvas) Circle(cx, cy, r, width float64, clr color.RGBA) {
	vector.StrokeCircle(c.dst, c.px(cx), c.px(cy), c.px(r), c.px(width), straight(clr), true)
}

func (c *screenCanvas) FillCircle(cx, cy, r float64, clr color.RGBA) {
	vector.DrawFilledCircle(c.dst, c.px(cx), c.px(cy), c.px(r), straight(clr), true)
}

func (c *screenCanvas) FillRect(x, y, w, h float64, clr color.RGBA) {
	vector.DrawFilledRect(c.dst, c.px(x), c.px(y), c.px(w), c.px(h), straight(clr), true)
}

func (c *screenCanvas) StrokeRect(x, y, w, h, width float64, clr color.RGBA) {
	vector.StrokeRect(c.dst, c.px(x), c.px(y), c.px(w), c.px(h), c.px(width), straight(clr), true)
}

func (c *screenCanvas) tracePath(pts []draw.Point, closed bool) {
	c.path.Reset()
	c.path.MoveTo(c.px(pts[0].X), c.px(pts[0].Y))
	for _, p := range pts[1:] {
		c.path.LineTo(c.px(p.X), c.px(p.Y))
	}
	if closed {
		c.path.Close()
	}
}

func (c *screenCanvas) Polyline(pts []draw.Point, width float64, clr color.RGBA) {
	if len(pts) < 2 {
		return
	}
	c.tracePath(pts, false)
	op := &vector.StrokeOptions{
		Width:    c.px(width),
		LineJoin: vector.LineJoinRound,
		LineCap:  vector.LineCapRound,
	}
	c.vertices, c.indices = c.path.AppendVerticesAndIndicesForStroke(c.vertices[:0], c.indices[:0], op)
	c.drawTriangles(clr, ebiten.FillRuleFillAll)
}

func (c *screenCanvas) FillPolygon(pts []draw.Point, clr color.RGBA) {
	if len(pts) < 3 {
		return
	}
	c.tracePath(pts, true)
	c.vertices, c.indices = c.path.AppendVerticesAndIndicesForFilling(c.vertices[:0], c.indices[:0])
	c.drawTriangles(clr, ebiten.FillRuleNonZero)
}

func (c *screenCanvas) drawTriangles(clr color.RGBA, rule ebiten.FillRule) {
	r := float32(clr.R) / 0xff
	g := float32(clr.G) / 0xff
	b := float32(clr.B) / 0xff
	a := float32(clr.A) / 0xff
	for i := range c.vertices {
		c.vertices[i].SrcX = 1
		c.vertices[i].SrcY = 1
		c.vertices[i].ColorR = r
		c.vertices[i].ColorG = g
		c.vertices[i].ColorB = b
		c.vertices[i].ColorA = a
	}
	c.dst.DrawTriangles(c.vertices, c.indices, solidSource(), &ebiten.DrawTrianglesOptions{
		FillRule:  rule,
		AntiAlias: true,
	})
}

// Text draws s with its top-left corner at (x,y), scaled with the device.
func (c *screenCanvas) Text(s string, x, y float64, clr color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(c.scale, c.scale)
	op.GeoM.Translate(x*c.scale, (y+glyphAscent)*c.scale)
	op.ColorScale.ScaleWithColor(straight(clr))
	text.DrawWithOptions(c.dst, s, basicfont.Face7x13, op)
}
