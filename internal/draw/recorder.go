package draw

import (
	"image/color"
	"slices"
)

// OpKind identifies a recorded draw operation.
type OpKind uint8

const (
	OpClear OpKind = iota
	OpLine
	OpCircle
	OpFillCircle
	OpFillRect
	OpStrokeRect
	OpPolyline
	OpFillPolygon
	OpText
)

func (k OpKind) String() string {
	switch k {
	case OpClear:
		return "clear"
	case OpLine:
		return "line"
	case OpCircle:
		return "circle"
	case OpFillCircle:
		return "fill-circle"
	case OpFillRect:
		return "fill-rect"
	case OpStrokeRect:
		return "stroke-rect"
	case OpPolyline:
		return "polyline"
	case OpFillPolygon:
		return "fill-polygon"
	case OpText:
		return "text"
	default:
		return "unknown"
	}
}

// Op is one recorded operation. Args holds the scalar arguments in the
// order of the matching Canvas method.
type Op struct {
	Kind   OpKind
	Label  string
	Args   []float64
	Points []Point
	Color  color.RGBA
	Text   string
}

func (o Op) equal(other Op) bool {
	return o.Kind == other.Kind &&
		o.Label == other.Label &&
		o.Color == other.Color &&
		o.Text == other.Text &&
		slices.Equal(o.Args, other.Args) &&
		slices.Equal(o.Points, other.Points)
}

// List is a display list. It implements Canvas by recording every call.
type List struct {
	Ops []Op

	pendingLabel string
}

// NewList returns an empty display list.
func NewList() *List {
	return &List{}
}

// Reset drops all recorded operations, keeping capacity.
func (l *List) Reset() {
	l.Ops = l.Ops[:0]
	l.pendingLabel = ""
}

// Annotate labels the next recorded operation.
func (l *List) Annotate(label string) {
	l.pendingLabel = label
}

func (l *List) add(op Op) {
	op.Label = l.pendingLabel
	l.pendingLabel = ""
	l.Ops = append(l.Ops, op)
}

func (l *List) Clear(clr color.RGBA) {
	l.add(Op{Kind: OpClear, Color: clr})
}

func (l *List) Line(x0, y0, x1, y1, width float64, clr color.RGBA) {
	l.add(Op{Kind: OpLine, Args: []float64{x0, y0, x1, y1, width}, Color: clr})
}

func (l *List) Circle(cx, cy, r, width float64, clr color.RGBA) {
	l.add(Op{Kind: OpCircle, Args: []float64{cx, cy, r, width}, Color: clr})
}

func (l *List) FillCircle(cx, cy, r float64, clr color.RGBA) {
	l.add(Op{Kind: OpFillCircle, Args: []float64{cx, cy, r}, Color: clr})
}

func (l *List) FillRect(x, y, w, h float64, clr color.RGBA) {
	l.add(Op{Kind: OpFillRect, Args: []float64{x, y, w, h}, Color: clr})
}

func (l *List) StrokeRect(x, y, w, h, width float64, clr color.RGBA) {
	l.add(Op{Kind: OpStrokeRect, Args: []float64{x, y, w, h, width}, Color: clr})
}

func (l *List) Polyline(pts []Point, width float64, clr color.RGBA) {
	l.add(Op{Kind: OpPolyline, Args: []float64{width}, Points: slices.Clone(pts), Color: clr})
}

func (l *List) FillPolygon(pts []Point, clr color.RGBA) {
	l.add(Op{Kind: OpFillPolygon, Points: slices.Clone(pts), Color: clr})
}

func (l *List) Text(s string, x, y float64, clr color.RGBA) {
	l.add(Op{Kind: OpText, Args: []float64{x, y}, Text: s, Color: clr})
}

// Equal reports whether both lists hold the same operations in order.
func (l *List) Equal(other *List) bool {
	if l == nil || other == nil {
		return l == other
	}
	if len(l.Ops) != len(other.Ops) {
		return false
	}
	for i := range l.Ops {
		if !l.Ops[i].equal(other.Ops[i]) {
			return false
		}
	}
	return true
}

// Find returns the first operation carrying label.
func (l *List) Find(label string) (Op, bool) {
	for _, op := range l.Ops {
		if op.Label == label {
			return op, true
		}
	}
	return Op{}, false
}

// Texts returns the strings of every text operation in order.
func (l *List) Texts() []string {
	var out []string
	for _, op := range l.Ops {
		if op.Kind == OpText {
			out = append(out, op.Text)
		}
	}
	return out
}

// Counts tallies operations by kind.
func (l *List) Counts() map[OpKind]int {
	counts := make(map[OpKind]int)
	for _, op := range l.Ops {
		counts[op.Kind]++
	}
	return counts
}

// Replay issues every recorded operation onto c, labels included.
func (l *List) Replay(c Canvas) {
	for _, op := range l.Ops {
		if op.Label != "" {
			Annotate(c, op.Label)
		}
		a := op.Args
		switch op.Kind {
		case OpClear:
			c.Clear(op.Color)
		case OpLine:
			c.Line(a[0], a[1], a[2], a[3], a[4], op.Color)
		case OpCircle:
			c.Circle(a[0], a[1], a[2], a[3], op.Color)
		case OpFillCircle:
			c.FillCircle(a[0], a[1], a[2], op.Color)
		case OpFillRect:
			c.FillRect(a[0], a[1], a[2], a[3], op.Color)
		case OpStrokeRect:
			c.StrokeRect(a[0], a[1], a[2], a[3], a[4], op.Color)
		case OpPolyline:
			c.Polyline(op.Points, a[0], op.Color)
		case OpFillPolygon:
			c.FillPolygon(op.Points, op.Color)
		case OpText:
			c.Text(op.Text, a[0], a[1], op.Color)
		}
	}
}
