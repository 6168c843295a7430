package draw

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

func paint(c Canvas) {
	red := color.RGBA{255, 0, 0, 255}
	c.Clear(color.RGBA{A: 255})
	c.Line(0, 0, 10, 10, 2, red)
	Annotate(c, "marker")
	c.FillCircle(5, 5, 3, red)
	c.Polyline([]Point{{0, 0}, {1, 1}, {2, 0}}, 1, red)
	c.Text("hello", 4, 8, red)
}

func TestListRecordsOperations(t *testing.T) {
	l := NewList()
	paint(l)

	require.Len(t, l.Ops, 5)
	require.Equal(t, OpClear, l.Ops[0].Kind)
	require.Equal(t, []float64{0, 0, 10, 10, 2}, l.Ops[1].Args)
	require.Equal(t, []string{"hello"}, l.Texts())
	require.Equal(t, 1, l.Counts()[OpPolyline])
}

func TestListAnnotateLabelsOnlyNextOp(t *testing.T) {
	l := NewList()
	paint(l)

	op, ok := l.Find("marker")
	require.True(t, ok)
	require.Equal(t, OpFillCircle, op.Kind)
	require.Equal(t, []float64{5, 5, 3}, op.Args)
	require.Empty(t, l.Ops[3].Label)

	_, ok = l.Find("missing")
	require.False(t, ok)
}

func TestListPolylineCopiesPoints(t *testing.T) {
	l := NewList()
	pts := []Point{{1, 2}, {3, 4}}
	l.Polyline(pts, 1, color.RGBA{})
	pts[0].X = 99

	require.Equal(t, 1.0, l.Ops[0].Points[0].X)
}

func TestListReplayReproducesList(t *testing.T) {
	src := NewList()
	paint(src)

	dst := NewList()
	src.Replay(dst)

	require.True(t, src.Equal(dst))
}

func TestListEqual(t *testing.T) {
	a, b := NewList(), NewList()
	paint(a)
	paint(b)
	require.True(t, a.Equal(b))

	b.Line(1, 1, 2, 2, 1, color.RGBA{})
	require.False(t, a.Equal(b))

	var nilList *List
	require.False(t, a.Equal(nilList))
	require.True(t, nilList.Equal(nil))
}

func TestListReset(t *testing.T) {
	l := NewList()
	paint(l)
	l.Annotate("dangling")
	l.Reset()

	require.Empty(t, l.Ops)
	l.Clear(color.RGBA{})
	require.Empty(t, l.Ops[0].Label)
}
