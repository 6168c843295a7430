package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

var pointerSurface = Surface{Width: 400, Height: 200, Density: 1}

func TestPointerAngleEndpoints(t *testing.T) {
	s := pointerSurface
	cx, cy := s.Center()

	require.InDelta(t, 180, PointerAngle(s, 0, cy), 1e-9)
	require.InDelta(t, 90, PointerAngle(s, cx, 0), 1e-9)
	require.InDelta(t, 0, PointerAngle(s, s.Width, cy), 1e-9)

	require.InDelta(t, 0, AngleToParam(PointerAngle(s, 0, cy)), 1e-9)
	require.InDelta(t, 50, AngleToParam(PointerAngle(s, cx, 0)), 1e-9)
	require.InDelta(t, 100, AngleToParam(PointerAngle(s, s.Width, cy)), 1e-9)
}

func TestPointerAngleBelowCenterSnapsToNearerBound(t *testing.T) {
	s := pointerSurface
	cx, cy := s.Center()
	require.Equal(t, 180.0, PointerAngle(s, cx-50, cy+10))
	require.Equal(t, 0.0, PointerAngle(s, cx+50, cy+10))
}

func TestPointerMappingMonotonic(t *testing.T) {
	s := pointerSurface
	_, cy := s.Center()
	rapid.Check(t, func(rt *rapid.T) {
		a := rapid.Float64Range(-200, 600).Draw(rt, "a")
		b := rapid.Float64Range(-200, 600).Draw(rt, "b")
		if a > b {
			a, b = b, a
		}
		// Along a line above the center, moving right never lowers param2.
		y := rapid.Float64Range(-100, cy-1).Draw(rt, "y")
		pa := AngleToParam(PointerAngle(s, a, y))
		pb := AngleToParam(PointerAngle(s, b, y))
		require.LessOrEqual(rt, pa, pb+1e-9)
	})
}

func TestPointerMappingStaysInRange(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		x := rapid.Float64Range(-1e6, 1e6).Draw(rt, "x")
		y := rapid.Float64Range(-1e6, 1e6).Draw(rt, "y")
		v := AngleToParam(PointerAngle(pointerSurface, x, y))
		require.GreaterOrEqual(rt, v, 0.0)
		require.LessOrEqual(rt, v, 100.0)
	})
}

func TestPointerAdapterDrag(t *testing.T) {
	p := NewParameters()
	a := NewPointerAdapter(p)
	s := pointerSurface
	cx, _ := s.Center()

	require.False(t, a.Move(s, cx, 0), "no drag before press")
	require.Equal(t, 50.0, p.Get(Param2))

	require.True(t, a.Press(s, s.Width, s.Height/2))
	require.True(t, a.Dragging())
	require.InDelta(t, 100, p.Get(Param2), 1e-9)

	require.True(t, a.Move(s, cx, 0))
	require.InDelta(t, 50, p.Get(Param2), 1e-9)

	a.Release()
	require.False(t, a.Dragging())
	require.False(t, a.Move(s, 0, s.Height/2))
	require.InDelta(t, 50, p.Get(Param2), 1e-9)
	require.Equal(t, 50.0, p.Get(Param1), "param1 untouched")
}

func TestPointerPressOutsideIgnored(t *testing.T) {
	p := NewParameters()
	a := NewPointerAdapter(p)
	require.False(t, a.Press(pointerSurface, -5, 10))
	require.False(t, a.Dragging())
	require.Equal(t, 50.0, p.Get(Param2))
}

func TestPointerMoveOffSurfaceClampsThenEnds(t *testing.T) {
	p := NewParameters()
	a := NewPointerAdapter(p)
	s := pointerSurface
	require.True(t, a.Press(s, s.Width/2, 10))

	require.True(t, a.Move(s, -500, s.Height/2))
	require.InDelta(t, 0, p.Get(Param2), 1e-9)
	require.False(t, a.Dragging())
}

func TestPointerLeaveEndsDrag(t *testing.T) {
	p := NewParameters()
	a := NewPointerAdapter(p)
	require.True(t, a.Press(pointerSurface, 10, 10))
	a.Leave()
	require.False(t, a.Dragging())
}
