package ui

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"sonoviz/internal/draw"
)

func TestPanelLayout(t *testing.T) {
	var p Panel
	p.Layout(800, 320)
	for i, s := range p.Sliders {
		require.Equal(t, float64(sidePad+labelWidth), s.X)
		require.Equal(t, 800.0-labelWidth-2*sidePad, s.W)
		require.GreaterOrEqual(t, s.Y, 320.0)
		require.LessOrEqual(t, s.Y+s.H, 320.0+PanelHeight)
		require.Equal(t, i, p.Hit(s.X+s.W/2, s.Y+s.H/2))
	}
	require.Equal(t, -1, p.Hit(10, 10))
}

func TestPanelNarrowWidth(t *testing.T) {
	var p Panel
	p.Layout(50, 0)
	require.Zero(t, p.Sliders[0].W)
	require.Zero(t, p.Sliders[0].ValueAt(300))
}

func TestSliderValueAt(t *testing.T) {
	s := Slider{X: 100, W: 200, H: 20}
	require.Equal(t, 0.0, s.ValueAt(50))
	require.Equal(t, 0.0, s.ValueAt(100))
	require.Equal(t, 50.0, s.ValueAt(200))
	require.Equal(t, 100.0, s.ValueAt(300))
	require.Equal(t, 100.0, s.ValueAt(900))
}

func TestSliderValueAtMonotonic(t *testing.T) {
	s := Slider{X: 40, W: 300, H: 20}
	rapid.Check(t, func(rt *rapid.T) {
		a := rapid.Float64Range(-1000, 1000).Draw(rt, "a")
		b := rapid.Float64Range(-1000, 1000).Draw(rt, "b")
		if a > b {
			a, b = b, a
		}
		va, vb := s.ValueAt(a), s.ValueAt(b)
		require.LessOrEqual(rt, va, vb)
		require.GreaterOrEqual(rt, va, 0.0)
		require.LessOrEqual(rt, vb, 100.0)
	})
}

func TestSliderHandleFollowsValue(t *testing.T) {
	s := Slider{Label: "Velocity", X: 100, Y: 10, W: 200, H: 20}
	l := draw.NewList()
	s.Draw(l, 25)

	handle, ok := l.Find("slider-handle")
	require.True(t, ok)
	require.Equal(t, 150.0, handle.Args[0])
	require.Equal(t, []string{"Velocity: 25"}, l.Texts())
}

func TestPanelDrawsStatus(t *testing.T) {
	var p Panel
	p.Layout(640, 220)
	p.SetLabels("Cycles", "Amplitude")
	p.Status = "Sine wave"
	l := draw.NewList()
	p.Draw(l, 10, 90)

	require.Equal(t, []string{"Cycles: 10", "Amplitude: 90", "Sine wave"}, l.Texts())
	_, ok := l.Find("status")
	require.True(t, ok)
}
