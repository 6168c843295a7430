package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestParametersStartAtMidpoint(t *testing.T) {
	p := NewParameters()
	require.Equal(t, 50.0, p.Get(Param1))
	require.Equal(t, 50.0, p.Get(Param2))
	p1, p2 := p.Normalized()
	require.Equal(t, 0.5, p1)
	require.Equal(t, 0.5, p2)
}

func TestParametersClampWrites(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		p := NewParameters()
		which := rapid.SampledFrom([]Param{Param1, Param2}).Draw(rt, "param")
		v := rapid.Float64().Draw(rt, "value")
		p.Set(which, v)

		got := p.Get(which)
		require.GreaterOrEqual(rt, got, 0.0)
		require.LessOrEqual(rt, got, 100.0)
		if v >= 0 && v <= 100 {
			require.Equal(rt, v, got)
		}
	})
}

func TestParametersIgnoreNaN(t *testing.T) {
	p := NewParameters()
	p.Set(Param1, 12)
	p.Set(Param1, math.NaN())
	require.Equal(t, 12.0, p.Get(Param1))
}

func TestParametersInfinityClamps(t *testing.T) {
	p := NewParameters()
	p.Set(Param1, math.Inf(1))
	p.Set(Param2, math.Inf(-1))
	require.Equal(t, 100.0, p.Get(Param1))
	require.Equal(t, 0.0, p.Get(Param2))
}

func TestParametersAreIndependent(t *testing.T) {
	p := NewParameters()
	p.Set(Param1, 10)
	require.Equal(t, 50.0, p.Get(Param2))
	p.Add(Param2, 70)
	require.Equal(t, 100.0, p.Get(Param2))
	require.Equal(t, 10.0, p.Get(Param1))

	p.Reset()
	require.Equal(t, 50.0, p.Get(Param1))
	require.Equal(t, 50.0, p.Get(Param2))
}

func TestParametersUnknownParamIsIgnored(t *testing.T) {
	p := NewParameters()
	p.Set(Param(7), 3)
	require.Zero(t, p.Get(Param(7)))
	require.Equal(t, 50.0, p.Get(Param1))
}

func TestParseParam(t *testing.T) {
	for in, want := range map[string]Param{
		"param1": Param1,
		"P1":     Param1,
		"1":      Param1,
		" p2 ":   Param2,
		"param2": Param2,
	} {
		got, err := ParseParam(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}
	_, err := ParseParam("param3")
	require.Error(t, err)
}
