package modes

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	cases := map[string]Mode{
		"DopplerShift":     DopplerShift,
		"doppler_shift":    DopplerShift,
		"Doppler Shift":    DopplerShift,
		"doppler-shift":    DopplerShift,
		"  BeamForming ":   BeamForming,
		"LongitudinalWave": LongitudinalWave,
		"Default":          Default,
		"huygens":          Huygens,
		"XYZ":              Mode("xyz"),
		"":                 Mode(""),
	}
	for in, want := range cases {
		require.Equal(t, want, ParseMode(in), "input %q", in)
	}
}

func TestBuiltinRegistryHasEveryMode(t *testing.T) {
	r := Builtin()
	all := []Mode{
		LongitudinalWave, TransverseWave, Huygens, Lobe, DopplerShift, Aliasing,
		BeamForming, Positioning, Attenuation, Refraction, Reverberation, Default,
	}
	require.Equal(t, all, r.Modes())
	for _, m := range all {
		d := r.Lookup(m)
		require.Equal(t, m, d.Mode)
		require.NotEmpty(t, d.Title, m)
		require.NotEmpty(t, d.Param1Label, m)
		require.NotEmpty(t, d.Param2Label, m)
		require.NotEmpty(t, d.Help, m)
		require.NotNil(t, d.Renderer, m)
	}
}

func TestOnlyDopplerIsPointerDriven(t *testing.T) {
	r := Builtin()
	for _, m := range r.Modes() {
		require.Equal(t, m == DopplerShift, r.Lookup(m).Pointer, m)
	}
}

func TestLookupUnknownFallsBackToDefault(t *testing.T) {
	r := Builtin()
	d := r.Lookup("XYZ")
	require.Equal(t, Default, d.Mode)
	require.False(t, r.Has("XYZ"))
}

func TestLookupAcceptsHostSpelling(t *testing.T) {
	r := Builtin()
	require.Equal(t, DopplerShift, r.Lookup("DopplerShift").Mode)
}

func TestRegisterIsAdditive(t *testing.T) {
	r := Builtin()
	before := len(r.Modes())

	r.Register(Descriptor{Mode: "standing-wave", Title: "Standing wave", Renderer: sineWave{maxCycles: 3, speed: 0}})
	require.Len(t, r.Modes(), before+1)
	require.Equal(t, Mode("standing-wave"), r.Lookup("standing-wave").Mode)

	r.Register(Descriptor{Mode: "standing-wave", Title: "Replaced", Renderer: sineWave{maxCycles: 3}})
	require.Len(t, r.Modes(), before+1)
	require.Equal(t, "Replaced", r.Lookup("standing-wave").Title)
}

func TestNextWraps(t *testing.T) {
	r := Builtin()
	modes := r.Modes()
	require.Equal(t, modes[1], r.Next(modes[0], 1))
	require.Equal(t, modes[0], r.Next(modes[len(modes)-1], 1))
	require.Equal(t, modes[len(modes)-1], r.Next(modes[0], -1))
	require.Equal(t, Default, NewRegistry().Next(Huygens, 1))
}
