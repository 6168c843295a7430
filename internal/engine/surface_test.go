package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestRegularProfileUsesFixedHeight(t *testing.T) {
	m := NewSurfaceManager(ProfileRegular, DefaultHeights())
	s, changed := m.Resize(800, 900, 2)
	require.True(t, changed)
	require.Equal(t, Surface{Width: 800, Height: 320, Density: 2}, s)

	w, h := s.Backing()
	require.Equal(t, 1600, w)
	require.Equal(t, 640, h)
}

func TestRegularProfileGoesCompactWhenNarrow(t *testing.T) {
	m := NewSurfaceManager(ProfileRegular, DefaultHeights())
	s, _ := m.Resize(400, 900, 1)
	require.Equal(t, 220.0, s.Height)
	require.Equal(t, ProfileCompact, m.Effective(400))
	require.Equal(t, ProfileRegular, m.Effective(640))
}

func TestCompactProfile(t *testing.T) {
	m := NewSurfaceManager(ProfileCompact, Heights{Compact: 180})
	s, _ := m.Resize(1200, 900, 1)
	require.Equal(t, 180.0, s.Height)
	require.Equal(t, 1200.0, s.Width)
}

func TestFixedHeightsFitShortContainer(t *testing.T) {
	tests := []struct {
		name    string
		profile Profile
		w, h    float64
		want    float64
	}{
		{"regular shorter than fixed", ProfileRegular, 800, 100, 100},
		{"compact shorter than fixed", ProfileCompact, 800, 50, 50},
		{"narrow regular uses compact cap", ProfileRegular, 400, 120, 120},
		{"regular taller than fixed", ProfileRegular, 800, 900, 320},
		{"unmeasured height keeps fixed", ProfileRegular, 800, 0, 320},
		{"unmeasured compact keeps fixed", ProfileCompact, 800, 0, 220},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewSurfaceManager(tt.profile, DefaultHeights())
			s, _ := m.Resize(tt.w, tt.h, 1)
			require.Equal(t, tt.w, s.Width)
			require.Equal(t, tt.want, s.Height)
		})
	}
}

func TestFixedHeightNeverExceedsContainer(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		profile := rapid.SampledFrom([]Profile{ProfileRegular, ProfileCompact}).Draw(rt, "profile")
		m := NewSurfaceManager(profile, DefaultHeights())
		w := rapid.Float64Range(1, 4000).Draw(rt, "w")
		h := rapid.Float64Range(1, 4000).Draw(rt, "h")

		s, _ := m.Resize(w, h, 1)
		require.LessOrEqual(rt, s.Height, h)
		require.LessOrEqual(rt, s.Height, DefaultHeights().Regular)
	})
}

func TestExpandedProfileFillsContainer(t *testing.T) {
	m := NewSurfaceManager(ProfileExpanded, DefaultHeights())
	s, _ := m.Resize(1024, 700, 1.5)
	require.Equal(t, Surface{Width: 1024, Height: 700, Density: 1.5}, s)

	w, h := s.Backing()
	require.Equal(t, 1536, w)
	require.Equal(t, 1050, h)
}

func TestResizeIsIdempotent(t *testing.T) {
	m := NewSurfaceManager(ProfileExpanded, DefaultHeights())
	first, changed := m.Resize(300, 200, 2)
	require.True(t, changed)
	second, changed := m.Resize(300, 200, 2)
	require.False(t, changed)
	require.Equal(t, first, second)
}

func TestResizeRejectsInvalidInput(t *testing.T) {
	m := NewSurfaceManager(ProfileExpanded, DefaultHeights())
	for _, in := range [][3]float64{
		{0, 100, 1},
		{-10, 100, 1},
		{100, -1, 1},
		{math.NaN(), 100, 1},
		{math.Inf(1), 100, 1},
	} {
		s, _ := m.Resize(in[0], in[1], in[2])
		require.True(t, s.Empty(), "input %v", in)
		w, h := s.Backing()
		require.Zero(t, w)
		require.Zero(t, h)
	}
}

func TestResizeNeverNegative(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		profile := rapid.SampledFrom([]Profile{ProfileRegular, ProfileCompact, ProfileExpanded}).Draw(rt, "profile")
		m := NewSurfaceManager(profile, DefaultHeights())
		w := rapid.Float64().Draw(rt, "w")
		h := rapid.Float64().Draw(rt, "h")
		d := rapid.Float64().Draw(rt, "density")

		s, _ := m.Resize(w, h, d)
		require.GreaterOrEqual(rt, s.Width, 0.0)
		require.GreaterOrEqual(rt, s.Height, 0.0)
		require.Greater(rt, s.Density, 0.0)
		bw, bh := s.Backing()
		require.GreaterOrEqual(rt, bw, 0)
		require.GreaterOrEqual(rt, bh, 0)
	})
}

func TestBackingScalesWithDensity(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		m := NewSurfaceManager(ProfileExpanded, DefaultHeights())
		w := rapid.Float64Range(1, 4000).Draw(rt, "w")
		h := rapid.Float64Range(1, 4000).Draw(rt, "h")
		d := rapid.Float64Range(0.5, 4).Draw(rt, "density")

		low, _ := m.Resize(w, h, 1)
		high, _ := m.Resize(w, h, d)
		require.Equal(rt, low.Width, high.Width)
		require.Equal(rt, low.Height, high.Height)

		bw, bh := high.Backing()
		require.Equal(rt, int(math.Ceil(w*d)), bw)
		require.Equal(rt, int(math.Ceil(h*d)), bh)
	})
}

func TestInvalidDensityFallsBackToOne(t *testing.T) {
	m := NewSurfaceManager(ProfileExpanded, DefaultHeights())
	for _, d := range []float64{0, -2, math.NaN(), math.Inf(1)} {
		s, _ := m.Resize(100, 100, d)
		require.Equal(t, 1.0, s.Density)
	}
}

func TestSurfaceContains(t *testing.T) {
	s := Surface{Width: 100, Height: 50, Density: 1}
	require.True(t, s.Contains(0, 0))
	require.True(t, s.Contains(100, 50))
	require.False(t, s.Contains(-1, 10))
	require.False(t, s.Contains(50, 51))
}
