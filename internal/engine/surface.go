package engine

import "math"

// Profile selects how the logical surface is sized from its container.
type Profile int

const (
	ProfileRegular Profile = iota
	ProfileCompact
	ProfileExpanded
)

func (p Profile) String() string {
	switch p {
	case ProfileCompact:
		return "compact"
	case ProfileExpanded:
		return "expanded"
	default:
		return "regular"
	}
}

// Heights are the fixed logical heights of the non-expanded profiles.
type Heights struct {
	Regular float64
	Compact float64
	// CompactBreakpoint is the container width below which a regular
	// surface uses the compact height.
	CompactBreakpoint float64
}

// DefaultHeights returns the stock profile heights.
func DefaultHeights() Heights {
	return Heights{Regular: 320, Compact: 220, CompactBreakpoint: 640}
}

func (h Heights) orDefault() Heights {
	d := DefaultHeights()
	if !(h.Regular > 0) {
		h.Regular = d.Regular
	}
	if !(h.Compact > 0) {
		h.Compact = d.Compact
	}
	if !(h.CompactBreakpoint > 0) {
		h.CompactBreakpoint = d.CompactBreakpoint
	}
	return h
}

// Surface is the drawing area in logical units plus the device density.
type Surface struct {
	Width   float64
	Height  float64
	Density float64
}

// Empty reports whether the surface has no area to draw into.
func (s Surface) Empty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Backing returns the backing-store resolution in device pixels.
func (s Surface) Backing() (int, int) {
	if s.Empty() {
		return 0, 0
	}
	return backingLength(s.Width * s.Density), backingLength(s.Height * s.Density)
}

func backingLength(v float64) int {
	v = math.Ceil(v)
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(v)
}

// Center returns the logical center point.
func (s Surface) Center() (float64, float64) {
	return s.Width / 2, s.Height / 2
}

// Contains reports whether a logical point lies on the surface.
func (s Surface) Contains(x, y float64) bool {
	return x >= 0 && y >= 0 && x <= s.Width && y <= s.Height
}

// SurfaceManager tracks the container box and derives the surface for the
// active profile.
type SurfaceManager struct {
	profile Profile
	heights Heights
	current Surface
}

// NewSurfaceManager returns a manager that has not measured anything yet.
func NewSurfaceManager(profile Profile, heights Heights) *SurfaceManager {
	return &SurfaceManager{
		profile: profile,
		heights: heights.orDefault(),
		current: Surface{Density: 1},
	}
}

// Surface returns the last computed surface.
func (m *SurfaceManager) Surface() Surface {
	return m.current
}

// Profile returns the configured profile.
func (m *SurfaceManager) Profile() Profile {
	return m.profile
}

// Effective returns the profile in use for a container width; a regular
// surface narrower than the breakpoint falls back to compact.
func (m *SurfaceManager) Effective(containerW float64) Profile {
	if m.profile == ProfileRegular && containerW < m.heights.CompactBreakpoint {
		return ProfileCompact
	}
	return m.profile
}

// Resize recomputes the surface from the container box and reports whether
// it changed. Calling it again with the same input is a no-op.
func (m *SurfaceManager) Resize(containerW, containerH, density float64) (Surface, bool) {
	next := m.compute(containerW, containerH, density)
	if next == m.current {
		return m.current, false
	}
	m.current = next
	return next, true
}

func (m *SurfaceManager) compute(containerW, containerH, density float64) Surface {
	if math.IsNaN(density) || math.IsInf(density, 0) || density <= 0 {
		density = 1
	}
	w := sanitizeLength(containerW)
	h := sanitizeLength(containerH)
	if w == 0 {
		return Surface{Density: density}
	}
	switch m.Effective(w) {
	case ProfileExpanded:
		if h == 0 {
			return Surface{Density: density}
		}
	case ProfileCompact:
		h = fitHeight(m.heights.Compact, h)
	default:
		h = fitHeight(m.heights.Regular, h)
	}
	return Surface{Width: w, Height: h, Density: density}
}

// fitHeight caps a fixed profile height at the measured container height.
// A zero measurement means the container has no height yet.
func fitHeight(fixed, measured float64) float64 {
	if measured == 0 {
		return fixed
	}
	return math.Min(fixed, measured)
}

func sanitizeLength(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0
	}
	return v
}
