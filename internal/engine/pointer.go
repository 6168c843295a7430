package engine

import "math"

// PointerAngle returns the angle in degrees of (x,y) around the surface
// center, measured counter-clockwise from the right and clamped to
// [0,180]. Points below the center snap to the nearer horizontal bound.
func PointerAngle(s Surface, x, y float64) float64 {
	cx, cy := s.Center()
	phi := math.Atan2(cy-y, x-cx) * 180 / math.Pi
	switch {
	case phi >= 0:
		return phi
	case phi < -90:
		return 180
	default:
		return 0
	}
}

// AngleToParam maps a pointer angle to a parameter value so the cursor
// follows the pointer: left is 0, straight up is 50, right is 100.
func AngleToParam(phi float64) float64 {
	phi = math.Max(0, math.Min(180, phi))
	return (180 - phi) / 180 * paramMax
}

// PointerAdapter turns pointer drags into param2 writes.
type PointerAdapter struct {
	params   *Parameters
	dragging bool
}

// NewPointerAdapter returns an adapter writing into params.
func NewPointerAdapter(params *Parameters) *PointerAdapter {
	return &PointerAdapter{params: params}
}

// Press starts a drag when (x,y) is on the surface and applies it.
func (a *PointerAdapter) Press(s Surface, x, y float64) bool {
	if s.Empty() || !s.Contains(x, y) {
		return false
	}
	a.dragging = true
	a.apply(s, x, y)
	return true
}

// Move applies the pointer while dragging. A move off the surface applies
// the clamped angle and ends the drag.
func (a *PointerAdapter) Move(s Surface, x, y float64) bool {
	if !a.dragging {
		return false
	}
	if s.Empty() {
		a.dragging = false
		return false
	}
	a.apply(s, x, y)
	if !s.Contains(x, y) {
		a.dragging = false
	}
	return true
}

// Release ends the drag.
func (a *PointerAdapter) Release() { a.dragging = false }

// Leave ends the drag when the pointer exits the surface.
func (a *PointerAdapter) Leave() { a.dragging = false }

// Dragging reports whether a drag is in progress.
func (a *PointerAdapter) Dragging() bool { return a.dragging }

func (a *PointerAdapter) apply(s Surface, x, y float64) {
	a.params.Set(Param2, AngleToParam(PointerAngle(s, x, y)))
}
