package engine

import (
	"fmt"
	"math"
	"strings"
)

// Param selects one of the two control values.
type Param int

const (
	Param1 Param = iota
	Param2
)

const (
	paramMin     = 0.0
	paramMax     = 100.0
	paramDefault = 50.0
)

func (p Param) String() string {
	switch p {
	case Param1:
		return "param1"
	case Param2:
		return "param2"
	default:
		return fmt.Sprintf("param(%d)", int(p))
	}
}

// ParseParam maps host names such as "param1", "p2" or "1" to a Param.
func ParseParam(s string) (Param, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "param1", "p1", "1":
		return Param1, nil
	case "param2", "p2", "2":
		return Param2, nil
	}
	return 0, fmt.Errorf("unknown parameter %q", s)
}

// Parameters holds the two control values, each kept within [0,100].
type Parameters struct {
	values [2]float64
}

// NewParameters returns parameters at the midpoint.
func NewParameters() *Parameters {
	p := &Parameters{}
	p.Reset()
	return p
}

// Set clamps v into range and stores it. NaN writes are ignored.
func (p *Parameters) Set(which Param, v float64) {
	if which != Param1 && which != Param2 {
		return
	}
	if math.IsNaN(v) {
		return
	}
	p.values[which] = math.Max(paramMin, math.Min(paramMax, v))
}

// Add nudges a parameter by delta, clamping the result.
func (p *Parameters) Add(which Param, delta float64) {
	p.Set(which, p.Get(which)+delta)
}

// Get returns the stored value.
func (p *Parameters) Get(which Param) float64 {
	if which != Param1 && which != Param2 {
		return 0
	}
	return p.values[which]
}

// Normalized returns both values scaled to [0,1].
func (p *Parameters) Normalized() (float64, float64) {
	return p.values[Param1] / paramMax, p.values[Param2] / paramMax
}

// Reset restores both values to the midpoint.
func (p *Parameters) Reset() {
	p.values = [2]float64{paramDefault, paramDefault}
}
