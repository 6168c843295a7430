package modes

import (
	"math"

	"sonoviz/internal/draw"
)

// doppler shows flow in a vessel interrogated by a beam at the Doppler
// angle θ = p2·180°, measured from the upstream flow axis. The beam is
// drawn at 180°-θ in screen orientation so it follows the pointer.
type doppler struct {
	maxVelocity float64 // cm/s at p1 = 1
	transmitMHz float64
	soundSpeed  float64 // m/s
	particles   int
}

// DopplerReadout is the numeric state behind the Doppler telemetry.
type DopplerReadout struct {
	VelocityCMS float64
	AngleDeg    float64
	CosTheta    float64
	ShiftHz     float64
}

func (d doppler) readout(p1, p2 float64) DopplerReadout {
	v := clamp01(p1) * d.maxVelocity
	angle := clamp01(p2) * 180
	cosTheta := math.Abs(math.Cos(radians(angle)))
	shift := 2 * d.transmitMHz * 1e6 * (v / 100) * cosTheta / d.soundSpeed
	return DopplerReadout{VelocityCMS: v, AngleDeg: angle, CosTheta: cosTheta, ShiftHz: shift}
}

func (d doppler) Render(c draw.Canvas, in Input) {
	top, bottom := in.Height*0.55, in.Height*0.8
	mid := (top + bottom) / 2
	half := (bottom - top) / 2
	c.FillRect(0, top, in.Width, bottom-top, colorFlow)
	c.Line(0, top, in.Width, top, 2, colorElement)
	c.Line(0, bottom, in.Width, bottom, 2, colorElement)

	speed := in.P1 * 6
	for i := 0; i < d.particles; i++ {
		fy := math.Mod(float64(i)*0.618+0.1, 1)
		y := top + 4 + (bottom-top-8)*fy
		u := (y - mid) / half
		// Laminar profile: fastest on the axis.
		profile := 1 - u*u
		x := math.Mod(in.Width*math.Mod(float64(i)*0.37, 1)+float64(in.Frame)*speed*(0.3+0.7*profile), in.Width)
		c.FillCircle(x, y, 2.5, colorMarker)
	}
	c.Line(in.Width*0.8, mid, in.Width*0.95, mid, 1, colorText)
	c.Line(in.Width*0.95, mid, in.Width*0.95-6, mid-4, 1, colorText)
	c.Line(in.Width*0.95, mid, in.Width*0.95-6, mid+4, 1, colorText)

	cx, cy := in.Width/2, mid
	theta := in.P2 * 180
	phi := radians(180 - theta)
	length := math.Min(in.Width, in.Height) * 0.45
	ex, ey := cx+length*math.Cos(phi), cy-length*math.Sin(phi)
	draw.Annotate(c, "beam")
	c.Line(cx, cy, ex, ey, 2, colorAccent)
	c.FillCircle(ex, ey, 6, colorElement)

	// Arc from the upstream axis to the beam marks θ.
	const arcSteps = 24
	arcR := math.Min(30, length*0.5)
	arc := make([]draw.Point, 0, arcSteps+1)
	for i := 0; i <= arcSteps; i++ {
		a := radians(180 - theta*float64(i)/arcSteps)
		arc = append(arc, draw.Point{X: cx + arcR*math.Cos(a), Y: cy - arcR*math.Sin(a)})
	}
	c.Polyline(arc, 1, colorText)
	c.Line(cx-arcR*1.5, cy, cx, cy, 1, colorText)
}

func (d doppler) Telemetry(in Input) []Reading {
	r := d.readout(in.P1, in.P2)
	return []Reading{
		{Label: "Velocity", Value: r.VelocityCMS, Unit: "cm/s", Format: "%.0f"},
		{Label: "Angle", Value: r.AngleDeg, Unit: "deg", Format: "%.0f"},
		{Label: "cos(theta)", Value: r.CosTheta},
		{Label: "Shift", Value: r.ShiftHz, Unit: "Hz", Format: "%.0f"},
	}
}
