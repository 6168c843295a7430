package modes

import (
	"image/color"
	"math"

	"sonoviz/internal/draw"
)

// attenuation draws a pulse train whose envelope decays exponentially with
// depth at coefficient dB/cm/MHz.
type attenuation struct {
	coefficient float64
	minMHz      float64
	maxMHz      float64
	maxDepthCM  float64
}

func (a attenuation) frequency(p1 float64) float64 { return lerp(a.minMHz, a.maxMHz, p1) }
func (a attenuation) depth(p2 float64) float64     { return lerp(2, a.maxDepthCM, p2) }

// gain is the one-way amplitude ratio after depthCM centimetres.
func (a attenuation) gain(freqMHz, depthCM float64) float64 {
	return math.Pow(10, -a.coefficient*freqMHz*depthCM/20)
}

func (a attenuation) Render(c draw.Canvas, in Input) {
	mid := in.Height / 2
	span := in.Height * 0.38
	f := a.frequency(in.P1)
	depth := a.depth(in.P2)
	ph := phase(in.Frame, 0.15)

	steps := int(math.Max(2, math.Ceil(in.Width/2)))
	wave := make([]draw.Point, steps+1)
	upper := make([]draw.Point, steps+1)
	lower := make([]draw.Point, steps+1)
	for i := 0; i <= steps; i++ {
		x := in.Width * float64(i) / float64(steps)
		env := a.gain(f, depth*x/in.Width) * span
		wave[i] = draw.Point{X: x, Y: mid - env*math.Sin(2*math.Pi*f*2*x/in.Width-ph)}
		upper[i] = draw.Point{X: x, Y: mid - env}
		lower[i] = draw.Point{X: x, Y: mid + env}
	}
	c.Polyline(upper, 1, colorGuide)
	c.Polyline(lower, 1, colorGuide)
	draw.Annotate(c, "waveform")
	c.Polyline(wave, 1.5, colorWave)

	for cm := 0.0; cm <= depth; cm++ {
		x := cm / depth * in.Width
		tick := 4.0
		if int(cm)%5 == 0 {
			tick = 8
		}
		c.Line(x, in.Height-tick, x, in.Height, 1, colorText)
	}
}

func (a attenuation) Telemetry(in Input) []Reading {
	f := a.frequency(in.P1)
	depth := a.depth(in.P2)
	return []Reading{
		{Label: "Frequency", Value: f, Unit: "MHz", Format: "%.1f"},
		{Label: "Depth", Value: depth, Unit: "cm", Format: "%.1f"},
		{Label: "Loss", Value: a.coefficient * f * depth, Unit: "dB", Format: "%.1f"},
		{Label: "Half-value depth", Value: 6 / (a.coefficient * f), Unit: "cm", Format: "%.1f"},
	}
}

// refraction bends a ray across a horizontal boundary by Snell's law.
// ratio is c2/c1, the lower medium's speed over the upper one's.
type refraction struct {
	minRatio     float64
	maxRatio     float64
	maxIncidence float64
}

type refractionState struct {
	ratio       float64
	incidence   float64 // degrees
	transmitted float64 // degrees, valid unless total
	total       bool
}

func (r refraction) state(p1, p2 float64) refractionState {
	s := refractionState{ratio: lerp(r.minRatio, r.maxRatio, p1), incidence: p2 * r.maxIncidence}
	sinT := math.Sin(radians(s.incidence)) * s.ratio
	if sinT > 1 {
		s.total = true
		return s
	}
	s.transmitted = math.Asin(sinT) * 180 / math.Pi
	return s
}

func (r refraction) Render(c draw.Canvas, in Input) {
	s := r.state(in.P1, in.P2)
	hx, hy := in.Width/2, in.Height/2
	length := math.Hypot(in.Width, in.Height) / 2

	shade := uint8(20 + 30*clamp01((s.ratio-r.minRatio)/(r.maxRatio-r.minRatio)))
	c.FillRect(0, hy, in.Width, in.Height-hy, hsv(260, 0.3, float64(shade)/100, 255))
	draw.Annotate(c, "boundary")
	c.Line(0, hy, in.Width, hy, 2, colorElement)
	c.Line(hx, hy-length*0.4, hx, hy+length*0.4, 1, colorGuide)

	i := radians(s.incidence)
	dirX, dirY := math.Sin(i), math.Cos(i)
	sx, sy := hx-length*dirX, hy-length*dirY
	draw.Annotate(c, "incident")
	c.Line(sx, sy, hx, hy, 2, colorAccent)
	r.crests(c, sx, sy, dirX, dirY, length, in.Frame, colorAccent)

	reflectAlpha := 0.35
	if s.total {
		reflectAlpha = 1
	}
	draw.Annotate(c, "reflected")
	c.Line(hx, hy, hx+length*dirX, hy-length*dirY, 2, withAlpha(colorAccent, reflectAlpha))

	if !s.total {
		t := radians(s.transmitted)
		tx, ty := math.Sin(t), math.Cos(t)
		draw.Annotate(c, "transmitted")
		c.Line(hx, hy, hx+length*tx, hy+length*ty, 2, colorWave)
		r.crests(c, hx, hy, tx, ty, length, in.Frame, colorWave)
	}
}

// crests draws moving wave crests along a ray.
func (refraction) crests(c draw.Canvas, x, y, dx, dy, length float64, frame uint64, clr color.RGBA) {
	const spacing = 30
	offset := math.Mod(float64(frame)*1.5, spacing)
	for d := offset; d < length; d += spacing {
		c.FillCircle(x+dx*d, y+dy*d, 3, clr)
	}
}

func (r refraction) Telemetry(in Input) []Reading {
	s := r.state(in.P1, in.P2)
	out := []Reading{
		{Label: "Speed ratio", Value: s.ratio, Format: "%.2f"},
		{Label: "Incidence", Value: s.incidence, Unit: "deg", Format: "%.0f"},
	}
	if s.total {
		out = append(out, Reading{Label: "Transmitted", Text: "total reflection"})
	} else {
		out = append(out, Reading{Label: "Transmitted", Value: s.transmitted, Unit: "deg", Format: "%.0f"})
	}
	if s.ratio > 1 {
		out = append(out, Reading{Label: "Critical angle", Value: math.Asin(1/s.ratio) * 180 / math.Pi, Unit: "deg", Format: "%.0f"})
	}
	return out
}

// reverberation bounces a pulse between two parallel reflectors; every
// round trip adds an echo weaker by the reflectivity.
type reverberation struct {
	maxEchoes int
}

func (r reverberation) reflectivity(p2 float64) float64 { return lerp(0.2, 0.95, p2) }

func (r reverberation) layout(in Input) (near, gap float64) {
	return in.Height * 0.25, lerp(0.06, 0.2, in.P1) * in.Height
}

// echoes returns depth and relative amplitude of every visible echo.
func (r reverberation) echoes(in Input) (depths, amps []float64) {
	near, gap := r.layout(in)
	refl := r.reflectivity(in.P2)
	depths = append(depths, near)
	amps = append(amps, 1)
	amp := 1.0
	for k := 0; k < r.maxEchoes; k++ {
		y := near + gap*float64(k+1)
		if y >= in.Height {
			break
		}
		depths = append(depths, y)
		amps = append(amps, amp)
		amp *= refl
	}
	return depths, amps
}

func (r reverberation) Render(c draw.Canvas, in Input) {
	near, gap := r.layout(in)
	refl := r.reflectivity(in.P2)
	probeY := in.Height * 0.08
	leftX := in.Width * 0.3

	c.FillRect(leftX-20, probeY-8, 40, 8, colorElement)
	draw.Annotate(c, "reflector-near")
	c.Line(in.Width*0.1, near, in.Width*0.5, near, 3, colorElement)
	draw.Annotate(c, "reflector-far")
	c.Line(in.Width*0.1, near+gap, in.Width*0.5, near+gap, 3, colorElement)

	const speed = 3.0
	travel := float64(in.Frame) * speed
	pos := math.Mod(travel, 2*gap)
	y := near + pos
	if pos > gap {
		y = near + 2*gap - pos
	}
	bounce := int(travel/gap) % r.maxEchoes
	c.FillCircle(leftX, y, 5, withAlpha(colorAccent, math.Pow(refl, float64(bounce))))

	imageX := in.Width * 0.65
	c.StrokeRect(imageX, 0, in.Width*0.25, in.Height, 1, colorGuide)
	depths, amps := r.echoes(in)
	for i := range depths {
		draw.Annotate(c, "echo")
		c.Line(imageX+4, depths[i], imageX+in.Width*0.25-4, depths[i], 3, withAlpha(colorText, amps[i]))
	}
}

func (r reverberation) Telemetry(in Input) []Reading {
	depths, _ := r.echoes(in)
	return []Reading{
		{Label: "Gap", Value: lerp(2, 10, in.P1), Unit: "mm", Format: "%.1f"},
		{Label: "Reflectivity", Value: r.reflectivity(in.P2) * 100, Unit: "%", Format: "%.0f"},
		{Label: "Echoes", Value: float64(len(depths)), Format: "%.0f"},
	}
}
