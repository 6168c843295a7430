package modes

import "slices"

// Descriptor is the static registry entry for a mode.
type Descriptor struct {
	Mode        Mode
	Title       string
	Param1Label string
	Param2Label string
	Help        string
	// Pointer marks modes whose param2 can be set by dragging on the surface.
	Pointer  bool
	Renderer Renderer
}

// Registry maps mode tags to descriptors. Lookups of unknown tags resolve
// to the fallback entry.
type Registry struct {
	entries  map[Mode]Descriptor
	order    []Mode
	fallback Mode
}

// NewRegistry returns an empty registry whose fallback is Default.
// Register a Default entry before looking anything up.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[Mode]Descriptor), fallback: Default}
}

// Register adds or replaces the entry for d.Mode.
func (r *Registry) Register(d Descriptor) {
	if _, ok := r.entries[d.Mode]; !ok {
		r.order = append(r.order, d.Mode)
	}
	r.entries[d.Mode] = d
}

// Lookup returns the entry for m, or the fallback entry when m is unknown.
func (r *Registry) Lookup(m Mode) Descriptor {
	if d, ok := r.entries[m]; ok {
		return d
	}
	if d, ok := r.entries[ParseMode(string(m))]; ok {
		return d
	}
	return r.entries[r.fallback]
}

// Has reports whether m has its own entry.
func (r *Registry) Has(m Mode) bool {
	_, ok := r.entries[m]
	return ok
}

// Modes lists registered tags in registration order.
func (r *Registry) Modes() []Mode {
	return slices.Clone(r.order)
}

// Next returns the mode registered after m, wrapping around. Step -1 walks
// backwards.
func (r *Registry) Next(m Mode, step int) Mode {
	if len(r.order) == 0 {
		return r.fallback
	}
	idx := slices.Index(r.order, r.Lookup(m).Mode)
	if idx < 0 {
		idx = 0
	}
	n := len(r.order)
	return r.order[((idx+step)%n+n)%n]
}

// Builtin returns a registry holding every built-in mode.
func Builtin() *Registry {
	r := NewRegistry()
	for _, d := range builtinDescriptors() {
		r.Register(d)
	}
	return r
}

func builtinDescriptors() []Descriptor {
	return []Descriptor{
		{
			Mode:        LongitudinalWave,
			Title:       "Longitudinal wave",
			Param1Label: "Frequency",
			Param2Label: "Amplitude",
			Help: "Sound travels through tissue as a longitudinal wave: particles oscillate back and forth along the direction of travel. " +
				"Bright bands are compressions where particles crowd together, dark gaps are rarefactions. " +
				"Raise the frequency to shorten the wavelength; raise the amplitude to push the particles further.",
			Renderer: longitudinalWave{columns: 36, rows: 9, speed: 0.08},
		},
		{
			Mode:        TransverseWave,
			Title:       "Transverse wave",
			Param1Label: "Frequency",
			Param2Label: "Amplitude",
			Help: "In a transverse wave the particles move perpendicular to the direction of travel, like a rope flicked at one end. " +
				"Ultrasound in soft tissue is longitudinal; compare both modes to see the difference.",
			Renderer: transverseWave{columns: 48, rows: 5, speed: 0.08},
		},
		{
			Mode:        Huygens,
			Title:       "Huygens' principle",
			Param1Label: "Sources",
			Param2Label: "Interference",
			Help: "Every point on a wavefront acts as a source of small spherical wavelets. " +
				"The wavelets add up into the next wavefront. With few sources the front is lumpy; with many it becomes a smooth plane. " +
				"Interference controls how strongly neighbouring wavelets disturb the resulting front.",
			Renderer: huygens{maxSources: 12, ringSpacing: 24, speed: 0.9},
		},
		{
			Mode:        Lobe,
			Title:       "Side lobes",
			Param1Label: "Apodization",
			Param2Label: "Lobe spacing",
			Help: "A transducer sends most energy along the main lobe, but some leaks sideways into side lobes. " +
				"Echoes returning through a side lobe are placed on the main beam axis and show up as artifacts. " +
				"Apodization drives the outer elements more weakly, shrinking the side lobes.",
			Renderer: lobe{mainHalfWidth: 12, minSpacing: 25, maxSpacing: 60},
		},
		{
			Mode:        DopplerShift,
			Title:       "Doppler shift",
			Param1Label: "Flow velocity",
			Param2Label: "Doppler angle",
			Help: "Moving blood changes the frequency of the returning echo. The shift is largest when the beam is parallel to the flow " +
				"and vanishes at 90 degrees, because only the velocity component along the beam counts. " +
				"Drag on the picture to aim the beam.",
			Pointer:  true,
			Renderer: doppler{maxVelocity: 100, transmitMHz: 5, soundSpeed: 1540, particles: 28},
		},
		{
			Mode:        Aliasing,
			Title:       "Aliasing",
			Param1Label: "Peak velocity",
			Param2Label: "PRF",
			Help: "Pulsed Doppler samples the signal once per pulse. Shifts above half the pulse repetition frequency (the Nyquist limit) " +
				"cannot be measured and wrap around to the other side of the baseline. Raise the PRF or lower the velocity to remove it.",
			Renderer: aliasing{maxVelocity: 2.0, minPRF: 2, maxPRF: 12, transmitMHz: 3, soundSpeed: 1540},
		},
		{
			Mode:        BeamForming,
			Title:       "Beam forming",
			Param1Label: "Focal depth",
			Param2Label: "Aperture",
			Help: "An array fires its elements with small delays so the wavelets arrive at the focus together. " +
				"Outer elements fire first because their path is longest. The beam is narrowest at the focal depth. " +
				"A wider aperture gives a tighter focus.",
			Renderer: beamForming{elements: 16, minDepthCM: 1, maxDepthCM: 16, maxApertureMM: 40},
		},
		{
			Mode:        Positioning,
			Title:       "Probe positioning",
			Param1Label: "Rotation",
			Param2Label: "Marker offset",
			Help: "Rotating the probe rotates the imaging plane through the structure. " +
				"The marker shows which side of the screen matches the orientation notch on the probe.",
			Renderer: positioning{},
		},
		{
			Mode:        Attenuation,
			Title:       "Attenuation",
			Param1Label: "Frequency",
			Param2Label: "Depth",
			Help: "Sound loses energy as it travels: about 0.5 dB per centimetre per megahertz in soft tissue. " +
				"Higher frequencies give better resolution but cannot reach as deep.",
			Renderer: attenuation{coefficient: 0.5, minMHz: 1, maxMHz: 15, maxDepthCM: 20},
		},
		{
			Mode:        Refraction,
			Title:       "Refraction",
			Param1Label: "Speed ratio",
			Param2Label: "Incidence angle",
			Help: "When sound crosses into a medium with a different speed at an oblique angle it bends (Snell's law). " +
				"Past the critical angle no sound is transmitted and all of it reflects.",
			Renderer: refraction{minRatio: 0.5, maxRatio: 1.5, maxIncidence: 80},
		},
		{
			Mode:        Reverberation,
			Title:       "Reverberation",
			Param1Label: "Reflector gap",
			Param2Label: "Reflectivity",
			Help: "Two strong parallel reflectors bounce the pulse back and forth. Each round trip returns a further echo, " +
				"so the image shows equally spaced copies that fade with depth.",
			Renderer: reverberation{maxEchoes: 8},
		},
		{
			Mode:        Default,
			Title:       "Sine wave",
			Param1Label: "Frequency",
			Param2Label: "Amplitude",
			Help:        "A plain sine wave. Frequency sets how many cycles fit across the picture; amplitude sets its height.",
			Renderer:    sineWave{maxCycles: 10, speed: 0.05},
		},
	}
}
