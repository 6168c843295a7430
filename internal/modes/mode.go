// Package modes holds the closed set of simulation modes, their static
// descriptors, and the per-mode drawing algorithms.
package modes

import "strings"

// Mode is the tag selecting which phenomenon is drawn.
type Mode string

const (
	LongitudinalWave Mode = "longitudinal-wave"
	TransverseWave   Mode = "transverse-wave"
	Huygens          Mode = "huygens"
	Lobe             Mode = "lobe"
	DopplerShift     Mode = "doppler-shift"
	Aliasing         Mode = "aliasing"
	BeamForming      Mode = "beam-forming"
	Positioning      Mode = "positioning"
	Attenuation      Mode = "attenuation"
	Refraction       Mode = "refraction"
	Reverberation    Mode = "reverberation"
	Default          Mode = "default"
)

// ParseMode normalizes a host-supplied tag. "DopplerShift", "doppler_shift"
// and "Doppler Shift" all map to DopplerShift. Unrecognized input is
// returned normalized; Registry.Lookup resolves it to Default.
func ParseMode(s string) Mode {
	s = strings.TrimSpace(s)
	var b strings.Builder
	for i, r := range s {
		switch {
		case r == '_' || r == ' ' || r == '-':
			b.WriteByte('-')
		case r >= 'A' && r <= 'Z':
			if i > 0 && !strings.ContainsRune("-_ ", rune(s[i-1])) && !(s[i-1] >= 'A' && s[i-1] <= 'Z') {
				b.WriteByte('-')
			}
			b.WriteRune(r + ('a' - 'A'))
		default:
			b.WriteRune(r)
		}
	}
	return Mode(b.String())
}

func (m Mode) String() string { return string(m) }
