// Package cue builds the short click played when the viewer changes a
// parameter or toggles an overlay.
package cue

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// SampleRate is the rate every cue is produced at.
const SampleRate = 48000

// Click synthesizes a decaying sine burst at freq Hz lasting d. The burst
// starts at zero and is faded out over its final millisecond so it never
// pops.
func Click(sampleRate int, freq float64, d time.Duration) []float32 {
	n := int(math.Round(float64(sampleRate) * d.Seconds()))
	if n <= 0 || sampleRate <= 0 {
		return nil
	}
	samples := make([]float32, n)
	fade := sampleRate / 1000
	if fade > n {
		fade = n
	}
	decay := 5.0 / float64(n)
	for i := range samples {
		env := math.Exp(-decay * float64(i))
		if tail := n - i; tail <= fade {
			env *= float64(tail-1) / float64(fade)
		}
		v := 0.6 * env * math.Sin(2*math.Pi*freq*float64(i)/float64(sampleRate))
		samples[i] = float32(v)
	}
	return samples
}

// EncodeStereo16 converts mono samples to interleaved little-endian 16-bit
// stereo PCM, clamping to [-1,1].
func EncodeStereo16(samples []float32) []byte {
	pcm := make([]byte, len(samples)*4)
	for i, s := range samples {
		if s > 1 {
			s = 1
		} else if s < -1 {
			s = -1
		}
		v := int16(s * 32767)
		p := pcm[i*4:]
		p[0] = byte(v)
		p[1] = byte(v >> 8)
		p[2] = p[0]
		p[3] = p[1]
	}
	return pcm
}

// DecodeStereo16 averages interleaved 16-bit stereo PCM down to mono. A
// trailing partial frame is dropped.
func DecodeStereo16(pcm []byte) []float32 {
	frameCount := len(pcm) / 4
	if frameCount == 0 {
		return nil
	}
	samples := make([]float32, frameCount)
	for i := 0; i < frameCount; i++ {
		offset := i * 4
		left := int16(binary.LittleEndian.Uint16(pcm[offset : offset+2]))
		right := int16(binary.LittleEndian.Uint16(pcm[offset+2 : offset+4]))
		samples[i] = (float32(left) + float32(right)) * (0.5 / 32768.0)
	}
	return samples
}

// Decode reads a WAV stream resampled to sampleRate and returns it as mono
// samples.
func Decode(sampleRate int, r io.ReadSeeker) ([]float32, error) {
	stream, err := wav.DecodeWithSampleRate(sampleRate, r)
	if err != nil {
		return nil, fmt.Errorf("decoding wav: %w", err)
	}
	decoded, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("reading decoded wav: %w", err)
	}
	samples := DecodeStereo16(decoded)
	if len(samples) == 0 {
		return nil, fmt.Errorf("wav has no usable samples")
	}
	return samples, nil
}

// Load decodes the WAV file at path.
func Load(sampleRate int, path string) ([]float32, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	samples, err := Decode(sampleRate, bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%q: %w", path, err)
	}
	return samples, nil
}

// Set holds the PCM for each kind of cue.
type Set struct {
	Param  []byte
	Toggle []byte
}

// NewSet builds the default cues, replacing the parameter click with the
// samples from clickWAV when it is non-empty.
func NewSet(clickWAV string) (Set, error) {
	set := Set{
		Param:  EncodeStereo16(Click(SampleRate, 1400, 25*time.Millisecond)),
		Toggle: EncodeStereo16(Click(SampleRate, 700, 40*time.Millisecond)),
	}
	if clickWAV == "" {
		return set, nil
	}
	samples, err := Load(SampleRate, clickWAV)
	if err != nil {
		return set, err
	}
	set.Param = EncodeStereo16(samples)
	return set, nil
}
