// Package audio defines the capture-device collaborator the engine
// expects upstream of a transform: something that hands over frames of
// samples at a known rate. No OS audio binding is implemented here —
// real capture is explicitly out of scope for this module — but a
// synthetic tone source is provided so the analyzer package and
// cmd/fftanalyze have something concrete to drive.
package audio

import "math"

// Source yields successive frames of audio samples.
type Source interface {
	// SampleRate returns the source's sampling rate in Hz.
	SampleRate() float64
	// Read fills buf with the next len(buf) samples and returns the
	// number of samples actually written. A return value less than
	// len(buf) signals end of stream.
	Read(buf []complex64) int
}

// ToneSource is a synthetic Source generating a single sine tone,
// standing in for a real capture device in tests and demos.
type ToneSource struct {
	sampleRate float64
	freqHz     float64
	phase      float64
}

// NewToneSource returns a ToneSource producing a continuous sine wave
// at freqHz, sampled at sampleRate.
func NewToneSource(sampleRate, freqHz float64) *ToneSource {
	return &ToneSource{sampleRate: sampleRate, freqHz: freqHz}
}

func (s *ToneSource) SampleRate() float64 { return s.sampleRate }

func (s *ToneSource) Read(buf []complex64) int {
	step := 2 * math.Pi * s.freqHz / s.sampleRate
	for i := range buf {
		buf[i] = complex(float32(math.Sin(s.phase)), 0)
		s.phase += step
	}
	// Keep phase bounded; sin is periodic so this doesn't alter output.
	s.phase = math.Mod(s.phase, 2*math.Pi)
	return len(buf)
}
