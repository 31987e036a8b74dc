// Package window applies windowing functions ahead of a transform and
// converts the result into a power spectrum for display, the two
// "window function and dB mapping" collaborators the engine leaves as
// thin interfaces.
package window

import "math"

// Kind names a window function.
type Kind int

const (
	Rectangular Kind = iota
	Hanning
	Hamming
	Blackman
)

// Apply multiplies x in place by the named window function and
// returns x for chaining.
func Apply(x []complex64, kind Kind) []complex64 {
	n := len(x)
	for i := 0; i < n; i++ {
		w := coefficient(kind, i, n)
		x[i] = complex(real(x[i])*float32(w), imag(x[i])*float32(w))
	}
	return x
}

func coefficient(kind Kind, i, n int) float64 {
	if n <= 1 {
		return 1.0
	}
	phase := 2 * math.Pi * float64(i) / float64(n-1)
	switch kind {
	case Rectangular:
		return 1.0
	case Hanning:
		return 0.5 * (1 - math.Cos(phase))
	case Hamming:
		return 0.54 - 0.46*math.Cos(phase)
	case Blackman:
		return 0.42 - 0.5*math.Cos(phase) + 0.08*math.Cos(2*phase)
	default:
		return 1.0
	}
}

// PowerSpectrum computes |x[i]|^2 for every bin of a transform result.
func PowerSpectrum(x []complex64) []float32 {
	out := make([]float32, len(x))
	for i, c := range x {
		re, im := real(c), imag(c)
		out[i] = re*re + im*im
	}
	return out
}

// ToDB converts a power spectrum to decibels relative to ref, flooring
// at floorDB to keep -Inf out of a waterfall's color scale.
func ToDB(power []float32, ref, floorDB float32) []float32 {
	out := make([]float32, len(power))
	for i, p := range power {
		if p <= 0 {
			out[i] = floorDB
			continue
		}
		db := 10 * float32(math.Log10(float64(p/ref)))
		if db < floorDB {
			db = floorDB
		}
		out[i] = db
	}
	return out
}
