package fftanalyzer

import (
	"math"
	"math/rand"
)

// slowDFT is the simplest and slowest DFT, used as an O(N^2) ground
// truth for correctness properties.
func slowDFT(x []complex64) []complex64 {
	n := len(x)
	y := make([]complex64, n)
	for k := 0; k < n; k++ {
		var acc complex128
		for j := 0; j < n; j++ {
			phi := -2.0 * math.Pi * float64(k*j) / float64(n)
			s, c := math.Sincos(phi)
			acc += complex(float64(real(x[j])), float64(imag(x[j]))) * complex(c, s)
		}
		y[k] = complex(float32(real(acc)), float32(imag(acc)))
	}
	return y
}

func complexRand64(n int) []complex64 {
	x := make([]complex64, n)
	for i := range x {
		x[i] = complex(float32(rand.NormFloat64()), float32(rand.NormFloat64()))
	}
	return x
}

func copyVec(x []complex64) []complex64 {
	y := make([]complex64, len(x))
	copy(y, x)
	return y
}

func cabs(c complex64) float64 {
	re, im := float64(real(c)), float64(imag(c))
	return math.Sqrt(re*re + im*im)
}

// maxRelErr returns the largest per-element relative error between a
// and b, normalized by the magnitude of the reference vector a.
func maxRelErr(a, b []complex64) float64 {
	var norm float64
	for _, v := range a {
		if m := cabs(v); m > norm {
			norm = m
		}
	}
	if norm == 0 {
		norm = 1
	}
	var worst float64
	for i := range a {
		d := cabs(a[i] - b[i])
		if e := d / norm; e > worst {
			worst = e
		}
	}
	return worst
}
