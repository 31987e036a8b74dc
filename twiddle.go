package fftanalyzer

import "math"

// w returns the unit-modulus twiddle factor exp(-2*pi*i*k/n).
func w(k, n int) complex64 {
	s, c := math.Sincos(-2.0 * math.Pi * float64(k) / float64(n))
	return complex(float32(c), float32(s))
}

func conj64(c complex64) complex64 {
	return complex(real(c), -imag(c))
}
