package fftanalyzer

import "fmt"

// Convolve computes the discrete linear convolution of x and y by
// zero-padding both to the length of their combined linear
// convolution and running it through FindDFT. Unlike a radix-2-only
// convolution helper, this works for any len(x), len(y): FindDFT
// dispatches to whichever algorithm the resulting length needs.
func Convolve(x, y []complex64) ([]complex64, error) {
	if len(x) == 0 && len(y) == 0 {
		return nil, nil
	}
	n := len(x) + len(y) - 1
	if n <= 0 {
		return nil, nil
	}
	xp := zeroPad(x, n)
	yp := zeroPad(y, n)
	if err := FastConvolve(xp, yp); err != nil {
		return nil, err
	}
	return xp, nil
}

// FastConvolve computes the discrete convolution of x and y in place,
// storing the result in x and clearing y. x and y must already be the
// same length and zero-padded to at least len(x)+len(y)-1 of useful
// data, the way Convolve prepares them.
func FastConvolve(x, y []complex64) error {
	if len(x) != len(y) {
		return &InputSizeError{Name: "y", Expected: fmt.Sprintf("%d", len(x)), Got: len(y)}
	}
	if len(x) == 0 {
		return nil
	}
	convolve(x, y)
	return nil
}

// convolve multiplies x and y in the frequency domain and writes the
// product's inverse transform back into x. The inverse is realized by
// conjugating around the same forward plan twice, per the engine's
// "no first-class inverse" design: conj, forward, conj, scale.
func convolve(x, y []complex64) {
	n := len(x)
	plan := FindDFT(n)

	plan.XformInplace(x)
	plan.XformInplace(y)

	for i := range x {
		x[i] *= y[i]
		y[i] = 0
	}

	for i := range x {
		x[i] = conj64(x[i])
	}
	plan.XformInplace(x)

	invN := complex(1.0/float32(n), float32(0))
	for i := range x {
		x[i] = conj64(x[i]) * invN
	}
}
