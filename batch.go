package fftanalyzer

// lbatch is a structure-of-arrays representation of a width-L batch
// of independent complex64 lanes: separate real and imaginary
// vectors so a kernel can apply the same butterfly arithmetic to all
// L lanes at once. Go has no array-length type parameter, so the
// width lives in len(re)==len(im) rather than as a generic constant;
// gather.go only ever constructs these at widths 8, 4 and 1.
type lbatch struct {
	re, im []float32
}

func newBatch(width int) lbatch {
	return lbatch{re: make([]float32, width), im: make([]float32, width)}
}

func (b lbatch) width() int { return len(b.re) }

// splat returns a batch with every lane set to the same complex
// value. Used to verify kernels broadcast identically across all
// lanes (see kernels_test.go).
func splat(width int, c complex64) lbatch {
	b := newBatch(width)
	for i := range b.re {
		b.re[i] = real(c)
		b.im[i] = imag(c)
	}
	return b
}

func (b lbatch) add(o lbatch) lbatch {
	r := newBatch(b.width())
	for i := range r.re {
		r.re[i] = b.re[i] + o.re[i]
		r.im[i] = b.im[i] + o.im[i]
	}
	return r
}

func (b lbatch) sub(o lbatch) lbatch {
	r := newBatch(b.width())
	for i := range r.re {
		r.re[i] = b.re[i] - o.re[i]
		r.im[i] = b.im[i] - o.im[i]
	}
	return r
}

func (b lbatch) scale(s float32) lbatch {
	r := newBatch(b.width())
	for i := range r.re {
		r.re[i] = b.re[i] * s
		r.im[i] = b.im[i] * s
	}
	return r
}

// mulI multiplies every lane by the imaginary unit.
func (b lbatch) mulI() lbatch {
	r := newBatch(b.width())
	for i := range r.re {
		r.re[i] = -b.im[i]
		r.im[i] = b.re[i]
	}
	return r
}

func (b lbatch) at(i int) complex64 {
	return complex(b.re[i], b.im[i])
}
