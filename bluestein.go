package fftanalyzer

import "fmt"

// bluesteinPlan implements Bluestein's (chirp-z) algorithm: an
// arbitrary-length N DFT reduced to a power-of-two-length convolution
// of length nb >= 2N-1.
type bluesteinPlan struct {
	planBase
	n, nb  int
	w0, w1 []complex64
	dftNb  Plan
}

func newBluesteinPlan(e *Engine, n, nb int) *bluesteinPlan {
	w0 := make([]complex64, n)
	for k := 0; k < n; k++ {
		w0[k] = w(k*k, 2*n)
	}

	w1 := make([]complex64, nb)
	invNb := 1.0 / float32(nb)
	for k := 0; k < n; k++ {
		w1[k] = w0[k] * complex(invNb, 0)
	}
	for k := 1; k < n; k++ {
		w1[nb-k] = w1[k]
	}

	dftNb := e.FindDFT(nb)
	dftNb.XformInplace(w1)

	plan := &bluesteinPlan{n: n, nb: nb, w0: w0, w1: w1, dftNb: dftNb}
	plan.planBase = planBase{xformMany: plan.XformMany}
	return plan
}

func (p *bluesteinPlan) Size() int    { return p.n }
func (p *bluesteinPlan) Name() string { return fmt.Sprintf("Bluestein(%d)", p.n) }

func (p *bluesteinPlan) XformMany(input, output []complex64, istep, istep2, ostep, ostep2, count int) {
	n, nb := p.n, p.nb

	scratchA := make([]complex64, nb*count)
	scratchB := make([]complex64, nb*count)

	for i := 0; i < count; i++ {
		for k := 0; k < n; k++ {
			scratchA[k+i*nb] = input[k*istep+i*istep2] * p.w0[k]
		}
	}

	p.dftNb.XformMany(scratchA, scratchB, 1, nb, 1, nb, count)

	for i := 0; i < count; i++ {
		for j := 0; j < nb; j++ {
			idx := j + i*nb
			scratchB[idx] = conj64(scratchB[idx]) * p.w1[j]
		}
	}

	p.dftNb.XformMany(scratchB, scratchA, 1, nb, 1, nb, count)

	for i := 0; i < count; i++ {
		for k := 0; k < n; k++ {
			output[k*ostep+i*ostep2] = conj64(scratchA[k+i*nb]) * p.w0[k]
		}
	}
}
