package fftanalyzer

import "fmt"

// mixedRadixPlan implements the Cooley-Tukey decomposition N=p*q: a
// size-q DFT across the p columns of the input, a twiddle multiply,
// then a size-p DFT across the q rows.
type mixedRadixPlan struct {
	planBase
	n, p, q int
	wtable  []complex64
	dftP    Plan // nil when p==1
	dftQ    Plan // nil when q==1
}

func newMixedRadixPlan(e *Engine, n, p int) *mixedRadixPlan {
	q := n / p

	wtable := make([]complex64, n)
	for a := 0; a < n; a++ {
		wtable[a] = w((a%q)*(a/q), n)
	}

	var dftP, dftQ Plan
	if p > 1 {
		dftP = e.FindDFT(p)
	}
	if q > 1 {
		dftQ = e.FindDFT(q)
	}

	plan := &mixedRadixPlan{n: n, p: p, q: q, wtable: wtable, dftP: dftP, dftQ: dftQ}
	plan.planBase = planBase{xformMany: plan.XformMany}
	return plan
}

func (p *mixedRadixPlan) Size() int    { return p.n }
func (p *mixedRadixPlan) Name() string { return fmt.Sprintf("MixedRadix<%d,%d>(%d)", p.p, p.q, p.n) }

func (p *mixedRadixPlan) XformMany(in, out []complex64, istep, istep2, ostep, ostep2, count int) {
	n, pp, q := p.n, p.p, p.q

	// Column stage: pp transforms of length q per outer transform.
	if p.dftQ != nil {
		for i := 0; i < count; i++ {
			inBase := i * istep2
			outBase := i * ostep2
			p.dftQ.XformMany(in[inBase:], out[outBase:], pp*istep, istep, ostep, ostep*q, pp)
		}
	}

	// Twiddle stage.
	for i := 0; i < count; i++ {
		outBase := i * ostep2
		for b := 1; b < pp; b++ {
			for a := 1; a < q; a++ {
				idx := ostep * (b*q + a)
				out[outBase+idx] *= p.wtable[b*q+a]
			}
		}
	}

	// Row stage: q transforms of length pp, via a contiguous scratch
	// buffer since the row strides would otherwise conflict with the
	// caller's output-stride contract.
	if p.dftP != nil {
		scratch := make([]complex64, n)
		for i := 0; i < count; i++ {
			outBase := i * ostep2

			for k := 0; k < n; k++ {
				scratch[k] = out[outBase+k*ostep]
			}

			scratchIn := make([]complex64, n)
			copy(scratchIn, scratch)
			p.dftP.XformMany(scratchIn, scratch, q, 1, q, 1, q)

			for k := 0; k < n; k++ {
				out[outBase+k*ostep] = scratch[k]
			}
		}
	}
}
