package fftanalyzer

import "fmt"

// kernelPlan wraps one of the fixed-size kernels (§4.2) with the
// gather/scatter driver (§4.3), giving it the uniform Plan interface.
type kernelPlan struct {
	planBase
	n int
	k kernel
}

func newKernelPlan(n int) *kernelPlan {
	p := &kernelPlan{n: n, k: kernelForSize(n)}
	p.planBase = planBase{xformMany: p.XformMany}
	return p
}

func (p *kernelPlan) Size() int    { return p.n }
func (p *kernelPlan) Name() string { return fmt.Sprintf("Kernel<%d>", p.n) }

func (p *kernelPlan) XformMany(in, out []complex64, istep, istep2, ostep, ostep2, count int) {
	gatherScatter(p.k, p.n, in, out, istep, istep2, ostep, ostep2, count)
}

// gatherScatter drives a fixed-size kernel across count independent
// transforms, processing batches greedily in widths 8, then 4, then
// 1 until count is exhausted. When count==1 the batch strides don't
// need to mean anything, so they're forced to zero.
func gatherScatter(k kernel, n int, input, output []complex64, istep, istep2, ostep, ostep2, count int) {
	if count == 1 {
		istep2 = 0
		ostep2 = 0
	}

	inOff, outOff := 0, 0
	remaining := count
	for _, width := range [3]int{8, 4, 1} {
		for remaining >= width {
			gatherScatterBatch(k, n, width, input[inOff:], istep, istep2, output[outOff:], ostep, ostep2)
			inOff += width * istep2
			outOff += width * ostep2
			remaining -= width
		}
	}
}

// gatherScatterBatch gathers width strided lanes into an SoA batch
// per position a in [0,n), invokes the kernel once across the whole
// batch, and scatters the results back out.
func gatherScatterBatch(k kernel, n, width int, input []complex64, istep, istep2 int, output []complex64, ostep, ostep2 int) {
	x := make([]lbatch, n)
	X := make([]lbatch, n)

	for a := 0; a < n; a++ {
		lane := newBatch(width)
		for b := 0; b < width; b++ {
			c := input[a*istep+b*istep2]
			lane.re[b] = real(c)
			lane.im[b] = imag(c)
		}
		x[a] = lane
		X[a] = newBatch(width)
	}

	k(x, X)

	for a := 0; a < n; a++ {
		for b := 0; b < width; b++ {
			output[a*ostep+b*ostep2] = X[a].at(b)
		}
	}
}
