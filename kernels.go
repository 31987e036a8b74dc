package fftanalyzer

import "math"

// sab returns sin(pi*a/b); cab returns cos(pi*a/b). Named after the
// angle-fraction arguments the fixed kernels below are built from.
func sab(a, b float64) float32 { return float32(math.Sin(math.Pi * a / b)) }
func cab(a, b float64) float32 { return float32(math.Cos(math.Pi * a / b)) }

// kernel is a pure function computing the DFT of a fixed-size batch
// of independent transforms held in structure-of-arrays form.
type kernel func(x, X []lbatch)

// kernelForSize returns the fixed kernel for one of the supported
// small sizes, or nil if n isn't one of them.
func kernelForSize(n int) kernel {
	switch n {
	case 1:
		return kernel1
	case 2:
		return kernel2
	case 3:
		return kernel3
	case 4:
		return kernel4
	case 5:
		return kernel5
	case 6:
		return kernel6
	case 8:
		return kernel8
	default:
		return nil
	}
}

func kernel1(x, X []lbatch) {
	X[0] = x[0]
}

func kernel2(x, X []lbatch) {
	X[0] = x[0].add(x[1])
	X[1] = x[0].sub(x[1])
}

func kernel3(x, X []lbatch) {
	s := sab(1, 3)
	t0 := x[1].sub(x[2]).scale(s).mulI()
	u0 := x[1].add(x[2])
	u1 := x[0].sub(u0.scale(0.5))
	X[0] = x[0].add(u0)
	X[1] = u1.sub(t0)
	X[2] = u1.add(t0)
}

func kernel4(x, X []lbatch) {
	t0 := x[0].add(x[2])
	t1 := x[3].add(x[1])
	u0 := x[0].sub(x[2])
	u1 := x[3].sub(x[1]).mulI()
	X[0] = t0.add(t1)
	X[1] = u0.add(u1)
	X[2] = t0.sub(t1)
	X[3] = u0.sub(u1)
}

func kernel5(x, X []lbatch) {
	const a = 0.25
	b := sab(2, 5)
	c := sab(1, 5)
	d := cab(1, 5) - a

	t0 := x[1].add(x[4])
	t1 := x[2].add(x[3])
	t2 := t0.sub(t1).scale(d)
	u0 := x[1].sub(x[4])
	u1 := x[2].sub(x[3])
	u2 := t0.add(t1)
	u3 := x[0].sub(u2.scale(a))
	t4 := u3.add(t2)
	t5 := u0.scale(b).add(u1.scale(c)).mulI()

	X[0] = x[0].add(u2)

	u4 := u3.sub(t2)
	u5 := u1.scale(b).sub(u0.scale(c)).mulI()

	X[1] = t4.sub(t5)
	X[2] = u4.add(u5)
	X[4] = t4.add(t5)
	X[3] = u4.sub(u5)
}

func kernel6(x, X []lbatch) {
	const a = 0.5
	b := sab(1, 3)

	t0 := x[0].add(x[3])
	t1 := x[4].add(x[1])
	t2 := x[2].add(x[5])
	t3 := t0.sub(t1.add(t2).scale(a))
	t4 := t1.sub(t2).mulI()

	u0 := x[0].sub(x[3])
	u1 := x[4].sub(x[1])
	u2 := x[2].sub(x[5])
	u3 := u0.sub(u1.add(u2).scale(a))
	u4 := u1.sub(u2).mulI()

	X[0] = t0.add(t1).add(t2)
	X[1] = u3.add(u4.scale(b))
	X[4] = t3.add(t4.scale(b))
	X[3] = u0.add(u1).add(u2)
	X[5] = u3.sub(u4.scale(b))
	X[2] = t3.sub(t4.scale(b))
}

func kernel8(x, X []lbatch) {
	a := sab(1, 4)

	t0 := x[7].sub(x[3])
	t1 := x[1].sub(x[5])
	t2 := x[0].add(x[4])
	t3 := x[2].add(x[6])
	t4 := t0.add(t1).scale(a)
	u0 := x[7].add(x[3])
	u1 := x[1].add(x[5])
	u2 := x[0].sub(x[4])
	u3 := x[2].sub(x[6])
	u4 := t0.sub(t1).scale(a)
	t5 := t2.add(t3)
	t6 := u2.add(t4)
	t7 := u0.add(u1)
	t8 := u4.sub(u3).mulI()
	u5 := t2.sub(t3)
	u6 := u2.sub(t4)
	u7 := u0.sub(u1).mulI()
	u8 := u4.add(u3).mulI()

	X[0] = t5.add(t7)
	X[1] = t6.add(t8)
	X[2] = u5.add(u7)
	X[3] = u6.add(u8)
	X[4] = t5.sub(t7)
	X[7] = t6.sub(t8)
	X[6] = u5.sub(u7)
	X[5] = u6.sub(u8)
}
