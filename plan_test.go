package fftanalyzer

import (
	"math"
	"math/cmplx"
	"testing"

	gonumfft "gonum.org/v1/gonum/dsp/fourier"
)

// TestCorrectnessVsReference checks property §8.1: for every
// supported N in a representative range, the engine's output matches
// an O(N^2) reference within eps*log2(N).
func TestCorrectnessVsReference(t *testing.T) {
	const eps = 1e-5
	for n := 1; n <= 64; n++ {
		x := complexRand64(n)
		want := slowDFT(x)

		got := make([]complex64, n)
		FindDFT(n).Xform(x, got)

		tol := eps * math.Max(1, math.Log2(float64(n)))
		if e := maxRelErr(want, got); e > tol {
			t.Errorf("n=%d: relative error %v exceeds tolerance %v", n, e, tol)
		}
	}
}

// TestCorrectnessVsGonum cross-checks a size too large for the O(N^2)
// reference to be practical against gonum's independent CmplxFFT,
// including the 2048-point audio-style scenario from §8.
func TestCorrectnessVsGonum(t *testing.T) {
	for _, n := range []int{512, 2048, 3000} {
		x := complexRand64(n)

		want128 := make([]complex128, n)
		for i, c := range x {
			want128[i] = complex(float64(real(c)), float64(imag(c)))
		}
		gonumfft.NewCmplxFFT(n).Coefficients(want128, want128)

		got := make([]complex64, n)
		FindDFT(n).Xform(x, got)

		var worst float64
		for i := range got {
			d := cmplx.Abs(complex(float64(real(got[i])), float64(imag(got[i]))) - want128[i])
			norm := cmplx.Abs(want128[i])
			if norm == 0 {
				norm = 1
			}
			if e := d / norm; e > worst {
				worst = e
			}
		}
		if tol := 1e-4 * math.Log2(float64(n)); worst > tol {
			t.Errorf("n=%d: relative error vs gonum %v exceeds tolerance %v", n, worst, tol)
		}
	}
}

// TestBatchedEquivalence checks property §8.2: one xform_many call
// with count=C equals C independent count=1 calls.
func TestBatchedEquivalence(t *testing.T) {
	for _, n := range []int{4, 5, 6, 7, 9, 12} {
		const count = 5
		x := complexRand64(n * count)
		plan := FindDFT(n)

		batched := make([]complex64, n*count)
		plan.XformMany(x, batched, 1, n, 1, n, count)

		individual := make([]complex64, n*count)
		for i := 0; i < count; i++ {
			plan.XformMany(x[i*n:(i+1)*n], individual[i*n:(i+1)*n], 1, 0, 1, 0, 1)
		}

		if e := maxRelErr(individual, batched); e > 1e-6 {
			t.Errorf("n=%d: batched and per-call results differ, relative error %v", n, e)
		}
	}
}

// TestStrideEquivalence checks property §8.3: output at a
// non-contiguous stride matches the contiguous-layout result at the
// corresponding position.
func TestStrideEquivalence(t *testing.T) {
	for _, n := range []int{4, 5, 7, 8} {
		const count = 3
		const ostep2mul = 2 // extra gap between transforms in output
		x := complexRand64(n * count)
		plan := FindDFT(n)

		contiguous := make([]complex64, n*count)
		plan.XformMany(x, contiguous, 1, n, 1, n, count)

		strided := make([]complex64, n*count*ostep2mul)
		plan.XformMany(x, strided, 1, n, 1, n*ostep2mul, count)

		for i := 0; i < count; i++ {
			for a := 0; a < n; a++ {
				want := contiguous[a+i*n]
				got := strided[a+i*n*ostep2mul]
				if cabs(want-got) > 1e-5 {
					t.Errorf("n=%d i=%d a=%d: strided=%v contiguous=%v", n, i, a, got, want)
				}
			}
		}
	}
}

// TestInplaceEquivalence checks property §8.4.
func TestInplaceEquivalence(t *testing.T) {
	for n := 1; n <= 20; n++ {
		x := complexRand64(n)
		plan := FindDFT(n)

		out := make([]complex64, n)
		plan.Xform(copyVec(x), out)

		inplace := copyVec(x)
		plan.XformInplace(inplace)

		if e := maxRelErr(out, inplace); e > 1e-6 {
			t.Errorf("n=%d: xform_inplace differs from xform, relative error %v", n, e)
		}
	}
}

// TestPlanIdentity checks property §8.5: repeated FindDFT(n) calls
// return the same underlying plan.
func TestPlanIdentity(t *testing.T) {
	e := NewEngine()
	for _, n := range []int{1, 2, 7, 12, 17, 100} {
		p1 := e.FindDFT(n)
		p2 := e.FindDFT(n)
		if p1 != p2 {
			t.Errorf("n=%d: FindDFT returned different plan instances", n)
		}
	}
}

// TestLiteralScenarios checks the concrete input/output examples in
// §8.
func TestLiteralScenarios(t *testing.T) {
	check := func(name string, x, want []complex64, tol float64) {
		t.Helper()
		got := make([]complex64, len(x))
		FindDFT(len(x)).Xform(x, got)
		if e := maxRelErr(want, got); e > tol {
			t.Errorf("%s: got %v, want %v (relative error %v)", name, got, want, e)
		}
	}

	check("N=1", []complex64{3 + 4i}, []complex64{3 + 4i}, 1e-6)
	check("N=2", []complex64{1, 1}, []complex64{2, 0}, 1e-6)
	check("N=4 impulse", []complex64{1, 0, 0, 0}, []complex64{1, 1, 1, 1}, 1e-6)
	check("N=4 constant", []complex64{1, 1, 1, 1}, []complex64{4, 0, 0, 0}, 1e-6)

	x5 := []complex64{1, 2, 3, 4, 5}
	got5 := make([]complex64, 5)
	FindDFT(5).Xform(x5, got5)
	if cabs(got5[0]-15) > 1e-4 {
		t.Errorf("N=5: X[0]=%v, want 15", got5[0])
	}
	if math.Abs(cabs(got5[1])-4.253) > 1e-2 || math.Abs(cabs(got5[4])-4.253) > 1e-2 {
		t.Errorf("N=5: |X[1]|=%v |X[4]|=%v, want ~4.253", cabs(got5[1]), cabs(got5[4]))
	}
	if math.Abs(cabs(got5[2])-2.629) > 1e-2 || math.Abs(cabs(got5[3])-2.629) > 1e-2 {
		t.Errorf("N=5: |X[2]|=%v |X[3]|=%v, want ~2.629", cabs(got5[2]), cabs(got5[3]))
	}

	check("N=7 impulse (Rader)", []complex64{1, 0, 0, 0, 0, 0, 0},
		[]complex64{1, 1, 1, 1, 1, 1, 1}, 1e-5)
}

// TestPrimeUsesRader checks §8's N=11 prime/Rader scenario against
// the O(N^2) reference with the tolerance spec.md names explicitly.
func TestPrimeUsesRader(t *testing.T) {
	const n = 11
	x := complexRand64(n)
	want := slowDFT(x)
	got := make([]complex64, n)
	FindDFT(n).Xform(x, got)
	if e := maxRelErr(want, got); e > 1e-4 {
		t.Errorf("N=11: relative error %v exceeds 1e-4", e)
	}
	if _, ok := FindDFT(n).(*raderPlan); !ok {
		t.Errorf("N=11: expected a Rader plan, got %s", FindDFT(n).Name())
	}
}

// TestAudioStyleTone reproduces the N=2048 scenario: a single dominant
// sine bin should stand far above the noise floor.
func TestAudioStyleTone(t *testing.T) {
	const n = 2048
	const bin = 50
	x := make([]complex64, n)
	for i := range x {
		x[i] = complex(float32(math.Sin(2*math.Pi*float64(bin)*float64(i)/float64(n))), 0)
	}
	out := make([]complex64, n)
	FindDFT(n).Xform(x, out)

	peak := math.Max(cabs(out[bin]), cabs(out[n-bin]))
	for k := 2; k < n-2; k++ {
		if k == bin || k == n-bin || k == bin-1 || k == bin+1 || k == n-bin-1 || k == n-bin+1 {
			continue
		}
		if db := 20 * math.Log10(cabs(out[k])/peak); db > -60 {
			t.Errorf("bin %d: %v dB above peak, want <= -60", k, db)
		}
	}
}

// TestNativeBackendNeverSelectedByDefault covers spec.md §7(b): the
// built-in selector never produces ErrBackendUnavailable since no
// native backend is installed by default.
func TestNativeBackendNeverSelectedByDefault(t *testing.T) {
	e := NewEngine()
	for _, n := range []int{1, 7, 12, 97} {
		func() {
			defer func() {
				if r := recover(); r != nil {
					t.Errorf("n=%d: unexpected panic %v", n, r)
				}
			}()
			e.FindDFT(n)
		}()
	}
}

func TestFindDFTPanicsOnNonPositive(t *testing.T) {
	for _, n := range []int{0, -1} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("FindDFT(%d): expected panic", n)
				}
			}()
			FindDFT(n)
		}()
	}
}
