package fftanalyzer

import (
	"fmt"
	"sync"
)

// Plan is the uniform operation set every DFT algorithm exposes,
// regardless of which one was selected for a given size.
type Plan interface {
	// Size returns the transform length N this plan was built for.
	Size() int
	// Name identifies the algorithm; diagnostic only.
	Name() string
	// Xform runs a single transform over contiguous buffers.
	Xform(in, out []complex64)
	// XformInplace runs a single transform in place. The default
	// implementation copies the buffer and delegates to XformMany;
	// algorithms that can do better override it.
	XformInplace(buf []complex64)
	// XformMany is the primitive every algorithm ultimately
	// implements: count transforms of length Size(), with inner
	// stride istep/ostep and batch stride istep2/ostep2.
	XformMany(in, out []complex64, istep, istep2, ostep, ostep2, count int)
}

// xformManyFunc lets planBase dispatch Xform/XformInplace to the
// concrete plan's XformMany without each plan needing to reimplement
// the single-transform conveniences.
type xformManyFunc func(in, out []complex64, istep, istep2, ostep, ostep2, count int)

type planBase struct {
	xformMany xformManyFunc
}

func (b planBase) Xform(in, out []complex64) {
	b.xformMany(in, out, 1, 0, 1, 0, 1)
}

func (b planBase) XformInplace(buf []complex64) {
	tmp := make([]complex64, len(buf))
	copy(tmp, buf)
	b.xformMany(tmp, buf, 1, 0, 1, 0, 1)
}

// Engine owns a process-wide (or, for a caller-constructed instance,
// hermetically test-owned) factor cache and plan cache. Plan
// construction may recursively call back into the same engine for
// sub-plans; the cache lock is always released before that recursive
// construction happens, and reacquired only to check-then-insert the
// finished plan, so two threads racing on the same N never deadlock
// and the loser simply discards its redundant plan.
type Engine struct {
	factors *factorCache
	native  NativeBackend

	mu    sync.Mutex
	plans map[int]Plan
}

// NewEngine returns a fresh engine with its own caches, independent
// of the process-wide default. Useful for hermetic tests.
func NewEngine() *Engine {
	return &Engine{
		factors: newFactorCache(),
		plans:   make(map[int]Plan),
	}
}

// FindDFT returns the canonical plan for size n, constructing and
// caching it on first request. n must be positive.
func (e *Engine) FindDFT(n int) Plan {
	if n <= 0 {
		panic(fmt.Sprintf("fftanalyzer: transform length must be positive, got %d", n))
	}

	e.mu.Lock()
	if p, ok := e.plans[n]; ok {
		e.mu.Unlock()
		return p
	}
	e.mu.Unlock()

	plan := e.buildPlan(n)

	e.mu.Lock()
	defer e.mu.Unlock()
	if p, ok := e.plans[n]; ok {
		return p
	}
	e.plans[n] = plan
	return plan
}

// buildPlan selects an algorithm for n per the selection rules:
// direct kernels for the hard-coded sizes, mixed-radix for composite
// n, Rader for prime n whose n-1 is composite, Bluestein otherwise.
func (e *Engine) buildPlan(n int) Plan {
	if e.native != nil {
		plan, err := e.native.Plan(n)
		if err == nil {
			return plan
		}
		if err != ErrBackendUnavailable {
			panic(fmt.Sprintf("fftanalyzer: native backend failed for n=%d: %v", n, err))
		}
	}

	if kernelForSize(n) != nil {
		return newKernelPlan(n)
	}

	factors, count := e.factors.factorsAll(n)
	switch {
	case count >= 2:
		return newMixedRadixPlan(e, n, factors[0])
	case count == 1:
		_, countM1 := e.factors.factorsAll(n - 1)
		if countM1 >= 2 {
			return newRaderPlan(e, n)
		}
		nb := nextPow2(2*n - 1)
		return newBluesteinPlan(e, n, nb)
	default:
		// Unreachable for n>=2 given the seeded factor cache; guarded
		// only so a future factor-cache bug fails loudly instead of
		// silently returning a wrong plan.
		panic(fmt.Sprintf("fftanalyzer: no factorization found for n=%d", n))
	}
}

var defaultEngine = NewEngine()

// FindDFT returns the canonical plan for size n from the process-wide
// default engine.
func FindDFT(n int) Plan { return defaultEngine.FindDFT(n) }
