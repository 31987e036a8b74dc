package fftanalyzer

import "github.com/pkg/errors"

// ErrBackendUnavailable is returned by a NativeBackend that failed to
// initialize (e.g. a missing native library). The selector treats any
// other error as fatal rather than falling back silently, so a
// half-initialized native backend can't return corrupted plans.
var ErrBackendUnavailable = errors.New("fftanalyzer: native backend unavailable")

// NativeBackend is the extension point for plugging a native FFT
// library (e.g. an FFTW binding) in behind the same Plan interface
// the built-in algorithms implement. No implementation ships with
// this module: nothing in its dependency set binds a native FFT
// library, so there's nothing concrete to wire here. An implementer
// who adds one registers it with UseNativeBackend; FindDFT then
// tries it before falling back to the built-in selection rules.
type NativeBackend interface {
	// Plan attempts to build a native plan for size n. It returns
	// ErrBackendUnavailable if the backend could not be initialized
	// for this size, in which case the caller falls back to the
	// built-in algorithms.
	Plan(n int) (Plan, error)
}

// UseNativeBackend installs a NativeBackend on e. Every subsequent
// FindDFT call on e tries the backend first.
func (e *Engine) UseNativeBackend(b NativeBackend) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.native = b
}
