// Package analyzer composes an audio.Source, a windowing function, and
// the DFT engine into the single per-frame call spec.md describes a UI
// collaborator making: capture a frame, window it, transform it, and
// read back a power spectrum in dB.
package analyzer

import (
	"github.com/nilripper/fftanalyzer"
	"github.com/nilripper/fftanalyzer/audio"
	"github.com/nilripper/fftanalyzer/window"
)

// Analyzer holds the per-frame state needed to turn raw samples into a
// displayable spectrum: a reusable frame buffer and the cached plan for
// that buffer's size.
type Analyzer struct {
	source audio.Source
	plan   fftanalyzer.Plan
	kind   window.Kind

	frame  []complex64
	refDB  float32
	floor  float32
}

// New builds an Analyzer reading frameSize-sample frames from source,
// windowed with kind. Deferring plan construction to FindDFT means any
// frame size spec.md's engine supports works here, not just powers of
// two.
func New(source audio.Source, frameSize int, kind window.Kind) *Analyzer {
	return &Analyzer{
		source: source,
		plan:   fftanalyzer.FindDFT(frameSize),
		kind:   kind,
		frame:  make([]complex64, frameSize),
		refDB:  float32(frameSize * frameSize),
		floor:  -120,
	}
}

// NextFrame reads one frame from the source, windows and transforms it
// in place, and returns its power spectrum in dB. It returns false once
// the source is exhausted.
func (a *Analyzer) NextFrame() ([]float32, bool) {
	n := a.source.Read(a.frame)
	if n < len(a.frame) {
		return nil, false
	}

	window.Apply(a.frame, a.kind)
	a.plan.XformInplace(a.frame)

	power := window.PowerSpectrum(a.frame)
	return window.ToDB(power, a.refDB, a.floor), true
}

// FrameSize returns the number of samples the analyzer reads per frame.
func (a *Analyzer) FrameSize() int { return a.plan.Size() }
