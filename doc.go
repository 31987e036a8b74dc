// Package fftanalyzer implements a discrete Fourier transform
// planning and execution engine: given a transform length N, it
// selects an algorithm, precomputes any tables the algorithm needs,
// and executes forward complex-to-complex DFTs of arbitrary
// (including prime) size.
//
// Call FindDFT(n) to get the canonical Plan for size n; the same
// Plan instance is returned on every later call for the same n and
// is safe to drive concurrently from independent callers. A Plan's
// XformMany is the primitive every algorithm implements; Xform and
// XformInplace are conveniences built on top of it.
//
// Only forward transforms are first-class. Rader and Bluestein, the
// two algorithms here that need an inverse internally, get it by
// conjugating the input and output of another forward transform
// rather than by maintaining a separate inverse plan.
package fftanalyzer
