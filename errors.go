package fftanalyzer

import "fmt"

// InputSizeError reports a buffer or vector that doesn't match the
// size an operation requires.
type InputSizeError struct {
	Name     string
	Expected string
	Got      int
}

func (e *InputSizeError) Error() string {
	return fmt.Sprintf("size of %s must be %s, is: %d", e.Name, e.Expected, e.Got)
}
