package enhance

import (
	"errors"
	"fmt"
)

// ErrPanic marks a failure recovered from a panicking stage.
var ErrPanic = errors.New("stage panicked")

// CompressionError is returned in strict mode when a stage fails.
type CompressionError struct {
	// Stage is "core" or the name of the optional pass that failed.
	Stage string
	Err   error
}

func (e *CompressionError) Error() string {
	return fmt.Sprintf("compression failed in %s: %v", e.Stage, e.Err)
}

func (e *CompressionError) Unwrap() error {
	return e.Err
}

// recovered converts a recovered panic value to an error.
func recovered(r any) error {
	if err, ok := r.(error); ok {
		return fmt.Errorf("%w: %w", ErrPanic, err)
	}
	return fmt.Errorf("%w: %v", ErrPanic, r)
}

// safely runs fn and turns a panic into an error.
func safely(fn func() string) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = recovered(r)
		}
	}()
	return fn(), nil
}
