package energy

import (
	"fmt"
	"math"
)

type Term interface {
	// Evaluate returns the term's error for the step from before to
	// candidate over dt, and adds the gradient of that error with respect to
	// candidate into grad. The error is never negative.
	Evaluate(grad, before, candidate []float64, dt float64) (float64, error)

	// IsValidForDimension reports whether the term can be evaluated against
	// state vectors of length n.
	IsValidForDimension(n int) bool
}

// CheckArguments validates the preconditions every Term.Evaluate shares.
func CheckArguments(grad, before, candidate []float64, dt float64) error {
	if len(before) == 0 {
		return fmt.Errorf("%w: empty state vector", ErrInvalidArgument)
	}
	if len(candidate) != len(before) {
		return fmt.Errorf("%w: length mismatch: candidate state has %d entries, before state %d", ErrInvalidArgument, len(candidate), len(before))
	}
	if len(grad) != len(before) {
		return fmt.Errorf("%w: length mismatch: gradient buffer has %d entries, state %d", ErrInvalidArgument, len(grad), len(before))
	}
	if !(dt > 0) || math.IsInf(dt, 1) {
		return fmt.Errorf("%w: non-positive time step %v", ErrInvalidArgument, dt)
	}
	return nil
}
