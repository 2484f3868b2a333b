package energy

import "errors"

var (
	// ErrInvalidConfiguration indicates a term constructed with a missing
	// mapper, mismatched mapper dimensions or a bad mass scale.
	ErrInvalidConfiguration = errors.New("energy: invalid term configuration")

	// ErrInvalidArgument indicates state vectors, gradient buffer or time step
	// that do not satisfy a term's preconditions.
	ErrInvalidArgument = errors.New("energy: invalid evaluation argument")
)
