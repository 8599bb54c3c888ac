package window

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidKind is returned for names or kinds outside the catalog.
	ErrInvalidKind = errors.New("window: unknown window kind")
	// ErrInvalidArity is returned when the parameter count does not match the kind.
	ErrInvalidArity = errors.New("window: wrong number of parameters")
	// ErrInvalidConfiguration is returned for option or parameter combinations
	// the kind cannot honour, such as a periodic Dolph-Chebyshev window.
	ErrInvalidConfiguration = errors.New("window: invalid configuration")
	// ErrInvalidSize is returned for negative lengths and mismatched buffers.
	ErrInvalidSize = errors.New("window: invalid size")
	// ErrMissingDependency is returned when a numeric backend is unavailable.
	ErrMissingDependency = errors.New("window: missing numeric dependency")
	// ErrNumericDegeneracy is returned when a metric would divide by zero.
	ErrNumericDegeneracy = errors.New("window: numerically degenerate input")
)

func validateLength(size int) error {
	if size < 0 {
		return fmt.Errorf("%w: window size must be >= 0: %d", ErrInvalidSize, size)
	}
	return nil
}

func validateArity(k Kind, got int) error {
	if want := kinds[k].arity; got != want {
		return fmt.Errorf("%w: %s takes %d parameter(s), got %d", ErrInvalidArity, k, want, got)
	}
	return nil
}

func validatePeriodic(k Kind, periodic bool) error {
	if periodic && !kinds[k].periodic {
		return fmt.Errorf("%w: %s has no periodic form", ErrInvalidConfiguration, k)
	}
	return nil
}
