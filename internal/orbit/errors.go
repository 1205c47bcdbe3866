package orbit

import (
	"errors"
	"fmt"
)

// Domain errors for orbit generation.
var (
	// ErrInvalidEccentricity indicates e outside [0, 1).
	ErrInvalidEccentricity = errors.New("orbit: eccentricity must be in [0, 1)")

	// ErrInvalidSemiMajorAxis indicates a <= 0.
	ErrInvalidSemiMajorAxis = errors.New("orbit: semi-major axis must be positive")

	// ErrInvalidPeriod indicates T <= 0.
	ErrInvalidPeriod = errors.New("orbit: period must be positive")

	// ErrInvalidStepCount indicates fewer than one sample step.
	ErrInvalidStepCount = errors.New("orbit: step count must be at least 1")

	// ErrDegenerateOrbit indicates r or the vis-viva speed left the finite domain.
	ErrDegenerateOrbit = errors.New("orbit: degenerate orbit (radius or speed not finite)")

	// ErrInvalidRange indicates a frame index interval outside the sequence.
	ErrInvalidRange = errors.New("orbit: invalid frame range")
)

// ParamError wraps a domain error with the offending input.
type ParamError struct {
	Field   string
	Value   float64
	Wrapped error
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("%s (%s=%g)", e.Wrapped.Error(), e.Field, e.Value)
}

func (e *ParamError) Unwrap() error {
	return e.Wrapped
}
