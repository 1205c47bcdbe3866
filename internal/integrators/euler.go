package integrators

import "github.com/san-kum/astrosim/internal/dynamo"

// Euler is the explicit first-order method. Its energy drift on a Kepler
// orbit is visible within one period.
type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Step(sys dynamo.System, x dynamo.State, t, dt float64) dynamo.State {
	next := make(dynamo.State, len(x))
	axpy(next, x, dt, sys.Derive(x, t))
	return next
}
