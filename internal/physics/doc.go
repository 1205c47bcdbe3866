// Package physics integrates the two-body problem numerically.
//
// [TwoBody] implements [dynamo.System] and [dynamo.Hamiltonian] for a test
// particle around one solar mass. [Trajectory] integrates one Kepler period
// from perihelion, and [MaxDeviation] measures how far the result strays
// from the closed-form orbit.
//
//	p := orbit.Params{A: 1, E: 0.5, T: 1}
//	res, err := physics.Trajectory(ctx, p, integrators.NewRK4(), 1e-4)
//	if err != nil {
//	    return err
//	}
//	dev, _ := physics.MaxDeviation(res, p)
package physics
