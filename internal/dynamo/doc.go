// Package dynamo provides the numerical integration primitives used to
// cross-check closed-form orbits.
//
//   - [State]: vector representing system state
//   - [System]: interface for ODE systems (dX/dt = f(X, t))
//   - [Integrator]: numerical stepper interface
//   - [Simulator]: drives an integrator over a fixed duration
//   - [ParallelFor]: chunked fan-out over an index range
//
// # Example
//
//	sys := physics.NewTwoBody()
//	sim := dynamo.New(sys, integrators.NewRK4())
//	result, _ := sim.Run(ctx, sys.InitialState(p), cfg)
//
// # Thread Safety
//
// Simulator instances are NOT thread-safe: integrators keep scratch buffers.
// Build one Simulator per goroutine.
package dynamo
