package integrators

import "github.com/san-kum/astrosim/internal/dynamo"

// Verlet and Leapfrog split the state into [positions..., velocities...] and
// read accelerations from the velocity half of Derive. Both are symplectic:
// energy oscillates instead of drifting.

// Verlet is velocity Verlet: drift with the old acceleration, then average
// old and new accelerations for the velocity update.
type Verlet struct {
	probe dynamo.State
}

func NewVerlet() *Verlet {
	return &Verlet{}
}

func (v *Verlet) Step(sys dynamo.System, x dynamo.State, t, dt float64) dynamo.State {
	n := len(x)
	d := n / 2
	if len(v.probe) != n {
		v.probe = make(dynamo.State, n)
	}

	next := make(dynamo.State, n)
	a0 := sys.Derive(x, t)[d:]
	for i := 0; i < d; i++ {
		next[i] = x[i] + dt*x[d+i] + dt*dt/2*a0[i]
	}
	copy(v.probe[:d], next[:d])
	copy(v.probe[d:], x[d:])

	a1 := sys.Derive(v.probe, t+dt)[d:]
	for i := 0; i < d; i++ {
		next[d+i] = x[d+i] + dt/2*(a0[i]+a1[i])
	}
	return next
}

// Leapfrog is the kick-drift-kick form.
type Leapfrog struct {
	probe dynamo.State
}

func NewLeapfrog() *Leapfrog {
	return &Leapfrog{}
}

func (l *Leapfrog) Step(sys dynamo.System, x dynamo.State, t, dt float64) dynamo.State {
	n := len(x)
	d := n / 2
	if len(l.probe) != n {
		l.probe = make(dynamo.State, n)
	}

	a0 := sys.Derive(x, t)[d:]
	for i := 0; i < d; i++ {
		l.probe[d+i] = x[d+i] + dt/2*a0[i]
		l.probe[i] = x[i] + dt*l.probe[d+i]
	}

	next := make(dynamo.State, n)
	copy(next[:d], l.probe[:d])
	a1 := sys.Derive(l.probe, t+dt)[d:]
	for i := 0; i < d; i++ {
		next[d+i] = l.probe[d+i] + dt/2*a1[i]
	}
	return next
}
