package integrators

import "github.com/san-kum/astrosim/internal/dynamo"

// RK4 is the classic fourth-order Runge-Kutta method. Stage buffers are
// reused between steps, so an RK4 value must not be shared across
// goroutines.
type RK4 struct {
	k     [4]dynamo.State
	probe dynamo.State
}

func NewRK4() *RK4 {
	return &RK4{}
}

func (r *RK4) grow(n int) {
	if len(r.probe) == n {
		return
	}
	for i := range r.k {
		r.k[i] = make(dynamo.State, n)
	}
	r.probe = make(dynamo.State, n)
}

func (r *RK4) Step(sys dynamo.System, x dynamo.State, t, dt float64) dynamo.State {
	r.grow(len(x))

	copy(r.k[0], sys.Derive(x, t))
	axpy(r.probe, x, dt/2, r.k[0])
	copy(r.k[1], sys.Derive(r.probe, t+dt/2))
	axpy(r.probe, x, dt/2, r.k[1])
	copy(r.k[2], sys.Derive(r.probe, t+dt/2))
	axpy(r.probe, x, dt, r.k[2])
	copy(r.k[3], sys.Derive(r.probe, t+dt))

	next := make(dynamo.State, len(x))
	h := dt / 6
	for i := range x {
		next[i] = x[i] + h*(r.k[0][i]+2*r.k[1][i]+2*r.k[2][i]+r.k[3][i])
	}
	return next
}

// axpy stores x + a·k in dst.
func axpy(dst, x dynamo.State, a float64, k dynamo.State) {
	for i := range x {
		dst[i] = x[i] + a*k[i]
	}
}
