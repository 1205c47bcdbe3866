package dynamo

import "math"

// State is a flat vector of generalized coordinates.
type State []float64

func (s State) Clone() State {
	return append(State(nil), s...)
}

// IsValid reports whether every component is finite.
func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (s State) Norm() float64 {
	n := 0.0
	for _, v := range s {
		n = math.Hypot(n, v)
	}
	return n
}

// Sub returns s - other. Components missing from other count as zero.
func (s State) Sub(other State) State {
	d := s.Clone()
	for i := range min(len(s), len(other)) {
		d[i] -= other[i]
	}
	return d
}

// System is an autonomous or time-dependent ODE dX/dt = f(X, t).
type System interface {
	Derive(x State, t float64) State
	StateDim() int
}

// Hamiltonian systems expose a conserved energy for drift checks.
type Hamiltonian interface {
	Energy(x State) float64
}

// Integrator advances x by one fixed step dt.
type Integrator interface {
	Step(sys System, x State, t, dt float64) State
}

type Config struct {
	Dt            float64 // step size, same unit as Duration
	Duration      float64
	ValidateState bool // abort on NaN or Inf
}

func DefaultConfig() Config {
	return Config{
		Dt:            1e-4,
		Duration:      1.0,
		ValidateState: true,
	}
}

// Result holds every state of a run, including the initial one.
type Result struct {
	States      []State
	Times       []float64
	EnergyDrift float64 // |E_end - E_0| / |E_0|, zero for non-Hamiltonian systems
	StepsTaken  int
}
