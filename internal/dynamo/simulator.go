package dynamo

import (
	"context"
	"fmt"
	"math"
)

// Simulator steps a System with a fixed-step Integrator.
type Simulator struct {
	sys        System
	integrator Integrator
}

func New(sys System, integrator Integrator) *Simulator {
	return &Simulator{sys: sys, integrator: integrator}
}

// Run integrates from x0 for cfg.Duration and records every state. A
// cancelled ctx returns the partial result together with ctx.Err().
func (s *Simulator) Run(ctx context.Context, x0 State, cfg Config) (*Result, error) {
	if !finitePositive(cfg.Dt) || !finitePositive(cfg.Duration) {
		return nil, fmt.Errorf("%w: dt=%g duration=%g", ErrInvalidConfig, cfg.Dt, cfg.Duration)
	}
	if len(x0) != s.sys.StateDim() {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrDimensionMismatch, len(x0), s.sys.StateDim())
	}

	steps := int(math.Round(cfg.Duration / cfg.Dt))
	result := &Result{
		States: make([]State, 0, steps+1),
		Times:  make([]float64, 0, steps+1),
	}

	x := x0.Clone()
	result.States = append(result.States, x.Clone())
	result.Times = append(result.Times, 0)

	initialEnergy := s.energy(x)

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		t := float64(i) * cfg.Dt
		next := s.integrator.Step(s.sys, x, t, cfg.Dt)
		if cfg.ValidateState && !next.IsValid() {
			return result, &SimulationError{Step: i, Time: t, Wrapped: ErrInvalidState}
		}

		x = next
		result.StepsTaken++
		result.States = append(result.States, x.Clone())
		result.Times = append(result.Times, float64(i+1)*cfg.Dt)
	}

	if initialEnergy != 0 {
		result.EnergyDrift = math.Abs(s.energy(x)-initialEnergy) / math.Abs(initialEnergy)
	}

	return result, nil
}

func (s *Simulator) energy(x State) float64 {
	if h, ok := s.sys.(Hamiltonian); ok {
		return h.Energy(x)
	}
	return 0
}

func finitePositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}
