package dynamo

import (
	"context"
	"errors"
	"math"
	"testing"
)

// decay is dx/dt = -x.
type decay struct{}

func (decay) Derive(x State, _ float64) State { return State{-x[0]} }
func (decay) StateDim() int                   { return 1 }

// oscillator is x'' = -x with energy (x² + v²)/2.
type oscillator struct{}

func (oscillator) Derive(x State, _ float64) State { return State{x[1], -x[0]} }
func (oscillator) StateDim() int                   { return 2 }
func (oscillator) Energy(x State) float64          { return 0.5 * (x[0]*x[0] + x[1]*x[1]) }

type eulerStep struct{}

func (eulerStep) Step(sys System, x State, t, dt float64) State {
	dx := sys.Derive(x, t)
	next := make(State, len(x))
	for i := range x {
		next[i] = x[i] + dt*dx[i]
	}
	return next
}

type blowUp struct{ after int }

func (b *blowUp) Step(_ System, x State, _, _ float64) State {
	b.after--
	if b.after < 0 {
		return State{math.NaN()}
	}
	return x.Clone()
}

func TestSimulatorRun(t *testing.T) {
	sim := New(decay{}, eulerStep{})
	result, err := sim.Run(context.Background(), State{1.0}, Config{Dt: 0.1, Duration: 1.0})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if len(result.States) != 11 || len(result.Times) != 11 {
		t.Fatalf("expected 11 samples, got %d states %d times", len(result.States), len(result.Times))
	}
	if result.StepsTaken != 10 {
		t.Errorf("expected 10 steps, got %d", result.StepsTaken)
	}

	final := result.States[len(result.States)-1][0]
	if want := math.Exp(-1.0); math.Abs(final-want) > 0.05 {
		t.Errorf("expected final state ~%.4f, got %.4f", want, final)
	}
}

func TestSimulatorEnergyDrift(t *testing.T) {
	sim := New(oscillator{}, eulerStep{})
	result, err := sim.Run(context.Background(), State{1, 0}, Config{Dt: 0.01, Duration: 1})
	if err != nil {
		t.Fatal(err)
	}
	// explicit Euler multiplies energy by (1+dt²) per step
	want := math.Pow(1+1e-4, 100) - 1
	if math.Abs(result.EnergyDrift-want) > 1e-9 {
		t.Errorf("energy drift = %g, want %g", result.EnergyDrift, want)
	}
}

func TestSimulatorInvalidConfig(t *testing.T) {
	sim := New(decay{}, eulerStep{})

	tests := []struct {
		name string
		cfg  Config
	}{
		{"zero dt", Config{Dt: 0, Duration: 1.0}},
		{"negative dt", Config{Dt: -0.1, Duration: 1.0}},
		{"zero duration", Config{Dt: 0.1, Duration: 0}},
		{"NaN dt", Config{Dt: math.NaN(), Duration: 1.0}},
		{"infinite dt", Config{Dt: math.Inf(1), Duration: 1.0}},
		{"NaN duration", Config{Dt: 0.1, Duration: math.NaN()}},
		{"infinite duration", Config{Dt: 0.1, Duration: math.Inf(1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := sim.Run(context.Background(), State{1.0}, tt.cfg)
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestSimulatorDimensionMismatch(t *testing.T) {
	sim := New(decay{}, eulerStep{})
	_, err := sim.Run(context.Background(), State{1, 2}, DefaultConfig())
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("expected ErrDimensionMismatch, got %v", err)
	}
}

func TestSimulatorInvalidState(t *testing.T) {
	sim := New(decay{}, &blowUp{after: 3})
	result, err := sim.Run(context.Background(), State{1}, Config{Dt: 0.1, Duration: 1, ValidateState: true})

	var simErr *SimulationError
	if !errors.As(err, &simErr) {
		t.Fatalf("expected SimulationError, got %v", err)
	}
	if simErr.Step != 3 || !errors.Is(err, ErrInvalidState) {
		t.Errorf("unexpected error %v", err)
	}
	if len(result.States) != 4 {
		t.Errorf("expected partial result of 4 states, got %d", len(result.States))
	}
}

func TestSimulatorCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := New(decay{}, eulerStep{}).Run(ctx, State{1}, Config{Dt: 0.1, Duration: 1})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if len(result.States) != 1 {
		t.Errorf("expected only the initial state, got %d", len(result.States))
	}
}
