package integrators

import (
	"math"
	"testing"

	"github.com/san-kum/astrosim/internal/dynamo"
)

type harmonicOscillator struct{}

func (h *harmonicOscillator) StateDim() int { return 2 }

func (h *harmonicOscillator) Derive(x dynamo.State, t float64) dynamo.State {
	return dynamo.State{x[1], -x[0]}
}

func (h *harmonicOscillator) Energy(x dynamo.State) float64 {
	return 0.5 * (x[0]*x[0] + x[1]*x[1])
}

func TestRK4Accuracy(t *testing.T) {
	sys := &harmonicOscillator{}
	integ := NewRK4()

	x := dynamo.State{1.0, 0.0}
	dt := 0.01
	steps := 100

	for i := 0; i < steps; i++ {
		x = integ.Step(sys, x, float64(i)*dt, dt)
	}

	expectedX := math.Cos(float64(steps) * dt)
	expectedV := -math.Sin(float64(steps) * dt)

	if math.Abs(x[0]-expectedX) > 1e-4 {
		t.Errorf("position error too large: got %.6f, expected %.6f", x[0], expectedX)
	}
	if math.Abs(x[1]-expectedV) > 1e-4 {
		t.Errorf("velocity error too large: got %.6f, expected %.6f", x[1], expectedV)
	}
}

func TestSymplecticEnergyBounded(t *testing.T) {
	for _, name := range []string{"verlet", "leapfrog"} {
		t.Run(name, func(t *testing.T) {
			integ, err := ByName(name)
			if err != nil {
				t.Fatal(err)
			}
			sys := &harmonicOscillator{}
			x := dynamo.State{1.0, 0.0}
			e0 := sys.Energy(x)

			dt := 0.05
			for i := 0; i < 10000; i++ {
				x = integ.Step(sys, x, float64(i)*dt, dt)
			}

			if drift := math.Abs(sys.Energy(x)-e0) / e0; drift > 1e-2 {
				t.Errorf("energy drift %.4e exceeds bound", drift)
			}
		})
	}
}

func TestEulerGainsEnergy(t *testing.T) {
	sys := &harmonicOscillator{}
	integ := NewEuler()
	x := dynamo.State{1.0, 0.0}
	e0 := sys.Energy(x)

	for i := 0; i < 100; i++ {
		x = integ.Step(sys, x, float64(i)*0.01, 0.01)
	}

	if sys.Energy(x) <= e0 {
		t.Errorf("expected explicit euler to gain energy, got %f <= %f", sys.Energy(x), e0)
	}
}

func TestByName(t *testing.T) {
	for _, name := range Names() {
		if _, err := ByName(name); err != nil {
			t.Errorf("ByName(%q): %v", name, err)
		}
	}
	if _, err := ByName("rk45"); err == nil {
		t.Error("expected error for unknown integrator")
	}
}

func BenchmarkRK4(b *testing.B) {
	integ := NewRK4()
	sys := &harmonicOscillator{}
	x := dynamo.State{1.0, 0.0}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x = integ.Step(sys, x, 0, 0.01)
	}
}

func BenchmarkLeapfrog(b *testing.B) {
	integ := NewLeapfrog()
	sys := &harmonicOscillator{}
	x := dynamo.State{1.0, 0.0}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x = integ.Step(sys, x, 0, 0.01)
	}
}
