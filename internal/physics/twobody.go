package physics

import (
	"context"
	"fmt"
	"math"

	"github.com/san-kum/astrosim/internal/dynamo"
	"github.com/san-kum/astrosim/internal/orbit"
)

// TwoBody is a test particle around a fixed central mass.
// State: [x, y, vx, vy] in AU and AU/yr.
type TwoBody struct {
	GM float64
}

func NewTwoBody() *TwoBody {
	return &TwoBody{GM: orbit.GM}
}

func (b *TwoBody) StateDim() int { return 4 }

func (b *TwoBody) Derive(x dynamo.State, _ float64) dynamo.State {
	r2 := x[0]*x[0] + x[1]*x[1]
	r3 := r2 * math.Sqrt(r2)
	return dynamo.State{
		x[2],
		x[3],
		-b.GM * x[0] / r3,
		-b.GM * x[1] / r3,
	}
}

// Energy is the specific orbital energy v²/2 - GM/r.
func (b *TwoBody) Energy(x dynamo.State) float64 {
	v2 := x[2]*x[2] + x[3]*x[3]
	return 0.5*v2 - b.GM/math.Hypot(x[0], x[1])
}

// InitialState places the body at perihelion on the +x axis moving
// counter-clockwise with the vis-viva speed.
func (b *TwoBody) InitialState(p orbit.Params) dynamo.State {
	q := p.Perihelion()
	v := math.Sqrt(b.GM * (2/q - 1/p.A))
	return dynamo.State{q, 0, 0, v}
}

// Trajectory integrates one Kepler period of p with the given integrator.
func Trajectory(ctx context.Context, p orbit.Params, integ dynamo.Integrator, dt float64) (*dynamo.Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	sys := NewTwoBody()
	sim := dynamo.New(sys, integ)
	cfg := dynamo.Config{
		Dt:            dt,
		Duration:      p.KeplerPeriod(),
		ValidateState: true,
	}
	return sim.Run(ctx, sys.InitialState(p), cfg)
}

// MaxDeviation compares an integrated trajectory with the closed-form Kepler
// solution and returns the largest position error in AU.
func MaxDeviation(res *dynamo.Result, p orbit.Params) (float64, error) {
	ref := p
	ref.T = p.KeplerPeriod()

	worst := 0.0
	for i, x := range res.States {
		f, err := orbit.StateAt(ref, res.Times[i], orbit.TimingKepler)
		if err != nil {
			return 0, fmt.Errorf("reference at t=%g: %w", res.Times[i], err)
		}
		d := math.Hypot(x[0]-f.Pos.X, x[1]-f.Pos.Y)
		worst = math.Max(worst, d)
	}
	return worst, nil
}
