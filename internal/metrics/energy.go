package metrics

import (
	"math"

	"github.com/san-kum/astrosim/internal/orbit"
)

// EnergySpread is the largest relative deviation of v²/2 - GM/r from the
// orbit's specific energy -GM/2a. Vis-viva makes it zero up to rounding.
type EnergySpread struct {
	expected float64
	maxDrift float64
}

func NewEnergySpread(p orbit.Params) *EnergySpread {
	return &EnergySpread{expected: p.SpecificEnergy()}
}

func (e *EnergySpread) Name() string { return "energy_spread" }

func (e *EnergySpread) Observe(f orbit.Frame) {
	v := f.Speed()
	energy := 0.5*v*v - orbit.GM/f.R
	if e.expected != 0 {
		e.maxDrift = math.Max(e.maxDrift, math.Abs(energy-e.expected)/math.Abs(e.expected))
	}
}

func (e *EnergySpread) Value() float64 { return e.maxDrift }

func (e *EnergySpread) Reset() { e.maxDrift = 0 }
