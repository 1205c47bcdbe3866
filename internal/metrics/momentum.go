package metrics

import (
	"math"

	"github.com/san-kum/astrosim/internal/orbit"
)

// AngularMomentumSpread is (max-min)/max of |r × v|. Only kepler timing
// yields a true orbital velocity, so uniform runs of eccentric orbits report
// a non-zero spread.
type AngularMomentumSpread struct {
	min, max float64
	samples  int
}

func NewAngularMomentumSpread() *AngularMomentumSpread {
	return &AngularMomentumSpread{}
}

func (a *AngularMomentumSpread) Name() string { return "angular_momentum_spread" }

func (a *AngularMomentumSpread) Observe(f orbit.Frame) {
	h := math.Abs(f.Pos.Cross(f.Vel))
	if a.samples == 0 {
		a.min, a.max = h, h
	} else {
		a.min = math.Min(a.min, h)
		a.max = math.Max(a.max, h)
	}
	a.samples++
}

func (a *AngularMomentumSpread) Value() float64 {
	if a.samples == 0 || a.max == 0 {
		return 0
	}
	return (a.max - a.min) / a.max
}

func (a *AngularMomentumSpread) Reset() {
	a.min, a.max = 0, 0
	a.samples = 0
}
