// Package rotation samples galactic rotation curves: the Keplerian fall-off
// expected from visible mass alone and the flat curve produced by a dark
// matter halo.
package rotation

import (
	"errors"
	"fmt"
	"math"
)

// G is the gravitational constant in kpc·(km/s)²/M☉.
const G = 4.30091e-6

var (
	ErrInvalidRadius = errors.New("rotation: radii must satisfy 0 < min < max")
	ErrInvalidSteps  = errors.New("rotation: need at least 2 samples")
	ErrInvalidModel  = errors.New("rotation: model parameters must be positive")
)

// Model returns the circular speed in km/s at radius r in kpc.
type Model interface {
	Name() string
	Velocity(r float64) float64
	Validate() error
}

// Keplerian is a point mass: v = sqrt(GM/r).
type Keplerian struct {
	Mass float64 // M☉
}

func (k Keplerian) Name() string { return "keplerian" }

func (k Keplerian) Velocity(r float64) float64 {
	return math.Sqrt(G * k.Mass / r)
}

func (k Keplerian) Validate() error {
	if !(k.Mass > 0) {
		return fmt.Errorf("%w: mass=%g", ErrInvalidModel, k.Mass)
	}
	return nil
}

// Halo is a pseudo-isothermal sphere with asymptotic speed V0 and core
// radius Rc.
type Halo struct {
	V0 float64 // km/s
	Rc float64 // kpc
}

func (h Halo) Name() string { return "halo" }

func (h Halo) Velocity(r float64) float64 {
	x := r / h.Rc
	return h.V0 * math.Sqrt(1-math.Atan(x)/x)
}

func (h Halo) Validate() error {
	if !(h.V0 > 0) || !(h.Rc > 0) {
		return fmt.Errorf("%w: v0=%g rc=%g", ErrInvalidModel, h.V0, h.Rc)
	}
	return nil
}

// Combined adds component speeds in quadrature.
type Combined []Model

func (c Combined) Name() string { return "combined" }

func (c Combined) Velocity(r float64) float64 {
	sum := 0.0
	for _, m := range c {
		v := m.Velocity(r)
		sum += v * v
	}
	return math.Sqrt(sum)
}

func (c Combined) Validate() error {
	if len(c) == 0 {
		return fmt.Errorf("%w: no components", ErrInvalidModel)
	}
	for _, m := range c {
		if err := m.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Point is one sample of a rotation curve.
type Point struct {
	R float64 `json:"r_kpc"`
	V float64 `json:"v_kms"`
}

// Curve samples m at n radii evenly spaced over [rMin, rMax].
func Curve(m Model, rMin, rMax float64, n int) ([]Point, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	if !(rMin > 0 && rMax > rMin) {
		return nil, fmt.Errorf("%w: [%g, %g]", ErrInvalidRadius, rMin, rMax)
	}
	if n < 2 {
		return nil, fmt.Errorf("%w: n=%d", ErrInvalidSteps, n)
	}

	points := make([]Point, n)
	step := (rMax - rMin) / float64(n-1)
	for i := range points {
		r := rMin + float64(i)*step
		points[i] = Point{R: r, V: m.Velocity(r)}
	}
	return points, nil
}
