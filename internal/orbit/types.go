package orbit

import "math"

// GM is the gravitational parameter of the Sun in AU³/yr².
const GM = 4 * math.Pi * math.Pi

const (
	twoPi = 2 * math.Pi

	// minRadius is the smallest radius (AU) accepted before vis-viva is
	// considered divergent.
	minRadius = 1e-12
)

// Params are the orbital elements of one simulation run.
type Params struct {
	A float64 // semi-major axis (AU)
	E float64 // eccentricity, 0 <= E < 1
	T float64 // period (years)
}

// Validate reports the first parameter outside its domain.
func (p Params) Validate() error {
	if !(p.A > 0) || math.IsInf(p.A, 0) {
		return &ParamError{Field: "a", Value: p.A, Wrapped: ErrInvalidSemiMajorAxis}
	}
	if !(p.E >= 0 && p.E < 1) {
		return &ParamError{Field: "e", Value: p.E, Wrapped: ErrInvalidEccentricity}
	}
	if !(p.T > 0) || math.IsInf(p.T, 0) {
		return &ParamError{Field: "T", Value: p.T, Wrapped: ErrInvalidPeriod}
	}
	return nil
}

// SemiLatusRectum returns a(1-e²).
func (p Params) SemiLatusRectum() float64 {
	return p.A * (1 - p.E*p.E)
}

// Perihelion returns the closest approach a(1-e).
func (p Params) Perihelion() float64 { return p.A * (1 - p.E) }

// Aphelion returns the farthest distance a(1+e).
func (p Params) Aphelion() float64 { return p.A * (1 + p.E) }

// SpecificEnergy returns the orbital energy per unit mass, -GM/2a.
func (p Params) SpecificEnergy() float64 {
	return -GM / (2 * p.A)
}

// KeplerPeriod returns the period implied by Kepler's third law around one
// solar mass, T² = a³ in years and AU.
func (p Params) KeplerPeriod() float64 {
	return math.Sqrt(p.A * p.A * p.A)
}

// RadiusAt evaluates the orbit equation at polar angle theta.
func (p Params) RadiusAt(theta float64) float64 {
	return p.SemiLatusRectum() / (1 + p.E*math.Cos(theta))
}

// SpeedAt evaluates vis-viva at radius r.
func (p Params) SpeedAt(r float64) float64 {
	return math.Sqrt(GM * (2/r - 1/p.A))
}

// Vec2 is a planar vector.
type Vec2 struct {
	X, Y float64
}

// Norm returns the Euclidean length.
func (v Vec2) Norm() float64 {
	return math.Hypot(v.X, v.Y)
}

// Cross returns the z component of v × w.
func (v Vec2) Cross(w Vec2) float64 {
	return v.X*w.Y - v.Y*w.X
}

// Frame is one sample of the orbit.
type Frame struct {
	Index int     `json:"index"`
	T     float64 `json:"t"`
	Theta float64 `json:"theta"`
	R     float64 `json:"r"`
	Pos   Vec2    `json:"pos"`
	Vel   Vec2    `json:"vel"`
}

// Speed returns |Vel|.
func (f Frame) Speed() float64 {
	return f.Vel.Norm()
}

func normalizeAngle(angle float64) float64 {
	wrapped := math.Mod(angle, twoPi)
	if wrapped < 0 {
		wrapped += twoPi
	}
	return wrapped
}
