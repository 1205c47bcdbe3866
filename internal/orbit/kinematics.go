package orbit

import (
	"math"

	"github.com/san-kum/astrosim/internal/dynamo"
)

// Timing selects how the polar angle advances with time.
type Timing int

const (
	// TimingUniform advances theta linearly: theta = 2π·t/T.
	TimingUniform Timing = iota
	// TimingKepler uses the true anomaly from Kepler's equation.
	TimingKepler
)

func (t Timing) String() string {
	switch t {
	case TimingKepler:
		return "kepler"
	default:
		return "uniform"
	}
}

// ParseTiming maps a name to a Timing. Unknown names report false.
func ParseTiming(name string) (Timing, bool) {
	switch name {
	case "", "uniform":
		return TimingUniform, true
	case "kepler":
		return TimingKepler, true
	}
	return TimingUniform, false
}

// Options tune GenerateWith.
type Options struct {
	Timing  Timing
	Workers int
}

// minChunk keeps tiny runs on the calling goroutine.
const minChunk = 256

// Generate samples one period of the orbit into steps frames with uniform
// angular timing.
func Generate(p Params, steps int) ([]Frame, error) {
	return GenerateWith(p, steps, Options{})
}

// GenerateWith samples one period of the orbit. Frame i depends only on i, p
// and steps, so Workers > 1 splits the index range across goroutines
// without changing the output.
func GenerateWith(p Params, steps int, opts Options) ([]Frame, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if steps < 1 {
		return nil, &ParamError{Field: "steps", Value: float64(steps), Wrapped: ErrInvalidStepCount}
	}

	frames := make([]Frame, steps)
	fill := func(start, end int) error {
		for i := start; i < end; i++ {
			f, err := sample(p, i, steps, opts.Timing)
			if err != nil {
				return err
			}
			frames[i] = f
		}
		return nil
	}

	if opts.Workers <= 1 {
		if err := fill(0, steps); err != nil {
			return nil, err
		}
		return frames, nil
	}

	// one slot per worker chunk; the lowest failing chunk wins
	errs := make([]error, opts.Workers)
	dynamo.ParallelFor(steps, opts.Workers, minChunk, func(chunk, start, end int) {
		errs[chunk] = fill(start, end)
	})
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return frames, nil
}

// StateAt evaluates the orbit at time t (years since perihelion passage).
func StateAt(p Params, t float64, timing Timing) (Frame, error) {
	if err := p.Validate(); err != nil {
		return Frame{}, err
	}
	return frameAt(p, t, timing)
}

func sample(p Params, i, steps int, timing Timing) (Frame, error) {
	f, err := frameAt(p, float64(i)*p.T/float64(steps), timing)
	f.Index = i
	return f, err
}

func frameAt(p Params, t float64, timing Timing) (Frame, error) {
	phase := twoPi * t / p.T

	var f Frame
	switch timing {
	case TimingKepler:
		f = keplerFrame(p, phase)
	default:
		f = uniformFrame(p, phase)
	}
	f.T = t

	if f.R < minRadius || math.IsNaN(f.R) || math.IsInf(f.R, 0) {
		return Frame{}, &ParamError{Field: "r", Value: f.R, Wrapped: ErrDegenerateOrbit}
	}
	if v := f.Speed(); math.IsNaN(v) || math.IsInf(v, 0) {
		return Frame{}, &ParamError{Field: "v", Value: v, Wrapped: ErrDegenerateOrbit}
	}
	return f, nil
}

func uniformFrame(p Params, phase float64) Frame {
	theta := normalizeAngle(phase)
	r := p.RadiusAt(theta)
	sin, cos := math.Sincos(theta)
	v := p.SpeedAt(r)
	return Frame{
		Theta: theta,
		R:     r,
		Pos:   Vec2{X: r * cos, Y: r * sin},
		Vel:   Vec2{X: -v * sin, Y: v * cos},
	}
}

func keplerFrame(p Params, meanAnomaly float64) Frame {
	nu := TrueAnomaly(meanAnomaly, p.E)
	r := p.RadiusAt(nu)
	sin, cos := math.Sincos(nu)

	// radial and transverse components; |v| matches vis-viva
	k := math.Sqrt(GM / p.SemiLatusRectum())
	vr := k * p.E * sin
	vt := k * (1 + p.E*cos)

	return Frame{
		Theta: nu,
		R:     r,
		Pos:   Vec2{X: r * cos, Y: r * sin},
		Vel:   Vec2{X: vr*cos - vt*sin, Y: vr*sin + vt*cos},
	}
}
