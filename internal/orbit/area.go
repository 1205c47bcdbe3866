package orbit

import (
	"fmt"
	"math"
)

// SectorArea approximates the area swept by the radius vector over frame
// pairs (i, i+1) for i in [lo, hi), using 0.5·r_i·r_{i+1}·Δθ. The sequence
// spans one full period, so the frame after the last is frame 0 and Δθ is
// taken modulo 2π.
func SectorArea(frames []Frame, lo, hi int) (float64, error) {
	n := len(frames)
	if lo < 0 || hi > n || lo > hi {
		return 0, fmt.Errorf("%w: [%d, %d) over %d frames", ErrInvalidRange, lo, hi, n)
	}

	area := 0.0
	for i := lo; i < hi; i++ {
		next := frames[(i+1)%n]
		dTheta := normalizeAngle(next.Theta - frames[i].Theta)
		area += 0.5 * frames[i].R * next.R * dTheta
	}
	return area, nil
}

// AreaComparison contrasts two equal-length slices of one period.
type AreaComparison struct {
	Steps   int     `json:"steps"`
	First   float64 `json:"first"`
	Last    float64 `json:"last"`
	RelDiff float64 `json:"rel_diff"`
}

// CompareAreas measures the area swept over the first and the last fraction
// of the sampled steps. fraction must be in (0, 0.5].
func CompareAreas(frames []Frame, fraction float64) (AreaComparison, error) {
	n := len(frames)
	if !(fraction > 0 && fraction <= 0.5) {
		return AreaComparison{}, fmt.Errorf("%w: fraction %g not in (0, 0.5]", ErrInvalidRange, fraction)
	}
	k := int(math.Round(fraction * float64(n)))
	if k < 1 {
		return AreaComparison{}, fmt.Errorf("%w: fraction %g of %d frames is empty", ErrInvalidRange, fraction, n)
	}

	first, err := SectorArea(frames, 0, k)
	if err != nil {
		return AreaComparison{}, err
	}
	last, err := SectorArea(frames, n-k, n)
	if err != nil {
		return AreaComparison{}, err
	}

	return AreaComparison{
		Steps:   k,
		First:   first,
		Last:    last,
		RelDiff: relDiff(first, last),
	}, nil
}

// AreaErrorBound is an upper bound on the relative error of SectorArea for
// any window of a run sampled with the given steps and timing. It combines
// the trapezoid error of ∫½r²dθ with the gap between r_i·r_{i+1} and the
// mean of r_i² and r_{i+1}²; both vanish for circular orbits and shrink as
// 1/steps².
func AreaErrorBound(p Params, steps int, timing Timing) float64 {
	if p.Validate() != nil || steps < 1 {
		return math.Inf(1)
	}
	e := p.E
	if e == 0 {
		return 0
	}

	dTheta := twoPi / float64(steps)
	if timing == TimingKepler {
		// dν/dM peaks at perihelion
		dTheta *= (1 + e) * (1 + e) / math.Pow(1-e*e, 1.5)
	}

	semiLatus := p.SemiLatusRectum()
	rMin := p.Perihelion()
	rMax := p.Aphelion()
	d1 := semiLatus * e / ((1 - e) * (1 - e))
	d2 := semiLatus * e * (1 + 3*e) / math.Pow(1-e, 3)
	g2 := 2*d1*d1 + 2*rMax*d2

	return dTheta * dTheta * (g2/12 + d1*d1/2) / (rMin * rMin)
}

func relDiff(a, b float64) float64 {
	m := math.Max(math.Abs(a), math.Abs(b))
	if m == 0 {
		return 0
	}
	return math.Abs(a-b) / m
}
