package orbit

import "math"

const (
	keplerMaxIter = 50
	keplerTol     = 1e-12
)

// EccentricAnomaly solves M = E - e·sin(E) with Newton-Raphson.
func EccentricAnomaly(meanAnomaly, e float64) float64 {
	m := normalizeAngle(meanAnomaly)
	if e == 0 {
		return m
	}

	ea := initialGuess(m, e)
	for i := 0; i < keplerMaxIter; i++ {
		f := ea - e*math.Sin(ea) - m
		fp := 1 - e*math.Cos(ea)
		delta := f / fp
		ea -= delta
		if math.Abs(delta) < keplerTol {
			break
		}
	}
	return normalizeAngle(ea)
}

// TrueAnomaly converts a mean anomaly to the true anomaly.
func TrueAnomaly(meanAnomaly, e float64) float64 {
	ea := EccentricAnomaly(meanAnomaly, e)
	if e == 0 {
		return ea
	}
	sinE, cosE := math.Sincos(ea)
	return normalizeAngle(math.Atan2(math.Sqrt(1-e*e)*sinE, cosE-e))
}

func initialGuess(m, e float64) float64 {
	if e < 0.8 {
		return m
	}
	if m < math.Pi {
		return m + e/2
	}
	return m - e/2
}
