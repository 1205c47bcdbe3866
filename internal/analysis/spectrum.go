package analysis

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"

	"github.com/san-kum/astrosim/internal/orbit"
)

// flatFloor is the relative amplitude below which a harmonic is treated as
// numerical noise.
const flatFloor = 1e-9

// SpeedSpectrum returns amplitudes |X_k|/n for k in [0, n/2].
func SpeedSpectrum(frames []orbit.Frame) []float64 {
	n := len(frames)
	if n == 0 {
		return nil
	}
	speeds := make([]float64, n)
	for i, f := range frames {
		speeds[i] = f.Speed()
	}

	spectrum := fft.FFTReal(speeds)
	amps := make([]float64, n/2+1)
	for k := range amps {
		amps[k] = cmplx.Abs(spectrum[k]) / float64(n)
	}
	return amps
}

// DominantHarmonic returns the index of the strongest non-DC bin, or 0 when
// every harmonic is negligible next to the mean.
func DominantHarmonic(amps []float64) int {
	if len(amps) < 2 {
		return 0
	}
	best, bestAmp := 0, 0.0
	for k := 1; k < len(amps); k++ {
		if amps[k] > bestAmp {
			best, bestAmp = k, amps[k]
		}
	}
	if bestAmp <= flatFloor*math.Max(amps[0], 1) {
		return 0
	}
	return best
}

// HarmonicRatio is sqrt(Σ_{k≥2} A_k²) / A_1, a distortion figure for the
// speed curve.
func HarmonicRatio(amps []float64) float64 {
	if len(amps) < 2 || amps[1] == 0 {
		return 0
	}
	sum := 0.0
	for k := 2; k < len(amps); k++ {
		sum += amps[k] * amps[k]
	}
	return math.Sqrt(sum) / amps[1]
}
