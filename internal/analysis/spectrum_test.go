package analysis

import (
	"math"
	"testing"

	"github.com/san-kum/astrosim/internal/orbit"
)

func TestSpeedSpectrumCircle(t *testing.T) {
	frames, err := orbit.Generate(orbit.Params{A: 1, E: 0, T: 1}, 128)
	if err != nil {
		t.Fatal(err)
	}

	amps := SpeedSpectrum(frames)
	if len(amps) != 65 {
		t.Fatalf("expected 65 bins, got %d", len(amps))
	}
	if math.Abs(amps[0]-2*math.Pi) > 1e-9 {
		t.Errorf("expected DC = 2π, got %f", amps[0])
	}
	if h := DominantHarmonic(amps); h != 0 {
		t.Errorf("expected flat spectrum, dominant harmonic %d", h)
	}
}

func TestSpeedSpectrumEccentric(t *testing.T) {
	tests := []struct {
		e     float64
		steps int
	}{
		{0.1, 256},
		{0.5, 300},
		{0.8, 1000},
	}

	prev := 0.0
	for _, tt := range tests {
		frames, err := orbit.Generate(orbit.Params{A: 1, E: tt.e, T: 1}, tt.steps)
		if err != nil {
			t.Fatal(err)
		}
		amps := SpeedSpectrum(frames)
		if h := DominantHarmonic(amps); h != 1 {
			t.Errorf("e=%.1f: expected fundamental to dominate, got harmonic %d", tt.e, h)
		}
		ratio := HarmonicRatio(amps)
		if ratio <= prev {
			t.Errorf("e=%.1f: expected distortion to grow with e, %f <= %f", tt.e, ratio, prev)
		}
		prev = ratio
	}
}

func TestSpeedSpectrumEmpty(t *testing.T) {
	if SpeedSpectrum(nil) != nil {
		t.Error("expected nil spectrum for no frames")
	}
	if DominantHarmonic(nil) != 0 {
		t.Error("expected harmonic 0 for empty spectrum")
	}
	if HarmonicRatio([]float64{1}) != 0 {
		t.Error("expected zero ratio without a fundamental")
	}
}
