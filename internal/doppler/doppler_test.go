package doppler

import (
	"errors"
	"math"
	"testing"
)

func TestShift(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		want float64
	}{
		{"at rest", 0, 500},
		{"receding", 30000, 550},
		{"approaching", -60000, 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Shift(RestWavelength, tt.v)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Shift(%v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestRelativisticShiftExceedsLinearForRecession(t *testing.T) {
	lin, _ := Shift(RestWavelength, 150000)
	rel, err := RelativisticShift(RestWavelength, 150000)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(rel-500*math.Sqrt(3)) > 1e-9 {
		t.Errorf("expected 500·sqrt(3), got %f", rel)
	}
	if rel <= lin {
		t.Errorf("expected relativistic %f > linear %f", rel, lin)
	}
}

func TestShiftRejectsInvalid(t *testing.T) {
	if _, err := Shift(0, 100); !errors.Is(err, ErrInvalidWavelength) {
		t.Errorf("expected ErrInvalidWavelength, got %v", err)
	}
	if _, err := Shift(500, C); !errors.Is(err, ErrSuperluminal) {
		t.Errorf("expected ErrSuperluminal, got %v", err)
	}
	if _, err := RelativisticShift(500, -C); !errors.Is(err, ErrSuperluminal) {
		t.Errorf("expected ErrSuperluminal, got %v", err)
	}
}

func TestBandOf(t *testing.T) {
	tests := []struct {
		wavelength float64
		want       string
	}{
		{379.9, OutsideVisible},
		{380, "violet"},
		{450, "violet"},
		{451, "blue"},
		{500, "green"},
		{580, "yellow"},
		{600, "orange"},
		{700, "red"},
		{750, "red"},
		{751, OutsideVisible},
	}

	for _, tt := range tests {
		if got := BandOf(tt.wavelength); got != tt.want {
			t.Errorf("BandOf(%v) = %q, want %q", tt.wavelength, got, tt.want)
		}
	}
}

func TestObserve(t *testing.T) {
	obs, err := Observe(RestWavelength, 60000)
	if err != nil {
		t.Fatal(err)
	}
	if obs.Direction != "redshift" {
		t.Errorf("expected redshift, got %s", obs.Direction)
	}
	if obs.RestBand != "green" || obs.ObservedBand != "orange" {
		t.Errorf("expected green -> orange, got %s -> %s", obs.RestBand, obs.ObservedBand)
	}
	if Classify(-1) != "blueshift" || Classify(0) != "at rest" {
		t.Error("unexpected classification")
	}
}
