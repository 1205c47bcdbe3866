// Package doppler computes the observed wavelength of a moving light source
// and names the visible colour band it lands in.
package doppler

import (
	"errors"
	"fmt"
	"math"
)

// C is the speed of light in km/s, rounded as in classroom use.
const C = 3e5

// RestWavelength is the default green reference line in nm.
const RestWavelength = 500.0

var (
	ErrInvalidWavelength = errors.New("doppler: rest wavelength must be positive")
	ErrSuperluminal      = errors.New("doppler: |v| must be below the speed of light")
)

// Band is a named interval of visible wavelengths in nm, inclusive.
type Band struct {
	Name      string
	Low, High float64
}

// Bands lists the visible spectrum from short to long wavelengths.
var Bands = []Band{
	{Name: "violet", Low: 380, High: 450},
	{Name: "blue", Low: 450, High: 495},
	{Name: "green", Low: 495, High: 570},
	{Name: "yellow", Low: 570, High: 590},
	{Name: "orange", Low: 590, High: 620},
	{Name: "red", Low: 620, High: 750},
}

// OutsideVisible is reported for wavelengths no band covers.
const OutsideVisible = "outside visible range"

// Shift applies the first-order formula λ' = λ0(1 + v/c). Positive v is a
// receding source.
func Shift(rest, v float64) (float64, error) {
	if err := validate(rest, v); err != nil {
		return 0, err
	}
	return rest * (1 + v/C), nil
}

// RelativisticShift applies λ' = λ0·sqrt((1+β)/(1-β)).
func RelativisticShift(rest, v float64) (float64, error) {
	if err := validate(rest, v); err != nil {
		return 0, err
	}
	beta := v / C
	return rest * math.Sqrt((1+beta)/(1-beta)), nil
}

func validate(rest, v float64) error {
	if !(rest > 0) {
		return fmt.Errorf("%w: %g nm", ErrInvalidWavelength, rest)
	}
	if !(math.Abs(v) < C) {
		return fmt.Errorf("%w: %g km/s", ErrSuperluminal, v)
	}
	return nil
}

// BandOf returns the first band containing wavelength, scanning from violet.
// Shared edges resolve to the shorter band.
func BandOf(wavelength float64) string {
	for _, b := range Bands {
		if wavelength >= b.Low && wavelength <= b.High {
			return b.Name
		}
	}
	return OutsideVisible
}

// Classify names the direction of the shift.
func Classify(v float64) string {
	switch {
	case v > 0:
		return "redshift"
	case v < 0:
		return "blueshift"
	default:
		return "at rest"
	}
}

// Observation bundles one Doppler evaluation for display.
type Observation struct {
	Velocity     float64 `json:"velocity_kms"`
	Rest         float64 `json:"rest_nm"`
	Observed     float64 `json:"observed_nm"`
	Relativistic float64 `json:"relativistic_nm"`
	RestBand     string  `json:"rest_band"`
	ObservedBand string  `json:"observed_band"`
	Direction    string  `json:"direction"`
}

// Observe evaluates both shift formulas for a source at velocity v.
func Observe(rest, v float64) (Observation, error) {
	shifted, err := Shift(rest, v)
	if err != nil {
		return Observation{}, err
	}
	rel, err := RelativisticShift(rest, v)
	if err != nil {
		return Observation{}, err
	}
	return Observation{
		Velocity:     v,
		Rest:         rest,
		Observed:     shifted,
		Relativistic: rel,
		RestBand:     BandOf(rest),
		ObservedBand: BandOf(shifted),
		Direction:    Classify(v),
	}, nil
}
