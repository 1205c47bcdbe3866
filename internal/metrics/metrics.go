// Package metrics summarises a generated orbit as scalar diagnostics.
package metrics

import "github.com/san-kum/astrosim/internal/orbit"

// Metric accumulates one diagnostic over a frame sequence.
type Metric interface {
	Name() string
	Observe(f orbit.Frame)
	Value() float64
	Reset()
}

// Default returns the diagnostics recorded with every run.
func Default(p orbit.Params) []Metric {
	return []Metric{
		NewEnergySpread(p),
		NewSpeedRange(),
		NewAngularMomentumSpread(),
		NewMeanSpeed(),
	}
}

// Evaluate resets ms, feeds them frames in order and collects their values.
func Evaluate(frames []orbit.Frame, ms ...Metric) map[string]float64 {
	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		m.Reset()
	}
	for _, f := range frames {
		for _, m := range ms {
			m.Observe(f)
		}
	}
	for _, m := range ms {
		out[m.Name()] = m.Value()
	}
	return out
}
