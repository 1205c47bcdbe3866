package metrics

import (
	"math"

	"github.com/san-kum/astrosim/internal/orbit"
)

// SpeedRange is max|v| / min|v|, which tends to (1+e)/(1-e).
type SpeedRange struct {
	min, max float64
	samples  int
}

func NewSpeedRange() *SpeedRange {
	return &SpeedRange{}
}

func (s *SpeedRange) Name() string { return "speed_range" }

func (s *SpeedRange) Observe(f orbit.Frame) {
	v := f.Speed()
	if s.samples == 0 {
		s.min, s.max = v, v
	} else {
		s.min = math.Min(s.min, v)
		s.max = math.Max(s.max, v)
	}
	s.samples++
}

func (s *SpeedRange) Value() float64 {
	if s.samples == 0 || s.min == 0 {
		return 0
	}
	return s.max / s.min
}

func (s *SpeedRange) Reset() {
	s.min, s.max = 0, 0
	s.samples = 0
}

// MeanSpeed is the sample average of |v| in AU/yr.
type MeanSpeed struct {
	total   float64
	samples int
}

func NewMeanSpeed() *MeanSpeed {
	return &MeanSpeed{}
}

func (m *MeanSpeed) Name() string { return "mean_speed" }

func (m *MeanSpeed) Observe(f orbit.Frame) {
	m.total += f.Speed()
	m.samples++
}

func (m *MeanSpeed) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.total / float64(m.samples)
}

func (m *MeanSpeed) Reset() {
	m.total = 0
	m.samples = 0
}
