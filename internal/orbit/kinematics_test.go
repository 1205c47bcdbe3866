package orbit_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/astrosim/internal/orbit"
)

var _ = Describe("Generate", func() {
	textbook := orbit.Params{A: 1, E: 0.5, T: 1}

	DescribeTable("returns exactly steps frames in time order",
		func(p orbit.Params, steps int) {
			frames, err := orbit.Generate(p, steps)
			Expect(err).NotTo(HaveOccurred())
			Expect(frames).To(HaveLen(steps))
			for i := 1; i < len(frames); i++ {
				Expect(frames[i].T).To(BeNumerically(">", frames[i-1].T))
				Expect(frames[i].Index).To(Equal(i))
			}
			last := frames[len(frames)-1]
			Expect(last.T).To(BeNumerically("<", p.T))
		},
		Entry("single step", textbook, 1),
		Entry("textbook orbit", textbook, 180),
		Entry("earth", orbit.Params{A: 1, E: 0.0167, T: 1}, 365),
		Entry("halley", orbit.Params{A: 17.8, E: 0.967, T: 75.3}, 1000),
	)

	It("keeps r consistent with theta through the orbit equation", func() {
		frames, err := orbit.Generate(textbook, 360)
		Expect(err).NotTo(HaveOccurred())
		for _, f := range frames {
			Expect(f.Theta).To(BeNumerically(">=", 0))
			Expect(f.Theta).To(BeNumerically("<", 2*math.Pi))
			Expect(f.R).To(BeNumerically("~", textbook.RadiusAt(f.Theta), 1e-12))
			Expect(f.Pos.Norm()).To(BeNumerically("~", f.R, 1e-12))
		}
	})

	It("advances theta linearly with time", func() {
		frames, err := orbit.Generate(orbit.Params{A: 2, E: 0.2, T: 4}, 8)
		Expect(err).NotTo(HaveOccurred())
		for i, f := range frames {
			Expect(f.T).To(BeNumerically("~", float64(i)*0.5, 1e-12))
			Expect(f.Theta).To(BeNumerically("~", float64(i)*math.Pi/4, 1e-12))
		}
	})

	It("obeys vis-viva with a tangential velocity", func() {
		frames, err := orbit.Generate(textbook, 90)
		Expect(err).NotTo(HaveOccurred())
		for _, f := range frames {
			want := math.Sqrt(orbit.GM * (2/f.R - 1/textbook.A))
			Expect(f.Speed()).To(BeNumerically("~", want, 1e-9))
			Expect(f.Vel.X).To(BeNumerically("~", -want*math.Sin(f.Theta), 1e-9))
			Expect(f.Vel.Y).To(BeNumerically("~", want*math.Cos(f.Theta), 1e-9))
		}
	})

	It("is faster at perihelion than at aphelion", func() {
		frames, err := orbit.Generate(textbook, 180)
		Expect(err).NotTo(HaveOccurred())

		peri, aph := frames[0], frames[90]
		Expect(peri.Theta).To(BeNumerically("~", 0, 1e-12))
		Expect(aph.Theta).To(BeNumerically("~", math.Pi, 1e-12))
		Expect(peri.R).To(BeNumerically("~", 0.5, 1e-12))
		Expect(aph.R).To(BeNumerically("~", 1.5, 1e-12))
		Expect(peri.Speed()).To(BeNumerically(">", aph.Speed()))
		Expect(peri.Speed() / aph.Speed()).To(BeNumerically("~", 3, 1e-9))
	})

	It("yields constant radius and speed for a circle", func() {
		frames, err := orbit.Generate(orbit.Params{A: 1.5, E: 0, T: 2}, 64)
		Expect(err).NotTo(HaveOccurred())
		for _, f := range frames {
			Expect(f.R).To(BeNumerically("~", 1.5, 1e-12))
			Expect(f.Speed()).To(BeNumerically("~", frames[0].Speed(), 1e-12))
		}
	})

	It("is deterministic", func() {
		a, err := orbit.Generate(textbook, 500)
		Expect(err).NotTo(HaveOccurred())
		b, err := orbit.Generate(textbook, 500)
		Expect(err).NotTo(HaveOccurred())
		Expect(a).To(Equal(b))
	})

	DescribeTable("rejects invalid input before computing",
		func(p orbit.Params, steps int, want error) {
			frames, err := orbit.Generate(p, steps)
			Expect(err).To(MatchError(want))
			Expect(frames).To(BeNil())
		},
		Entry("e = 1", orbit.Params{A: 1, E: 1.0, T: 1}, 10, orbit.ErrInvalidEccentricity),
		Entry("e > 1", orbit.Params{A: 1, E: 1.5, T: 1}, 10, orbit.ErrInvalidEccentricity),
		Entry("e < 0", orbit.Params{A: 1, E: -0.1, T: 1}, 10, orbit.ErrInvalidEccentricity),
		Entry("e NaN", orbit.Params{A: 1, E: math.NaN(), T: 1}, 10, orbit.ErrInvalidEccentricity),
		Entry("a = 0", orbit.Params{A: 0, E: 0.1, T: 1}, 10, orbit.ErrInvalidSemiMajorAxis),
		Entry("a < 0", orbit.Params{A: -2, E: 0.1, T: 1}, 10, orbit.ErrInvalidSemiMajorAxis),
		Entry("T = 0", orbit.Params{A: 1, E: 0.1, T: 0}, 10, orbit.ErrInvalidPeriod),
		Entry("T infinite", orbit.Params{A: 1, E: 0.1, T: math.Inf(1)}, 10, orbit.ErrInvalidPeriod),
		Entry("steps = 0", orbit.Params{A: 1, E: 0.1, T: 1}, 0, orbit.ErrInvalidStepCount),
		Entry("steps < 0", orbit.Params{A: 1, E: 0.1, T: 1}, -3, orbit.ErrInvalidStepCount),
	)

	It("reports the offending field", func() {
		_, err := orbit.Generate(orbit.Params{A: 1, E: 1.0, T: 1}, 10)
		var pe *orbit.ParamError
		Expect(err).To(BeAssignableToTypeOf(pe))
		Expect(err.Error()).To(ContainSubstring("e=1"))
	})

	It("guards the vanishing radius", func() {
		_, err := orbit.Generate(orbit.Params{A: 1e-14, E: 0.5, T: 1}, 4)
		Expect(err).To(MatchError(orbit.ErrDegenerateOrbit))
	})
})

var _ = Describe("GenerateWith", func() {
	p := orbit.Params{A: 5.2, E: 0.3, T: 11.86}

	It("matches the serial output when parallel", func() {
		serial, err := orbit.Generate(p, 5000)
		Expect(err).NotTo(HaveOccurred())
		parallel, err := orbit.GenerateWith(p, 5000, orbit.Options{Workers: 4})
		Expect(err).NotTo(HaveOccurred())
		Expect(parallel).To(Equal(serial))
	})

	It("reports domain errors from parallel chunks", func() {
		_, err := orbit.GenerateWith(orbit.Params{A: 1e-14, E: 0.5, T: 1}, 2000, orbit.Options{Workers: 3})
		Expect(err).To(MatchError(orbit.ErrDegenerateOrbit))
	})

	Context("with kepler timing", func() {
		opts := orbit.Options{Timing: orbit.TimingKepler}

		It("keeps the orbit equation and vis-viva", func() {
			frames, err := orbit.GenerateWith(p, 400, opts)
			Expect(err).NotTo(HaveOccurred())
			for _, f := range frames {
				Expect(f.R).To(BeNumerically("~", p.RadiusAt(f.Theta), 1e-9))
				Expect(f.Speed()).To(BeNumerically("~", p.SpeedAt(f.R), 1e-9))
			}
		})

		It("conserves angular momentum", func() {
			frames, err := orbit.GenerateWith(p, 400, opts)
			Expect(err).NotTo(HaveOccurred())
			h := math.Sqrt(orbit.GM * p.SemiLatusRectum())
			for _, f := range frames {
				Expect(f.Pos.Cross(f.Vel)).To(BeNumerically("~", h, 1e-9*h))
			}
		})
	})
})

var _ = Describe("TrueAnomaly", func() {
	DescribeTable("satisfies Kepler's equation",
		func(m, e float64) {
			ea := orbit.EccentricAnomaly(m, e)
			Expect(math.Mod(ea-e*math.Sin(ea)+2*math.Pi, 2*math.Pi)).To(BeNumerically("~", math.Mod(m, 2*math.Pi), 1e-10))
		},
		Entry("circle", 1.0, 0.0),
		Entry("low e", 0.3, 0.1),
		Entry("moderate e", 2.5, 0.5),
		Entry("high e near perihelion", 0.05, 0.95),
		Entry("high e past aphelion", 4.0, 0.967),
	)

	It("is zero at perihelion and π at aphelion", func() {
		Expect(orbit.TrueAnomaly(0, 0.6)).To(BeNumerically("~", 0, 1e-12))
		Expect(orbit.TrueAnomaly(math.Pi, 0.6)).To(BeNumerically("~", math.Pi, 1e-9))
	})
})
