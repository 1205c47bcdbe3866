package orbit_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/astrosim/internal/orbit"
)

var _ = Describe("SectorArea", func() {
	textbook := orbit.Params{A: 1, E: 0.5, T: 1}

	It("sweeps equal areas at the start and end of the period", func() {
		frames, err := orbit.Generate(textbook, 180)
		Expect(err).NotTo(HaveOccurred())

		first, err := orbit.SectorArea(frames, 0, 36)
		Expect(err).NotTo(HaveOccurred())
		last, err := orbit.SectorArea(frames, 144, 180)
		Expect(err).NotTo(HaveOccurred())

		Expect(first).To(BeNumerically(">", 0))
		Expect(math.Abs(first-last) / first).To(BeNumerically("<", 0.02))
	})

	It("approximates the ellipse area over a full period", func() {
		p := orbit.Params{A: 2, E: 0.4, T: 3}
		frames, err := orbit.Generate(p, 2000)
		Expect(err).NotTo(HaveOccurred())

		area, err := orbit.SectorArea(frames, 0, len(frames))
		Expect(err).NotTo(HaveOccurred())

		exact := math.Pi * p.A * p.A * math.Sqrt(1-p.E*p.E)
		bound := orbit.AreaErrorBound(p, 2000, orbit.TimingUniform)
		Expect(math.Abs(area-exact) / exact).To(BeNumerically("<=", bound))
	})

	It("is exact for a circle", func() {
		frames, err := orbit.Generate(orbit.Params{A: 3, E: 0, T: 1}, 12)
		Expect(err).NotTo(HaveOccurred())
		area, err := orbit.SectorArea(frames, 0, 12)
		Expect(err).NotTo(HaveOccurred())
		Expect(area).To(BeNumerically("~", 9*math.Pi, 1e-9))
	})

	It("returns zero for an empty range", func() {
		frames, err := orbit.Generate(textbook, 10)
		Expect(err).NotTo(HaveOccurred())
		area, err := orbit.SectorArea(frames, 4, 4)
		Expect(err).NotTo(HaveOccurred())
		Expect(area).To(BeZero())
	})

	DescribeTable("rejects ranges outside the sequence",
		func(lo, hi int) {
			frames, err := orbit.Generate(textbook, 10)
			Expect(err).NotTo(HaveOccurred())
			_, err = orbit.SectorArea(frames, lo, hi)
			Expect(err).To(MatchError(orbit.ErrInvalidRange))
		},
		Entry("negative lo", -1, 3),
		Entry("hi past end", 0, 11),
		Entry("inverted", 6, 2),
	)
})

var _ = Describe("CompareAreas", func() {
	It("compares the first and last fifth", func() {
		frames, err := orbit.Generate(orbit.Params{A: 1, E: 0.5, T: 1}, 180)
		Expect(err).NotTo(HaveOccurred())

		cmp, err := orbit.CompareAreas(frames, 0.2)
		Expect(err).NotTo(HaveOccurred())
		Expect(cmp.Steps).To(Equal(36))
		Expect(cmp.RelDiff).To(BeNumerically("<", 0.02))
	})

	It("holds for any window under kepler timing", func() {
		p := orbit.Params{A: 1, E: 0.6, T: 1}
		frames, err := orbit.GenerateWith(p, 3600, orbit.Options{Timing: orbit.TimingKepler})
		Expect(err).NotTo(HaveOccurred())

		perihelion, err := orbit.SectorArea(frames, 0, 360)
		Expect(err).NotTo(HaveOccurred())
		aphelion, err := orbit.SectorArea(frames, 1620, 1980)
		Expect(err).NotTo(HaveOccurred())
		Expect(math.Abs(perihelion-aphelion) / aphelion).To(BeNumerically("<", 0.01))
	})

	It("rejects fractions outside (0, 0.5]", func() {
		frames, err := orbit.Generate(orbit.Params{A: 1, E: 0.5, T: 1}, 10)
		Expect(err).NotTo(HaveOccurred())
		_, err = orbit.CompareAreas(frames, 0)
		Expect(err).To(MatchError(orbit.ErrInvalidRange))
		_, err = orbit.CompareAreas(frames, 0.8)
		Expect(err).To(MatchError(orbit.ErrInvalidRange))
		_, err = orbit.CompareAreas(frames, 0.01)
		Expect(err).To(MatchError(orbit.ErrInvalidRange))
	})
})

var _ = Describe("AreaErrorBound", func() {
	It("vanishes for circles and shrinks with more steps", func() {
		Expect(orbit.AreaErrorBound(orbit.Params{A: 1, E: 0, T: 1}, 10, orbit.TimingUniform)).To(BeZero())

		p := orbit.Params{A: 1, E: 0.5, T: 1}
		coarse := orbit.AreaErrorBound(p, 100, orbit.TimingUniform)
		fine := orbit.AreaErrorBound(p, 1000, orbit.TimingUniform)
		Expect(fine).To(BeNumerically("~", coarse/100, coarse*1e-9))
		Expect(orbit.AreaErrorBound(p, 100, orbit.TimingKepler)).To(BeNumerically(">", coarse))
	})

	It("is infinite for invalid input", func() {
		Expect(math.IsInf(orbit.AreaErrorBound(orbit.Params{A: 1, E: 1, T: 1}, 10, orbit.TimingUniform), 1)).To(BeTrue())
	})
})
