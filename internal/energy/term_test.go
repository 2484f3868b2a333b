package energy_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/BenedictAdamson/MC-physics-sub001/internal/energy"
)

var _ = Describe("CheckArguments", func() {
	state := []float64{1, 2}

	It("accepts matching lengths and a positive step", func() {
		Expect(energy.CheckArguments(make([]float64, 2), state, state, 0.1)).To(Succeed())
	})

	DescribeTable("rejects bad arguments",
		func(grad, before, candidate []float64, dt float64, reason string) {
			err := energy.CheckArguments(grad, before, candidate, dt)
			Expect(err).To(MatchError(energy.ErrInvalidArgument))
			Expect(err.Error()).To(ContainSubstring(reason))
		},
		Entry("empty state", []float64{}, []float64{}, []float64{}, 1.0, "empty"),
		Entry("candidate length", make([]float64, 2), state, []float64{1}, 1.0, "length mismatch"),
		Entry("gradient length", make([]float64, 3), state, state, 1.0, "length mismatch"),
		Entry("zero step", make([]float64, 2), state, state, 0.0, "non-positive time step"),
		Entry("negative step", make([]float64, 2), state, state, -0.5, "non-positive time step"),
		Entry("NaN step", make([]float64, 2), state, state, math.NaN(), "non-positive time step"),
		Entry("infinite step", make([]float64, 2), state, state, math.Inf(1), "non-positive time step"),
	)
})
