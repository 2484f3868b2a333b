package energy_test

import (
	"math"
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gonum.org/v1/gonum/diff/fd"

	"github.com/BenedictAdamson/MC-physics-sub001/internal/energy"
	"github.com/BenedictAdamson/MC-physics-sub001/internal/statespace"
)

func slice(offset, dim int) statespace.Slice {
	s, err := statespace.NewSlice(offset, dim)
	Expect(err).NotTo(HaveOccurred())
	return s
}

func randomState(rng *rand.Rand, n int) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = rng.Float64()*20 - 10
	}
	return s
}

var _ = Describe("PositionVelocity", func() {
	Describe("construction", func() {
		DescribeTable("rejects a bad mass scale",
			func(mass float64) {
				_, err := energy.NewPositionVelocity(mass, slice(0, 1), slice(1, 1))
				Expect(err).To(MatchError(energy.ErrInvalidConfiguration))
			},
			Entry("zero", 0.0),
			Entry("negative", -1.0),
			Entry("NaN", math.NaN()),
			Entry("+Inf", math.Inf(1)),
			Entry("-Inf", math.Inf(-1)),
		)

		It("rejects missing mappers", func() {
			_, err := energy.NewPositionVelocity(1, nil, slice(0, 1))
			Expect(err).To(MatchError(energy.ErrInvalidConfiguration))

			_, err = energy.NewPositionVelocity(1, slice(0, 1), nil)
			Expect(err).To(MatchError(energy.ErrInvalidConfiguration))
		})

		It("rejects mappers of unequal dimension", func() {
			for pd := 1; pd <= 4; pd++ {
				for vd := 1; vd <= 4; vd++ {
					if pd == vd {
						continue
					}
					_, err := energy.NewPositionVelocity(1, slice(0, pd), slice(pd, vd))
					Expect(err).To(MatchError(energy.ErrInvalidConfiguration), "dims %d/%d", pd, vd)
				}
			}
		})

		It("keeps its configuration", func() {
			pos, vel := slice(0, 3), slice(3, 3)
			term, err := energy.NewPositionVelocity(2.5, pos, vel)
			Expect(err).NotTo(HaveOccurred())
			Expect(term.Mass()).To(Equal(2.5))
			Expect(term.Position()).To(Equal(pos))
			Expect(term.Velocity()).To(Equal(vel))
		})
	})

	Describe("IsValidForDimension", func() {
		It("requires both mappers to fit", func() {
			term, err := energy.NewPositionVelocity(1, slice(0, 2), slice(4, 2))
			Expect(err).NotTo(HaveOccurred())

			for n := 0; n < 10; n++ {
				want := slice(0, 2).IsValidForDimension(n) && slice(4, 2).IsValidForDimension(n)
				Expect(term.IsValidForDimension(n)).To(Equal(want), "n=%d", n)
			}
			Expect(term.IsValidForDimension(5)).To(BeFalse())
			Expect(term.IsValidForDimension(6)).To(BeTrue())
		})
	})

	Describe("Evaluate", func() {
		var term *energy.PositionVelocity

		BeforeEach(func() {
			var err error
			term, err = energy.NewPositionVelocity(2.0, slice(0, 1), slice(1, 1))
			Expect(err).NotTo(HaveOccurred())
		})

		It("is zero for a trapezoidally consistent step", func() {
			grad := make([]float64, 2)
			e, err := term.Evaluate(grad, []float64{0, 1}, []float64{1, 1}, 1.0)
			Expect(err).NotTo(HaveOccurred())
			Expect(e).To(Equal(0.0))
			Expect(grad).To(Equal([]float64{0, 0}))
		})

		It("measures the kinetic energy of the velocity mismatch", func() {
			grad := make([]float64, 2)
			e, err := term.Evaluate(grad, []float64{0, 1}, []float64{2, 1}, 1.0)
			Expect(err).NotTo(HaveOccurred())
			Expect(e).To(BeNumerically("~", 1.0, 1e-12))
			Expect(grad[0]).To(BeNumerically("~", 2.0, 1e-12))
			Expect(grad[1]).To(BeNumerically("~", -1.0, 1e-12))
		})

		It("does not modify the state vectors", func() {
			before := []float64{0, 1}
			candidate := []float64{2, 1}
			_, err := term.Evaluate(make([]float64, 2), before, candidate, 0.5)
			Expect(err).NotTo(HaveOccurred())
			Expect(before).To(Equal([]float64{0, 1}))
			Expect(candidate).To(Equal([]float64{2, 1}))
		})

		It("fails the shared preconditions", func() {
			_, err := term.Evaluate(make([]float64, 2), []float64{0, 1}, []float64{0, 1}, 0)
			Expect(err).To(MatchError(energy.ErrInvalidArgument))

			_, err = term.Evaluate(make([]float64, 3), []float64{0, 1}, []float64{0, 1}, 1)
			Expect(err).To(MatchError(energy.ErrInvalidArgument))
		})

		It("fails for state vectors too short for its mappers", func() {
			wide, err := energy.NewPositionVelocity(1, slice(0, 3), slice(3, 3))
			Expect(err).NotTo(HaveOccurred())

			grad := make([]float64, 4)
			_, err = wide.Evaluate(grad, make([]float64, 4), make([]float64, 4), 1)
			Expect(err).To(MatchError(energy.ErrInvalidArgument))
			Expect(err).To(MatchError(statespace.ErrOutOfRange))
			Expect(grad).To(Equal(make([]float64, 4)))
		})
	})

	Describe("properties", func() {
		const dim = 3
		var rng *rand.Rand

		BeforeEach(func() {
			rng = rand.New(rand.NewSource(42))
		})

		It("is zero when x = x0 + v0*dt and v = v0", func() {
			term, err := energy.NewPositionVelocity(1.5, slice(0, dim), slice(dim, dim))
			Expect(err).NotTo(HaveOccurred())

			for trial := 0; trial < 50; trial++ {
				before := randomState(rng, 2*dim)
				dt := 0.01 + rng.Float64()
				candidate := make([]float64, 2*dim)
				for i := 0; i < dim; i++ {
					candidate[i] = before[i] + before[dim+i]*dt
					candidate[dim+i] = before[dim+i]
				}

				grad := make([]float64, 2*dim)
				e, err := term.Evaluate(grad, before, candidate, dt)
				Expect(err).NotTo(HaveOccurred())
				Expect(e).To(BeNumerically("<", 1e-18))
				for _, g := range grad {
					Expect(g).To(BeNumerically("~", 0, 1e-9))
				}
			}
		})

		It("has an analytic gradient matching central differences", func() {
			settings := &fd.Settings{Formula: fd.Central, Step: 1e-3}

			for trial := 0; trial < 25; trial++ {
				mass := 0.1 + 5*rng.Float64()
				dt := 0.1 + rng.Float64()
				term, err := energy.NewPositionVelocity(mass, slice(0, dim), slice(dim, dim))
				Expect(err).NotTo(HaveOccurred())

				before := randomState(rng, 2*dim)
				candidate := randomState(rng, 2*dim)

				grad := make([]float64, 2*dim)
				_, err = term.Evaluate(grad, before, candidate, dt)
				Expect(err).NotTo(HaveOccurred())

				numeric := fd.Gradient(nil, func(x []float64) float64 {
					e, err := term.Evaluate(make([]float64, len(x)), before, x, dt)
					Expect(err).NotTo(HaveOccurred())
					return e
				}, candidate, settings)

				for i := range grad {
					Expect(grad[i]).To(BeNumerically("~", numeric[i], 1e-5*(1+math.Abs(numeric[i]))), "component %d", i)
				}
			}
		})

		It("keeps contributions of terms with disjoint mappers separate", func() {
			a, err := energy.NewPositionVelocity(1, slice(0, dim), slice(dim, dim))
			Expect(err).NotTo(HaveOccurred())
			b, err := energy.NewPositionVelocity(3, slice(2*dim, dim), slice(3*dim, dim))
			Expect(err).NotTo(HaveOccurred())

			before := randomState(rng, 4*dim)
			candidate := randomState(rng, 4*dim)

			alone := func(term energy.Term) []float64 {
				g := make([]float64, 4*dim)
				_, err := term.Evaluate(g, before, candidate, 0.3)
				Expect(err).NotTo(HaveOccurred())
				return g
			}
			ga, gb := alone(a), alone(b)

			shared := make([]float64, 4*dim)
			_, err = a.Evaluate(shared, before, candidate, 0.3)
			Expect(err).NotTo(HaveOccurred())
			_, err = b.Evaluate(shared, before, candidate, 0.3)
			Expect(err).NotTo(HaveOccurred())

			Expect(shared[:2*dim]).To(Equal(ga[:2*dim]))
			Expect(shared[2*dim:]).To(Equal(gb[2*dim:]))
			for _, g := range ga[2*dim:] {
				Expect(g).To(Equal(0.0))
			}
		})

		It("sums repeated evaluations into the same buffer", func() {
			term, err := energy.NewPositionVelocity(2, slice(0, dim), slice(dim, dim))
			Expect(err).NotTo(HaveOccurred())

			before := randomState(rng, 2*dim)
			candidate := randomState(rng, 2*dim)

			once := make([]float64, 2*dim)
			_, err = term.Evaluate(once, before, candidate, 0.2)
			Expect(err).NotTo(HaveOccurred())

			twice := make([]float64, 2*dim)
			for i := 0; i < 2; i++ {
				_, err = term.Evaluate(twice, before, candidate, 0.2)
				Expect(err).NotTo(HaveOccurred())
			}

			for i := range once {
				Expect(twice[i]).To(BeNumerically("~", 2*once[i], 1e-12*(1+math.Abs(once[i]))))
			}
		})
	})
})
