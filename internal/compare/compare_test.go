package compare_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/pendplot/internal/compare"
	"github.com/san-kum/pendplot/internal/trajectory"
)

func result(m trajectory.Method, t, theta, thetaDot []float64) *trajectory.Result {
	return &trajectory.Result{
		Method: m,
		Table:  &trajectory.Table{T: t, Theta: theta, ThetaDot: thetaDot},
	}
}

var _ = Describe("LocalError", func() {
	It("computes the absolute error against the reference", func() {
		fe := result(trajectory.FE, []float64{0, 1}, []float64{0, 0.1}, []float64{0, 0.05})
		rk4 := result(trajectory.RK4, []float64{0, 1}, []float64{0, 0.09}, []float64{0, 0.04})

		s := compare.LocalError(rk4, fe)
		Expect(s.Method).To(Equal(trajectory.FE))
		Expect(s.T).To(Equal([]float64{0, 1}))
		Expect(s.Theta).To(HaveLen(2))
		Expect(s.Theta[0]).To(BeZero())
		Expect(s.Theta[1]).To(BeNumerically("~", 0.01, 1e-12))
		Expect(s.ThetaDot[0]).To(BeZero())
		Expect(s.ThetaDot[1]).To(BeNumerically("~", 0.01, 1e-12))
	})

	It("is never negative and matches |candidate - reference| at every row", func() {
		ref := result(trajectory.RK4,
			[]float64{0, 0.1, 0.2, 0.3},
			[]float64{0.5, 0.45, 0.31, 0.12},
			[]float64{0, -0.9, -1.6, -2.1})
		me := result(trajectory.ME,
			[]float64{0, 0.1, 0.2, 0.3},
			[]float64{0.5, 0.46, 0.29, 0.15},
			[]float64{0, -0.95, -1.5, -2.3})

		s := compare.LocalError(ref, me)
		for i := range s.Theta {
			Expect(s.Theta[i]).To(BeNumerically(">=", 0))
			Expect(s.Theta[i]).To(Equal(math.Abs(me.Table.Theta[i] - ref.Table.Theta[i])))
			Expect(s.ThetaDot[i]).To(Equal(math.Abs(me.Table.ThetaDot[i] - ref.Table.ThetaDot[i])))
		}
	})

	It("truncates to the shorter table and keeps the reference time axis", func() {
		ref := result(trajectory.RK4, []float64{0, 1, 2}, []float64{0, 0, 0}, []float64{0, 0, 0})
		fe := result(trajectory.FE, []float64{0, 1}, []float64{1, 2}, []float64{3, 4})

		Expect(compare.LocalError(ref, fe).Len()).To(Equal(2))
		Expect(compare.LocalError(fe, ref).Len()).To(Equal(2))
		Expect(compare.LocalError(fe, ref).T).To(Equal([]float64{0, 1}))
	})

	It("skips the reference itself when computing many series", func() {
		ref := result(trajectory.RK4, []float64{0}, []float64{0}, []float64{0})
		fe := result(trajectory.FE, []float64{0}, []float64{0}, []float64{0})
		me := result(trajectory.ME, []float64{0}, []float64{0}, []float64{0})

		series := compare.LocalErrors(ref, []*trajectory.Result{fe, ref, me})
		Expect(series).To(HaveLen(2))
		Expect(series[0].Method).To(Equal(trajectory.FE))
		Expect(series[1].Method).To(Equal(trajectory.ME))
	})
})

var _ = Describe("Split", func() {
	It("separates the reference from the candidates", func() {
		fe := result(trajectory.FE, nil, nil, nil)
		rk4 := result(trajectory.RK4, nil, nil, nil)

		ref, others, err := compare.Split([]*trajectory.Result{fe, rk4}, trajectory.RK4)
		Expect(err).NotTo(HaveOccurred())
		Expect(ref).To(BeIdenticalTo(rk4))
		Expect(others).To(ConsistOf(fe))
	})

	It("reports a missing reference", func() {
		fe := result(trajectory.FE, nil, nil, nil)

		_, others, err := compare.Split([]*trajectory.Result{fe}, trajectory.RK4)
		Expect(err).To(MatchError(compare.ErrNoReference))
		Expect(others).To(HaveLen(1))
	})
})

var _ = Describe("CheckGrid", func() {
	It("accepts identical grids", func() {
		a := result(trajectory.RK4, []float64{0, 0.1, 0.2}, make([]float64, 3), make([]float64, 3))
		b := result(trajectory.FE, []float64{0, 0.1, 0.2 + 1e-12}, make([]float64, 3), make([]float64, 3))

		Expect(compare.CheckGrid(a, b, 1e-9)).To(Succeed())
	})

	It("reports a length mismatch", func() {
		a := result(trajectory.RK4, []float64{0, 0.1, 0.2}, make([]float64, 3), make([]float64, 3))
		b := result(trajectory.FE, []float64{0, 0.1}, make([]float64, 2), make([]float64, 2))

		err := compare.CheckGrid(a, b, 1e-9)
		Expect(err).To(MatchError(compare.ErrGridMismatch))
		Expect(err.Error()).To(ContainSubstring("RK4 has 3 samples, FE has 2"))
	})

	It("reports differing time values", func() {
		a := result(trajectory.RK4, []float64{0, 0.1, 0.2}, make([]float64, 3), make([]float64, 3))
		b := result(trajectory.ME, []float64{0, 0.2, 0.4}, make([]float64, 3), make([]float64, 3))

		err := compare.CheckGrid(a, b, 1e-9)
		Expect(err).To(MatchError(compare.ErrGridMismatch))
		Expect(err.Error()).To(ContainSubstring("row 1"))
		Expect(err.Error()).To(ContainSubstring("row 2"))
	})

	It("caps the number of reported rows", func() {
		n := 20
		ta, tb := make([]float64, n), make([]float64, n)
		for i := range ta {
			ta[i] = float64(i)
			tb[i] = float64(i) + 0.5
		}
		a := result(trajectory.RK4, ta, make([]float64, n), make([]float64, n))
		b := result(trajectory.FE, tb, make([]float64, n), make([]float64, n))

		err := compare.CheckGrid(a, b, 1e-9)
		Expect(err.Error()).To(ContainSubstring("15 more rows"))
	})
})

var _ = Describe("Summarize", func() {
	It("reports max, mean and final error", func() {
		s := &compare.Series{
			Method:   trajectory.FE,
			T:        []float64{0, 1, 2, 3},
			Theta:    []float64{0, 0.4, 0.2, 0.2},
			ThetaDot: []float64{0, 0.1, 0.2, 0.5},
		}

		sum := compare.Summarize(s)
		Expect(sum.Samples).To(Equal(4))
		Expect(sum.Theta.Max).To(Equal(0.4))
		Expect(sum.Theta.MaxAt).To(Equal(1.0))
		Expect(sum.Theta.Mean).To(BeNumerically("~", 0.2, 1e-12))
		Expect(sum.Theta.Final).To(Equal(0.2))
		Expect(sum.ThetaDot.Max).To(Equal(0.5))
		Expect(sum.ThetaDot.MaxAt).To(Equal(3.0))
	})

	It("returns zero stats for an empty series", func() {
		sum := compare.Summarize(&compare.Series{})
		Expect(sum).To(Equal(compare.Summary{}))
	})
})

var _ = Describe("DominantPeriod", func() {
	It("finds the period of a sampled sine", func() {
		n, dt, period := 1000, 0.01, 2.0
		tb := &trajectory.Table{T: make([]float64, n), Theta: make([]float64, n), ThetaDot: make([]float64, n)}
		for i := 0; i < n; i++ {
			tb.T[i] = float64(i) * dt
			tb.Theta[i] = 0.3 * math.Sin(2*math.Pi*tb.T[i]/period)
		}

		got, ok := compare.DominantPeriod(tb)
		Expect(ok).To(BeTrue())
		Expect(got).To(BeNumerically("~", period, 1e-9))
	})

	It("gives up on flat or short tables", func() {
		flat := &trajectory.Table{T: []float64{0, 1, 2, 3, 4}, Theta: []float64{1, 1, 1, 1, 1}}
		_, ok := compare.DominantPeriod(flat)
		Expect(ok).To(BeFalse())

		short := &trajectory.Table{T: []float64{0, 1}, Theta: []float64{0, 1}}
		_, ok = compare.DominantPeriod(short)
		Expect(ok).To(BeFalse())
	})
})
