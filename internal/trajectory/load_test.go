package trajectory_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/pendplot/internal/trajectory"
)

func writeCSV(dir, name, content string) string {
	path := filepath.Join(dir, name)
	Expect(os.WriteFile(path, []byte(content), 0o644)).To(Succeed())
	return path
}

var _ = Describe("Load", func() {
	var dir string

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
	})

	It("reproduces the literal values of every column", func() {
		path := writeCSV(dir, "fe.csv", "t,theta,theta_dot,theta_ddot\n"+
			"0,0.5,0,-4.70184\n"+
			"0.01,0.4995298,-0.0470184,-4.6996\n"+
			"0.02,0.49859,-0.094018,-4.69\n")

		tb, err := trajectory.Load(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(tb.Len()).To(Equal(3))
		Expect(tb.T).To(Equal([]float64{0, 0.01, 0.02}))
		Expect(tb.Theta).To(Equal([]float64{0.5, 0.4995298, 0.49859}))
		Expect(tb.ThetaDot).To(Equal([]float64{0, -0.0470184, -0.094018}))
		Expect(tb.ThetaDDot).To(Equal([]float64{-4.70184, -4.6996, -4.69}))
		Expect(tb.HasAcceleration()).To(BeTrue())
	})

	It("treats theta_ddot as optional", func() {
		path := writeCSV(dir, "rk4.csv", "t,theta,theta_dot\n0,0,0\n1,0.09,0.04\n")

		tb, err := trajectory.Load(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(tb.HasAcceleration()).To(BeFalse())
		Expect(tb.ThetaDDot).To(BeNil())
		Expect(tb.Sample(1)).To(Equal(trajectory.Sample{T: 1, Theta: 0.09, ThetaDot: 0.04}))
	})

	It("looks columns up by name, not position", func() {
		path := writeCSV(dir, "shuffled.csv", "theta_dot, t ,theta\n0.05,1,0.1\n")

		tb, err := trajectory.Load(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(tb.Sample(0)).To(Equal(trajectory.Sample{T: 1, Theta: 0.1, ThetaDot: 0.05}))
	})

	It("accepts a single row", func() {
		path := writeCSV(dir, "one.csv", "t,theta,theta_dot\n0,0.3,0\n")

		tb, err := trajectory.Load(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(tb.Len()).To(Equal(1))
	})

	It("fails with a data load error when theta_dot is missing", func() {
		path := writeCSV(dir, "broken.csv", "t,theta\n0,0\n")

		_, err := trajectory.Load(path)
		Expect(err).To(MatchError(trajectory.ErrDataLoad))
		Expect(err).To(MatchError(trajectory.ErrMissingColumn))

		var le *trajectory.LoadError
		Expect(errors.As(err, &le)).To(BeTrue())
		Expect(le.Column).To(Equal("theta_dot"))
		Expect(le.Path).To(Equal(path))
	})

	It("fails with a data load error for a nonexistent path", func() {
		_, err := trajectory.Load(filepath.Join(dir, "missing.csv"))
		Expect(err).To(MatchError(trajectory.ErrDataLoad))
		Expect(errors.Is(err, os.ErrNotExist)).To(BeTrue())
	})

	It("reports the line and column of a malformed number", func() {
		path := writeCSV(dir, "nan.csv", "t,theta,theta_dot\n0,0,0\n1,abc,0\n")

		_, err := trajectory.Load(path)
		Expect(err).To(MatchError(trajectory.ErrDataLoad))

		var le *trajectory.LoadError
		Expect(errors.As(err, &le)).To(BeTrue())
		Expect(le.Line).To(Equal(3))
		Expect(le.Column).To(Equal("theta"))
	})

	DescribeTable("rejects non-finite cells",
		func(content, column string, line int) {
			path := writeCSV(dir, "diverged.csv", content)

			_, err := trajectory.Load(path)
			Expect(err).To(MatchError(trajectory.ErrDataLoad))
			Expect(err).To(MatchError(trajectory.ErrNonFinite))

			var le *trajectory.LoadError
			Expect(errors.As(err, &le)).To(BeTrue())
			Expect(le.Line).To(Equal(line))
			Expect(le.Column).To(Equal(column))
		},
		Entry("inf angle", "t,theta,theta_dot\n0,0,0\n1,inf,0\n2,0.1,0.2\n", "theta", 3),
		Entry("negative infinity", "t,theta,theta_dot\n0,0,-Inf\n", "theta_dot", 2),
		Entry("nan velocity", "t,theta,theta_dot\n0,0,0\n1,0.1,NaN\n", "theta_dot", 3),
		Entry("nan acceleration", "t,theta,theta_dot,theta_ddot\n0,0,0,nan\n", "theta_ddot", 2),
		Entry("infinite time", "t,theta,theta_dot\n+Inf,0,0\n", "t", 2),
	)

	It("rejects a header without samples", func() {
		path := writeCSV(dir, "empty.csv", "t,theta,theta_dot\n")

		_, err := trajectory.Load(path)
		Expect(err).To(MatchError(trajectory.ErrEmpty))
	})

	It("rejects an empty file", func() {
		path := writeCSV(dir, "blank.csv", "")

		_, err := trajectory.Load(path)
		Expect(err).To(MatchError(trajectory.ErrDataLoad))
		Expect(err).To(MatchError(trajectory.ErrEmpty))
	})
})

var _ = Describe("LoadAll", func() {
	It("returns one result per input in order", func() {
		dir := GinkgoT().TempDir()
		fe := writeCSV(dir, "fe.csv", "t,theta,theta_dot\n0,0,0\n")
		rk4 := writeCSV(dir, "rk4.csv", "t,theta,theta_dot\n0,0,0\n")

		results, err := trajectory.LoadAll([]trajectory.Input{
			{Method: trajectory.FE, Path: fe},
			{Method: trajectory.RK4, Path: rk4},
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(results).To(HaveLen(2))
		Expect(results[0].Method).To(Equal(trajectory.FE))
		Expect(results[1].Method).To(Equal(trajectory.RK4))
		Expect(results[1].Path).To(Equal(rk4))
	})

	It("reports every broken input", func() {
		dir := GinkgoT().TempDir()
		me := writeCSV(dir, "me.csv", "t,theta\n0,0\n")

		results, err := trajectory.LoadAll([]trajectory.Input{
			{Method: trajectory.FE, Path: filepath.Join(dir, "nope.csv")},
			{Method: trajectory.ME, Path: me},
		})
		Expect(results).To(BeNil())
		Expect(err).To(MatchError(trajectory.ErrDataLoad))
		Expect(err).To(MatchError(trajectory.ErrMissingColumn))
		Expect(strings.Count(err.Error(), "load ")).To(Equal(2))
	})
})

var _ = Describe("ParseMethod", func() {
	DescribeTable("known labels",
		func(in string, want trajectory.Method) {
			m, err := trajectory.ParseMethod(in)
			Expect(err).NotTo(HaveOccurred())
			Expect(m).To(Equal(want))
		},
		Entry("forward euler", "FE", trajectory.FE),
		Entry("lower case", "me", trajectory.ME),
		Entry("padded", " rk4 ", trajectory.RK4),
	)

	It("rejects unknown labels", func() {
		_, err := trajectory.ParseMethod("leapfrog")
		Expect(err).To(MatchError(trajectory.ErrUnknownMethod))
	})

	It("describes methods with their long name", func() {
		Expect(trajectory.FE.Describe()).To(Equal("Forward Euler (FE)"))
	})
})
