package trajectory

import (
	"fmt"
	"strings"
)

// Method labels the integration scheme that produced a trajectory.
type Method string

const (
	FE  Method = "FE"
	ME  Method = "ME"
	RK4 Method = "RK4"
)

// Methods lists the known schemes in plotting order.
var Methods = []Method{FE, ME, RK4}

var methodNames = map[Method]string{
	FE:  "Forward Euler",
	ME:  "Modified Euler",
	RK4: "Runge-Kutta 4",
}

func ParseMethod(s string) (Method, error) {
	m := Method(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := methodNames[m]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownMethod, s)
	}
	return m, nil
}

func (m Method) String() string { return string(m) }

// Describe returns the long name, e.g. "Forward Euler (FE)".
func (m Method) Describe() string {
	if name, ok := methodNames[m]; ok {
		return fmt.Sprintf("%s (%s)", name, string(m))
	}
	return string(m)
}

// Column names of a trajectory file.
const (
	ColT         = "t"
	ColTheta     = "theta"
	ColThetaDot  = "theta_dot"
	ColThetaDDot = "theta_ddot"
)

// Table holds one trajectory column-wise, in file order.
// ThetaDDot is nil when the file has no theta_ddot column.
type Table struct {
	T         []float64
	Theta     []float64
	ThetaDot  []float64
	ThetaDDot []float64
}

type Sample struct {
	T, Theta, ThetaDot, ThetaDDot float64
}

func (tb *Table) Len() int {
	if tb == nil {
		return 0
	}
	return len(tb.T)
}

func (tb *Table) HasAcceleration() bool {
	return tb != nil && tb.ThetaDDot != nil
}

func (tb *Table) Sample(i int) Sample {
	s := Sample{T: tb.T[i], Theta: tb.Theta[i], ThetaDot: tb.ThetaDot[i]}
	if tb.HasAcceleration() {
		s.ThetaDDot = tb.ThetaDDot[i]
	}
	return s
}

func (tb *Table) append(s Sample, withAcc bool) {
	tb.T = append(tb.T, s.T)
	tb.Theta = append(tb.Theta, s.Theta)
	tb.ThetaDot = append(tb.ThetaDot, s.ThetaDot)
	if withAcc {
		tb.ThetaDDot = append(tb.ThetaDDot, s.ThetaDDot)
	}
}

// Result is a loaded table tagged with the scheme that produced it.
type Result struct {
	Method Method
	Path   string
	Table  *Table
}

// Input names a file to load for one method.
type Input struct {
	Method Method
	Path   string
}
