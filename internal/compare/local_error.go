package compare

import (
	"math"

	"github.com/san-kum/pendplot/internal/trajectory"
)

// Series is the local error of one method against the reference.
// T is the reference time axis.
type Series struct {
	Method   trajectory.Method
	T        []float64
	Theta    []float64
	ThetaDot []float64
}

func (s *Series) Len() int {
	if s == nil {
		return 0
	}
	return len(s.T)
}

// LocalError pairs samples by row index and returns
// |candidate - reference| for theta and theta_dot. The series is as long as
// the shorter of the two tables.
func LocalError(reference, candidate *trajectory.Result) *Series {
	ref, cand := reference.Table, candidate.Table
	n := min(ref.Len(), cand.Len())

	s := &Series{
		Method:   candidate.Method,
		T:        make([]float64, n),
		Theta:    make([]float64, n),
		ThetaDot: make([]float64, n),
	}
	for i := 0; i < n; i++ {
		s.T[i] = ref.T[i]
		s.Theta[i] = math.Abs(cand.Theta[i] - ref.Theta[i])
		s.ThetaDot[i] = math.Abs(cand.ThetaDot[i] - ref.ThetaDot[i])
	}
	return s
}

// LocalErrors computes the error series of every candidate that is not the
// reference method itself.
func LocalErrors(reference *trajectory.Result, candidates []*trajectory.Result) []*Series {
	out := make([]*Series, 0, len(candidates))
	for _, c := range candidates {
		if c == nil || c.Method == reference.Method {
			continue
		}
		out = append(out, LocalError(reference, c))
	}
	return out
}

// Split returns the result for ref and every other result, in order.
func Split(results []*trajectory.Result, ref trajectory.Method) (*trajectory.Result, []*trajectory.Result, error) {
	var reference *trajectory.Result
	others := make([]*trajectory.Result, 0, len(results))
	for _, r := range results {
		if r.Method == ref && reference == nil {
			reference = r
			continue
		}
		others = append(others, r)
	}
	if reference == nil {
		return nil, others, ErrNoReference
	}
	return reference, others, nil
}
