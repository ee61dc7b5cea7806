package compare

import (
	"fmt"
	"math"

	"github.com/hashicorp/go-multierror"

	"github.com/san-kum/pendplot/internal/trajectory"
)

const maxReportedMismatches = 5

// CheckGrid reports whether candidate shares reference's time grid: equal
// length and |t_ref - t_cand| <= tol at every shared index. Every problem
// found wraps ErrGridMismatch.
func CheckGrid(reference, candidate *trajectory.Result, tol float64) error {
	var merr *multierror.Error
	ref, cand := reference.Table, candidate.Table

	if ref.Len() != cand.Len() {
		merr = multierror.Append(merr, fmt.Errorf("%w: %s has %d samples, %s has %d",
			ErrGridMismatch, reference.Method, ref.Len(), candidate.Method, cand.Len()))
	}

	n := min(ref.Len(), cand.Len())
	mismatches := 0
	for i := 0; i < n; i++ {
		if math.Abs(ref.T[i]-cand.T[i]) <= tol {
			continue
		}
		mismatches++
		if mismatches <= maxReportedMismatches {
			merr = multierror.Append(merr, fmt.Errorf("%w: row %d: %s t=%g, %s t=%g",
				ErrGridMismatch, i, reference.Method, ref.T[i], candidate.Method, cand.T[i]))
		}
	}
	if mismatches > maxReportedMismatches {
		merr = multierror.Append(merr, fmt.Errorf("%w: %d more rows with differing t",
			ErrGridMismatch, mismatches-maxReportedMismatches))
	}

	return merr.ErrorOrNil()
}
