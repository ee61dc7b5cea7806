package compare

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"

	"github.com/san-kum/pendplot/internal/trajectory"
)

// DominantPeriod estimates the oscillation period of theta from the peak of
// its power spectrum. It assumes a uniform time step and reports false when
// the table is too short or carries no oscillation.
func DominantPeriod(tb *trajectory.Table) (float64, bool) {
	n := tb.Len()
	if n < 4 {
		return 0, false
	}
	dt := (tb.T[n-1] - tb.T[0]) / float64(n-1)
	if dt <= 0 {
		return 0, false
	}

	mean := 0.0
	for _, v := range tb.Theta {
		mean += v
	}
	mean /= float64(n)

	centered := make([]float64, n)
	for i, v := range tb.Theta {
		centered[i] = v - mean
	}

	spectrum := fft.FFTReal(centered)
	peak, peakIdx := 0.0, 0
	for k := 1; k <= n/2; k++ {
		if p := cmplx.Abs(spectrum[k]); p > peak {
			peak = p
			peakIdx = k
		}
	}
	if peakIdx == 0 || peak < 1e-12 {
		return 0, false
	}

	freq := float64(peakIdx) / (float64(n) * dt)
	return 1 / freq, true
}
