package compare

// Stats describes one error sequence.
type Stats struct {
	Max   float64 `json:"max"`
	MaxAt float64 `json:"max_at"`
	Mean  float64 `json:"mean"`
	Final float64 `json:"final"`
}

type Summary struct {
	Samples  int   `json:"samples"`
	Theta    Stats `json:"theta"`
	ThetaDot Stats `json:"theta_dot"`
}

func Summarize(s *Series) Summary {
	return Summary{
		Samples:  s.Len(),
		Theta:    stats(s.T, s.Theta),
		ThetaDot: stats(s.T, s.ThetaDot),
	}
}

func stats(t, eps []float64) Stats {
	var st Stats
	if len(eps) == 0 {
		return st
	}
	sum := 0.0
	for i, v := range eps {
		sum += v
		if i == 0 || v > st.Max {
			st.Max = v
			st.MaxAt = t[i]
		}
	}
	st.Mean = sum / float64(len(eps))
	st.Final = eps[len(eps)-1]
	return st
}
