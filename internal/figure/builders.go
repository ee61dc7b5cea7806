package figure

import (
	"fmt"

	"github.com/san-kum/pendplot/internal/compare"
	"github.com/san-kum/pendplot/internal/trajectory"
)

// Axis and series labels.
const (
	LabelTheta     = "θ"
	LabelThetaDot  = "dθ/dt"
	LabelThetaDDot = "d²θ/dt²"
	LabelTime      = "Time"
	LabelError     = "Local Error"
)

// MethodColor gives every integration method a stable palette index.
func MethodColor(m trajectory.Method) int {
	for i, known := range trajectory.Methods {
		if known == m {
			return i
		}
	}
	return len(trajectory.Methods)
}

// StateOverview builds the two-panel figure for one trajectory: theta,
// theta_dot and (if present) theta_ddot against t, and the phase portrait
// theta_dot against theta.
func StateOverview(tb *trajectory.Table, title string) *Figure {
	timeTitle := "Angle and angular velocity vs time"
	series := []Series{
		{Label: LabelTheta, X: tb.T, Y: tb.Theta, Color: 0},
		{Label: LabelThetaDot, X: tb.T, Y: tb.ThetaDot, Color: 1},
	}
	if tb.HasAcceleration() {
		timeTitle = "Angle, angular velocity and angular acceleration vs time"
		series = append(series, Series{Label: LabelThetaDDot, X: tb.T, Y: tb.ThetaDDot, Color: 2})
	}

	return &Figure{
		Name:  "overview-" + Slug(title),
		Title: title,
		Panels: []Panel{
			{
				Title:  timeTitle,
				XLabel: "t",
				Series: series,
				Legend: true,
				Grid:   true,
			},
			{
				Title:      "Phase portrait",
				XLabel:     LabelTheta,
				YLabel:     LabelThetaDot,
				Series:     []Series{{Label: "trajectory", X: tb.Theta, Y: tb.ThetaDot, Color: 0}},
				Grid:       true,
				Parametric: true,
			},
		},
	}
}

// LocalError builds the shared-axis error figure. Each method gets one
// colour; theta error is solid and theta_dot error dashed.
func LocalError(reference trajectory.Method, series []*compare.Series) *Figure {
	lines := make([]Series, 0, 2*len(series))
	for _, s := range series {
		color := MethodColor(s.Method)
		lines = append(lines,
			Series{Label: fmt.Sprintf("%s %s error", s.Method, LabelTheta), X: s.T, Y: s.Theta, Color: color, Line: Solid},
			Series{Label: fmt.Sprintf("%s %s error", s.Method, LabelThetaDot), X: s.T, Y: s.ThetaDot, Color: color, Line: Dashed},
		)
	}

	title := fmt.Sprintf("Local error against %s", reference)
	return &Figure{
		Name:  "local-error",
		Title: title,
		Panels: []Panel{{
			Title:  title,
			XLabel: LabelTime,
			YLabel: LabelError,
			Series: lines,
			Legend: true,
			Grid:   true,
		}},
	}
}
