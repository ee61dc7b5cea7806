// Package metrics evaluates physical quantities along a loaded trajectory.
package metrics

import (
	"math"

	"github.com/san-kum/pendplot/internal/trajectory"
)

// Pendulum holds the parameters of a simple pendulum of point mass.
type Pendulum struct {
	Mass    float64
	Length  float64
	Gravity float64
}

func DefaultPendulum() Pendulum {
	return Pendulum{Mass: 1, Length: 1, Gravity: 9.81}
}

// Energy is kinetic plus potential energy, with the potential zero at the
// bottom of the swing.
func (p Pendulum) Energy(theta, thetaDot float64) float64 {
	ke := 0.5 * p.Mass * p.Length * p.Length * thetaDot * thetaDot
	pe := p.Mass * p.Gravity * p.Length * (1 - math.Cos(theta))
	return ke + pe
}

// Drift describes how far the energy of a trajectory moves from its first
// sample. MaxRelative stays zero when the initial energy is zero.
type Drift struct {
	Initial     float64
	Final       float64
	MaxAbsolute float64
	MaxRelative float64
}

func EnergyDrift(p Pendulum, tb *trajectory.Table) Drift {
	var d Drift
	if tb.Len() == 0 {
		return d
	}
	d.Initial = p.Energy(tb.Theta[0], tb.ThetaDot[0])
	d.Final = d.Initial
	for i := 1; i < tb.Len(); i++ {
		e := p.Energy(tb.Theta[i], tb.ThetaDot[i])
		d.Final = e
		d.MaxAbsolute = math.Max(d.MaxAbsolute, math.Abs(e-d.Initial))
	}
	if d.Initial != 0 {
		d.MaxRelative = d.MaxAbsolute / math.Abs(d.Initial)
	}
	return d
}
