// Copyright 2026 The Helios Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package source implements source sampling (spec.md §4.H): a source
// is a weighted sum of distributions over position, direction, and
// energy; sampling one particle picks a distribution by cumulative
// weight and draws its three marginals.
package source

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/rnd"
	"github.com/cpmech/helios/geom"
)

// PositionDist samples a starting position.
type PositionDist interface {
	SamplePosition() geom.Vec3
}

// DirectionDist samples a starting direction (not necessarily unit;
// callers should call Unit() if a normalized result matters).
type DirectionDist interface {
	SampleDirection() geom.Vec3
}

// EnergyDist samples a starting energy.
type EnergyDist interface {
	SampleEnergy() float64
}

// Marginals bundles one position, direction, and energy distribution
// into the state needed to build one particle (spec.md §4.H).
type Marginals struct {
	Position  PositionDist
	Direction DirectionDist
	Energy    EnergyDist
}

// Particle is the sampled state handed to the (out-of-scope) transport
// loop.
type Particle struct {
	Position  geom.Vec3
	Direction geom.Vec3
	Energy    float64
}

// Sample draws one particle from the bundle's three marginals.
func (m Marginals) Sample() Particle {
	return Particle{
		Position:  m.Position.SamplePosition(),
		Direction: m.Direction.SampleDirection(),
		Energy:    m.Energy.SampleEnergy(),
	}
}

// --- position distributions --------------------------------------------

// PointPosition always returns the same fixed point.
type PointPosition struct{ P geom.Vec3 }

func (d PointPosition) SamplePosition() geom.Vec3 { return d.P }

// BoxPosition samples uniformly inside an axis-aligned box.
type BoxPosition struct{ Min, Max geom.Vec3 }

func (d BoxPosition) SamplePosition() geom.Vec3 {
	return geom.Vec3{
		rnd.Float64(d.Min[0], d.Max[0]),
		rnd.Float64(d.Min[1], d.Max[1]),
		rnd.Float64(d.Min[2], d.Max[2]),
	}
}

// --- direction distributions --------------------------------------------

// IsotropicDirection samples uniformly over the unit sphere.
type IsotropicDirection struct{}

func (d IsotropicDirection) SampleDirection() geom.Vec3 {
	mu := 2*rnd.Float64(0, 1) - 1
	phi := 2 * math.Pi * rnd.Float64(0, 1)
	sinTheta := math.Sqrt(1 - mu*mu)
	return geom.Vec3{sinTheta * math.Cos(phi), sinTheta * math.Sin(phi), mu}
}

// FixedDirection always returns the same direction, normalized.
type FixedDirection struct{ D geom.Vec3 }

func (d FixedDirection) SampleDirection() geom.Vec3 { return d.D.Unit() }

// --- energy distributions --------------------------------------------

// MonoenergeticEnergy always returns the same energy.
type MonoenergeticEnergy struct{ E float64 }

func (d MonoenergeticEnergy) SampleEnergy() float64 { return d.E }

// WattEnergy samples a Watt fission spectrum, pdf(E) ∝
// exp(-E/a)·sinh(sqrt(b·E)), by direct transform of a Maxwellian draw,
// the textbook algorithm used by general-purpose Monte Carlo transport
// codes for the fission energy spectrum.
type WattEnergy struct{ A, B float64 }

// NewWattEnergy reads the "a" and "b" shape parameters off prms using
// the same switch-on-name convention mdl/retention.VanGen.Init follows
// for dbf.Params.
func NewWattEnergy(prms dbf.Params) (*WattEnergy, error) {
	w := &WattEnergy{A: 0.965, B: 2.29} // default U-235 thermal-fission constants, MeV
	for _, p := range prms {
		switch p.N {
		case "a":
			w.A = p.V
		case "b":
			w.B = p.V
		default:
			return nil, chk.Err("source: WattEnergy: unknown parameter %q", p.N)
		}
	}
	return w, nil
}

func (d *WattEnergy) SampleEnergy() float64 {
	// Direct transform sampler for Watt(a,b) (see e.g. Forrest Brown's
	// MCNP theory manual): draw w from a Maxwellian of temperature a,
	// then E = w + a²b/4 + (2ξ−1)·sqrt(a²·b·w), which is never negative.
	w := (&MaxwellianEnergy{T: d.A}).SampleEnergy()
	xi := rnd.Float64(0, 1)
	return w + d.A*d.A*d.B/4 + (2*xi-1)*math.Sqrt(d.A*d.A*d.B*w)
}

// MaxwellianEnergy samples a Maxwellian fission spectrum, pdf(E) ∝
// sqrt(E)·exp(-E/t).
type MaxwellianEnergy struct{ T float64 }

// NewMaxwellianEnergy reads the "t" shape parameter off prms.
func NewMaxwellianEnergy(prms dbf.Params) (*MaxwellianEnergy, error) {
	m := &MaxwellianEnergy{T: 1.29} // default U-235 thermal-fission temperature, MeV
	for _, p := range prms {
		switch p.N {
		case "t":
			m.T = p.V
		default:
			return nil, chk.Err("source: MaxwellianEnergy: unknown parameter %q", p.N)
		}
	}
	return m, nil
}

func (d *MaxwellianEnergy) SampleEnergy() float64 {
	// E = -t·(ln(ξ1) + ln(ξ2)·cos²(π·ξ3/2)), the standard three-uniform
	// Maxwellian sampler.
	xi1 := rnd.Float64(1e-12, 1)
	xi2 := rnd.Float64(1e-12, 1)
	xi3 := rnd.Float64(0, 1)
	c := math.Cos(math.Pi * xi3 / 2)
	return -d.T * (math.Log(xi1) + math.Log(xi2)*c*c)
}
