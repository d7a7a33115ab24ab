// Copyright 2026 The Helios Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package source

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/rnd"
	"github.com/cpmech/helios/env"
	"github.com/cpmech/helios/geom"
)

// Name is the static module name. Source is set up right after
// Settings, so materials and geometry (later in the fixed order) may
// eventually reference source-staged distributions by user id if a
// future component needs to (spec.md §4.G's order: Settings → Source
// → Materials → Geometry).
const Name = "source"

// DistDef is a parsed input object introducing a single reusable
// distribution, tagged by which marginal family it belongs to.
type DistDef struct {
	UserID string
	Family string // "position", "direction", or "energy"
	Kind   string // e.g. "point", "box", "isotropic", "fixed", "mono", "watt", "maxwellian"

	Point    geom.Vec3 // PointPosition / FixedDirection
	Min, Max geom.Vec3 // BoxPosition
	Energy   float64   // MonoenergeticEnergy
	Prms     dbf.Params
}

func (o *DistDef) ModuleName() string { return Name }
func (o *DistDef) UserId() string     { return o.UserID }

// SourceDef is a parsed input object describing one source as a
// weighted sum of (position, direction, energy) distribution triples.
type SourceDef struct {
	UserID string
	Terms  []struct {
		Weight      float64
		PositionID  string
		DirectionID string
		EnergyID    string
	}
}

func (o *SourceDef) ModuleName() string { return Name }
func (o *SourceDef) UserId() string     { return o.UserID }

// weightedMarginals is one term of a Source's weighted sum.
type weightedMarginals struct {
	Weight    float64
	Marginals Marginals
}

// Source samples one particle by first picking a term proportional to
// its weight, then sampling that term's three marginals.
type Source struct {
	UserID      string
	terms       []weightedMarginals
	totalWeight float64
}

// Sample draws one particle. Source with no staged terms cannot be
// sampled; callers are expected to only reach a Source built by setup,
// which never produces an empty term list.
func (s *Source) Sample() Particle {
	r := rnd.Float64(0, s.totalWeight)
	var cum float64
	for _, term := range s.terms {
		cum += term.Weight
		if r <= cum {
			return term.Marginals.Sample()
		}
	}
	return s.terms[len(s.terms)-1].Marginals.Sample()
}

// Index is the constructed source module: every staged distribution
// indexed by user id within its family, and every staged Source
// indexed by user id (a slice per Open Question (a)).
type Index struct {
	positions  map[string]PositionDist
	directions map[string]DirectionDist
	energies   map[string]EnergyDist
	byUserID   map[string][]*Source
}

func (idx *Index) Name() string { return Name }

// Source returns every source staged under the given user id.
func (idx *Index) Source(userID string) []*Source {
	return idx.byUserID[userID]
}

func init() {
	env.Register(Name, setup)
}

func setup(ctx *env.Context, objects []env.Object) (env.Module, error) {
	idx := &Index{
		positions:  make(map[string]PositionDist),
		directions: make(map[string]DirectionDist),
		energies:   make(map[string]EnergyDist),
		byUserID:   make(map[string][]*Source),
	}

	for _, raw := range objects {
		o, ok := raw.(*DistDef)
		if !ok {
			continue
		}
		if err := idx.addDist(o); err != nil {
			return nil, err
		}
	}

	for _, raw := range objects {
		o, ok := raw.(*SourceDef)
		if !ok {
			continue
		}
		src, err := idx.buildSource(o)
		if err != nil {
			return nil, err
		}
		idx.byUserID[o.UserID] = append(idx.byUserID[o.UserID], src)
	}

	return idx, nil
}

func (idx *Index) addDist(o *DistDef) error {
	switch o.Family {
	case "position":
		d, err := buildPosition(o)
		if err != nil {
			return err
		}
		idx.positions[o.UserID] = d
	case "direction":
		d, err := buildDirection(o)
		if err != nil {
			return err
		}
		idx.directions[o.UserID] = d
	case "energy":
		d, err := buildEnergy(o)
		if err != nil {
			return err
		}
		idx.energies[o.UserID] = d
	default:
		return newUnknownKind("distribution family", o.Family)
	}
	return nil
}

func buildPosition(o *DistDef) (PositionDist, error) {
	switch o.Kind {
	case "point":
		return PointPosition{P: o.Point}, nil
	case "box":
		return BoxPosition{Min: o.Min, Max: o.Max}, nil
	}
	return nil, newUnknownKind("position distribution", o.Kind)
}

func buildDirection(o *DistDef) (DirectionDist, error) {
	switch o.Kind {
	case "isotropic":
		return IsotropicDirection{}, nil
	case "fixed":
		return FixedDirection{D: o.Point}, nil
	}
	return nil, newUnknownKind("direction distribution", o.Kind)
}

func buildEnergy(o *DistDef) (EnergyDist, error) {
	switch o.Kind {
	case "mono":
		return MonoenergeticEnergy{E: o.Energy}, nil
	case "watt":
		return NewWattEnergy(o.Prms)
	case "maxwellian":
		return NewMaxwellianEnergy(o.Prms)
	}
	return nil, newUnknownKind("energy distribution", o.Kind)
}

func (idx *Index) buildSource(o *SourceDef) (*Source, error) {
	if len(o.Terms) == 0 {
		return nil, chk.Err("source: %q has no terms", o.UserID)
	}
	src := &Source{UserID: o.UserID}
	for _, t := range o.Terms {
		pos, ok := idx.positions[t.PositionID]
		if !ok {
			return nil, chk.Err("source: %q references unknown position distribution %q", o.UserID, t.PositionID)
		}
		dir, ok := idx.directions[t.DirectionID]
		if !ok {
			return nil, chk.Err("source: %q references unknown direction distribution %q", o.UserID, t.DirectionID)
		}
		eng, ok := idx.energies[t.EnergyID]
		if !ok {
			return nil, chk.Err("source: %q references unknown energy distribution %q", o.UserID, t.EnergyID)
		}
		src.terms = append(src.terms, weightedMarginals{
			Weight:    t.Weight,
			Marginals: Marginals{Position: pos, Direction: dir, Energy: eng},
		})
		src.totalWeight += t.Weight
	}
	return src, nil
}
