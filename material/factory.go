// Copyright 2026 The Helios Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package material

import (
	"github.com/cpmech/helios/ace"
	"github.com/cpmech/helios/env"
)

// Name is the static module name; materials objects declare this from
// ModuleName(). It is set up after "source" and before "geometry" in
// the environment's fixed dependency order, since cells reference
// materials by user id (spec.md §4.G).
const Name = "materials"

// NuclideDef is a parsed input object introducing one ACE table under
// a user id distinct from its physical ZAID; the driver is responsible
// for parsing the ACE file bytes (via the ace package) before staging
// this object; material resolution never touches raw ACE framing.
type NuclideDef struct {
	UserID string
	ZAID   string
	Table  *ace.Table
}

func (o *NuclideDef) ModuleName() string { return Name }
func (o *NuclideDef) UserId() string     { return o.UserID }

// MaterialDef is a parsed input object describing one material's
// number density and nuclide composition.
type MaterialDef struct {
	UserID        string
	NumberDensity float64
	Composition   []struct {
		NuclideID      string
		AtomicFraction float64
	}
}

func (o *MaterialDef) ModuleName() string { return Name }
func (o *MaterialDef) UserId() string     { return o.UserID }

// Index is the constructed materials module: a nuclide table indexed
// by user id and a material table indexed by user id (the latter a
// slice per Open Question (a), resolved uniformly across modules).
type Index struct {
	nuclides map[string]*Nuclide
	byUserID map[string][]*Material
}

func (idx *Index) Name() string { return Name }

// Nuclide looks up a loaded nuclide by the user id it was staged
// under (not its ZAID).
func (idx *Index) Nuclide(userID string) (*Nuclide, bool) {
	n, ok := idx.nuclides[userID]
	return n, ok
}

// Material returns every material staged under the given user id.
func (idx *Index) Material(userID string) []*Material {
	return idx.byUserID[userID]
}

func init() {
	env.Register(Name, setup)
}

func setup(ctx *env.Context, objects []env.Object) (env.Module, error) {
	idx := &Index{
		nuclides: make(map[string]*Nuclide),
		byUserID: make(map[string][]*Material),
	}

	for _, raw := range objects {
		o, ok := raw.(*NuclideDef)
		if !ok {
			continue
		}
		idx.nuclides[o.UserID] = NewNuclide(o.ZAID, o.Table)
	}

	for _, raw := range objects {
		o, ok := raw.(*MaterialDef)
		if !ok {
			continue
		}
		m := &Material{UserID: o.UserID, NumberDensity: o.NumberDensity}
		for _, c := range o.Composition {
			n, ok := idx.nuclides[c.NuclideID]
			if !ok {
				return nil, NewMaterialResolutionError(c.NuclideID)
			}
			m.Composition = append(m.Composition, Component{Nuclide: n, AtomicFraction: c.AtomicFraction})
		}
		idx.byUserID[o.UserID] = append(idx.byUserID[o.UserID], m)
	}

	return idx, nil
}
