// Copyright 2026 The Helios Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/helios/env"
)

// Name is the static module name; geometry objects declare this from
// ModuleName().
const Name = "geometry"

// SurfaceDef is a parsed input object describing one surface.
type SurfaceDef struct {
	UserID     string
	Kind       Kind
	Tag        Tag
	Reflective bool
	Vacuum     bool
	Axis       Axis
	D0         float64
	Normal     Vec3
	Center     Vec3
	Radius     float64
	Quad       [10]float64
	General    bool // not read by setup: the general-cylinder choice comes from Kind
}

func (o *SurfaceDef) ModuleName() string { return Name }
func (o *SurfaceDef) UserId() string     { return o.UserID }

// CellDef is a parsed input object describing one cell.
type CellDef struct {
	UserID    string
	Universe  string // user id of the owning universe
	Senses    []struct {
		Surface string
		Sign    Sense
	}
	Fill            string // universe user id this cell fills, "" if none
	FillTranslation Vec3
	Material        string // material user id, "" if none
}

func (o *CellDef) ModuleName() string { return Name }
func (o *CellDef) UserId() string     { return o.UserID }

// UniverseDef is a parsed input object introducing a plain universe.
// The root universe must be staged with UserID == RootUserID.
type UniverseDef struct {
	UserID string
}

func (o *UniverseDef) ModuleName() string { return Name }
func (o *UniverseDef) UserId() string     { return o.UserID }

// LatticeDef is a parsed input object introducing a lattice universe.
type LatticeDef struct {
	UserID string
	Kind   LatticeKind
	Policy BoundaryPolicy
	Dim    int
	Pitch  Vec3
	Origin Vec3
	NSlots [3]int
	Slots  map[[3]int]string // slot index -> universe user id
}

func (o *LatticeDef) ModuleName() string { return Name }
func (o *LatticeDef) UserId() string     { return o.UserID }

func init() {
	env.Register(Name, setup)
}

// setup builds the Geometry module: surfaces first (cells reference
// them by user id), then universes/lattices (empty shells), then cells
// (linked into their owning universe, and recorded as the parent of
// any universe/lattice they fill), finally resolving each lattice
// slot's universe user-id reference to an internal id. This ordering
// mirrors the module environment's own dependency-order rule, applied
// one level down within a single module's staged objects.
func setup(ctx *env.Context, objects []env.Object) (env.Module, error) {
	g := newGeometry()

	for _, raw := range objects {
		if o, ok := raw.(*SurfaceDef); ok {
			s, err := buildSurface(o)
			if err != nil {
				return nil, err
			}
			g.addSurface(s)
		}
	}

	for _, raw := range objects {
		switch o := raw.(type) {
		case *UniverseDef:
			g.addUniverse(&Universe{UserID: o.UserID})
		case *LatticeDef:
			g.addLattice(&Lattice{
				UserID: o.UserID, Kind: o.Kind, Policy: o.Policy, Dim: o.Dim,
				Pitch: o.Pitch, Origin: o.Origin, NSlots: o.NSlots,
				Slots: make(map[[3]int]int, len(o.Slots)),
			})
		}
	}
	if _, ok := g.universeByUserID[RootUserID]; !ok {
		if _, ok := g.latticeByUserID[RootUserID]; !ok {
			return nil, chk.Err("geom: no root universe (user id %q) was staged", RootUserID)
		}
	}

	for _, raw := range objects {
		o, ok := raw.(*CellDef)
		if !ok {
			continue
		}
		cell, err := g.buildCell(o)
		if err != nil {
			return nil, err
		}
		g.addCell(cell, o.Universe)
	}

	for _, raw := range objects {
		o, ok := raw.(*LatticeDef)
		if !ok {
			continue
		}
		lat := g.latticeByUserID[o.UserID]
		for idx, uUserID := range o.Slots {
			uid, err := g.universeInternalID(uUserID)
			if err != nil {
				return nil, err
			}
			lat.Slots[idx] = uid
		}
	}

	if err := g.checkAcyclic(); err != nil {
		return nil, err
	}

	return g, nil
}

func buildSurface(o *SurfaceDef) (*Surface, error) {
	switch o.Kind {
	case KindPlaneOnAxis:
		return NewPlaneOnAxis(o.UserID, o.Axis, o.D0, o.Reflective), nil
	case KindPlane:
		return NewPlane(o.UserID, o.Normal, o.D0, o.Reflective)
	case KindCylinderOnAxis:
		return NewCylinderOnAxis(o.UserID, o.Axis, o.Center, o.Radius, o.Reflective)
	case KindSphere:
		return NewSphere(o.UserID, o.Center, o.Radius, o.Reflective)
	case KindGeneralCylinder, KindQuadric:
		return NewQuadric(o.UserID, o.Quad, o.Kind == KindGeneralCylinder, o.Reflective)
	}
	return nil, NewBadSurfaceCreation(o.UserID, "unknown surface kind")
}

func (g *Geometry) buildCell(o *CellDef) (*Cell, error) {
	senses := make([]SenseEntry, 0, len(o.Senses))
	for _, se := range o.Senses {
		sid, err := g.surfaceInternalID(se.Surface)
		if err != nil {
			return nil, err
		}
		senses = append(senses, SenseEntry{SurfaceID: sid, Sign: se.Sign})
	}
	var fill *int
	if o.Fill != "" {
		uid, err := g.universeInternalID(o.Fill)
		if err != nil {
			return nil, err
		}
		fill = &uid
	}
	cell, err := NewCell(o.UserID, senses, fill, o.Material)
	if err != nil {
		return nil, err
	}
	cell.FillTranslation = o.FillTranslation
	return cell, nil
}

// checkAcyclic verifies the fill-edge graph is a tree: walking from the
// root, no universe is reachable through two different fill paths and
// no cell fills a universe that (transitively) fills back to it.
func (g *Geometry) checkAcyclic() error {
	visited := make(map[int]bool)
	var walk func(universeID int) error
	walk = func(universeID int) error {
		if visited[universeID] {
			return chk.Err("geom: universe tree is not acyclic at universe internal id %d", universeID)
		}
		visited[universeID] = true
		cells := g.cellsOf(universeID)
		for _, c := range cells {
			if c.Fill != nil {
				if err := walk(*c.Fill); err != nil {
					return err
				}
			}
		}
		return nil
	}
	rootID, err := g.universeInternalID(RootUserID)
	if err != nil {
		return err
	}
	return walk(rootID)
}

// cellsOf returns the cells belonging to the universe with the given
// internal id, whether plain or lattice-backed (lattices have no
// direct cells of their own, so this is empty for them).
func (g *Geometry) cellsOf(universeID int) []*Cell {
	for _, u := range g.universes {
		if u.InternalID == universeID {
			return u.Cells
		}
	}
	return nil
}

// sortedSurfaceUserIDs returns every staged surface's user id in
// ascending order, useful for deterministic consistency sweeps.
func (g *Geometry) sortedSurfaceUserIDs() []string {
	ids := make([]string, 0, len(g.surfaceByUserID))
	for id := range g.surfaceByUserID {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
