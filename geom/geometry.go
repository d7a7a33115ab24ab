// Copyright 2026 The Helios Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import "github.com/cpmech/helios/env"

// Geometry is the constructed module owning every surface, cell,
// universe and lattice, each frozen into a flat vector at setup time
// (surfaces and cells are indexed by internal id; universes and
// lattices share one id counter and are found by scanning their
// vectors; per the design note on parent back-references:
// the universe->cell back-edge is an index into this flat vector, never
// an owning reference).
type Geometry struct {
	surfaces []*Surface
	cells    []*Cell
	universes []*Universe
	lattices []*Lattice

	surfaceByUserID map[string]int // -> internal id
	cellByUserID    map[string][]int
	universeByUserID map[string]int
	latticeByUserID  map[string]*Lattice

	surfaceByID map[int]*Surface

	// nextUniverseInternalID is the shared counter for both universes
	// and lattices: the two are one id namespace (a lattice is a kind
	// of universe reference target), so they cannot each count from
	// len(their own slice) independently without colliding when staged
	// in interleaved order.
	nextUniverseInternalID int
}

func (g *Geometry) Name() string { return Name }

func newGeometry() *Geometry {
	return &Geometry{
		surfaceByUserID:  make(map[string]int),
		cellByUserID:     make(map[string][]int),
		universeByUserID: make(map[string]int),
		latticeByUserID:  make(map[string]*Lattice),
		surfaceByID:      make(map[int]*Surface),
	}
}

func (g *Geometry) addSurface(s *Surface) {
	s.InternalID = len(g.surfaces)
	g.surfaces = append(g.surfaces, s)
	g.surfaceByUserID[s.UserID] = s.InternalID
	g.surfaceByID[s.InternalID] = s
}

func (g *Geometry) addUniverse(u *Universe) {
	u.InternalID = g.nextUniverseInternalID
	g.nextUniverseInternalID++
	g.universes = append(g.universes, u)
	g.universeByUserID[u.UserID] = u.InternalID
}

func (g *Geometry) addLattice(l *Lattice) {
	l.InternalID = g.nextUniverseInternalID
	g.nextUniverseInternalID++
	g.lattices = append(g.lattices, l)
	g.latticeByUserID[l.UserID] = l
	g.universeByUserID[l.UserID] = l.InternalID
}

func (g *Geometry) addCell(c *Cell, universeUserID string) {
	c.InternalID = len(g.cells)
	g.cells = append(g.cells, c)
	g.cellByUserID[c.UserID] = append(g.cellByUserID[c.UserID], c.InternalID)

	if u, ok := g.universeByRef(universeUserID); ok {
		u.Cells = append(u.Cells, c)
		if c.Fill != nil {
			cid := c.InternalID
			if child, ok := g.universeByInternalID(*c.Fill); ok {
				child.ParentCellID = &cid
			} else if lat, ok := g.latticeByInternalID(*c.Fill); ok {
				lat.ParentCellID = &cid
			}
		}
	}
}

func (g *Geometry) universeByRef(userID string) (*Universe, bool) {
	id, ok := g.universeByUserID[userID]
	if !ok {
		return nil, false
	}
	return g.universeByInternalID(id)
}

func (g *Geometry) universeByInternalID(id int) (*Universe, bool) {
	for _, u := range g.universes {
		if u.InternalID == id {
			return u, true
		}
	}
	return nil, false
}

func (g *Geometry) surfaceInternalID(userID string) (int, error) {
	id, ok := g.surfaceByUserID[userID]
	if !ok {
		return 0, env.NewObjectMissing(Name, userID)
	}
	return id, nil
}

func (g *Geometry) universeInternalID(userID string) (int, error) {
	id, ok := g.universeByUserID[userID]
	if !ok {
		return 0, env.NewObjectMissing(Name, userID)
	}
	return id, nil
}

// surfaceMap returns the internal-id-indexed lookup covering every
// surface, handed to Cell.Contains/Boundary.
func (g *Geometry) surfaceMap() map[int]*Surface { return g.surfaceByID }

// Cell returns a cell by user id; spec.md resolves Open Question (a)
// uniformly, so this always returns a slice (possibly a singleton, or
// empty if unknown).
func (g *Geometry) Cell(userID string) []*Cell {
	ids := g.cellByUserID[userID]
	out := make([]*Cell, 0, len(ids))
	for _, id := range ids {
		out = append(out, g.cells[id])
	}
	return out
}

// Surface returns a surface by user id, or nil if unknown.
func (g *Geometry) Surface(userID string) *Surface {
	id, ok := g.surfaceByUserID[userID]
	if !ok {
		return nil
	}
	return g.surfaceByID[id]
}
