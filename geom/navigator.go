// Copyright 2026 The Helios Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

// Frame is one level of the particle's nested-universe stack: the cell
// it currently occupies, its coordinate and direction in that cell's
// local (possibly translated) frame, and the surface last crossed.
// DistanceToNext passes LastSurface to Cell.Boundary, which skips a
// same-surface root under the tolerance window so the floating-point
// ghost of the crossing just made is never reported as the next hit.
// LatticeID/Slot are set (LatticeID >= 0) when Cell's enclosing
// universe was reached by descending into a lattice slot, so Cross can
// step to the neighboring slot instead of searching for an adjacent
// cell by sense-flip.
type Frame struct {
	Cell       *Cell
	Coord      Vec3
	Dir        Vec3
	LastSurface int // -1 if none

	UniverseID int // internal id of the plain universe owning Cell
	LatticeID  int // internal id of the owning lattice, -1 if none
	Slot       [3]int
}

// State is a particle's full nested-universe stack; the last element
// is the current (deepest) frame.
type State struct {
	Frames []Frame
}

func (s *State) current() *Frame { return &s.Frames[len(s.Frames)-1] }

// Navigator answers point-location and distance-to-boundary queries
// against a built Geometry, using the surface tolerance and nudge
// distance it was constructed with.
type Navigator struct {
	g     *Geometry
	tol   float64
	nudge float64
}

// NewNavigator builds a Navigator over g with the given surface
// tolerance and nudge distance (normally sourced from the settings
// module; see settings.Settings).
func NewNavigator(g *Geometry, surfaceTolerance, nudgeDistance float64) *Navigator {
	return &Navigator{g: g, tol: surfaceTolerance, nudge: nudgeDistance}
}

func (g *Geometry) latticeByInternalID(id int) (*Lattice, bool) {
	for _, l := range g.lattices {
		if l.InternalID == id {
			return l, true
		}
	}
	return nil, false
}

// slotOrigin is the corner of slot idx in the lattice's local frame,
// consistent with Lattice.rectSlot's floor((p-origin)/pitch) rule.
func slotOrigin(l *Lattice, idx [3]int) Vec3 {
	var o Vec3
	for i := 0; i < 3; i++ {
		o[i] = l.Origin[i] + float64(idx[i])*l.Pitch[i]
	}
	return o
}

// Locate starts at the root universe and walks FindCell recursively,
// descending through fill cells (translating the local coordinate at
// each level) and lattice slots, building a State stack. Returns
// GeometryUnbounded if any level's FindCell (or lattice slot lookup,
// under a Bounded policy) comes up empty.
func (nav *Navigator) Locate(pWorld, dWorld Vec3) (*State, error) {
	rootID, err := nav.g.universeInternalID(RootUserID)
	if err != nil {
		return nil, err
	}
	st := &State{}
	if err := nav.descend(rootID, -1, [3]int{}, pWorld, dWorld, st); err != nil {
		return nil, err
	}
	return st, nil
}

func (nav *Navigator) descend(containerID, latticeID int, slot [3]int, p, d Vec3, st *State) error {
	if lat, ok := nav.g.latticeByInternalID(containerID); ok {
		idx, ok := lat.Slot(p)
		if !ok {
			return NewGeometryUnbounded(p)
		}
		uid, ok := lat.Slots[idx]
		if !ok {
			return NewGeometryUnbounded(p)
		}
		local := p.Sub(slotOrigin(lat, idx))
		return nav.descend(uid, lat.InternalID, idx, local, d, st)
	}

	u, ok := nav.g.universeByInternalID(containerID)
	if !ok {
		return NewGeometryUnbounded(p)
	}
	cell := u.FindCell(p, nav.g.surfaceMap())
	if cell == nil {
		return NewGeometryUnbounded(p)
	}
	st.Frames = append(st.Frames, Frame{
		Cell: cell, Coord: p, Dir: d, LastSurface: -1,
		UniverseID: containerID, LatticeID: latticeID, Slot: slot,
	})
	if cell.Fill != nil {
		local := p.Sub(cell.FillTranslation)
		return nav.descend(*cell.Fill, -1, [3]int{}, local, d, st)
	}
	return nil
}

// levelHit is one stack level's candidate next-surface distance.
type levelHit struct {
	level     int
	surfaceID int
	distance  float64
}

// DistanceToNext queries every stack level's current cell boundary and
// returns the minimum across levels, the surface that produced it, and
// which level it occurred at (the caller passes that level to Cross).
func (nav *Navigator) DistanceToNext(st *State) (distance float64, surfaceID int, level int, ok bool) {
	best := -1
	var bestHit levelHit
	for i, f := range st.Frames {
		sid, dist, hit := f.Cell.Boundary(f.Coord, f.Dir, nav.g.surfaceMap(), nav.tol, f.LastSurface)
		if !hit {
			continue
		}
		if best == -1 || dist < bestHit.distance {
			best = i
			bestHit = levelHit{level: i, surfaceID: sid, distance: dist}
		}
	}
	if best == -1 {
		return 0, 0, 0, false
	}
	return bestHit.distance, bestHit.surfaceID, bestHit.level, true
}

// Cross advances every stack level's coordinate by distance along that
// level's direction, then updates the stack at the level the crossing
// occurred:
//   - reflective surface: direction is mirrored and the stack is left
//     otherwise untouched (the root universe is never left);
//   - lattice-owned level: step to the neighboring slot (the frames
//     rebuilt there start with no LastSurface);
//   - intra-level: find the adjacent cell in the same universe sharing
//     every sense but the crossed surface's, flipped;
//   - pop: the crossing exits this level's universe into its enclosing
//     fill cell's own neighbor, found the same intra-level way one
//     level up.
//
// After the update, the deepest frame's coordinate is nudged by
// nav.nudge along its direction, and LastSurface is set so the next
// DistanceToNext call does not re-hit the surface immediately.
func (nav *Navigator) Cross(st *State, level int, distance float64, surfaceID int) error {
	for i := range st.Frames {
		f := &st.Frames[i]
		f.Coord = f.Coord.Add(f.Dir.Scale(distance))
	}

	surf := nav.g.surfaceByID[surfaceID]
	if surf.Reflective {
		f := &st.Frames[level]
		n := surf.Normal(f.Coord).Unit()
		for i := level; i < len(st.Frames); i++ {
			st.Frames[i].Dir = st.Frames[i].Dir.Reflect(n)
			st.Frames[i].Coord = st.Frames[i].Coord.Add(st.Frames[i].Dir.Scale(nav.nudge))
		}
		f.LastSurface = surfaceID
		return nil
	}

	f := &st.Frames[level]
	if f.LatticeID >= 0 {
		return nav.crossLattice(st, level, surfaceID)
	}

	u, _ := nav.g.universeByInternalID(f.UniverseID)
	neighbor := findAdjacentCell(u, f.Cell, surfaceID)
	if neighbor != nil {
		f.Cell = neighbor
		f.LastSurface = surfaceID
		st.Frames = st.Frames[:level+1]
		f.Coord = f.Coord.Add(f.Dir.Scale(nav.nudge))
		return nil
	}

	// pop: leave this level's universe via the enclosing fill cell's
	// own neighbor, one level up.
	if level == 0 {
		return NewGeometryUnbounded(f.Coord)
	}
	st.Frames = st.Frames[:level]
	parent := &st.Frames[level-1]
	pu, _ := nav.g.universeByInternalID(parent.UniverseID)
	pNeighbor := findAdjacentCell(pu, parent.Cell, surfaceID)
	if pNeighbor == nil {
		return NewGeometryUnbounded(parent.Coord)
	}
	parent.Cell = pNeighbor
	parent.LastSurface = surfaceID
	parent.Coord = parent.Coord.Add(parent.Dir.Scale(nav.nudge))
	return nil
}

// crossLattice steps a lattice-owned frame to its neighboring slot:
// pop back to the lattice's parent frame and re-descend with the
// advanced coordinate, nudged past the slot boundary, which Locate's
// slot arithmetic resolves to the adjacent slot (or GeometryUnbounded
// under a Bounded policy).
func (nav *Navigator) crossLattice(st *State, level int, surfaceID int) error {
	f := st.Frames[level]
	lat, _ := nav.g.latticeByInternalID(f.LatticeID)
	world := f.Coord.Add(slotOrigin(lat, f.Slot)).Add(f.Dir.Scale(nav.nudge))
	st.Frames = st.Frames[:level]
	return nav.descend(lat.InternalID, -1, [3]int{}, world, f.Dir, st)
}

// findAdjacentCell searches u for a cell identical to current except
// for surfaceID's sign inverted.
func findAdjacentCell(u *Universe, current *Cell, surfaceID int) *Cell {
	for _, c := range u.Cells {
		if c == current {
			continue
		}
		if current.sameSensesExceptFlipped(c, surfaceID) {
			return c
		}
	}
	return nil
}
