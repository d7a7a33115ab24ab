// Copyright 2026 The Helios Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

// SenseEntry is one (surface, sign) pair in a cell's sense list.
type SenseEntry struct {
	SurfaceID int // surface internal id
	Sign      Sense
}

// Cell is a half-space conjunction over surfaces, optionally filled by
// a universe or carrying a material. Fill and Material are mutually
// exclusive; a cell with neither is a legal void cell.
type Cell struct {
	UserID     string
	InternalID int
	Senses     []SenseEntry

	Fill            *int // universe internal id, nil if this cell is not a fill cell
	FillTranslation Vec3 // offset applied to the local coordinate when descending into Fill
	Material        string // material user id, "" if this cell carries no material
}

// NewCell builds a Cell, rejecting the both-fill-and-material case.
func NewCell(userID string, senses []SenseEntry, fill *int, material string) (*Cell, error) {
	if fill != nil && material != "" {
		return nil, NewBadSurfaceCreation(userID, "cell cannot both fill a universe and carry a material")
	}
	return &Cell{UserID: userID, Senses: senses, Fill: fill, Material: material}, nil
}

// Contains scans the sense list; the first sign mismatch returns false.
func (c *Cell) Contains(p Vec3, surfaces map[int]*Surface) bool {
	for _, se := range c.Senses {
		s := surfaces[se.SurfaceID]
		got := Minus
		if s.Function(p) > 0 {
			got = Plus
		}
		if got != se.Sign {
			return false
		}
	}
	return true
}

// Boundary returns the minimum positive intersection distance to the
// cell's bounding surfaces and which surface produced it. Ties break on
// the lexicographically earlier surface user id, for determinism.
// lastSurfaceID (or -1 if none) names the surface the particle last
// crossed: a root on that surface at a distance under eps is the
// floating-point ghost of the crossing just made, not a real next
// boundary, so it is skipped rather than returned as the next hit.
func (c *Cell) Boundary(p, d Vec3, surfaces map[int]*Surface, eps float64, lastSurfaceID int) (surfaceID int, distance float64, ok bool) {
	best := -1.0
	bestID := -1
	var bestUserID string
	for _, se := range c.Senses {
		s := surfaces[se.SurfaceID]
		dist, hit := s.intersectTol(p, d, se.Sign, eps)
		if !hit {
			continue
		}
		if se.SurfaceID == lastSurfaceID && dist < eps {
			continue
		}
		if bestID == -1 || dist < best || (dist == best && s.UserID < bestUserID) {
			best = dist
			bestID = se.SurfaceID
			bestUserID = s.UserID
		}
	}
	if bestID == -1 {
		return 0, 0, false
	}
	return bestID, best, true
}

// Sense returns the stored sign for surfaceID, never recomputed from
// f(p) at runtime.
func (c *Cell) Sense(surfaceID int) (Sense, bool) {
	for _, se := range c.Senses {
		if se.SurfaceID == surfaceID {
			return se.Sign, true
		}
	}
	return 0, false
}

// flippedSenses returns a copy of c's senses with surfaceID's sign
// inverted, used by the navigator to find the adjacent cell sharing
// every other boundary.
func (c *Cell) flippedSenses(surfaceID int) []SenseEntry {
	out := make([]SenseEntry, len(c.Senses))
	copy(out, c.Senses)
	for i := range out {
		if out[i].SurfaceID == surfaceID {
			out[i].Sign = -out[i].Sign
		}
	}
	return out
}

// sameSensesExceptFlipped reports whether other's sense list equals c's
// with exactly surfaceID's sign inverted (and nothing else different).
func (c *Cell) sameSensesExceptFlipped(other *Cell, surfaceID int) bool {
	want := c.flippedSenses(surfaceID)
	if len(want) != len(other.Senses) {
		return false
	}
	index := make(map[int]Sense, len(want))
	for _, se := range want {
		index[se.SurfaceID] = se.Sign
	}
	for _, se := range other.Senses {
		sign, ok := index[se.SurfaceID]
		if !ok || sign != se.Sign {
			return false
		}
	}
	return true
}
