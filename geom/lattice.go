// Copyright 2026 The Helios Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import "math"

// LatticeKind distinguishes the periodic tiling rule.
type LatticeKind int

const (
	LatticeRect LatticeKind = iota
	LatticeHex
)

// BoundaryPolicy resolves Open Question (b): what happens when a point
// maps to a slot outside the lattice's declared extent.
type BoundaryPolicy int

const (
	// Bounded reports a slot miss as GeometryUnbounded.
	Bounded BoundaryPolicy = iota
	// Infinite wraps the slot index modulo the grid extent, so the
	// whole grid of universes repeats periodically. Only valid for
	// LatticeRect: spec.md gives no natural infinite-tiling rule for a
	// hex grid, so LatticeHex is always Bounded.
	Infinite
)

// Lattice is a universe specialization: a regular grid of cell slots,
// each naming a universe, plus a pitch vector and an origin.
type Lattice struct {
	UserID       string
	InternalID   int
	ParentCellID *int

	Kind   LatticeKind
	Policy BoundaryPolicy
	Dim    int // 1, 2, or 3
	Pitch  Vec3
	Origin Vec3

	// NSlots is the extent per dimension; only the first Dim entries
	// are meaningful.
	NSlots [3]int

	// Slots maps a slot index to the universe internal id occupying it.
	// Missing keys are legal (empty slot); the navigator reports a point
	// that maps to an empty slot as GeometryUnbounded under either Policy.
	Slots map[[3]int]int
}

// Slot computes the slot index of p under the lattice's periodic rule
// and reports whether that index lies within the lattice's extent; it
// does not check whether Slots holds a universe for it.
func (l *Lattice) Slot(p Vec3) (idx [3]int, ok bool) {
	if l.Kind == LatticeHex {
		return l.hexSlot(p)
	}
	return l.rectSlot(p)
}

func (l *Lattice) rectSlot(p Vec3) (idx [3]int, ok bool) {
	for i := 0; i < 3; i++ {
		if i >= l.Dim {
			idx[i] = 0
			continue
		}
		raw := int(math.Floor((p[i] - l.Origin[i]) / l.Pitch[i]))
		n := l.NSlots[i]
		switch l.Policy {
		case Infinite:
			idx[i] = mod(raw, n)
		default:
			if raw < 0 || raw >= n {
				return idx, false
			}
			idx[i] = raw
		}
	}
	return idx, true
}

// hexSlot converts the in-plane (x,y) position to axial hex
// coordinates using a pointy-top hex grid of the given pitch (center
// to center distance), then rounds to the nearest hex cell per the
// standard cube-rounding technique; z (if Dim==3) is handled as a
// plain rectangular layer index. Always Bounded, per Open Question (b).
func (l *Lattice) hexSlot(p Vec3) (idx [3]int, ok bool) {
	x, y := p[0]-l.Origin[0], p[1]-l.Origin[1]
	size := l.Pitch[0] / math.Sqrt(3) // center-to-corner radius
	qf := (math.Sqrt(3)/3*x - 1.0/3*y) / size
	rf := (2.0 / 3 * y) / size
	q, r := axialRound(qf, rf)
	if l.Dim == 3 {
		zraw := int(math.Floor((p[2] - l.Origin[2]) / l.Pitch[2]))
		if zraw < 0 || zraw >= l.NSlots[2] {
			return idx, false
		}
		idx[2] = zraw
	}
	if q < -l.NSlots[0]/2 || q > l.NSlots[0]/2 || r < -l.NSlots[1]/2 || r > l.NSlots[1]/2 {
		return idx, false
	}
	idx[0], idx[1] = q, r
	return idx, true
}

// axialRound rounds fractional axial coordinates to the nearest hex
// cell, correcting for the largest rounding error among q, r, s=-q-r.
func axialRound(qf, rf float64) (int, int) {
	sf := -qf - rf
	q := math.Round(qf)
	r := math.Round(rf)
	s := math.Round(sf)
	dq := math.Abs(q - qf)
	dr := math.Abs(r - rf)
	ds := math.Abs(s - sf)
	switch {
	case dq > dr && dq > ds:
		q = -r - s
	case dr > ds:
		r = -q - s
	}
	return int(q), int(r)
}

// mod is the Euclidean (always non-negative) modulo used by Infinite
// lattices, so negative slot indices wrap correctly.
func mod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}
