// Copyright 2026 The Helios Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

// RootUserID is the distinguished user id of the root universe.
const RootUserID = "0"

// Universe is an ordered container of cells meant to tile its parent
// region exhaustively and without overlap (checked lazily, see
// CheckOverlap). ParentCellID is a weak back-reference — an index into
// Geometry's flat cell vector, never an owning pointer — nil for the
// root universe.
type Universe struct {
	UserID       string
	InternalID   int
	Cells        []*Cell
	ParentCellID *int
}

// FindCell scans u's cells and returns the first whose Contains(p) is
// true, or nil if p is outside every cell.
func (u *Universe) FindCell(p Vec3, surfaces map[int]*Surface) *Cell {
	for _, c := range u.Cells {
		if c.Contains(p, surfaces) {
			return c
		}
	}
	return nil
}

// CheckOverlap runs the lazy user-error consistency sweep described in
// spec.md §3: for each of the given sample points, at most one cell in
// u may contain it.
func (u *Universe) CheckOverlap(samples []Vec3, surfaces map[int]*Surface) error {
	for _, p := range samples {
		var first *Cell
		for _, c := range u.Cells {
			if !c.Contains(p, surfaces) {
				continue
			}
			if first == nil {
				first = c
				continue
			}
			return NewOverlappingCells(first.UserID, c.UserID, p)
		}
	}
	return nil
}
