// Copyright 2026 The Helios Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

// buildSlabWorld is a minimal two-cell world split by the plane px=5:
// cell "A" is the px<5 half-space, cell "B" is the px>5 half-space.
// Both are void cells (no fill, no material) in the root universe.
func buildSlabWorld(t *testing.T) *Geometry {
	g := newGeometry()
	px := NewPlaneOnAxis("px5", AxisX, 5, false)
	g.addSurface(px)
	g.addUniverse(&Universe{UserID: RootUserID})

	a, err := NewCell("A", []SenseEntry{{SurfaceID: px.InternalID, Sign: Minus}}, nil, "")
	if err != nil {
		t.Fatalf("NewCell A failed: %v", err)
	}
	b, err := NewCell("B", []SenseEntry{{SurfaceID: px.InternalID, Sign: Plus}}, nil, "")
	if err != nil {
		t.Fatalf("NewCell B failed: %v", err)
	}
	g.addCell(a, RootUserID)
	g.addCell(b, RootUserID)
	return g
}

func TestLocateFindsOccupyingCell(t *testing.T) {
	chk.PrintTitle("TestLocateFindsOccupyingCell")
	g := buildSlabWorld(t)
	nav := NewNavigator(g, defaultTolerance, 1e-8)
	st, err := nav.Locate(Vec3{0, 0, 0}, Vec3{1, 0, 0})
	if err != nil {
		t.Fatalf("Locate failed: %v", err)
	}
	if st.current().Cell.UserID != "A" {
		t.Fatalf("expected cell A, got %s", st.current().Cell.UserID)
	}
}

// TestDistanceToNextAndCross is universal invariant 2: moving to
// p + t·d + ε·d after a reported crossing places the particle in the
// adjacent cell, and the next DistanceToNext call still finds a
// strictly positive distance (the slab has no further boundary in this
// synthetic world, but Cross must at least have moved the particle
// into cell B without error).
func TestDistanceToNextAndCross(t *testing.T) {
	chk.PrintTitle("TestDistanceToNextAndCross")
	g := buildSlabWorld(t)
	nav := NewNavigator(g, defaultTolerance, 1e-8)
	st, err := nav.Locate(Vec3{0, 0, 0}, Vec3{1, 0, 0})
	if err != nil {
		t.Fatalf("Locate failed: %v", err)
	}

	dist, surfaceID, level, ok := nav.DistanceToNext(st)
	if !ok {
		t.Fatalf("expected a boundary crossing")
	}
	chk.Float64(t, "distance", 1e-9, dist, 5.0)

	if err := nav.Cross(st, level, dist, surfaceID); err != nil {
		t.Fatalf("Cross failed: %v", err)
	}
	if st.current().Cell.UserID != "B" {
		t.Fatalf("expected cell B after crossing, got %s", st.current().Cell.UserID)
	}
	if st.current().Coord[0] <= 5.0 {
		t.Fatalf("expected coordinate past x=5 after nudge, got %v", st.current().Coord[0])
	}
}

func TestUniverseAcyclicitySelfFillRejected(t *testing.T) {
	chk.PrintTitle("TestUniverseAcyclicitySelfFillRejected")
	g := newGeometry()
	g.addUniverse(&Universe{UserID: RootUserID})
	rootID := g.universeByUserID[RootUserID]
	c, err := NewCell("self", nil, &rootID, "")
	if err != nil {
		t.Fatalf("NewCell failed: %v", err)
	}
	g.addCell(c, RootUserID)
	if err := g.checkAcyclic(); err == nil {
		t.Fatalf("expected an acyclicity error for a self-filling cell")
	}
}
