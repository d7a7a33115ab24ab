// Copyright 2026 The Helios Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

// TestSphereIntersect is scenario 1 from spec.md §8: sphere radius 1 at
// the origin, ray from (0,0,-2) direction (0,0,1), sense '+' ⇒ distance
// 1.0.
func TestSphereIntersect(t *testing.T) {
	chk.PrintTitle("TestSphereIntersect")
	s, err := NewSphere("s1", Vec3{0, 0, 0}, 1, false)
	if err != nil {
		t.Fatalf("NewSphere failed: %v", err)
	}
	dist, ok := s.Intersect(Vec3{0, 0, -2}, Vec3{0, 0, 1}, Plus)
	if !ok {
		t.Fatalf("expected an intersection")
	}
	chk.Float64(t, "distance", 1e-9, dist, 1.0)
}

// TestCylinderIntersect is scenario 2: cylinder-on-z radius 1 at (0,0),
// ray from (2,0,0) direction (-1,0,0), sense '+' ⇒ distance 1.0.
func TestCylinderIntersect(t *testing.T) {
	chk.PrintTitle("TestCylinderIntersect")
	s, err := NewCylinderOnAxis("c1", AxisZ, Vec3{0, 0, 0}, 1, false)
	if err != nil {
		t.Fatalf("NewCylinderOnAxis failed: %v", err)
	}
	dist, ok := s.Intersect(Vec3{2, 0, 0}, Vec3{-1, 0, 0}, Plus)
	if !ok {
		t.Fatalf("expected an intersection")
	}
	chk.Float64(t, "distance", 1e-9, dist, 1.0)
}

// TestPlaneOnAxisIntersect is scenario 3: plane px at x=5, ray from
// (0,0,0) direction (1,0,0), sense '-' ⇒ distance 5.0.
func TestPlaneOnAxisIntersect(t *testing.T) {
	chk.PrintTitle("TestPlaneOnAxisIntersect")
	s := NewPlaneOnAxis("p1", AxisX, 5, false)
	dist, ok := s.Intersect(Vec3{0, 0, 0}, Vec3{1, 0, 0}, Minus)
	if !ok {
		t.Fatalf("expected an intersection")
	}
	chk.Float64(t, "distance", 1e-9, dist, 5.0)
}

// TestTangentCylinderMisses is scenario 4: a ray tangent to a
// cylinder-on-z never reports an intersection.
func TestTangentCylinderMisses(t *testing.T) {
	chk.PrintTitle("TestTangentCylinderMisses")
	s, err := NewCylinderOnAxis("c2", AxisZ, Vec3{1, 0, 0}, 1, false)
	if err != nil {
		t.Fatalf("NewCylinderOnAxis failed: %v", err)
	}
	_, ok := s.Intersect(Vec3{0, 0, 0}, Vec3{0, 0, 1}, Plus)
	if ok {
		t.Fatalf("expected no intersection for a tangent ray")
	}
}

// TestReflectivePlanePreservesSpeed is scenario 5: reflecting a
// direction about an axis-aligned plane flips only the axis component
// and preserves the vector's norm (a restatement of universal
// invariant 5: ‖d_after‖ = ‖d_before‖).
func TestReflectivePlanePreservesSpeed(t *testing.T) {
	chk.PrintTitle("TestReflectivePlanePreservesSpeed")
	s := NewPlaneOnAxis("pz", AxisZ, 0, true)
	d := Vec3{1 / math.Sqrt(3), 1 / math.Sqrt(3), -1 / math.Sqrt(3)}
	n := s.Normal(Vec3{0, 0, 0}).Unit()
	after := d.Reflect(n)
	chk.Float64(t, "after.x", 1e-12, after[0], 1/math.Sqrt(3))
	chk.Float64(t, "after.y", 1e-12, after[1], 1/math.Sqrt(3))
	chk.Float64(t, "after.z", 1e-12, after[2], 1/math.Sqrt(3))
	chk.Float64(t, "norm", 1e-12, after.Norm(), d.Norm())
}

// TestSignStableUnderTranslation is universal invariant 1: for a point
// not on the surface, sign(f(p)) is stable under sub-tolerance
// translations.
func TestSignStableUnderTranslation(t *testing.T) {
	chk.PrintTitle("TestSignStableUnderTranslation")
	s, err := NewSphere("s2", Vec3{0, 0, 0}, 1, false)
	if err != nil {
		t.Fatalf("NewSphere failed: %v", err)
	}
	p := Vec3{2, 0, 0} // well outside, f(p) = 3
	before := s.Function(p) > 0
	nudged := p.Add(Vec3{1e-12, 0, 0})
	after := s.Function(nudged) > 0
	if before != after {
		t.Fatalf("sign flipped under a sub-tolerance translation")
	}
}

func TestQuadraticIntersectDegenerateNoSolution(t *testing.T) {
	chk.PrintTitle("TestQuadraticIntersectDegenerateNoSolution")
	_, ok := quadraticIntersect(0, 0, 5, Plus, defaultTolerance)
	if ok {
		t.Fatalf("expected no solution when a and k both vanish")
	}
}

func TestTranslatedSurfaceSharesUserID(t *testing.T) {
	chk.PrintTitle("TestTranslatedSurfaceSharesUserID")
	s, err := NewSphere("s3", Vec3{0, 0, 0}, 2, true)
	if err != nil {
		t.Fatalf("NewSphere failed: %v", err)
	}
	moved := s.Translated(Vec3{1, 2, 3})
	if moved.UserID != s.UserID || moved.Reflective != s.Reflective {
		t.Fatalf("translated clone must share user id and flags")
	}
	chk.Vector(t, "center", 1e-12, moved.Center[:], []float64{1, 2, 3})
}
