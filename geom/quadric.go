// Copyright 2026 The Helios Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import "math"

// quadraticIntersect implements the shared ray-quadric distance rule
// from spec.md §4.A: every quadric surface reduces to solving
// a·t² + 2k·t + c = 0 along the ray p + t·d.
//
//  1. |a| < eps degenerates to the linear case.
//  2. Otherwise Δ = k² − a·c; Δ ≤ 0 means no real root.
//  3. sense=Minus (inside the convex interior, c<0) wants the larger
//     positive root; sense=Plus (outside, c>0) wants the smaller
//     positive root.
//  4. Near-boundary (|c| < tol) is not special-cased here: the caller
//     is expected to have already nudged the particle off the surface,
//     per the navigator's tolerance discipline (§4.D); this helper only
//     implements steps 1-3.
func quadraticIntersect(a, k, c float64, sense Sense, eps float64) (dist float64, ok bool) {
	if math.Abs(a) < eps {
		if math.Abs(k) < eps {
			return 0, false
		}
		t := -c / (2 * k)
		if t > 0 {
			return t, true
		}
		return 0, false
	}

	delta := k*k - a*c
	if delta <= 0 {
		return 0, false
	}
	sq := math.Sqrt(delta)
	t1 := (-k - sq) / a
	t2 := (-k + sq) / a
	if t1 > t2 {
		t1, t2 = t2, t1
	}

	if sense == Minus {
		if t2 > 0 {
			return t2, true
		}
		return 0, false
	}
	// sense == Plus
	if t1 > 0 {
		return t1, true
	}
	return 0, false
}

// defaultTolerance is used wherever a caller does not thread a
// settings-provided surface tolerance through (e.g. standalone unit
// tests of a single surface).
const defaultTolerance = 1e-10

// Intersect computes the ray-surface distance per spec.md §4.A. p is
// the ray origin, d a unit direction, sense the particle's current
// half-space with respect to this surface. Returns true iff a forward
// intersection exists, with dist > 0.
func (s *Surface) Intersect(p, d Vec3, sense Sense) (dist float64, ok bool) {
	return s.intersectTol(p, d, sense, defaultTolerance)
}

// intersectTol is Intersect with an explicit surface tolerance, used by
// the navigator which threads the Settings module's configured value.
func (s *Surface) intersectTol(p, d Vec3, sense Sense, eps float64) (dist float64, ok bool) {
	switch s.Kind {
	case KindPlaneOnAxis:
		return planeIntersect(p[s.Axis], d[s.Axis], s.D0, eps)
	case KindPlane:
		return planeIntersect(s.Normal0.Dot(p), s.Normal0.Dot(d), s.D0, eps)
	case KindCylinderOnAxis:
		return s.cylinderIntersect(p, d, sense, eps)
	case KindSphere:
		return s.sphereIntersect(p, d, sense, eps)
	case KindGeneralCylinder, KindQuadric:
		return s.quadIntersect(p, d, sense, eps)
	}
	return 0, false
}

// planeIntersect solves f(p+t·d) = (pa + t·da) - d0 = 0 for scalar
// projections (pa = n·p, da = n·d); this is the a=0 linear branch of
// quadraticIntersect, shared by both plane kinds. quadraticIntersect
// expects the 2k·t + c = 0 form, so the linear coefficient da is
// passed as k = da/2.
func planeIntersect(pa, da, d0, eps float64) (float64, bool) {
	return quadraticIntersect(0, da/2, pa-d0, Plus, eps)
	// note: plane's "sense" does not affect which root is chosen since
	// there is at most one root; Plus is passed only to select the
	// linear branch's single acceptance test (t>0).
}

func (s *Surface) cylinderIntersect(p, d Vec3, sense Sense, eps float64) (float64, bool) {
	var a, k, c float64
	for i := 0; i < 3; i++ {
		if Axis(i) == s.Axis {
			continue
		}
		dp := p[i] - s.Center[i]
		a += d[i] * d[i]
		k += d[i] * dp
		c += dp * dp
	}
	c -= s.Radius * s.Radius
	return quadraticIntersect(a, k, c, sense, eps)
}

func (s *Surface) sphereIntersect(p, d Vec3, sense Sense, eps float64) (float64, bool) {
	dp := p.Sub(s.Center)
	a := d.Dot(d)
	k := d.Dot(dp)
	c := dp.Dot(dp) - s.Radius*s.Radius
	return quadraticIntersect(a, k, c, sense, eps)
}

// quadIntersect substitutes p(t) = p + t·d into the general quadric and
// collects the resulting a,k,c coefficients in t.
func (s *Surface) quadIntersect(p, d Vec3, sense Sense, eps float64) (float64, bool) {
	a, b, c, dd, e, f, g, h, i, j := s.Quad[0], s.Quad[1], s.Quad[2], s.Quad[3], s.Quad[4], s.Quad[5], s.Quad[6], s.Quad[7], s.Quad[8], s.Quad[9]
	px, py, pz := p[0], p[1], p[2]
	dx, dy, dz := d[0], d[1], d[2]

	qa := a*dx*dx + b*dy*dy + c*dz*dz + 2*(dd*dx*dy+e*dy*dz+f*dz*dx)
	qk := a*px*dx + b*py*dy + c*pz*dz +
		dd*(px*dy+py*dx) + e*(py*dz+pz*dy) + f*(pz*dx+px*dz) +
		g*dx + h*dy + i*dz
	qc := a*px*px + b*py*py + c*pz*pz + 2*(dd*px*py+e*py*pz+f*pz*px) + 2*(g*px+h*py+i*pz) + j

	return quadraticIntersect(qa, qk, qc, sense, eps)
}
