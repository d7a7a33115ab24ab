// Copyright 2026 The Helios Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

// NewPlaneOnAxis builds an axis-aligned plane p_axis - d0.
func NewPlaneOnAxis(userID string, axis Axis, d0 float64, reflective bool) *Surface {
	tag := TagPlaneX
	switch axis {
	case AxisY:
		tag = TagPlaneY
	case AxisZ:
		tag = TagPlaneZ
	}
	return &Surface{UserID: userID, Kind: KindPlaneOnAxis, Tag: tag, Axis: axis, D0: d0, Reflective: reflective}
}

// NewPlane builds a general plane n·p - d0 = 0. n need not be unit
// length but should be nonzero.
func NewPlane(userID string, n Vec3, d0 float64, reflective bool) (*Surface, error) {
	if n.Norm() == 0 {
		return nil, NewBadSurfaceCreation(userID, "plane normal is the zero vector")
	}
	return &Surface{UserID: userID, Kind: KindPlane, Tag: TagPlaneGeneral, Normal0: n, D0: d0, Reflective: reflective}, nil
}

// NewCylinderOnAxis builds Σ_{i≠axis}(p_i-c_i)² - r² = 0.
func NewCylinderOnAxis(userID string, axis Axis, center Vec3, radius float64, reflective bool) (*Surface, error) {
	if radius <= 0 {
		return nil, NewBadSurfaceCreation(userID, "cylinder radius must be positive")
	}
	tag := TagCylinderX
	switch axis {
	case AxisY:
		tag = TagCylinderY
	case AxisZ:
		tag = TagCylinderZ
	}
	return &Surface{UserID: userID, Kind: KindCylinderOnAxis, Tag: tag, Axis: axis, Center: center, Radius: radius, Reflective: reflective}, nil
}

// NewSphere builds ‖p-c‖² - r² = 0.
func NewSphere(userID string, center Vec3, radius float64, reflective bool) (*Surface, error) {
	if radius <= 0 {
		return nil, NewBadSurfaceCreation(userID, "sphere radius must be positive")
	}
	tag := TagSphereGeneral
	if center == (Vec3{}) {
		tag = TagSphereOrigin
	}
	return &Surface{UserID: userID, Kind: KindSphere, Tag: tag, Center: center, Radius: radius, Reflective: reflective}, nil
}

// NewQuadric builds the generic catch-all quadric from its 10
// coefficients (a,b,c,d,e,f,g,h,i,j), per spec.md §4.A. general=true
// sets Kind to KindGeneralCylinder (a non-axis-aligned cylinder) rather
// than KindQuadric; both carry the "sq" tag, and the function/intersect
// math is identical.
func NewQuadric(userID string, coeffs [10]float64, general bool, reflective bool) (*Surface, error) {
	allZero := true
	for _, v := range coeffs[:6] {
		if v != 0 {
			allZero = false
			break
		}
	}
	if allZero {
		return nil, NewBadSurfaceCreation(userID, "quadric has no second-order term; use a plane instead")
	}
	kind := KindQuadric
	tag := Tag(TagQuadric)
	if general {
		kind = KindGeneralCylinder
	}
	return &Surface{UserID: userID, Kind: kind, Tag: tag, Quad: coeffs, Reflective: reflective}, nil
}
