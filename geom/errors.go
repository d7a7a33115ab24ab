// Copyright 2026 The Helios Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import "github.com/cpmech/gosl/chk"

// NewBadSurfaceCreation builds a BadSurfaceCreation error: wrong
// coefficient count or degenerate parameters (e.g. zero radius).
func NewBadSurfaceCreation(userID, reason string) error {
	return chk.Err("geom: surface %q cannot be created: %s", userID, reason)
}

// NewGeometryUnbounded builds a GeometryUnbounded error: findCell
// returned nil at the root level for a point outside any lattice.
func NewGeometryUnbounded(p Vec3) error {
	return chk.Err("geom: point (%g,%g,%g) is not inside any cell and is not covered by a lattice", p[0], p[1], p[2])
}

// NewOverlappingCells builds an OverlappingCells error: a consistency
// sweep found two cells both containing the same point.
func NewOverlappingCells(a, b string, p Vec3) error {
	return chk.Err("geom: cells %q and %q both contain point (%g,%g,%g)", a, b, p[0], p[1], p[2])
}
