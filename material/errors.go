// Copyright 2026 The Helios Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package material

import "github.com/cpmech/gosl/chk"

// NewMaterialResolutionError builds a MaterialResolutionError: a
// material's composition referenced a nuclide id with no loaded ACE
// table (spec.md §7).
func NewMaterialResolutionError(nuclideID string) error {
	return chk.Err("material: referenced nuclide %q has no loaded ACE table", nuclideID)
}
