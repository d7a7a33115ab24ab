// Copyright 2026 The Helios Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ace

import "github.com/cpmech/gosl/la"

// Dump performs a full re-layout: it allocates an empty XSS, and for
// each block (in the deterministic order Parse populated t.Blocks)
// appends its Dump() words, recording the block's 1-based starting
// index into a fresh JXS. NXS[0] is set to the resulting XSS length;
// every other NXS entry is carried over unchanged. The reconstructed
// (NXS, JXS, XSS) must re-parse to an equal table (spec.md §4.E, §8
// property 3-4).
func Dump(t *Table) (nxs [16]int, jxs [32]int, xss la.Vector) {
	nxs = t.NXS
	data := make([]float64, 0, len(t.XSS))
	for _, b := range t.Blocks {
		start := len(data)
		jxs[b.JXSSlot()] = start + 1
		data = append(data, b.Dump()...)
	}
	nxs[0] = len(data)
	return nxs, jxs, la.Vector(data)
}

// ShiftJXSArray implements the incremental JXS update rule of spec.md
// §4.E: when a single block at the given slot changes size (an
// in-memory edit short of a full re-layout), every pointer in jxsNew
// that lies after that block in the *original* layout must be pushed
// forward by blockSize. A pointer at or before the edited block's
// original position is untouched; a zero (absent-block) pointer stays
// zero regardless of position.
func ShiftJXSArray(jxsOld, jxsNew [32]int, slot, blockSize int) [32]int {
	pivot := jxsOld[slot]
	out := jxsNew
	for j := range jxsOld {
		if jxsNew[j] == 0 {
			continue
		}
		if jxsOld[j] > pivot {
			out[j] = jxsNew[j] + blockSize
		}
	}
	return out
}
