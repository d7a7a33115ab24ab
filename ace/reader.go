// Copyright 2026 The Helios Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ace

import "github.com/cpmech/gosl/la"

// blockFactories enumerates the schema-deserializer for every known
// block tag, keyed by JXS slot so continuous-energy blocks (ESZ, NU,
// SIG) and thermal blocks (ITIE, ITCE) can coexist in one table; a
// physical ACE file only ever populates one family, but nothing in the
// framing prevents both from being present (spec.md §8 scenario 6
// exercises exactly an ESZ+ITIE table).
func blockFactories() []func() Block {
	return []func() Block{
		func() Block { return &ESZ{} },
		func() Block { return &NU{} },
		func() Block { return &SIG{} },
		func() Block { return &ITIE{} },
		func() Block { return &ITCE{} },
	}
}

// Parse builds a Table from a populated header, NXS, JXS and XSS. For
// every known block type T with JXS slot i: if JXS[i]==0 the block is
// absent and skipped; otherwise T's constructor consumes a
// schema-defined span of XSS starting at XSS[JXS[i]-1] (spec.md §4.E,
// 1-based ACE pointers).
func Parse(header Header, kind Kind, nxs [16]int, jxs [32]int, xss la.Vector) (*Table, error) {
	t := &Table{Header: header, Kind: kind, NXS: nxs, JXS: jxs, XSS: xss}
	for _, newBlock := range blockFactories() {
		block := newBlock()
		slot := block.JXSSlot()
		ptr := jxs[slot]
		if ptr == 0 {
			continue
		}
		if err := block.Decode(xss, ptr-1); err != nil {
			return nil, err
		}
		t.Blocks = append(t.Blocks, block)
	}
	return t, nil
}
