// Copyright 2026 The Helios Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ace

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// buildEszItieTable assembles scenario 6 from spec.md §8: an ACE table
// with only ESZ and ITIE blocks, 5 energies each.
func buildEszItieTable() *Table {
	esz := &ESZ{
		Energy:     []float64{1e-5, 1e-3, 1e-1, 1, 10},
		Total:      []float64{10, 8, 6, 4, 2},
		Absorption: []float64{5, 4, 3, 2, 1},
		Elastic:    []float64{5, 4, 3, 2, 1},
		Heating:    []float64{0.1, 0.2, 0.3, 0.4, 0.5},
	}
	itie := &ITIE{
		Energy: []float64{1e-5, 1e-3, 1e-1, 1, 10},
		Xs:     []float64{20, 15, 10, 5, 1},
	}
	t := &Table{
		Header: Header{ZAID: "1001.80c", AWR: 0.9991673, Temperature: 2.53e-8},
		Kind:   KindContinuous,
		NXS:    [16]int{0, 1001, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		Blocks: []Block{esz, itie},
	}
	nxs, jxs, xss := Dump(t)
	t.NXS, t.JXS, t.XSS = nxs, jxs, xss
	return t
}

// TestRoundTripParseDump is scenario 6: parse -> dump -> reparse must be
// field-by-field equal (spec.md §8, universal invariant 3).
func TestRoundTripParseDump(t *testing.T) {
	chk.PrintTitle("TestRoundTripParseDump")
	original := buildEszItieTable()

	reparsed, err := Parse(original.Header, original.Kind, original.NXS, original.JXS, original.XSS)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(reparsed.Blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(reparsed.Blocks))
	}

	esz, ok := reparsed.Blocks[0].(*ESZ)
	if !ok {
		t.Fatalf("expected first block to be *ESZ, got %T", reparsed.Blocks[0])
	}
	chk.Vector(t, "ESZ.Energy", 1e-15, esz.Energy, []float64{1e-5, 1e-3, 1e-1, 1, 10})
	chk.Vector(t, "ESZ.Total", 1e-15, esz.Total, []float64{10, 8, 6, 4, 2})
	chk.Vector(t, "ESZ.Absorption", 1e-15, esz.Absorption, []float64{5, 4, 3, 2, 1})
	chk.Vector(t, "ESZ.Elastic", 1e-15, esz.Elastic, []float64{5, 4, 3, 2, 1})
	chk.Vector(t, "ESZ.Heating", 1e-15, esz.Heating, []float64{0.1, 0.2, 0.3, 0.4, 0.5})

	itie, ok := reparsed.Blocks[1].(*ITIE)
	if !ok {
		t.Fatalf("expected second block to be *ITIE, got %T", reparsed.Blocks[1])
	}
	chk.Vector(t, "ITIE.Energy", 1e-15, itie.Energy, []float64{1e-5, 1e-3, 1e-1, 1, 10})
	chk.Vector(t, "ITIE.Xs", 1e-15, itie.Xs, []float64{20, 15, 10, 5, 1})

	chk.IntAssert(reparsed.NXS0(), original.NXS0())
	for i := range original.JXS {
		if reparsed.JXS[i] != original.JXS[i] {
			t.Fatalf("JXS[%d]: expected %d, got %d", i, original.JXS[i], reparsed.JXS[i])
		}
	}
}

// TestDumpSkipsAbsentBlocks confirms a block with a zero JXS pointer is
// left unpopulated by Parse rather than causing an error (spec.md §4.E:
// "JXS[i]==0 means the block is absent").
func TestDumpSkipsAbsentBlocks(t *testing.T) {
	chk.PrintTitle("TestDumpSkipsAbsentBlocks")
	esz := &ESZ{
		Energy:     []float64{1, 2, 3},
		Total:      []float64{1, 1, 1},
		Absorption: []float64{0, 0, 0},
		Elastic:    []float64{1, 1, 1},
		Heating:    []float64{0, 0, 0},
	}
	table := &Table{
		Header: Header{ZAID: "1001.80c"},
		Kind:   KindContinuous,
		Blocks: []Block{esz},
	}
	nxs, jxs, xss := Dump(table)
	reparsed, err := Parse(table.Header, table.Kind, nxs, jxs, xss)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(reparsed.Blocks) != 1 {
		t.Fatalf("expected 1 block (NU and SIG and thermal blocks absent), got %d", len(reparsed.Blocks))
	}
	if jxs[1] != 0 {
		t.Fatalf("expected JXS[1] (NU slot) to remain 0, got %d", jxs[1])
	}
	if jxs[10] != 0 {
		t.Fatalf("expected JXS[10] (ITIE slot) to remain 0, got %d", jxs[10])
	}
}

// TestShiftJXSArray validates the incremental re-pointer rule (spec.md
// §4.E, universal invariant 4): pointers strictly after the edited
// block's original position move forward by blockSize; everything at
// or before it, and every absent (zero) slot, is untouched.
func TestShiftJXSArray(t *testing.T) {
	chk.PrintTitle("TestShiftJXSArray")
	var jxsOld [32]int
	jxsOld[0] = 1  // ESZ starts at word 1
	jxsOld[1] = 20 // NU starts at word 20, after ESZ
	jxsOld[6] = 35 // SIG starts at word 35, after NU

	jxsNew := jxsOld
	jxsNew[1] = 25 // NU grew by 5 words in place

	shifted := ShiftJXSArray(jxsOld, jxsNew, 1, 5)
	chk.IntAssert(shifted[0], 1)  // before the edited block: untouched
	chk.IntAssert(shifted[1], 25) // the edited block's own new pointer: untouched
	chk.IntAssert(shifted[6], 40) // after the edited block: pushed forward by 5
}

// TestParseRejectsTruncatedBlock exercises a block whose declared
// length reads past the end of XSS.
func TestParseRejectsTruncatedBlock(t *testing.T) {
	chk.PrintTitle("TestParseRejectsTruncatedBlock")
	var jxs [32]int
	jxs[0] = 1
	xss := la.Vector{5, 1, 2, 3} // claims L=5 but only 3 words follow
	_, err := Parse(Header{}, KindContinuous, [16]int{}, jxs, xss)
	if err == nil {
		t.Fatalf("expected a parse error for a truncated ESZ block")
	}
}
