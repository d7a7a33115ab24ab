// Copyright 2026 The Helios Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ace implements the ACE ("A Compact ENDF") cross-section table
// reader: a block-structured binary/ASCII nuclear data format indexed
// by a pointer array (JXS) and length array (NXS), with forward and
// inverse (dump) reconstruction.
package ace

import (
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"
)

// Kind records which family of physics a table was produced for; it is
// metadata carried on Table only; Parse and Dump do not branch on it
// since every block already owns a fixed, non-colliding JXS slot.
type Kind int

const (
	// KindContinuous is a continuous-energy neutron transport table:
	// ESZ at JXS[0], NU at JXS[1], SIG at JXS[6].
	KindContinuous Kind = iota
	// KindThermal is an S(α,β) thermal scattering table: ITIE at
	// JXS[10], ITCE at JXS[11].
	KindThermal
)

// Header carries the per-table identification fields that precede
// NXS/JXS/XSS in the ACE framing.
type Header struct {
	ZAID        string
	AWR         float64 // atomic weight ratio
	Temperature float64 // MeV
	Date        string
	Comment     string
	SourceInfo  string
}

// Table is one parsed ACE table: header, fixed-length NXS/JXS arrays,
// the flat XSS payload, and the typed blocks reconstructed from it.
// XSS is stored as la.Vector (gosl's dynamic float vector type) rather
// than a plain []float64, the same role la.Vector plays for dynamic
// FEM DOF arrays in the teacher codebase — here it is the flat nuclear
// data payload instead.
type Table struct {
	Header Header
	Kind   Kind
	NXS    [16]int
	JXS    [32]int
	XSS    la.Vector

	Blocks []Block
}

// Block is a typed, schema-deserialized region of XSS. Every block
// retains a copy of its fields; XSS itself is not referenced again
// after Decode returns (spec.md §4.E).
//
// EncodeState/DecodeState give a block a second, independent serialization path
// for restart snapshots (as distinct from the canonical ACE disk
// layout Dump produces): the same role ele.Element.Encode/Decode plays
// for FEM internal state in the teacher codebase.
type Block interface {
	Tag() string                           // ESZ, NU, SIG, ITIE, ...
	JXSSlot() int                          // 0-based index into JXS this block is pointed to by
	Size() int                             // length in words; must equal len(Dump())
	Decode(xss la.Vector, start int) error // start is the 0-based XSS offset (JXS[slot]-1)
	Dump() []float64                       // emits the same word sequence Decode consumed
	EncodeState(enc utl.Encoder) error     // restart snapshot of this block's fields
	DecodeState(dec utl.Decoder) error     // restores a block from a restart snapshot
}

// NXS0 returns NXS[0], the declared length of XSS (spec.md §3).
func (t *Table) NXS0() int { return t.NXS[0] }
