// Copyright 2026 The Helios Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ace

import (
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"
)

// SIG holds one reaction's cross-section vector: the MT reaction
// number, the index of the first energy-grid point it is tabulated
// from, and the values themselves. Schema: MT, IE, L, then L values.
type SIG struct {
	MT     int
	IE     int // 0-based index into ESZ.Energy where this reaction starts
	Values []float64
}

func (b *SIG) Tag() string  { return "SIG" }
func (b *SIG) JXSSlot() int { return 6 }
func (b *SIG) Size() int    { return 3 + len(b.Values) }

func (b *SIG) Decode(xss la.Vector, start int) error {
	c := newCursor(xss, start)
	var err error
	if b.MT, err = c.nextInt(); err != nil {
		return err
	}
	if b.IE, err = c.nextInt(); err != nil {
		return err
	}
	l, err := c.nextInt()
	if err != nil {
		return err
	}
	if l < 0 {
		return NewParseError(start, "SIG: negative length")
	}
	if b.Values, err = c.nextN(l); err != nil {
		return err
	}
	if c.consumed() != b.Size() {
		return NewParseError(start, "SIG: consumed word count does not match declared size")
	}
	return nil
}

func (b *SIG) Dump() []float64 {
	out := make([]float64, 0, b.Size())
	out = append(out, float64(b.MT), float64(b.IE), float64(len(b.Values)))
	out = append(out, b.Values...)
	return out
}

func (b *SIG) EncodeState(enc utl.Encoder) (err error) {
	if err = enc.Encode(b.MT); err != nil {
		return
	}
	if err = enc.Encode(b.IE); err != nil {
		return
	}
	return enc.Encode(b.Values)
}

func (b *SIG) DecodeState(dec utl.Decoder) (err error) {
	if err = dec.Decode(&b.MT); err != nil {
		return
	}
	if err = dec.Decode(&b.IE); err != nil {
		return
	}
	return dec.Decode(&b.Values)
}
