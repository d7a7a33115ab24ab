// Copyright 2026 The Helios Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ace

import (
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"
)

// ITIE is the incoherent inelastic thermal scattering incident-energy
// grid block (spec.md §4.E): length L, then L incident energies, then
// L total inelastic cross-sections. Size() is 2L+1.
type ITIE struct {
	Energy []float64
	Xs     []float64
}

func (b *ITIE) Tag() string  { return "ITIE" }
func (b *ITIE) JXSSlot() int { return 10 }
func (b *ITIE) Size() int    { return 2*len(b.Energy) + 1 }

func (b *ITIE) Decode(xss la.Vector, start int) error {
	c := newCursor(xss, start)
	l, err := c.nextInt()
	if err != nil {
		return err
	}
	if l < 0 {
		return NewParseError(start, "ITIE: negative length")
	}
	if b.Energy, err = c.nextN(l); err != nil {
		return err
	}
	if b.Xs, err = c.nextN(l); err != nil {
		return err
	}
	if c.consumed() != b.Size() {
		return NewParseError(start, "ITIE: consumed word count does not match declared size")
	}
	return nil
}

func (b *ITIE) Dump() []float64 {
	out := make([]float64, 0, b.Size())
	out = append(out, float64(len(b.Energy)))
	out = append(out, b.Energy...)
	out = append(out, b.Xs...)
	return out
}

func (b *ITIE) EncodeState(enc utl.Encoder) (err error) {
	if err = enc.Encode(b.Energy); err != nil {
		return
	}
	return enc.Encode(b.Xs)
}

func (b *ITIE) DecodeState(dec utl.Decoder) (err error) {
	if err = dec.Decode(&b.Energy); err != nil {
		return
	}
	return dec.Decode(&b.Xs)
}

// ITCE is the thermal elastic incident-energy grid block, structurally
// identical to ITIE but pointed to by a different JXS slot.
type ITCE struct {
	ITIE
}

func (b *ITCE) Tag() string  { return "ITCE" }
func (b *ITCE) JXSSlot() int { return 11 }
