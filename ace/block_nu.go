// Copyright 2026 The Helios Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ace

import (
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"
)

// NU is the average number of neutrons released per fission, tabulated
// against incident energy. Schema: L, L energies, L yields.
type NU struct {
	Energy []float64
	Yield  []float64
}

func (b *NU) Tag() string  { return "NU" }
func (b *NU) JXSSlot() int { return 1 }
func (b *NU) Size() int    { return 1 + 2*len(b.Energy) }

func (b *NU) Decode(xss la.Vector, start int) error {
	c := newCursor(xss, start)
	l, err := c.nextInt()
	if err != nil {
		return err
	}
	if l < 0 {
		return NewParseError(start, "NU: negative length")
	}
	if b.Energy, err = c.nextN(l); err != nil {
		return err
	}
	if b.Yield, err = c.nextN(l); err != nil {
		return err
	}
	if c.consumed() != b.Size() {
		return NewParseError(start, "NU: consumed word count does not match declared size")
	}
	return nil
}

func (b *NU) Dump() []float64 {
	out := make([]float64, 0, b.Size())
	out = append(out, float64(len(b.Energy)))
	out = append(out, b.Energy...)
	out = append(out, b.Yield...)
	return out
}

func (b *NU) EncodeState(enc utl.Encoder) (err error) {
	if err = enc.Encode(b.Energy); err != nil {
		return
	}
	return enc.Encode(b.Yield)
}

func (b *NU) DecodeState(dec utl.Decoder) (err error) {
	if err = dec.Decode(&b.Energy); err != nil {
		return
	}
	return dec.Decode(&b.Yield)
}
