// Copyright 2026 The Helios Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ace

import (
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"
)

// ESZ is the main energy grid block: the incident-energy grid plus the
// total, absorption, elastic, and heating cross-section arrays,
// parallel to it. Schema: L, then five length-L arrays.
type ESZ struct {
	Energy     []float64
	Total      []float64
	Absorption []float64
	Elastic    []float64
	Heating    []float64
}

func (b *ESZ) Tag() string  { return "ESZ" }
func (b *ESZ) JXSSlot() int { return 0 }

func (b *ESZ) Size() int { return 1 + 5*len(b.Energy) }

func (b *ESZ) Decode(xss la.Vector, start int) error {
	c := newCursor(xss, start)
	l, err := c.nextInt()
	if err != nil {
		return err
	}
	if l < 0 {
		return NewParseError(start, "ESZ: negative length")
	}
	b.Energy, err = c.nextN(l)
	if err != nil {
		return err
	}
	b.Total, err = c.nextN(l)
	if err != nil {
		return err
	}
	b.Absorption, err = c.nextN(l)
	if err != nil {
		return err
	}
	b.Elastic, err = c.nextN(l)
	if err != nil {
		return err
	}
	b.Heating, err = c.nextN(l)
	if err != nil {
		return err
	}
	if c.consumed() != b.Size() {
		return NewParseError(start, "ESZ: consumed word count does not match declared size")
	}
	return nil
}

func (b *ESZ) Dump() []float64 {
	out := make([]float64, 0, b.Size())
	out = append(out, float64(len(b.Energy)))
	out = append(out, b.Energy...)
	out = append(out, b.Total...)
	out = append(out, b.Absorption...)
	out = append(out, b.Elastic...)
	out = append(out, b.Heating...)
	return out
}

func (b *ESZ) EncodeState(enc utl.Encoder) (err error) {
	if err = enc.Encode(b.Energy); err != nil {
		return
	}
	if err = enc.Encode(b.Total); err != nil {
		return
	}
	if err = enc.Encode(b.Absorption); err != nil {
		return
	}
	if err = enc.Encode(b.Elastic); err != nil {
		return
	}
	return enc.Encode(b.Heating)
}

func (b *ESZ) DecodeState(dec utl.Decoder) (err error) {
	if err = dec.Decode(&b.Energy); err != nil {
		return
	}
	if err = dec.Decode(&b.Total); err != nil {
		return
	}
	if err = dec.Decode(&b.Absorption); err != nil {
		return
	}
	if err = dec.Decode(&b.Elastic); err != nil {
		return
	}
	return dec.Decode(&b.Heating)
}
