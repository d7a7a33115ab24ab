// Copyright 2026 The Helios Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ace

import (
	"math"

	"github.com/cpmech/gosl/la"
)

// cursor reads sequential words out of an XSS payload starting at a
// given 0-based offset, the shared plumbing every block's Decode uses
// to consume "a schema-defined number of words" (spec.md §4.E).
type cursor struct {
	xss    la.Vector
	offset int
	start  int
}

func newCursor(xss la.Vector, start int) *cursor {
	return &cursor{xss: xss, offset: start, start: start}
}

func (c *cursor) next() (float64, error) {
	if c.offset >= len(c.xss) {
		return 0, NewParseError(c.offset, "read past end of XSS")
	}
	v := c.xss[c.offset]
	c.offset++
	return v, nil
}

func (c *cursor) nextInt() (int, error) {
	v, err := c.next()
	if err != nil {
		return 0, err
	}
	return int(math.Round(v)), nil
}

func (c *cursor) nextN(n int) ([]float64, error) {
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		v, err := c.next()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// consumed returns the number of words read so far, used to verify a
// block's declared Size() matches what Decode actually consumed.
func (c *cursor) consumed() int { return c.offset - c.start }
