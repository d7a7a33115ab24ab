// Copyright 2026 The Helios Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ace

import (
	"strings"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
)

// ReadASCII loads a table from the classic whitespace-delimited ACE
// text framing: header fields, NXS (16 ints), JXS (32 ints), then
// NXS[0] XSS doubles, in that order, fields separated by arbitrary
// whitespace/newlines (spec.md §4.E, §6). Comment and source-info
// fields are read as single whitespace-delimited tokens; a table whose
// true comment contains embedded spaces will not round-trip through
// this reader byte-for-byte, a known simplification of the real ACE
// comment line.
func ReadASCII(path string) (*Table, error) {
	buf, err := io.ReadFile(path)
	if err != nil {
		return nil, NewParseError(0, "cannot read file: "+err.Error())
	}
	tok := strings.Fields(string(buf))
	if len(tok) < 6+16+32 {
		return nil, NewParseError(0, "file too short to contain a full ACE header")
	}
	i := 0
	next := func() string { s := tok[i]; i++; return s }

	header := Header{
		ZAID:        next(),
		AWR:         io.Atof(next()),
		Temperature: io.Atof(next()),
		Date:        next(),
		Comment:     next(),
		SourceInfo:  next(),
	}

	var nxs [16]int
	for k := range nxs {
		nxs[k] = io.Atoi(next())
	}
	var jxs [32]int
	for k := range jxs {
		jxs[k] = io.Atoi(next())
	}

	n := nxs[0]
	if n < 0 || i+n > len(tok) {
		return nil, NewParseError(i, "XSS length exceeds remaining tokens")
	}
	xss := make([]float64, n)
	for k := 0; k < n; k++ {
		xss[k] = io.Atof(next())
	}

	kind := KindContinuous
	if strings.Contains(header.ZAID, ".t") || jxs[10] != 0 {
		kind = KindThermal
	}
	return Parse(header, kind, nxs, jxs, la.Vector(xss))
}
