// Copyright 2026 The Helios Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ace

import "github.com/cpmech/gosl/chk"

// NewParseError builds an AceParseError: a block schema violation at
// the given word offset into XSS.
func NewParseError(offset int, reason string) error {
	return chk.Err("ace: parse error at XSS word offset %d: %s", offset, reason)
}
