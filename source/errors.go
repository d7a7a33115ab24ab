// Copyright 2026 The Helios Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package source

import "github.com/cpmech/gosl/chk"

// newUnknownKind builds an error for a distribution or source staged
// with an unrecognized Kind string.
func newUnknownKind(what, kind string) error {
	return chk.Err("source: unknown %s kind %q", what, kind)
}
