// Copyright 2026 The Helios Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package env

import "github.com/cpmech/gosl/chk"

// NewMissingFactory builds a MissingFactory error: a module was referenced
// without a registered factory.
func NewMissingFactory(name string) error {
	return chk.Err("env: module %q has no registered factory", name)
}

// NewModuleMissing builds a ModuleMissing error: typed lookup for a module
// whose factory had no staged objects (or was never set up).
func NewModuleMissing(name string) error {
	return chk.Err("env: module %q is not set up", name)
}

// NewObjectMissing builds an ObjectMissing error: user id not found in a
// module's index.
func NewObjectMissing(module, userID string) error {
	return chk.Err("env: module %q has no object with user id %q", module, userID)
}
