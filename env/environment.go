// Copyright 2026 The Helios Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package env implements the modular environment: a registry that
// discovers object definitions parsed from input, binds them to
// factories by module name, constructs modules in dependency order, and
// resolves cross-module user-identifier references at setup time.
package env

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Object is a parsed input object, staged into the environment before
// its owning module is set up.
type Object interface {
	ModuleName() string // name of the module this object belongs to
	UserId() string      // free-form string chosen by the input author
}

// Module is anything the environment can construct and later return from
// a typed lookup.
type Module interface {
	Name() string // static module name, matching the name objects declare
}

// Factory builds a Module from its staged objects. ctx gives the factory
// read access to already-constructed peer modules (resolved per the fixed
// setup order below); this is the explicit setup-context replacement for
// the object-to-environment back-reference described in the design notes.
type Factory func(ctx *Context, objects []Object) (Module, error)

// setupOrder is the fixed dependency order: settings first (other
// modules read tolerances from it), then source distributions, then
// materials (needs nuclides loaded before geometry can reference them),
// then geometry last (may reference materials by user id).
var setupOrder = []string{"settings", "source", "materials", "geometry"}

// registry holds all factories registered during package init() of each
// module kind (settings.init, geom.init, material.init, source.init).
var registry = make(map[string]Factory)

// Register adds a factory under a module name. Panics if the name is
// already registered, mirroring ele.SetAllocator's policy against
// silent redefinition.
func Register(name string, f Factory) {
	if _, ok := registry[name]; ok {
		chk.Panic("env: cannot register factory for %q because it exists already", name)
	}
	registry[name] = f
}

// Environment stages parsed objects by module name, runs factories in
// dependency order, and serves typed lookups to constructed modules.
type Environment struct {
	staged  map[string][]Object
	modules map[string]Module
	Verbose bool
}

// New returns an empty environment ready to receive staged objects.
func New() *Environment {
	return &Environment{
		staged:  make(map[string][]Object),
		modules: make(map[string]Module),
	}
}

// Push appends obj into the staging area for its declared module.
func (e *Environment) Push(obj Object) {
	name := obj.ModuleName()
	e.staged[name] = append(e.staged[name], obj)
}

// Context is passed to factories at setup time so they may query
// already-constructed peer modules without holding a back-reference to
// the environment.
type Context struct {
	env *Environment
}

// Peer returns a previously set-up module by name, or ModuleMissing if
// it was never set up (either unused, or not yet reached in setup
// order — peers must appear earlier in setupOrder than their consumer).
func (c *Context) Peer(name string) (Module, error) {
	m, ok := c.env.modules[name]
	if !ok {
		return nil, NewModuleMissing(name)
	}
	return m, nil
}

// SetupAll runs every module's factory in the fixed dependency order.
// A module with no staged objects is skipped silently (unused). Setup
// aborts at the first error, reporting the offending module name.
func (e *Environment) SetupAll() error {
	ctx := &Context{env: e}
	for _, name := range setupOrder {
		objects, ok := e.staged[name]
		if !ok || len(objects) == 0 {
			continue
		}
		factory, ok := registry[name]
		if !ok {
			return NewMissingFactory(name)
		}
		module, err := factory(ctx, objects)
		if err != nil {
			return chk.Err("env: setup of module %q failed: %v", name, err)
		}
		e.modules[name] = module
		if e.Verbose {
			io.Pf("env: module %q set up with %d staged object(s)\n", name, len(objects))
		}
	}
	return nil
}

// GetModule looks up the module set up under name and type-asserts it
// to M. This is the generic-downcast replacement for the template
// factory lookup described in the design notes: the caller names both
// the static module name and the concrete type it expects back.
func GetModule[M Module](e *Environment, name string) (m M, err error) {
	var zero M
	raw, ok := e.modules[name]
	if !ok {
		return zero, NewModuleMissing(name)
	}
	typed, ok := raw.(M)
	if !ok {
		return zero, chk.Err("env: module %q does not satisfy the requested type", name)
	}
	return typed, nil
}

// HasModule reports whether a module with the given name was set up.
func (e *Environment) HasModule(name string) bool {
	_, ok := e.modules[name]
	return ok
}
