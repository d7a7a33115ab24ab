// Copyright 2026 The Helios Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package env

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

type stubObject struct {
	module string
	userID string
}

func (o *stubObject) ModuleName() string { return o.module }
func (o *stubObject) UserId() string     { return o.userID }

type stubModule struct{ n int }

func (m *stubModule) Name() string { return "stub-test-module" }

func TestSetupOrderAndLookup(t *testing.T) {
	chk.PrintTitle("TestSetupOrderAndLookup")

	// use an isolated name so repeated test runs (and other _test.go
	// files in this package) don't collide on the global registry.
	const name = "stub-test-module"
	if _, ok := registry[name]; !ok {
		Register(name, func(ctx *Context, objects []Object) (Module, error) {
			return &stubModule{n: len(objects)}, nil
		})
	}
	setupOrder = append(setupOrder, name)

	e := New()
	e.Push(&stubObject{module: name, userID: "a"})
	e.Push(&stubObject{module: name, userID: "b"})

	if err := e.SetupAll(); err != nil {
		t.Fatalf("SetupAll failed: %v", err)
	}

	m, err := GetModule[*stubModule](e, name)
	if err != nil {
		t.Fatalf("GetModule failed: %v", err)
	}
	if m.n != 2 {
		t.Fatalf("expected 2 staged objects, got %d", m.n)
	}
}

func TestMissingFactory(t *testing.T) {
	chk.PrintTitle("TestMissingFactory")
	e := New()
	e.staged["geometry"] = []Object{&stubObject{module: "geometry", userID: "x"}}
	delete(registry, "geometry") // ensure absent for this check
	if err := e.SetupAll(); err == nil {
		t.Fatalf("expected MissingFactory error")
	}
}

func TestModuleMissing(t *testing.T) {
	chk.PrintTitle("TestModuleMissing")
	e := New()
	if err := e.SetupAll(); err != nil {
		t.Fatalf("unexpected error on empty environment: %v", err)
	}
	if _, err := GetModule[*stubModule](e, "never-staged"); err == nil {
		t.Fatalf("expected ModuleMissing error")
	}
}
