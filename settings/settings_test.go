// Copyright 2026 The Helios Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package settings

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/helios/env"
)

func TestSetupDefaults(t *testing.T) {
	chk.PrintTitle("TestSetupDefaults")
	e := env.New()
	e.Push(&Object{UserID: "s1"})
	if err := e.SetupAll(); err != nil {
		t.Fatalf("setup failed: %v", err)
	}
	s, err := env.GetModule[*Settings](e, Name)
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if s.SurfaceTolerance != DefaultSurfaceTolerance {
		t.Fatalf("expected default surface tolerance, got %v", s.SurfaceTolerance)
	}
	if s.NudgeDistance != DefaultNudgeDistance {
		t.Fatalf("expected default nudge distance, got %v", s.NudgeDistance)
	}
}

func TestSetupOverride(t *testing.T) {
	chk.PrintTitle("TestSetupOverride")
	e := env.New()
	e.Push(&Object{UserID: "s1", SurfaceTolerance: 1e-6, NudgeDistance: 1e-5})
	if err := e.SetupAll(); err != nil {
		t.Fatalf("setup failed: %v", err)
	}
	s, err := env.GetModule[*Settings](e, Name)
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	chk.Float64(t, "SurfaceTolerance", 1e-15, s.SurfaceTolerance, 1e-6)
	chk.Float64(t, "NudgeDistance", 1e-15, s.NudgeDistance, 1e-5)
}
