// Copyright 2026 The Helios Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package material

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/helios/env"
)

// TestSetupBuildsNuclidesThenMaterials stages a nuclide and a material
// referencing it, and checks the module environment resolves the
// composition correctly.
func TestSetupBuildsNuclidesThenMaterials(t *testing.T) {
	chk.PrintTitle("TestSetupBuildsNuclidesThenMaterials")
	e := env.New()
	e.Push(&NuclideDef{UserID: "h1", ZAID: "1001.80c", Table: buildHydrogenTable()})
	md := &MaterialDef{UserID: "water", NumberDensity: 1.0}
	md.Composition = append(md.Composition, struct {
		NuclideID      string
		AtomicFraction float64
	}{NuclideID: "h1", AtomicFraction: 1})
	e.Push(md)

	if err := e.SetupAll(); err != nil {
		t.Fatalf("SetupAll failed: %v", err)
	}
	idx, err := env.GetModule[*Index](e, Name)
	if err != nil {
		t.Fatalf("GetModule failed: %v", err)
	}
	materials := idx.Material("water")
	if len(materials) != 1 {
		t.Fatalf("expected 1 material, got %d", len(materials))
	}
	sigma, err := materials[0].MacroscopicXS(ReactionTotal, 1.0)
	if err != nil {
		t.Fatalf("MacroscopicXS failed: %v", err)
	}
	chk.Float64(t, "Sigma_total(1.0)", 1e-9, sigma, 10)
}

// TestSetupRejectsUnknownNuclideReference stages a material that
// references a nuclide id never staged, expecting MaterialResolutionError.
func TestSetupRejectsUnknownNuclideReference(t *testing.T) {
	chk.PrintTitle("TestSetupRejectsUnknownNuclideReference")
	e := env.New()
	md := &MaterialDef{UserID: "water", NumberDensity: 1.0}
	md.Composition = append(md.Composition, struct {
		NuclideID      string
		AtomicFraction float64
	}{NuclideID: "missing", AtomicFraction: 1})
	e.Push(md)

	if err := e.SetupAll(); err == nil {
		t.Fatalf("expected a MaterialResolutionError")
	}
}
