// Copyright 2026 The Helios Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package source

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/helios/env"
	"github.com/cpmech/helios/geom"
)

// TestSetupBuildsSourceFromStagedDistributions stages a position,
// direction, and energy distribution plus one source referencing all
// three, and checks sampling succeeds through the module environment.
func TestSetupBuildsSourceFromStagedDistributions(t *testing.T) {
	chk.PrintTitle("TestSetupBuildsSourceFromStagedDistributions")
	e := env.New()
	e.Push(&DistDef{UserID: "p1", Family: "position", Kind: "point", Point: geom.Vec3{0, 0, 0}})
	e.Push(&DistDef{UserID: "d1", Family: "direction", Kind: "isotropic"})
	e.Push(&DistDef{UserID: "e1", Family: "energy", Kind: "mono", Energy: 2.0})

	sd := &SourceDef{UserID: "core"}
	sd.Terms = append(sd.Terms, struct {
		Weight      float64
		PositionID  string
		DirectionID string
		EnergyID    string
	}{Weight: 1.0, PositionID: "p1", DirectionID: "d1", EnergyID: "e1"})
	e.Push(sd)

	if err := e.SetupAll(); err != nil {
		t.Fatalf("SetupAll failed: %v", err)
	}
	idx, err := env.GetModule[*Index](e, Name)
	if err != nil {
		t.Fatalf("GetModule failed: %v", err)
	}
	sources := idx.Source("core")
	if len(sources) != 1 {
		t.Fatalf("expected 1 source, got %d", len(sources))
	}
	p := sources[0].Sample()
	chk.Float64(t, "Energy", 1e-15, p.Energy, 2.0)
}

// TestSetupRejectsUnknownDistributionReference stages a source that
// references a distribution id never staged.
func TestSetupRejectsUnknownDistributionReference(t *testing.T) {
	chk.PrintTitle("TestSetupRejectsUnknownDistributionReference")
	e := env.New()
	sd := &SourceDef{UserID: "core"}
	sd.Terms = append(sd.Terms, struct {
		Weight      float64
		PositionID  string
		DirectionID string
		EnergyID    string
	}{Weight: 1.0, PositionID: "missing", DirectionID: "missing", EnergyID: "missing"})
	e.Push(sd)

	if err := e.SetupAll(); err == nil {
		t.Fatalf("expected an error for an unresolved distribution reference")
	}
}

// TestSourceSamplePicksByWeight checks a two-term source with an
// overwhelming weight on one term returns that term's fixed energy on
// every one of 50 draws (the light term's chance is about 1e-12 a draw).
func TestSourceSamplePicksByWeight(t *testing.T) {
	chk.PrintTitle("TestSourceSamplePicksByWeight")
	src := &Source{
		UserID: "biased",
		terms: []weightedMarginals{
			{Weight: 1e6, Marginals: Marginals{
				Position: PointPosition{}, Direction: FixedDirection{D: geom.Vec3{0, 0, 1}},
				Energy: MonoenergeticEnergy{E: 1.0},
			}},
			{Weight: 1e-6, Marginals: Marginals{
				Position: PointPosition{}, Direction: FixedDirection{D: geom.Vec3{0, 0, 1}},
				Energy: MonoenergeticEnergy{E: 99.0},
			}},
		},
		totalWeight: 1e6 + 1e-6,
	}
	hits := 0
	for i := 0; i < 50; i++ {
		if src.Sample().Energy == 1.0 {
			hits++
		}
	}
	if hits != 50 {
		t.Fatalf("expected the overwhelmingly-weighted term to win every draw, got %d/50", hits)
	}
}
