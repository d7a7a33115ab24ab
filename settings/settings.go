// Copyright 2026 The Helios Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package settings implements the Settings module: global tolerances
// read by other modules at setup and runtime. This resolves Open
// Question (c): surface tolerance and nudge distance are settings, not
// hardcoded constants.
package settings

import "github.com/cpmech/helios/env"

// Name is the static module name objects declare to be staged here.
const Name = "settings"

// defaults mirror spec.md §4.A/§4.D.
const (
	DefaultSurfaceTolerance = 1e-10
	DefaultNudgeDistance    = 1e-8
)

// Object is the single parsed input object that configures Settings.
// At most one should be staged; if none is staged the module is
// skipped and Settings falls back to its defaults wherever a consumer
// uses env.GetModule and finds ModuleMissing.
type Object struct {
	UserID           string  `json:"id"`
	SurfaceTolerance float64 `json:"surface_tolerance"`
	NudgeDistance    float64 `json:"nudge_distance"`
}

func (o *Object) ModuleName() string { return Name }
func (o *Object) UserId() string     { return o.UserID }

// Settings is the constructed module.
type Settings struct {
	SurfaceTolerance float64
	NudgeDistance    float64
}

func (s *Settings) Name() string { return Name }

func init() {
	env.Register(Name, setup)
}

// setup builds Settings from the (at most one meaningfully used)
// staged Object; later objects override earlier ones field-by-field
// when non-zero, so a deployment can split settings across multiple
// input fragments without conflict as long as fields don't collide.
func setup(ctx *env.Context, objects []env.Object) (env.Module, error) {
	s := &Settings{
		SurfaceTolerance: DefaultSurfaceTolerance,
		NudgeDistance:    DefaultNudgeDistance,
	}
	for _, raw := range objects {
		o, ok := raw.(*Object)
		if !ok {
			continue
		}
		if o.SurfaceTolerance > 0 {
			s.SurfaceTolerance = o.SurfaceTolerance
		}
		if o.NudgeDistance > 0 {
			s.NudgeDistance = o.NudgeDistance
		}
	}
	return s, nil
}

// Default returns a Settings module carrying spec defaults, for
// callers that never stage a Settings object (e.g. unit tests
// exercising geometry in isolation).
func Default() *Settings {
	return &Settings{
		SurfaceTolerance: DefaultSurfaceTolerance,
		NudgeDistance:    DefaultNudgeDistance,
	}
}
