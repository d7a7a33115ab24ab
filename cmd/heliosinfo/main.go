// Copyright 2026 The Helios Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// heliosinfo is a thin driver: it loads an ACE table and an object
// stream, builds the module environment, and prints a summary. It does
// not implement a transport loop — sampling loops over particle
// histories are out of scope (spec.md §1) and left to a real driver
// built on top of this core, the same way gofem's own main.go exercises
// fem.NewFEM/fem.Run without owning the element/solver internals itself.
package main

import (
	"encoding/json"
	"flag"
	"fmt"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/helios/ace"
	"github.com/cpmech/helios/env"
	"github.com/cpmech/helios/geom"
	"github.com/cpmech/helios/material"
	"github.com/cpmech/helios/settings"
	"github.com/cpmech/helios/source"
)

// parseVec3 reads "x,y,z" into a geom.Vec3; panics on malformed input,
// matching the rest of this driver's recover-and-report error policy.
func parseVec3(s string) geom.Vec3 {
	var v geom.Vec3
	n, err := fmt.Sscanf(s, "%g,%g,%g", &v[0], &v[1], &v[2])
	if err != nil || n != 3 {
		chk.Panic("malformed vector %q (want \"x,y,z\")", s)
	}
	return v
}

// nuclideEntry is the object-stream's lightweight reference to a
// loaded ACE table; the table bytes themselves are never carried in
// JSON, only a user-chosen id and the ZAID it should resolve to.
type nuclideEntry struct {
	UserID string `json:"id"`
	ZAID   string `json:"zaid"`
}

// inputFile is the object stream's envelope: one slice per module,
// decoded directly into the staged object types each module already
// declares (spec.md §4.G's "parsed objects declare which module they
// belong to").
type inputFile struct {
	Settings      []*settings.Object       `json:"settings"`
	Surfaces      []*geom.SurfaceDef       `json:"surfaces"`
	Cells         []*geom.CellDef          `json:"cells"`
	Universes     []*geom.UniverseDef      `json:"universes"`
	Lattices      []*geom.LatticeDef       `json:"lattices"`
	Nuclides      []*nuclideEntry          `json:"nuclides"`
	Materials     []*material.MaterialDef  `json:"materials"`
	Distributions []*source.DistDef        `json:"distributions"`
	Sources       []*source.SourceDef      `json:"sources"`
}

func main() {
	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			for i := 8; i > 3; i-- {
				chk.CallerInfo(i)
			}
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	acePath := flag.String("ace", "", "path to an ACE cross-section table (ASCII framing)")
	objectsPath := flag.String("objects", "", "path to a JSON object stream")
	verbose := flag.Bool("verbose", true, "print the environment setup trace")
	queryPos := flag.String("query-pos", "", "position \"x,y,z\" for an optional point-location query")
	queryDir := flag.String("query-dir", "0,0,1", "direction \"x,y,z\" for the point-location query")
	flag.Parse()

	io.PfWhite("\nHelios -- a Monte Carlo neutron transport core\n\n")

	if *acePath == "" || *objectsPath == "" {
		chk.Panic("both -ace and -objects are required")
	}

	table, err := ace.ReadASCII(*acePath)
	if err != nil {
		chk.Panic("failed to read ACE table: %v", err)
	}
	io.Pf("loaded ACE table %q: %d blocks, %d XSS words\n", table.Header.ZAID, len(table.Blocks), table.NXS0())

	buf, err := io.ReadFile(*objectsPath)
	if err != nil {
		chk.Panic("failed to read object stream: %v", err)
	}
	var in inputFile
	if err := json.Unmarshal(buf, &in); err != nil {
		chk.Panic("failed to decode object stream: %v", err)
	}

	e := env.New()
	e.Verbose = *verbose

	for _, o := range in.Settings {
		e.Push(o)
	}
	for _, o := range in.Distributions {
		e.Push(o)
	}
	for _, o := range in.Sources {
		e.Push(o)
	}
	for _, n := range in.Nuclides {
		e.Push(&material.NuclideDef{UserID: n.UserID, ZAID: n.ZAID, Table: table})
	}
	for _, o := range in.Materials {
		e.Push(o)
	}
	for _, o := range in.Surfaces {
		e.Push(o)
	}
	for _, o := range in.Universes {
		e.Push(o)
	}
	for _, o := range in.Lattices {
		e.Push(o)
	}
	for _, o := range in.Cells {
		e.Push(o)
	}

	if err := e.SetupAll(); err != nil {
		chk.Panic("environment setup failed: %v", err)
	}

	printSummary(e)

	if *queryPos != "" {
		runQuery(e, parseVec3(*queryPos), parseVec3(*queryDir))
	}
}

func printSummary(e *env.Environment) {
	io.Pf("\nenvironment summary:\n")
	if s, err := env.GetModule[*settings.Settings](e, settings.Name); err == nil {
		io.Pf("  settings: surface_tolerance=%g nudge_distance=%g\n", s.SurfaceTolerance, s.NudgeDistance)
	} else {
		io.Pf("  settings: (defaults, module unused)\n")
	}
	if g, err := env.GetModule[*geom.Geometry](e, geom.Name); err == nil {
		io.Pf("  geometry: module %q set up\n", g.Name())
	}
	if _, err := env.GetModule[*material.Index](e, material.Name); err == nil {
		io.Pf("  materials: module set up\n")
	}
	if _, err := env.GetModule[*source.Index](e, source.Name); err == nil {
		io.Pf("  source: module set up\n")
	}
}

// runQuery builds a Navigator over the set-up geometry, using the
// settings module's tolerances when staged (the settings package's
// defaults otherwise), and reports which cell (and nested universe/lattice
// stack) contains pos when travelling along dir. This is the "point
// queries" surface this driver exercises in place of a transport loop.
func runQuery(e *env.Environment, pos, dir geom.Vec3) {
	g, err := env.GetModule[*geom.Geometry](e, geom.Name)
	if err != nil {
		chk.Panic("-query-pos given but no geometry module was set up: %v", err)
	}
	surfTol, nudge := settings.DefaultSurfaceTolerance, settings.DefaultNudgeDistance
	if s, err := env.GetModule[*settings.Settings](e, settings.Name); err == nil {
		surfTol, nudge = s.SurfaceTolerance, s.NudgeDistance
	}
	nav := geom.NewNavigator(g, surfTol, nudge)
	st, err := nav.Locate(pos, dir)
	if err != nil {
		chk.Panic("point-location query failed: %v", err)
	}
	io.Pf("\npoint-location query at %v, direction %v:\n", pos, dir)
	for level, f := range st.Frames {
		io.Pf("  level %d: cell %q\n", level, f.Cell.UserID)
	}
	if dist, surfaceID, level, ok := nav.DistanceToNext(st); ok {
		io.Pf("  distance to next boundary: %g (surface id %d, level %d)\n", dist, surfaceID, level)
	} else {
		io.Pf("  no boundary found along this direction\n")
	}
}
