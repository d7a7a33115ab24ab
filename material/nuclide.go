// Copyright 2026 The Helios Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package material implements the material/nuclide index (spec.md
// §4.F): per-nuclide log-linear cross-section interpolation and the
// pointwise macroscopic cross-section sum a material composition
// produces.
package material

import (
	"math"
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/num"
	"github.com/cpmech/helios/ace"
)

// Nuclide wraps one parsed ACE table, exposing its energy-dependent
// reaction cross-sections by name or MT number. A nuclide does not
// pre-union its grid with any other nuclide's; each is looked up
// independently (spec.md §4.F).
type Nuclide struct {
	ZAID  string
	Table *ace.Table

	esz *ace.ESZ
	nu  *ace.NU
	sig []*ace.SIG
}

// NewNuclide indexes a parsed ACE table's blocks by type. A table with
// no ESZ block cannot answer XS or XSByMT queries (a SIG block's values
// are tabulated on a sub-grid of the ESZ energy grid), but ESZ absence
// is not itself an error here; it only surfaces as a failure when a
// query actually needs it.
func NewNuclide(zaid string, t *ace.Table) *Nuclide {
	n := &Nuclide{ZAID: zaid, Table: t}
	for _, b := range t.Blocks {
		switch blk := b.(type) {
		case *ace.ESZ:
			n.esz = blk
		case *ace.NU:
			n.nu = blk
		case *ace.SIG:
			n.sig = append(n.sig, blk)
		}
	}
	return n
}

// reaction names resolved against the ESZ block's parallel arrays.
const (
	ReactionTotal      = "total"
	ReactionAbsorption = "absorption"
	ReactionElastic    = "elastic"
	ReactionHeating    = "heating"
)

// XS returns the log-linearly interpolated microscopic cross-section
// for one of the named ESZ reactions at the given incident energy.
func (n *Nuclide) XS(reaction string, energy float64) (float64, error) {
	if n.esz == nil {
		return 0, chk.Err("material: nuclide %q has no ESZ block", n.ZAID)
	}
	var y []float64
	switch reaction {
	case ReactionTotal:
		y = n.esz.Total
	case ReactionAbsorption:
		y = n.esz.Absorption
	case ReactionElastic:
		y = n.esz.Elastic
	case ReactionHeating:
		y = n.esz.Heating
	default:
		return 0, chk.Err("material: nuclide %q: unknown reaction %q", n.ZAID, reaction)
	}
	return logLinear(n.esz.Energy, y, energy)
}

// XSByMT returns the interpolated cross-section from the SIG block
// tagged with the given MT reaction number, evaluated against the
// sub-grid of the main ESZ energy grid starting at the SIG block's own
// IE offset (spec.md §4.E's SIG schema: MT, IE, L, values).
func (n *Nuclide) XSByMT(mt int, energy float64) (float64, error) {
	if n.esz == nil {
		return 0, chk.Err("material: nuclide %q has no ESZ block", n.ZAID)
	}
	for _, s := range n.sig {
		if s.MT != mt {
			continue
		}
		if s.IE < 0 || s.IE+len(s.Values) > len(n.esz.Energy) {
			return 0, chk.Err("material: nuclide %q: SIG MT=%d IE offset out of range of ESZ energy grid", n.ZAID, mt)
		}
		grid := n.esz.Energy[s.IE : s.IE+len(s.Values)]
		return logLinear(grid, s.Values, energy)
	}
	return 0, chk.Err("material: nuclide %q has no SIG block for MT=%d", n.ZAID, mt)
}

// Nu returns the interpolated average neutrons-per-fission yield.
func (n *Nuclide) Nu(energy float64) (float64, error) {
	if n.nu == nil {
		return 0, chk.Err("material: nuclide %q has no NU block", n.ZAID)
	}
	return logLinear(n.nu.Energy, n.nu.Yield, energy)
}

// logLinear interpolates y against ln(x): linear in y, logarithmic in
// x, between the two tabulated points bracketing xq (spec.md §4.F,
// "interpolation on a nuclide's energy grid is log-linear"). Queries
// outside [x[0], x[len-1]] clamp to the nearest endpoint rather than
// extrapolating or erroring, matching how a bounded cross-section table
// is conventionally read.
func logLinear(x, y []float64, xq float64) (float64, error) {
	if len(x) == 0 || len(x) != len(y) {
		return 0, chk.Err("material: interpolation grid malformed: len(x)=%d len(y)=%d", len(x), len(y))
	}
	if len(x) == 1 || xq <= x[0] {
		return y[0], nil
	}
	if xq >= x[len(x)-1] {
		return y[len(y)-1], nil
	}
	hi := sort.Search(len(x), func(i int) bool { return x[i] >= xq })
	if hi == 0 {
		hi = 1
	}
	lo := hi - 1
	x0, x1 := x[lo], x[hi]
	if x1-x0 < num.EPS || x0 <= 0 || x1 <= 0 {
		return y[lo], nil
	}
	t := (math.Log(xq) - math.Log(x0)) / (math.Log(x1) - math.Log(x0))
	return y[lo] + t*(y[hi]-y[lo]), nil
}
