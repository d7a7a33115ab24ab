// Copyright 2026 The Helios Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package material

// Component is one nuclide's share of a material's composition: an
// atomic fraction a_i combined with the material's own number density
// N in the macroscopic cross-section sum.
type Component struct {
	Nuclide        *Nuclide
	AtomicFraction float64
}

// Material is a number density paired with a composition of nuclides.
// It does not pre-union its nuclides' energy grids; each component is
// looked up independently at query time (spec.md §4.F).
type Material struct {
	UserID        string
	NumberDensity float64
	Composition   []Component
}

// MacroscopicXS computes Σ_r(E) = N · Σᵢ aᵢ · σ_{r,i}(E) for the named
// ESZ reaction, summing each component's independently interpolated
// microscopic cross-section.
func (m *Material) MacroscopicXS(reaction string, energy float64) (float64, error) {
	var sum float64
	for _, c := range m.Composition {
		sigma, err := c.Nuclide.XS(reaction, energy)
		if err != nil {
			return 0, err
		}
		sum += c.AtomicFraction * sigma
	}
	return m.NumberDensity * sum, nil
}

// MacroscopicXSByMT is MacroscopicXS evaluated against each
// component's SIG block for the given MT reaction number instead of a
// named ESZ reaction.
func (m *Material) MacroscopicXSByMT(mt int, energy float64) (float64, error) {
	var sum float64
	for _, c := range m.Composition {
		sigma, err := c.Nuclide.XSByMT(mt, energy)
		if err != nil {
			return 0, err
		}
		sum += c.AtomicFraction * sigma
	}
	return m.NumberDensity * sum, nil
}
