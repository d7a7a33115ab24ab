// Copyright 2026 The Helios Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import "math"

// Axis identifies one of the three coordinate axes, used by the
// axis-aligned surface kinds.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// Sense is the sign of a surface's scalar function at a point: Plus for
// f>0, Minus for f<0. The surface itself (f=0) has no sense.
type Sense int8

const (
	Minus Sense = -1
	Plus  Sense = +1
)

// Kind discriminates the surface's implicit-function family. Kept as a
// sum type with kind-specific coefficient storage per the design note on
// avoiding virtual-call overhead on the hot path: Function/Normal/
// Intersect dispatch on Kind with a switch rather than through an
// interface vtable.
type Kind int

const (
	KindPlaneOnAxis Kind = iota
	KindPlane
	KindCylinderOnAxis
	KindGeneralCylinder // non-axis-aligned cylinder, stored as a general quadric
	KindSphere
	KindQuadric
)

// Tag is the stable external name used in input text, e.g. "px", "c/z".
type Tag string

const (
	TagPlaneX        Tag = "px"
	TagPlaneY        Tag = "py"
	TagPlaneZ        Tag = "pz"
	TagPlaneGeneral  Tag = "p"
	TagCylinderX     Tag = "c/x"
	TagCylinderY     Tag = "c/y"
	TagCylinderZ     Tag = "c/z"
	TagSphereOrigin  Tag = "so"
	TagSphereGeneral Tag = "s"
	TagQuadric       Tag = "sq"
)

// Surface is one quadric (or linear) boundary. Coefficients are stored
// inline per-kind; unused fields for a given Kind are zero.
type Surface struct {
	UserID     string
	InternalID int
	Reflective bool
	Vacuum     bool
	Kind       Kind
	Tag        Tag

	Axis Axis    // PlaneOnAxis, CylinderOnAxis
	D0   float64 // PlaneOnAxis offset; also used as the plane's general d0

	Normal0 Vec3 // Plane: outward unit(ish) normal n

	Center Vec3    // CylinderOnAxis (only the two non-axis components are meaningful), Sphere
	Radius float64 // CylinderOnAxis, Sphere

	// General quadric: a x^2 + b y^2 + c z^2 + 2(d xy + e yz + f zx) + 2(g x + h y + i z) + j
	Quad [10]float64 // a,b,c,d,e,f,g,h,i,j in that order
}

// Function evaluates the implicit scalar f(p); sign(f(p)) classifies
// the half-space containing p.
func (s *Surface) Function(p Vec3) float64 {
	switch s.Kind {
	case KindPlaneOnAxis:
		return p[s.Axis] - s.D0
	case KindPlane:
		return s.Normal0.Dot(p) - s.D0
	case KindCylinderOnAxis:
		return s.cylinderRadial(p) - s.Radius*s.Radius
	case KindSphere:
		d := p.Sub(s.Center)
		return d.Dot(d) - s.Radius*s.Radius
	case KindGeneralCylinder, KindQuadric:
		return s.quadFunction(p)
	}
	return math.NaN()
}

// cylinderRadial returns Σ_{i≠axis}(p_i − c_i)^2 for a cylinder-on-axis.
func (s *Surface) cylinderRadial(p Vec3) float64 {
	sum := 0.0
	for i := 0; i < 3; i++ {
		if Axis(i) == s.Axis {
			continue
		}
		d := p[i] - s.Center[i]
		sum += d * d
	}
	return sum
}

func (s *Surface) quadFunction(p Vec3) float64 {
	a, b, c, d, e, f, g, h, i, j := s.Quad[0], s.Quad[1], s.Quad[2], s.Quad[3], s.Quad[4], s.Quad[5], s.Quad[6], s.Quad[7], s.Quad[8], s.Quad[9]
	x, y, z := p[0], p[1], p[2]
	return a*x*x + b*y*y + c*z*z + 2*(d*x*y+e*y*z+f*z*x) + 2*(g*x+h*y+i*z) + j
}

// Normal returns the outward gradient at p. Not necessarily unit length
// for every kind: cylinder and sphere divide by radius and so are unit;
// planes return the stored normal directly. The navigator treats only
// the sign of Function as load-bearing — Normal is used solely for
// reflection and reporting.
func (s *Surface) Normal(p Vec3) Vec3 {
	switch s.Kind {
	case KindPlaneOnAxis:
		n := Vec3{}
		n[s.Axis] = 1
		return n
	case KindPlane:
		return s.Normal0
	case KindCylinderOnAxis:
		n := Vec3{}
		for i := 0; i < 3; i++ {
			if Axis(i) == s.Axis {
				continue
			}
			n[i] = (p[i] - s.Center[i]) / s.Radius
		}
		return n
	case KindSphere:
		return p.Sub(s.Center).Scale(1 / s.Radius)
	case KindGeneralCylinder, KindQuadric:
		a, b, c, d, e, f, g, h, i := s.Quad[0], s.Quad[1], s.Quad[2], s.Quad[3], s.Quad[4], s.Quad[5], s.Quad[6], s.Quad[7], s.Quad[8]
		x, y, z := p[0], p[1], p[2]
		return Vec3{
			2*a*x + 2*d*y + 2*f*z + 2*g,
			2*b*y + 2*d*x + 2*e*z + 2*h,
			2*c*z + 2*e*y + 2*f*x + 2*i,
		}
	}
	return Vec3{}
}

// Translated returns a clone of s translated by t, sharing user id and
// flags. Implements the kind-specific `transformate` operation.
func (s *Surface) Translated(t Vec3) *Surface {
	clone := *s
	switch s.Kind {
	case KindPlaneOnAxis:
		clone.D0 = s.D0 + t[s.Axis]
	case KindPlane:
		clone.D0 = s.D0 + s.Normal0.Dot(t)
	case KindCylinderOnAxis, KindSphere:
		clone.Center = s.Center.Add(t)
	case KindGeneralCylinder, KindQuadric:
		clone.Quad = translateQuad(s.Quad, t)
	}
	return &clone
}

// translateQuad substitutes p -> p - t into the general quadric form and
// returns the new coefficients; a,b,c,d,e,f are invariant under
// translation, only the linear and constant terms change.
func translateQuad(q [10]float64, t Vec3) [10]float64 {
	a, b, c, d, e, f, g, h, i, j := q[0], q[1], q[2], q[3], q[4], q[5], q[6], q[7], q[8], q[9]
	tx, ty, tz := t[0], t[1], t[2]
	ng := g - a*tx - d*ty - f*tz
	nh := h - b*ty - d*tx - e*tz
	ni := i - c*tz - e*ty - f*tx
	nj := j + a*tx*tx + b*ty*ty + c*tz*tz + 2*(d*tx*ty+e*ty*tz+f*tz*tx) - 2*(g*tx+h*ty+i*tz)
	return [10]float64{a, b, c, d, e, f, ng, nh, ni, nj}
}
