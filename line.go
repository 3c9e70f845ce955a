// seehuhn.de/go/raycast - ray collisions for graph paths
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package raycast

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// Line is an infinite straight line.
type Line interface {
	// Coefficients returns a, b and c such that a*x + b*y + c = 0 for
	// all points (x, y) on the line.  For the tolerances used by this
	// package to be distances, a² + b² should be 1.
	Coefficients() (a, b, c float64)

	// PosForPoint returns the position of a point along the line.
	// The point is assumed to lie on the line.
	PosForPoint(p vec.Vec2) float64
}

// Ray is the line through the points From and To.
//
// Positions along the ray are measured in units of the distance between
// From and To: From is at position 0 and To is at position 1.
type Ray struct {
	From, To vec.Vec2
}

var _ Line = Ray{}

// Coefficients implements the [Line] interface.
// The coefficients are normalised so that a² + b² = 1, unless From and
// To coincide, in which case all three coefficients are zero.
func (r Ray) Coefficients() (a, b, c float64) {
	a = r.To.Y - r.From.Y
	b = r.From.X - r.To.X
	l := math.Hypot(a, b)
	if l == 0 {
		return 0, 0, 0
	}
	a /= l
	b /= l
	c = -(a*r.From.X + b*r.From.Y)
	return a, b, c
}

// PosForPoint implements the [Line] interface.
func (r Ray) PosForPoint(p vec.Vec2) float64 {
	d := r.To.Sub(r.From)
	if math.Abs(d.X) > math.Abs(d.Y) {
		return (p.X - r.From.X) / d.X
	}
	return (p.Y - r.From.Y) / d.Y
}

// coeffs holds the implicit equation of a line.
type coeffs struct {
	a, b, c float64
}

func lineCoeffs(l Line) coeffs {
	a, b, c := l.Coefficients()
	return coeffs{a: a, b: b, c: c}
}

// dist returns the signed distance of p from the line.
func (k coeffs) dist(p vec.Vec2) float64 {
	return k.a*p.X + k.b*p.Y + k.c
}

// side returns -1, 0 or 1, depending on which side of the line p is.
// Points closer to the line than tol are on the line.
func (k coeffs) side(p vec.Vec2, tol float64) int {
	d := k.dist(p)
	switch {
	case math.Abs(d) < tol:
		return 0
	case d < 0:
		return -1
	default:
		return 1
	}
}

// valid reports whether the coefficients describe a line.
func (k coeffs) valid() bool {
	n := math.Hypot(k.a, k.b)
	return n > 0 && !math.IsNaN(n) && !math.IsInf(n, 0) && !math.IsNaN(k.c) && !math.IsInf(k.c, 0)
}
