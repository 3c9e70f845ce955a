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

	"honnef.co/go/curve"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/raycast/graph"
)

// rayHit is an intersection between a single curve and a line.
type rayHit struct {
	curveT float64  // parameter along the curve, in [0, 1]
	lineT  float64  // position along the line
	pos    vec.Vec2 // intersection point
}

// curveIntersectsRay appends the intersections between the curve c and
// the line l to dst.
//
// The signed distance from the line is a cubic polynomial in the curve
// parameter, and its roots in [0, 1] are the intersections.  Roots just
// outside the unit interval are clamped, so that hits at end points are
// not lost to rounding.
func curveIntersectsRay(dst []rayHit, c graph.Curve, l Line, k coeffs) []rayHit {
	d0 := k.dist(c.P0)
	d1 := k.dist(c.P1)
	d2 := k.dist(c.P2)
	d3 := k.dist(c.P3)

	// Bernstein to power basis: d(t) = c0 + c1 t + c2 t² + c3 t³
	c0 := d0
	c1 := 3 * (d1 - d0)
	c2 := 3 * (d0 - 2*d1 + d2)
	c3 := -d0 + 3*d1 - 3*d2 + d3

	scale := max(math.Abs(d0), math.Abs(d1), math.Abs(d2), math.Abs(d3))
	if scale == 0 {
		return dst
	}
	// Straight edges have vanishing higher order terms, up to rounding.
	if math.Abs(c3) < coeffEpsilon*scale {
		c3 = 0
		if math.Abs(c2) < coeffEpsilon*scale {
			c2 = 0
		}
	}

	roots, n := curve.SolveCubic(c0, c1, c2, c3)

	first := len(dst)
	for _, t := range roots[:n] {
		if math.IsNaN(t) || math.IsInf(t, 0) {
			continue
		}
		t = polishRoot(t, c0, c1, c2, c3)
		if t < -rootTolerance || t > 1+rootTolerance {
			continue
		}
		t = min(max(t, 0), 1)

		seen := false
		for _, h := range dst[first:] {
			if h.curveT == t {
				seen = true
				break
			}
		}
		if seen {
			continue
		}

		pos := c.Eval(t)
		dst = append(dst, rayHit{curveT: t, lineT: l.PosForPoint(pos), pos: pos})
	}
	return dst
}

// polishRoot improves a root of c0 + c1 t + c2 t² + c3 t³ using Newton
// steps.  A step is only accepted if it decreases the residual.
func polishRoot(t, c0, c1, c2, c3 float64) float64 {
	f := ((c3*t+c2)*t+c1)*t + c0
	for range 2 {
		df := (3*c3*t+2*c2)*t + c1
		if df == 0 || f == 0 {
			break
		}
		tNew := t - f/df
		fNew := ((c3*tNew+c2)*tNew+c1)*tNew + c0
		if math.Abs(fNew) >= math.Abs(f) {
			break
		}
		t, f = tNew, fNew
	}
	return t
}
