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

const (
	// tangentTolerance is the relative size of the normal component of
	// the tangent below which a mid-edge collision is a touching point.
	tangentTolerance = 1e-6

	// sideStepT is the parameter offset used to find the sides of the
	// line on which a touching curve lies.
	sideStepT = 1e-3
)

// FillRule decides which points are inside a path.
type FillRule int

const (
	// NonZero counts a point as inside if the path winds around it a
	// non-zero number of times.
	NonZero FillRule = iota

	// EvenOdd counts a point as inside if a ray from the point crosses
	// the path an odd number of times.
	EvenOdd
)

func (r FillRule) String() string {
	switch r {
	case NonZero:
		return "NonZero"
	case EvenOdd:
		return "EvenOdd"
	default:
		return "FillRule(?)"
	}
}

// Contains reports whether the point p is inside the graph path g,
// using the given fill rule.  The result for points on the boundary of
// the path is unspecified.
func Contains(g Graph, p vec.Vec2, rule FillRule) (bool, error) {
	return NewCaster().Contains(g, p, rule)
}

// Contains reports whether the point p is inside the graph path g.
// See [Contains].
func (c *Caster) Contains(g Graph, p vec.Vec2, rule FillRule) (bool, error) {
	n, err := c.Winding(g, p)
	if err != nil {
		return false, err
	}
	return rule.inside(n), nil
}

// Winding returns the winding number of the graph path g around the
// point p.  Paths going around p counter-clockwise, in a coordinate
// system where the y-axis points up, count positive.
func (c *Caster) Winding(g Graph, p vec.Vec2) (int, error) {
	r := Ray{From: p, To: p.Add(vec.Vec2{X: 1})}
	hits, err := c.Collisions(g, r)
	if err != nil {
		return 0, err
	}
	k := lineCoeffs(r)

	// Only crossings to the right of p are counted.
	n := 0
	for _, h := range hits {
		if h.LineT <= 0 {
			continue
		}
		n += c.crossingDirection(g, h, k)
	}
	return n, nil
}

// crossingDirection returns +1 if the path crosses the line from the
// positive to the negative side at h, and -1 if it crosses the other
// way.  For the horizontal rays used by Winding, +1 means the path moves
// up.  The result is 0 if the path touches the line at h without
// changing sides.
func (c *Caster) crossingDirection(g Graph, h Collision, k coeffs) int {
	curve := g.Edge(h.Edge)

	var d float64
	if h.CurveT <= 0 {
		// At a vertex, the direction is given by the side on which the
		// path leaves.  Glancing vertices have already been removed.
		for _, q := range []vec.Vec2{curve.P1, curve.P2, curve.P3} {
			if d = k.dist(q); math.Abs(d) >= c.smallDistance() {
				break
			}
		}
	} else {
		tan := curve.Tangent(h.CurveT)
		d = k.a*tan.X + k.b*tan.Y
		if math.Abs(d) <= tangentTolerance*tan.Length() {
			// The curve is tangent to the line, so compare the sides
			// just before and just after the hit.
			before := k.dist(curve.Eval(max(h.CurveT-sideStepT, 0)))
			after := k.dist(curve.Eval(min(h.CurveT+sideStepT, 1)))
			if (before < 0) == (after < 0) {
				return 0
			}
			d = after
		}
	}

	if d < 0 {
		return 1
	}
	return -1
}
