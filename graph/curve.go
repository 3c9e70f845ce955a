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

package graph

import "seehuhn.de/go/geom/vec"

// Curve is a cubic Bézier curve.
// P0 is the start point, P1 and P2 are the control points, P3 is the end point.
type Curve struct {
	P0, P1, P2, P3 vec.Vec2
}

// Line returns a straight cubic from a to b, with the control
// points at one and two thirds of the way.
func Line(a, b vec.Vec2) Curve {
	d := b.Sub(a)
	return Curve{
		P0: a,
		P1: a.Add(d.Mul(1.0 / 3.0)),
		P2: a.Add(d.Mul(2.0 / 3.0)),
		P3: b,
	}
}

// ControlPoints returns the two control points of the curve.
func (c Curve) ControlPoints() (vec.Vec2, vec.Vec2) {
	return c.P1, c.P2
}

// Points returns all four defining points, in order.
func (c Curve) Points() [4]vec.Vec2 {
	return [4]vec.Vec2{c.P0, c.P1, c.P2, c.P3}
}

// Reversed returns the same curve traversed from end to start.
func (c Curve) Reversed() Curve {
	return Curve{P0: c.P3, P1: c.P2, P2: c.P1, P3: c.P0}
}

// Eval returns the point at parameter t.
func (c Curve) Eval(t float64) vec.Vec2 {
	// B(t) = (1-t)³P0 + 3(1-t)²tP1 + 3(1-t)t²P2 + t³P3
	omt := 1 - t
	omt2 := omt * omt
	t2 := t * t
	return c.P0.Mul(omt2 * omt).
		Add(c.P1.Mul(3 * omt2 * t)).
		Add(c.P2.Mul(3 * omt * t2)).
		Add(c.P3.Mul(t2 * t))
}

// Tangent returns the direction of travel at parameter t.
//
// Where the derivative vanishes (a control point coinciding with an end
// point), the direction towards the next distinct defining point is
// returned instead.  The result is not normalised.
func (c Curve) Tangent(t float64) vec.Vec2 {
	omt := 1 - t
	d := c.P1.Sub(c.P0).Mul(3 * omt * omt).
		Add(c.P2.Sub(c.P1).Mul(6 * omt * t)).
		Add(c.P3.Sub(c.P2).Mul(3 * t * t))
	if d.Length() > 0 {
		return d
	}

	pts := c.Points()
	if t < 0.5 {
		for _, p := range pts[1:] {
			if d := p.Sub(c.P0); d.Length() > 0 {
				return d
			}
		}
	} else {
		for i := 2; i >= 0; i-- {
			if d := c.P3.Sub(pts[i]); d.Length() > 0 {
				return d
			}
		}
	}
	return vec.Vec2{}
}
