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
package testcases

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

var curveCases = []TestCase{
	{
		// The ray passes through the vertices between quadrants.
		Name: "circle_horizontal",
		Path: circle(32, 32, 20),
		From: pt(0, 32),
		To:   pt(1, 32),
		Want: []vec.Vec2{pt(12, 32), pt(52, 32)},
	},
	{
		Name: "circle_vertical",
		Path: circle(32, 32, 20),
		From: pt(32, 0),
		To:   pt(32, 1),
		Want: []vec.Vec2{pt(32, 12), pt(32, 52)},
	},
	{
		// The ray is a tangent at a vertex of the circle.
		Name: "circle_tangent",
		Path: circle(32, 32, 20),
		From: pt(0, 12),
		To:   pt(1, 12),
	},
	{
		// The ray crosses a single curve twice, at t = 1/3 and t = 2/3.
		Name: "cubic_arch",
		Path: (&path.Data{}).
			MoveTo(pt(0, 0)).
			CubeTo(pt(0, 30), pt(30, 30), pt(30, 0)).
			Close(),
		From: pt(0, 20),
		To:   pt(1, 20),
		Want: []vec.Vec2{pt(70.0/9, 20), pt(200.0/9, 20)},
	},
	{
		// A quadratic segment, converted to a cubic edge.
		Name: "quadratic_arch",
		Path: (&path.Data{}).
			MoveTo(pt(0, 0)).
			QuadTo(pt(20, 40), pt(40, 0)).
			Close(),
		From: pt(0, 10),
		To:   pt(1, 10),
		Want: []vec.Vec2{pt(20-10*sqrt2, 10), pt(20+10*sqrt2, 10)},
	},
}

const sqrt2 = 1.4142135623730951

// circle builds an approximate circle using four cubic Bézier curves.
func circle(cx, cy, r float64) *path.Data {
	k := r * kappa

	return (&path.Data{}).
		MoveTo(pt(cx+r, cy)).                                 // start at right
		CubeTo(pt(cx+r, cy-k), pt(cx+k, cy-r), pt(cx, cy-r)). // top-right quadrant
		CubeTo(pt(cx-k, cy-r), pt(cx-r, cy-k), pt(cx-r, cy)). // top-left quadrant
		CubeTo(pt(cx-r, cy+k), pt(cx-k, cy+r), pt(cx, cy+r)). // bottom-left quadrant
		CubeTo(pt(cx+k, cy+r), pt(cx+r, cy+k), pt(cx+r, cy)). // bottom-right quadrant
		Close()
}
