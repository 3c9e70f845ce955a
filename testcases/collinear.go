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
	"seehuhn.de/go/geom/vec"
)

// collinearCases have edges lying on the ray.
var collinearCases = []TestCase{
	{
		// The ray runs along the bottom edge and only touches the shape.
		Name: "rectangle_edge",
		Path: rectangle(0, 0, 10, 10),
		From: pt(0, 0),
		To:   pt(1, 0),
	},
	{
		// The ray runs along the inner edge of a step.
		Name: "concave_step",
		Path: polygon(pt(0, 0), pt(20, 0), pt(20, 10), pt(10, 10), pt(10, 20), pt(0, 20)),
		From: pt(0, 10),
		To:   pt(1, 10),
		Want: []vec.Vec2{pt(0, 10), pt(10, 10)},
	},
	{
		// The path arrives at the run and leaves on the same side.
		Name: "trapezoid_top",
		Path: polygon(pt(0, 0), pt(30, 0), pt(20, 10), pt(10, 10)),
		From: pt(0, 10),
		To:   pt(1, 10),
	},
	{
		// The run along the ray is found in two pieces, which need to be
		// merged.
		Name: "split_run",
		Path: polygon(pt(30, 10), pt(40, 10), pt(40, 20), pt(0, 20),
			pt(0, 0), pt(10, 0), pt(10, 10), pt(20, 10)),
		From: pt(0, 10),
		To:   pt(1, 10),
		Want: []vec.Vec2{pt(0, 10), pt(40, 10)},
	},
	{
		// A degenerate loop which lies entirely on the ray.
		Name: "collinear_loop",
		Path: polygon(pt(0, 0), pt(10, 0)).
			MoveTo(pt(20, -5)).LineTo(pt(30, -5)).LineTo(pt(30, 5)).LineTo(pt(20, 5)).Close(),
		From: pt(0, 0),
		To:   pt(1, 0),
		Want: []vec.Vec2{pt(20, 0), pt(30, 0)},
	},
}
