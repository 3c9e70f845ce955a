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

// overlapCases combine several loops which meet at shared vertices.
var overlapCases = []TestCase{
	{
		Name: "overlapping_squares",
		Path: overlappingSquares(),
		From: pt(0, 15),
		To:   pt(1, 15),
		Want: []vec.Vec2{pt(0, 15), pt(10, 15), pt(20, 15), pt(30, 15)},
	},
	{
		// Both branch points are on the ray.  Each loop crosses the ray
		// once at each branch point.
		Name: "overlapping_squares_branch_points",
		Path: overlappingSquares(),
		From: pt(20, 10),
		To:   pt(10, 20),
		Want: []vec.Vec2{pt(20, 10), pt(20, 10), pt(10, 20), pt(10, 20)},
	},
	{
		Name: "touching_diamonds",
		Path: diamond(10, 10, 10).
			MoveTo(pt(30, 0)).LineTo(pt(40, 10)).LineTo(pt(30, 20)).LineTo(pt(20, 10)).Close(),
		From: pt(0, 10),
		To:   pt(1, 10),
		Want: []vec.Vec2{pt(0, 10), pt(20, 10), pt(20, 10), pt(40, 10)},
	},
	{
		Name: "ring",
		Path: ringShape(20, 20, 40, 20),
		From: pt(0, 20),
		To:   pt(1, 20),
		Want: []vec.Vec2{pt(0, 20), pt(10, 20), pt(30, 20), pt(40, 20)},
	},
}

// overlappingSquares builds two squares which overlap in a quarter of
// their area.  The squares meet at the vertices (20, 10) and (10, 20),
// which are part of both loops.
func overlappingSquares() *path.Data {
	return polygon(pt(0, 0), pt(20, 0), pt(20, 10), pt(20, 20), pt(10, 20), pt(0, 20)).
		MoveTo(pt(10, 10)).LineTo(pt(20, 10)).LineTo(pt(30, 10)).
		LineTo(pt(30, 30)).LineTo(pt(10, 30)).LineTo(pt(10, 20)).Close()
}

// ringShape builds a square with a square hole.  The hole is drawn in
// the opposite direction.
func ringShape(cx, cy, outerSize, innerSize float64) *path.Data {
	o := outerSize / 2
	i := innerSize / 2
	return polygon(pt(cx-o, cy-o), pt(cx+o, cy-o), pt(cx+o, cy+o), pt(cx-o, cy+o)).
		MoveTo(pt(cx-i, cy-i)).LineTo(pt(cx-i, cy+i)).LineTo(pt(cx+i, cy+i)).LineTo(pt(cx+i, cy-i)).Close()
}
