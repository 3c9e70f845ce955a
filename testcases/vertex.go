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

// vertexCases have rays through vertices of the path.
var vertexCases = []TestCase{
	{
		// The ray touches the apex of the triangle without entering it.
		Name: "glancing_apex",
		Path: triangle(0, 10, 10, 0, 20, 10),
		From: pt(0, 0),
		To:   pt(1, 0),
	},
	{
		Name: "diamond",
		Path: diamond(32, 32, 20),
		From: pt(0, 32),
		To:   pt(1, 32),
		Want: []vec.Vec2{pt(12, 32), pt(52, 32)},
	},
	{
		Name: "rectangle_diagonal",
		Path: rectangle(10, 10, 44, 44),
		From: pt(0, 0),
		To:   pt(1, 1),
		Want: []vec.Vec2{pt(10, 10), pt(44, 44)},
	},
	{
		// The ray passes through the tip of a notch, which it only touches.
		Name: "notch",
		Path: polygon(pt(0, 0), pt(10, 10), pt(20, 0), pt(20, 20), pt(0, 20)),
		From: pt(0, 10),
		To:   pt(1, 10),
		Want: []vec.Vec2{pt(0, 10), pt(20, 10)},
	},
}

// diamond builds a square rotated by 45 degrees, with the given centre
// and distance from the centre to the corners.
func diamond(cx, cy, r float64) *path.Data {
	return polygon(pt(cx, cy-r), pt(cx+r, cy), pt(cx, cy+r), pt(cx-r, cy))
}
