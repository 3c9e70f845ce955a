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
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

var basicCases = []TestCase{
	{
		Name: "rectangle_horizontal",
		Path: rectangle(10, 10, 44, 44),
		From: pt(0, 20),
		To:   pt(1, 20),
		Want: []vec.Vec2{pt(10, 20), pt(44, 20)},
	},
	{
		Name: "rectangle_vertical",
		Path: rectangle(10, 10, 44, 44),
		From: pt(30, 0),
		To:   pt(30, 1),
		Want: []vec.Vec2{pt(30, 10), pt(30, 44)},
	},
	{
		Name: "rectangle_reversed_ray",
		Path: rectangle(10, 10, 44, 44),
		From: pt(0, 20),
		To:   pt(-1, 20),
		Want: []vec.Vec2{pt(44, 20), pt(10, 20)},
	},
	{
		Name: "rectangle_miss",
		Path: rectangle(10, 10, 44, 44),
		From: pt(0, 50),
		To:   pt(1, 50),
	},
	{
		Name: "triangle",
		Path: triangle(10, 50, 32, 10, 54, 50),
		From: pt(0, 30),
		To:   pt(1, 30),
		Want: []vec.Vec2{pt(21, 30), pt(43, 30)},
	},
	{
		Name: "star",
		Path: polygon(starPoints(32, 32, 25)...),
		From: pt(0, 32),
		To:   pt(1, 32),
		Want: polygonCrossings(starPoints(32, 32, 25), 32),
	},
}

// rectangle builds a rectangular path.
func rectangle(x1, y1, x2, y2 float64) *path.Data {
	return polygon(pt(x1, y1), pt(x2, y1), pt(x2, y2), pt(x1, y2))
}

// triangle builds a triangular path.
func triangle(x1, y1, x2, y2, x3, y3 float64) *path.Data {
	return polygon(pt(x1, y1), pt(x2, y2), pt(x3, y3))
}

// starPoints returns the corners of a five-pointed star, in drawing
// order.  The path through these points intersects itself.
func starPoints(cx, cy, r float64) []vec.Vec2 {
	pts := make([]vec.Vec2, 5)
	for i := range 5 {
		angle := float64(i)*2*math.Pi/5 - math.Pi/2
		pts[i] = pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle))
	}

	// connect every second point: 0 -> 2 -> 4 -> 1 -> 3 -> 0
	order := []int{0, 2, 4, 1, 3}
	res := make([]vec.Vec2, len(order))
	for i, j := range order {
		res[i] = pts[j]
	}
	return res
}
