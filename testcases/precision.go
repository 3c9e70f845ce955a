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

// precisionCases check shapes at unusual scales and positions.
var precisionCases = []TestCase{
	{
		Name: "subpixel_offset",
		Path: rectangle(20.25, 20.25, 44.25, 44.25),
		From: pt(0, 30),
		To:   pt(1, 30),
		Want: []vec.Vec2{pt(20.25, 30), pt(44.25, 30)},
	},
	{
		Name: "large_offset",
		Path: rectangle(10000, 10000, 10002, 10002),
		From: pt(0, 10001),
		To:   pt(1, 10001),
		Want: []vec.Vec2{pt(10000, 10001), pt(10002, 10001)},
	},
	{
		Name: "small_shape",
		Path: rectangle(0, 0, 0.01, 0.01),
		From: pt(0, 0.005),
		To:   pt(1, 0.005),
		Want: []vec.Vec2{pt(0, 0.005), pt(0.01, 0.005)},
	},
	{
		Name: "steep_ray",
		Path: rectangle(10, 10, 44, 44),
		From: pt(20, 0),
		To:   pt(20.001, 1),
		Want: []vec.Vec2{pt(20.01, 10), pt(20.044, 44)},
	},
}
