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

// largeCases contain shapes with many edges.
var largeCases = []TestCase{
	{
		Name: "grid",
		Path: rectangleGrid(8, 8, 512, 512, 4),
		From: pt(0, 100),
		To:   pt(1, 100),
		Want: gridCrossings(8, 512, 4, 100),
	},
	{
		Name: "regular_polygon",
		Path: polygon(regularPolygon(256, 256, 200, 1000)...),
		From: pt(0, 256.5),
		To:   pt(1, 256.5),
		Want: polygonCrossings(regularPolygon(256, 256, 200, 1000), 256.5),
	},
}

// rectangleGrid builds a grid of rectangles.
func rectangleGrid(rows, cols, width, height int, gap float64) *path.Data {
	cellW := float64(width) / float64(cols)
	cellH := float64(height) / float64(rows)

	p := &path.Data{}
	for row := range rows {
		for col := range cols {
			x1 := float64(col)*cellW + gap
			y1 := float64(row)*cellH + gap
			x2 := float64(col+1)*cellW - gap
			y2 := float64(row+1)*cellH - gap

			p = p.
				MoveTo(pt(x1, y1)).
				LineTo(pt(x2, y1)).
				LineTo(pt(x2, y2)).
				LineTo(pt(x1, y2)).
				Close()
		}
	}

	return p
}

// gridCrossings returns where a horizontal line at y crosses the
// rectangles of a grid built by rectangleGrid.  The line must not
// pass through a gap between rows.
func gridCrossings(cols, width int, gap, y float64) []vec.Vec2 {
	cellW := float64(width) / float64(cols)
	var res []vec.Vec2
	for col := range cols {
		res = append(res,
			pt(float64(col)*cellW+gap, y),
			pt(float64(col+1)*cellW-gap, y))
	}
	return res
}

// regularPolygon returns the corners of a regular polygon with n sides.
func regularPolygon(cx, cy, r float64, n int) []vec.Vec2 {
	pts := make([]vec.Vec2, n)
	for i := range n {
		angle := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle))
	}
	return pts
}
