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

// Package testcases contains shapes and rays for testing ray collisions.
//
// The cases are shared between the unit tests, the JSON export and the
// PDF debug drawings.
package testcases

import (
	"cmp"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/raycast/graph"
)

// TestCase defines a single ray casting test.
type TestCase struct {
	Name string     // lowercase a-z and _ only
	Path *path.Data // the shape; shared vertices become branch points

	// From and To are two points on the ray.  Positions along the ray
	// are measured from From, in units of the distance to To.
	From, To vec.Vec2

	// Want lists the expected collision points, ordered along the ray.
	// A vertex where several loops cross the ray appears once per loop.
	Want []vec.Vec2
}

// Graph converts the shape of the test case into a graph path.
func (tc TestCase) Graph() (*graph.Path, error) {
	return graph.FromPath(tc.Path.Iter())
}

// kappa is the control point distance for approximating a quarter
// circle of radius 1 by a cubic Bézier curve.
const kappa = 0.5522847498307936

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// polygonCrossings returns the points where the closed polygon through
// pts crosses the horizontal line at y, ordered by x.  No vertex may lie
// on the line.
func polygonCrossings(pts []vec.Vec2, y float64) []vec.Vec2 {
	var res []vec.Vec2
	for i, a := range pts {
		b := pts[(i+1)%len(pts)]
		if (a.Y < y) == (b.Y < y) {
			continue
		}
		s := (y - a.Y) / (b.Y - a.Y)
		res = append(res, pt(a.X+s*(b.X-a.X), y))
	}
	slices.SortFunc(res, func(p, q vec.Vec2) int {
		return cmp.Compare(p.X, q.X)
	})
	return res
}

// polygon builds a closed path through the given points.
func polygon(pts ...vec.Vec2) *path.Data {
	p := (&path.Data{}).MoveTo(pts[0])
	for _, q := range pts[1:] {
		p = p.LineTo(q)
	}
	return p.Close()
}
