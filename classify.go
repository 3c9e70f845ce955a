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

	"seehuhn.de/go/raycast/graph"
)

// edgeClass describes the position of an edge relative to the line.
type edgeClass int

const (
	// crossesRay edges may intersect the line and need root finding.
	crossesRay edgeClass = iota

	// wrongSide edges have all defining points on the same side of the
	// line, so the curve cannot reach it.
	wrongSide

	// collinear edges lie on the line, up to the small distance.
	collinear
)

func (c edgeClass) String() string {
	switch c {
	case crossesRay:
		return "CrossesRay"
	case wrongSide:
		return "WrongSide"
	case collinear:
		return "Collinear"
	default:
		return "edgeClass(?)"
	}
}

// classifyCurve decides how the curve c relates to the line k.
//
// A point lying exactly on the line counts as being on the positive
// side.  This way an edge which only touches the line with an end point
// is skipped, and the vertex is found on the adjacent edge instead.
func classifyCurve(c graph.Curve, k coeffs, smallDistance float64) edgeClass {
	pts := c.Points()

	var d [4]float64
	isCollinear := true
	for i, p := range pts {
		d[i] = k.dist(p)
		if math.Abs(d[i]) >= smallDistance {
			isCollinear = false
		}
	}
	if isCollinear {
		return collinear
	}

	var sum float64
	for _, di := range d {
		if di < 0 {
			sum--
		} else {
			sum++
		}
	}
	if math.Abs(sum) > 4-sideSumTolerance {
		return wrongSide
	}
	return crossesRay
}
