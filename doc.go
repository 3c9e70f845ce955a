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

// Package raycast finds the intersections between a straight line and a
// graph path.
//
// The result of [RayCollisions] is the list of places where the line
// crosses from one side of the path to the other.  Touching the path
// without crossing it, running along a straight part of the path, and
// passing exactly through a vertex are all resolved, so that every
// crossing is reported exactly once.  Crossings are sorted by their
// position along the line, and coincident crossings are ordered by
// edge, so that the output is reproducible.
//
// The graph path is accessed through the read-only [Graph] interface,
// which is implemented by [seehuhn.de/go/raycast/graph.Path].
package raycast

//go:generate go run ./testcases/export
//go:generate go run ./testcases/genpdf
