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

package graph

import (
	"fmt"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// FromPath converts a path into a graph path.
//
// Every subpath becomes a closed loop.  Open subpaths are closed with a
// straight line, as they would be when filling.  Path points with
// identical coordinates are merged into a single graph point, so that
// subpaths which share a vertex meet at a branch point.  Quadratic
// segments are converted to cubic ones and zero-length segments are
// dropped.
func FromPath(p path.Path) (*Path, error) {
	g := &Path{}

	index := make(map[vec.Vec2]int)
	pointFor := func(v vec.Vec2) int {
		if i, ok := index[v]; ok {
			return i
		}
		i := g.AddPoint(v)
		index[v] = i
		return i
	}

	var loop []EdgeRef
	var start, current vec.Vec2
	open := false
	closeLoop := func() error {
		if !open {
			return nil
		}
		open = false
		if current != start {
			loop = append(loop, g.AddLine(pointFor(current), pointFor(start)))
		}
		current = start
		if len(loop) == 0 {
			return nil
		}
		err := g.Connect(loop...)
		loop = loop[:0]
		return err
	}

	for cmd, pts := range p.ToCubic() {
		switch cmd {
		case path.CmdMoveTo:
			if err := closeLoop(); err != nil {
				return nil, err
			}
			start, current = pts[0], pts[0]
			open = true

		case path.CmdLineTo:
			if !open {
				start, open = current, true
			}
			if pts[0] == current {
				continue
			}
			loop = append(loop, g.AddLine(pointFor(current), pointFor(pts[0])))
			current = pts[0]

		case path.CmdCubeTo:
			if !open {
				start, open = current, true
			}
			if pts[0] == current && pts[1] == current && pts[2] == current {
				continue
			}
			loop = append(loop, g.AddEdge(pointFor(current), pointFor(pts[2]), pts[0], pts[1]))
			current = pts[2]

		case path.CmdClose:
			if err := closeLoop(); err != nil {
				return nil, err
			}

		default:
			return nil, fmt.Errorf("graph: unsupported path command %v", cmd)
		}
	}
	if err := closeLoop(); err != nil {
		return nil, err
	}
	return g, nil
}
