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
	"slices"

	"seehuhn.de/go/raycast/graph"
)

// removeCollisionsNearCollinear drops crossings close to a vertex which
// is part of a collinear run.  These crossings are already reported by
// collinearCollisions.
func (q *query) removeCollisionsNearCollinear(raw []rawCollision) []rawCollision {
	return slices.DeleteFunc(raw, func(h rawCollision) bool {
		if h.curveT > 1-nearEndT {
			end := q.g.EdgeEndPointIdx(h.edge)
			if q.near(h.pos, q.g.PointPosition(end)) && q.anyCollinear(q.g.EdgesForPoint(end)) {
				return true
			}
		}
		if h.curveT < nearEndT {
			start := q.g.EdgeStartPointIdx(h.edge)
			if q.near(h.pos, q.g.PointPosition(start)) && q.anyCollinear(q.g.ReverseEdgesForPoint(start)) {
				return true
			}
		}
		return false
	})
}

// moveEndsToStart rewrites collisions at the end of an edge as
// collisions at the start of the following edge, and snaps collisions
// very close to the start of an edge to t = 0.
func (q *query) moveEndsToStart(raw []rawCollision) []rawCollision {
	for i, h := range raw {
		switch {
		case h.curveT > endT:
			end := q.g.EdgeEndPointIdx(h.edge)
			pos := q.g.PointPosition(end)
			if !q.near(h.pos, pos) {
				continue
			}
			next, _ := q.g.NextEdge(h.edge)
			raw[i] = rawCollision{edge: next, curveT: 0, lineT: q.l.PosForPoint(pos), pos: pos}
		case h.curveT < startT:
			pos := q.g.PointPosition(q.g.EdgeStartPointIdx(h.edge))
			if !q.near(h.pos, pos) {
				continue
			}
			raw[i] = rawCollision{edge: h.edge, curveT: 0, lineT: q.l.PosForPoint(pos), pos: pos}
		}
	}
	return raw
}

// moveCollinearToEnd moves collisions on collinear edges forward along
// the path, to the start of the first edge which is not collinear.
// Collisions where no such edge exists are dropped.
func (q *query) moveCollinearToEnd(raw []rawCollision) []rawCollision {
	out := raw[:0]
	for _, h := range raw {
		c := q.g.Edge(h.edge)
		if !q.isCollinear(c) {
			out = append(out, h)
			continue
		}

		ref, next, ok := q.skipCollinear(h.edge, c)
		if !ok {
			Logger().Warn("dropping collision on collinear loop", "edge", h.edge)
			continue
		}
		out = append(out, rawCollision{
			edge:   ref,
			curveT: 0,
			lineT:  q.l.PosForPoint(next.P0),
			pos:    next.P0,
		})
	}
	return out
}

// removeGlancing drops collisions at vertices where the path touches the
// line without crossing it.
//
// This is decided by the control points either side of the vertex: if
// the path arrives and leaves on the same side of the line, the vertex
// is a glancing contact.
func (q *query) removeGlancing(raw []rawCollision) ([]rawCollision, error) {
	var err error
	raw = slices.DeleteFunc(raw, func(h rawCollision) bool {
		if err != nil || h.curveT > 0 {
			return false
		}

		prev, ok := q.previousEdge(h.edge)
		if !ok {
			err = &MissingPredecessorError{Edge: h.edge}
			return false
		}

		cpIn := q.g.Edge(prev).P2
		cpOut := q.g.Edge(h.edge).P1
		return q.k.side(cpIn, sideTolerance) == q.k.side(cpOut, sideTolerance)
	})
	if err != nil {
		return nil, err
	}
	return raw, nil
}

// previousEdge finds the edge which leads into ref along the path.
func (q *query) previousEdge(ref graph.EdgeRef) (graph.EdgeRef, bool) {
	start := q.g.EdgeStartPointIdx(ref)
	for rev := range q.g.ReverseEdgesForPoint(start) {
		incoming := rev.Reversed()
		if q.g.EdgeFollowingEdgeIdx(incoming) == ref.Edge {
			return incoming, true
		}
	}
	return graph.EdgeRef{}, false
}

// removeDuplicates keeps only the first collision at the start of each
// edge.  Several stages can report the same vertex crossing.
func (q *query) removeDuplicates(raw []rawCollision) []rawCollision {
	n := q.g.NumPoints()
	if cap(q.visited) < n {
		q.visited = slices.Grow(q.visited[:cap(q.visited)], n-cap(q.visited))
	}
	q.visited = q.visited[:n]
	for i := range q.visited {
		q.visited[i] = q.visited[i][:0]
	}

	return slices.DeleteFunc(raw, func(h rawCollision) bool {
		if h.curveT > 0 {
			return false
		}
		start := q.g.EdgeStartPointIdx(h.edge)
		if slices.Contains(q.visited[start], h.edge.Edge) {
			return true
		}
		q.visited[start] = append(q.visited[start], h.edge.Edge)
		return false
	})
}
