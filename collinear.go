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
	"seehuhn.de/go/raycast/graph"
)

// collinearCollisions appends one collision for every edge which leaves
// a run of collinear edges on the opposite side of the line from where
// the path entered the run.
//
// Collinear edges have zero width as seen from the line, so they cannot
// be crossed themselves.  Instead, the crossing is reported at the start
// of the edge leaving the run.
func (q *query) collinearCollisions(dst []rawCollision) []rawCollision {
	q.findCollinearRuns()

	for _, run := range q.sections {
		if len(run) == 0 {
			continue // merged into another run
		}

		q.crossing = q.crossingEdges(q.crossing[:0], run)
		for _, ref := range q.crossing {
			pos := q.g.PointPosition(q.g.EdgeStartPointIdx(ref))
			dst = append(dst, rawCollision{
				edge:   ref,
				curveT: 0,
				lineT:  q.l.PosForPoint(pos),
				pos:    pos,
			})
		}
	}
	return dst
}

// findCollinearRuns groups the end points of all collinear edges into
// connected runs.  The result is stored in q.sections, where merged runs
// are left empty.
func (q *query) findCollinearRuns() {
	n := q.g.NumPoints()
	if cap(q.sectionOf) < n {
		q.sectionOf = make([]int, n)
	}
	q.sectionOf = q.sectionOf[:n]
	for i := range q.sectionOf {
		q.sectionOf[i] = -1
	}
	q.sections = q.sections[:0]

	for i := range n {
		for ref := range q.g.EdgesForPoint(i) {
			if q.classifyEdge(ref) != collinear {
				continue
			}
			q.joinRun(q.g.EdgeStartPointIdx(ref), q.g.EdgeEndPointIdx(ref))
		}
	}
}

// joinRun records that points a and b are connected by a collinear edge.
func (q *query) joinRun(a, b int) {
	sa, sb := q.sectionOf[a], q.sectionOf[b]
	switch {
	case sa < 0 && sb < 0:
		idx := q.newRun()
		q.sections[idx] = append(q.sections[idx], a)
		q.sectionOf[a] = idx
		if b != a {
			q.sections[idx] = append(q.sections[idx], b)
			q.sectionOf[b] = idx
		}
	case sb < 0:
		q.sections[sa] = append(q.sections[sa], b)
		q.sectionOf[b] = sa
	case sa < 0:
		q.sections[sb] = append(q.sections[sb], a)
		q.sectionOf[a] = sb
	case sa != sb:
		// the edge joins two runs
		for _, p := range q.sections[sb] {
			q.sectionOf[p] = sa
		}
		q.sections[sa] = append(q.sections[sa], q.sections[sb]...)
		q.sections[sb] = q.sections[sb][:0]
	}
}

// newRun appends an empty run to q.sections and returns its index.
func (q *query) newRun() int {
	idx := len(q.sections)
	if idx < cap(q.sections) {
		q.sections = q.sections[:idx+1]
		q.sections[idx] = q.sections[idx][:0]
	} else {
		q.sections = append(q.sections, nil)
	}
	return idx
}

// crossingEdges appends to dst the edges by which the path leaves the
// given run of collinear points, where the path continues on the other
// side of the line.
func (q *query) crossingEdges(dst []graph.EdgeRef, run []int) []graph.EdgeRef {
	for _, p := range run {
		for rev := range q.g.ReverseEdgesForPoint(p) {
			incoming := rev.Reversed()
			in := q.g.Edge(incoming)
			if q.isCollinear(in) {
				continue
			}

			leaving, out := q.g.NextEdge(incoming)
			leaving, out, ok := q.skipCollinear(leaving, out)
			if !ok {
				continue // the whole loop lies on the line
			}

			// The path crosses the line if it arrives on one side and
			// leaves on the other.
			sideIn := q.k.dist(in.P2)
			sideOut := q.k.dist(out.P1)
			if sideIn*sideOut < 0 {
				dst = append(dst, leaving)
			}
		}
	}
	return dst
}
