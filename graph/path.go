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

// Package graph implements graph paths: planar directed graphs whose
// edges are cubic Bézier curves.
//
// A point of a graph path can have more than one outgoing edge, which
// is how self-intersecting shapes and combinations of shapes are
// represented.  Every edge knows which edge continues its path at the
// end point, so that the original closed paths can still be followed
// through branch points.
package graph

import (
	"errors"
	"fmt"
	"iter"
	"math"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// ErrInvalidEdge is returned when an edge of a graph path does not
// refer to valid points or edges.
var ErrInvalidEdge = errors.New("graph: invalid edge")

// noFollowing marks an edge whose following edge has not been set.
const noFollowing = -1

// EdgeRef identifies a directed edge of a graph path.
//
// Start is the index of the point which owns the edge, and Edge is the
// slot of the edge among the outgoing edges of that point.  If Reverse
// is set, the edge is traversed from its end point back to Start.
type EdgeRef struct {
	Start   int
	Edge    int
	Reverse bool
}

// Reversed returns a reference to the same edge, traversed in the
// opposite direction.
func (r EdgeRef) Reversed() EdgeRef {
	return EdgeRef{Start: r.Start, Edge: r.Edge, Reverse: !r.Reverse}
}

func (r EdgeRef) String() string {
	if r.Reverse {
		return fmt.Sprintf("%d[%d]'", r.Start, r.Edge)
	}
	return fmt.Sprintf("%d[%d]", r.Start, r.Edge)
}

// edge is an outgoing edge stored with its start point.
type edge struct {
	cp1, cp2  vec.Vec2 // control points
	end       int      // index of the end point
	following int      // slot of the edge continuing the path at end
}

type point struct {
	pos           vec.Vec2
	forward       []edge
	connectedFrom []int // points with an edge ending here, without duplicates
}

// Path is a graph path.
// The zero value is an empty path, ready to use.
//
// A Path is built once, using AddPoint, AddEdge and Connect, and is
// read-only afterwards.  Concurrent reads are safe.
type Path struct {
	points []point
}

// AddPoint adds a new point and returns its index.
func (g *Path) AddPoint(pos vec.Vec2) int {
	g.points = append(g.points, point{pos: pos})
	return len(g.points) - 1
}

// AddEdge adds a curve from point from to point to, with control
// points cp1 and cp2.  The following edge is left unset until the edge
// is passed to Connect.
func (g *Path) AddEdge(from, to int, cp1, cp2 vec.Vec2) EdgeRef {
	p := &g.points[from]
	p.forward = append(p.forward, edge{cp1: cp1, cp2: cp2, end: to, following: noFollowing})

	q := &g.points[to]
	if !slices.Contains(q.connectedFrom, from) {
		q.connectedFrom = append(q.connectedFrom, from)
	}
	return EdgeRef{Start: from, Edge: len(p.forward) - 1}
}

// AddLine adds a straight edge from point from to point to.
func (g *Path) AddLine(from, to int) EdgeRef {
	c := Line(g.points[from].pos, g.points[to].pos)
	return g.AddEdge(from, to, c.P1, c.P2)
}

// Connect joins the given edges into a closed loop: each edge is
// followed by the next one in the list, and the last edge is followed
// by the first.
func (g *Path) Connect(refs ...EdgeRef) error {
	for i, ref := range refs {
		if err := g.Link(ref, refs[(i+1)%len(refs)]); err != nil {
			return err
		}
	}
	return nil
}

// Link sets next as the edge which continues the path after ref.
// The edge next must start where ref ends.
func (g *Path) Link(ref, next EdgeRef) error {
	if ref.Reverse || next.Reverse {
		return fmt.Errorf("connecting %s to %s: %w", ref, next, ErrInvalidEdge)
	}
	e := &g.points[ref.Start].forward[ref.Edge]
	if e.end != next.Start {
		return fmt.Errorf("edge %s ends at point %d, not %d: %w",
			ref, e.end, next.Start, ErrInvalidEdge)
	}
	e.following = next.Edge
	return nil
}

// Validate checks that every edge ends at an existing point and that
// every edge has a valid following edge.
func (g *Path) Validate() error {
	for i, p := range g.points {
		for j, e := range p.forward {
			ref := EdgeRef{Start: i, Edge: j}
			if e.end < 0 || e.end >= len(g.points) {
				return fmt.Errorf("edge %s: end point %d out of range: %w", ref, e.end, ErrInvalidEdge)
			}
			if e.following < 0 || e.following >= len(g.points[e.end].forward) {
				return fmt.Errorf("edge %s: no following edge: %w", ref, ErrInvalidEdge)
			}
		}
	}
	return nil
}

// NumPoints returns the number of points.  Points are numbered from 0
// to NumPoints()-1.
func (g *Path) NumPoints() int {
	return len(g.points)
}

// NumEdges returns the number of edges leaving the given point.
func (g *Path) NumEdges(point int) int {
	return len(g.points[point].forward)
}

// EdgesForPoint iterates over the edges leaving the given point.
func (g *Path) EdgesForPoint(point int) iter.Seq[EdgeRef] {
	return func(yield func(EdgeRef) bool) {
		for i := range g.points[point].forward {
			if !yield(EdgeRef{Start: point, Edge: i}) {
				return
			}
		}
	}
}

// ReverseEdgesForPoint iterates over the edges arriving at the given
// point.  The references are reversed, so that each returned edge
// starts at point.
func (g *Path) ReverseEdgesForPoint(point int) iter.Seq[EdgeRef] {
	return func(yield func(EdgeRef) bool) {
		for _, from := range g.points[point].connectedFrom {
			for i, e := range g.points[from].forward {
				if e.end != point {
					continue
				}
				if !yield(EdgeRef{Start: from, Edge: i, Reverse: true}) {
					return
				}
			}
		}
	}
}

// Edge returns the curve for an edge, in the direction of traversal.
func (g *Path) Edge(ref EdgeRef) Curve {
	e := &g.points[ref.Start].forward[ref.Edge]
	c := Curve{
		P0: g.points[ref.Start].pos,
		P1: e.cp1,
		P2: e.cp2,
		P3: g.points[e.end].pos,
	}
	if ref.Reverse {
		return c.Reversed()
	}
	return c
}

// NextEdge returns the edge which continues the path after ref,
// together with its curve.
//
// For reversed references this is the reversed predecessor of the
// edge.  If the graph has no such predecessor, ref is returned
// unchanged.
func (g *Path) NextEdge(ref EdgeRef) (EdgeRef, Curve) {
	var next EdgeRef
	if !ref.Reverse {
		e := &g.points[ref.Start].forward[ref.Edge]
		next = EdgeRef{Start: e.end, Edge: e.following}
	} else {
		next = ref
		for from := range g.ReverseEdgesForPoint(ref.Start) {
			if g.EdgeFollowingEdgeIdx(from) == ref.Edge {
				next = from
				break
			}
		}
	}
	return next, g.Edge(next)
}

// PointPosition returns the coordinates of a point.
func (g *Path) PointPosition(point int) vec.Vec2 {
	return g.points[point].pos
}

// EdgeStartPointIdx returns the index of the point where traversal of
// the edge starts.
func (g *Path) EdgeStartPointIdx(ref EdgeRef) int {
	if ref.Reverse {
		return g.points[ref.Start].forward[ref.Edge].end
	}
	return ref.Start
}

// EdgeEndPointIdx returns the index of the point where traversal of
// the edge ends.
func (g *Path) EdgeEndPointIdx(ref EdgeRef) int {
	if ref.Reverse {
		return ref.Start
	}
	return g.points[ref.Start].forward[ref.Edge].end
}

// EdgeFollowingEdgeIdx returns the slot of the edge which continues the
// path of the underlying forward edge, among the outgoing edges of its
// end point.  The direction of ref is ignored.
func (g *Path) EdgeFollowingEdgeIdx(ref EdgeRef) int {
	return g.points[ref.Start].forward[ref.Edge].following
}

// AllEdges iterates over all forward edges, ordered by start point and
// then by edge slot.
func (g *Path) AllEdges() iter.Seq2[EdgeRef, Curve] {
	return func(yield func(EdgeRef, Curve) bool) {
		for i := range g.points {
			for j := range g.points[i].forward {
				ref := EdgeRef{Start: i, Edge: j}
				if !yield(ref, g.Edge(ref)) {
					return
				}
			}
		}
	}
}

// ToPath returns the edges of the graph as a path, with one subpath
// per edge.
func (g *Path) ToPath() *path.Data {
	p := &path.Data{}
	for _, c := range g.AllEdges() {
		p = p.MoveTo(c.P0).CubeTo(c.P1, c.P2, c.P3)
	}
	return p
}

// Bounds returns a rectangle which contains all points and control
// points of the graph.  The result is the zero rectangle for an empty
// graph.
func (g *Path) Bounds() rect.Rect {
	if len(g.points) == 0 {
		return rect.Rect{}
	}

	b := rect.Rect{
		LLx: math.Inf(1), LLy: math.Inf(1),
		URx: math.Inf(-1), URy: math.Inf(-1),
	}
	extend := func(v vec.Vec2) {
		b.LLx = min(b.LLx, v.X)
		b.LLy = min(b.LLy, v.Y)
		b.URx = max(b.URx, v.X)
		b.URy = max(b.URy, v.Y)
	}
	for _, p := range g.points {
		extend(p.pos)
		for _, e := range p.forward {
			extend(e.cp1)
			extend(e.cp2)
		}
	}
	return b
}
