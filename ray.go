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
	"cmp"
	"context"
	"fmt"
	"iter"
	"log/slog"
	"slices"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/raycast/graph"
)

const (
	// defaultSmallDistance is the distance below which points are
	// considered to be on the line, or to coincide with a vertex.
	defaultSmallDistance = 0.001

	// sideSumTolerance is the slack when checking whether the signs of
	// the four defining points of an edge add up to ±4.
	sideSumTolerance = 0.01

	// nearEndT is how close to an end of its edge a crossing must be to
	// be checked against adjacent collinear edges.
	nearEndT = 0.1

	// endT and startT bound the curve parameters which are treated as
	// hits on the end and start vertex of an edge.
	endT   = 0.99999
	startT = 0.00001

	// sideTolerance is the distance below which a control point counts
	// as lying on the line, when looking for glancing collisions.
	sideTolerance = 0.001

	// coeffEpsilon is the relative size below which polynomial
	// coefficients are rounded to zero.
	coeffEpsilon = 1e-12

	// rootTolerance is how far outside [0, 1] a root may be and still
	// count as a hit on the curve.
	rootTolerance = 1e-6
)

// Graph is the read-only view of a graph path used for ray casting.
// It is implemented by [graph.Path].
type Graph interface {
	// NumPoints returns the number of points.  Points are numbered
	// from 0 to NumPoints()-1.
	NumPoints() int

	// NumEdges returns the number of edges leaving a point.
	NumEdges(point int) int

	// EdgesForPoint iterates over the edges leaving a point.
	EdgesForPoint(point int) iter.Seq[graph.EdgeRef]

	// ReverseEdgesForPoint iterates over the edges arriving at a point,
	// as reversed references which start at the point.
	ReverseEdgesForPoint(point int) iter.Seq[graph.EdgeRef]

	// Edge returns the curve for an edge, in the direction of traversal.
	Edge(ref graph.EdgeRef) graph.Curve

	// NextEdge returns the edge which continues the path after ref.
	NextEdge(ref graph.EdgeRef) (graph.EdgeRef, graph.Curve)

	// PointPosition returns the coordinates of a point.
	PointPosition(point int) vec.Vec2

	// EdgeStartPointIdx returns the point at which ref starts.
	EdgeStartPointIdx(ref graph.EdgeRef) int

	// EdgeEndPointIdx returns the point at which ref ends.
	EdgeEndPointIdx(ref graph.EdgeRef) int

	// EdgeFollowingEdgeIdx returns the slot, at the end point of ref, of
	// the edge which continues the path.
	EdgeFollowingEdgeIdx(ref graph.EdgeRef) int
}

var _ Graph = (*graph.Path)(nil)

// Kind classifies a collision.
type Kind int

const (
	// SingleEdge is a collision in the middle of an edge, or at a vertex
	// with only one outgoing edge.
	SingleEdge Kind = iota

	// Intersection is a collision at a vertex with more than one
	// outgoing edge, where several paths of the graph meet.
	Intersection
)

func (k Kind) String() string {
	switch k {
	case SingleEdge:
		return "SingleEdge"
	case Intersection:
		return "Intersection"
	default:
		return "Kind(?)"
	}
}

// Collision is a place where the line crosses the graph path.
type Collision struct {
	Kind Kind

	// Edge is the edge which is crossed.  Crossings at a vertex are
	// always reported on the edge leaving the vertex, with CurveT = 0.
	Edge graph.EdgeRef

	CurveT float64  // parameter along the edge
	LineT  float64  // position along the line
	Point  vec.Vec2 // location of the crossing
}

// rawCollision is a collision before classification.
type rawCollision struct {
	edge   graph.EdgeRef
	curveT float64
	lineT  float64
	pos    vec.Vec2
}

// Caster finds ray collisions.
//
// A Caster can be reused for many queries; internal buffers grow as
// needed and are kept between calls.  A Caster must not be used by more
// than one goroutine at a time, but different casters may query the
// same graph concurrently.
type Caster struct {
	// SmallDistance is the distance below which a point is considered
	// to lie on the line, or to coincide with a vertex.
	// Values <= 0 select the default of 0.001.
	SmallDistance float64

	// buffers, reused across queries
	sectionOf []int    // run index for each point, or -1
	sections  [][]int  // points of each collinear run
	visited   [][]int  // edge slots with a collision at t=0, per point
	hits      []rayHit // roots for a single edge
	crossing  []graph.EdgeRef
	cover     []float32 // pixel row for FillSpans
}

// NewCaster returns a Caster with default settings.
func NewCaster() *Caster {
	return &Caster{
		SmallDistance: defaultSmallDistance,
	}
}

func (c *Caster) smallDistance() float64 {
	if c.SmallDistance <= 0 {
		return defaultSmallDistance
	}
	return c.SmallDistance
}

// RayCollisions returns the places where the line l crosses the graph
// path g, sorted by their position along the line.
//
// An error is returned if the line is degenerate, or if the graph is
// malformed.  A line which misses the path is not an error; the result
// is then empty.
func RayCollisions(g Graph, l Line) ([]Collision, error) {
	return NewCaster().Collisions(g, l)
}

// Collisions returns the places where the line l crosses the graph path
// g, sorted by their position along the line.  See [RayCollisions].
func (c *Caster) Collisions(g Graph, l Line) ([]Collision, error) {
	q, err := c.newQuery(g, l)
	if err != nil {
		return nil, err
	}

	inRuns := q.collinearCollisions(nil)
	crossing := q.rawCollisions(nil)
	crossing = q.removeCollisionsNearCollinear(crossing)

	raw := append(inRuns, crossing...)
	raw = q.moveEndsToStart(raw)
	raw = q.moveCollinearToEnd(raw)
	raw, err = q.removeGlancing(raw)
	if err != nil {
		Logger().Warn("ray collisions failed", "error", err)
		return nil, err
	}
	raw = q.removeDuplicates(raw)

	res := q.classify(raw)
	sortCollisions(res)

	if log := Logger(); log.Enabled(context.Background(), slog.LevelDebug) {
		log.Debug("ray collisions",
			"collinear", len(inRuns),
			"crossing", len(crossing),
			"result", len(res))
	}
	return res, nil
}

// validator is implemented by graphs which can check their own
// structure, like [graph.Path].
type validator interface {
	Validate() error
}

// query holds the state of a single ray casting operation.
type query struct {
	*Caster

	g        Graph
	l        Line
	k        coeffs
	maxSteps int // bound for walks along a path
}

func (c *Caster) newQuery(g Graph, l Line) (*query, error) {
	k := lineCoeffs(l)
	if !k.valid() {
		return nil, ErrDegenerateLine
	}
	if v, ok := g.(validator); ok {
		if err := v.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedGraph, err)
		}
	}

	numEdges := 0
	for i := range g.NumPoints() {
		numEdges += g.NumEdges(i)
	}

	return &query{
		Caster:   c,
		g:        g,
		l:        l,
		k:        k,
		maxSteps: numEdges + 1,
	}, nil
}

func (q *query) classifyEdge(ref graph.EdgeRef) edgeClass {
	return classifyCurve(q.g.Edge(ref), q.k, q.smallDistance())
}

func (q *query) isCollinear(c graph.Curve) bool {
	return classifyCurve(c, q.k, q.smallDistance()) == collinear
}

// anyCollinear reports whether any of the edges is collinear with the line.
func (q *query) anyCollinear(edges iter.Seq[graph.EdgeRef]) bool {
	for ref := range edges {
		if q.classifyEdge(ref) == collinear {
			return true
		}
	}
	return false
}

func (q *query) near(a, b vec.Vec2) bool {
	return a.Sub(b).Length() < q.smallDistance()
}

// skipCollinear follows the path, starting with the edge ref with curve
// c, until it finds an edge which is not collinear with the line.
//
// The walk stops without success when it returns to the start point of
// ref, or after visiting every edge of the graph once.
func (q *query) skipCollinear(ref graph.EdgeRef, c graph.Curve) (graph.EdgeRef, graph.Curve, bool) {
	origin := q.g.EdgeStartPointIdx(ref)
	for steps := 0; q.isCollinear(c); steps++ {
		if steps >= q.maxSteps {
			return ref, c, false
		}
		ref, c = q.g.NextEdge(ref)
		if q.g.EdgeStartPointIdx(ref) == origin {
			break
		}
	}
	return ref, c, !q.isCollinear(c)
}

// rawCollisions appends the intersections of all edges which cross the
// line to dst.  Collinear edges are handled by collinearCollisions.
func (q *query) rawCollisions(dst []rawCollision) []rawCollision {
	for i := range q.g.NumPoints() {
		for ref := range q.g.EdgesForPoint(i) {
			c := q.g.Edge(ref)
			if classifyCurve(c, q.k, q.smallDistance()) != crossesRay {
				continue
			}

			q.hits = curveIntersectsRay(q.hits[:0], c, q.l, q.k)
			for _, h := range q.hits {
				dst = append(dst, rawCollision{edge: ref, curveT: h.curveT, lineT: h.lineT, pos: h.pos})
			}
		}
	}
	return dst
}

// classify tags each collision as a graph intersection or a single edge
// crossing.
func (q *query) classify(raw []rawCollision) []Collision {
	res := make([]Collision, len(raw))
	for i, h := range raw {
		kind := SingleEdge
		if h.curveT <= 0 && q.g.NumEdges(q.g.EdgeStartPointIdx(h.edge)) > 1 {
			kind = Intersection
		}
		res[i] = Collision{
			Kind:   kind,
			Edge:   h.edge,
			CurveT: h.curveT,
			LineT:  h.lineT,
			Point:  h.pos,
		}
	}
	return res
}

// sortCollisions orders collisions by position along the line.
// Collisions at the same position are ordered by start point and edge
// slot.
func sortCollisions(cs []Collision) {
	slices.SortStableFunc(cs, func(x, y Collision) int {
		if c := cmp.Compare(x.LineT, y.LineT); c != 0 {
			return c
		}
		if c := cmp.Compare(x.Edge.Start, y.Edge.Start); c != 0 {
			return c
		}
		return cmp.Compare(x.Edge.Edge, y.Edge.Edge)
	})
}
