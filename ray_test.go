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
	"errors"
	"fmt"
	"maps"
	"math"
	"slices"
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/raycast/graph"
	"seehuhn.de/go/raycast/testcases"
)

const pointTolerance = 1e-6

func TestAgainstTestCases(t *testing.T) {
	c := NewCaster()
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			t.Run(name, func(t *testing.T) {
				g, err := tc.Graph()
				if err != nil {
					t.Fatal(err)
				}
				l := Ray{From: tc.From, To: tc.To}

				got, err := c.Collisions(g, l)
				if err != nil {
					t.Fatal(err)
				}
				if err := compareCollisions(got, tc.Want); err != nil {
					t.Fatal(err)
				}
				if err := checkConsistency(g, l, got); err != nil {
					t.Error(err)
				}
			})
		}
	}
}

func compareCollisions(got []Collision, want []vec.Vec2) error {
	if len(got) != len(want) {
		return fmt.Errorf("expected %d collisions, got %d: %v", len(want), len(got), got)
	}
	for i, c := range got {
		if !closeTo(c.Point, want[i]) {
			return fmt.Errorf("collision %d: expected %v, got %v", i, want[i], c.Point)
		}
	}
	return nil
}

// checkConsistency verifies the properties every result must have.
func checkConsistency(g Graph, l Line, cs []Collision) error {
	k := lineCoeffs(l)
	for i, c := range cs {
		if i > 0 && cs[i-1].LineT > c.LineT {
			return fmt.Errorf("collisions %d and %d out of order", i-1, i)
		}
		if c.Edge.Reverse {
			return fmt.Errorf("collision %d: reversed edge %s", i, c.Edge)
		}
		if c.CurveT < 0 || c.CurveT > 1 {
			return fmt.Errorf("collision %d: curve parameter %g outside [0, 1]", i, c.CurveT)
		}
		if p := g.Edge(c.Edge).Eval(c.CurveT); !closeTo(p, c.Point) {
			return fmt.Errorf("collision %d: point %v is not on edge %s (%v)", i, c.Point, c.Edge, p)
		}
		if d := math.Abs(k.dist(c.Point)); d > pointTolerance {
			return fmt.Errorf("collision %d: point %v is %g away from the line", i, c.Point, d)
		}
		if pos := l.PosForPoint(c.Point); math.Abs(pos-c.LineT) > pointTolerance {
			return fmt.Errorf("collision %d: line position %g, expected %g", i, c.LineT, pos)
		}

		wantKind := SingleEdge
		if c.CurveT == 0 && g.NumEdges(g.EdgeStartPointIdx(c.Edge)) > 1 {
			wantKind = Intersection
		}
		if c.Kind != wantKind {
			return fmt.Errorf("collision %d: expected %s, got %s", i, wantKind, c.Kind)
		}
	}
	return nil
}

func closeTo(a, b vec.Vec2) bool {
	scale := max(1, math.Abs(b.X), math.Abs(b.Y))
	return a.Sub(b).Length() <= pointTolerance*scale
}

// findCase returns the named test case.
func findCase(t *testing.T, category, name string) (testcases.TestCase, *graph.Path) {
	t.Helper()
	for _, tc := range testcases.All[category] {
		if tc.Name == name {
			g, err := tc.Graph()
			if err != nil {
				t.Fatal(err)
			}
			return tc, g
		}
	}
	t.Fatalf("test case %s_%s not found", category, name)
	return testcases.TestCase{}, nil
}

func TestBranchPoints(t *testing.T) {
	tc, g := findCase(t, "overlap", "overlapping_squares_branch_points")

	got, err := RayCollisions(g, Ray{From: tc.From, To: tc.To})
	if err != nil {
		t.Fatal(err)
	}
	want := []graph.EdgeRef{
		{Start: 2, Edge: 0},
		{Start: 2, Edge: 1},
		{Start: 4, Edge: 0},
		{Start: 4, Edge: 1},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d collisions, got %d", len(want), len(got))
	}
	for i, c := range got {
		if c.Edge != want[i] {
			t.Errorf("collision %d: expected edge %s, got %s", i, want[i], c.Edge)
		}
		if c.Kind != Intersection {
			t.Errorf("collision %d: expected Intersection, got %s", i, c.Kind)
		}
		if c.CurveT != 0 {
			t.Errorf("collision %d: expected curve parameter 0, got %g", i, c.CurveT)
		}
	}
	if got[0].LineT != 0 || got[2].LineT != 1 {
		t.Errorf("unexpected line positions %g and %g", got[0].LineT, got[2].LineT)
	}
}

func TestMidEdgeCollisions(t *testing.T) {
	tc, g := findCase(t, "overlap", "overlapping_squares")

	got, err := RayCollisions(g, Ray{From: tc.From, To: tc.To})
	if err != nil {
		t.Fatal(err)
	}
	for i, c := range got {
		if c.Kind != SingleEdge {
			t.Errorf("collision %d: expected SingleEdge, got %s", i, c.Kind)
		}
		if c.CurveT <= 0 || c.CurveT >= 1 {
			t.Errorf("collision %d: expected a mid-edge collision, got %g", i, c.CurveT)
		}
	}
}

func TestDegenerateLine(t *testing.T) {
	_, g := findCase(t, "basic", "rectangle_horizontal")

	p := vec.Vec2{X: 3, Y: 4}
	_, err := RayCollisions(g, Ray{From: p, To: p})
	if !errors.Is(err, ErrDegenerateLine) {
		t.Errorf("expected ErrDegenerateLine, got %v", err)
	}
}

func TestEmptyGraph(t *testing.T) {
	got, err := RayCollisions(&graph.Path{}, Ray{To: vec.Vec2{X: 1}})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("expected no collisions, got %v", got)
	}
}

func TestUnconnectedEdge(t *testing.T) {
	g := &graph.Path{}
	p0 := g.AddPoint(vec.Vec2{X: 0, Y: -1})
	p1 := g.AddPoint(vec.Vec2{X: 0, Y: 1})
	g.AddLine(p0, p1)

	_, err := RayCollisions(g, Ray{To: vec.Vec2{X: 1}})
	if !errors.Is(err, ErrMalformedGraph) {
		t.Errorf("expected ErrMalformedGraph, got %v", err)
	}
	if !errors.Is(err, graph.ErrInvalidEdge) {
		t.Errorf("expected graph.ErrInvalidEdge, got %v", err)
	}
}

func TestMissingPredecessor(t *testing.T) {
	// A square with an extra diagonal from (10, 0) to (0, 10), which
	// joins the square at (0, 10) but has no edge leading into it.
	g := &graph.Path{}
	p0 := g.AddPoint(vec.Vec2{X: 0, Y: 0})
	p1 := g.AddPoint(vec.Vec2{X: 10, Y: 0})
	p2 := g.AddPoint(vec.Vec2{X: 10, Y: 10})
	p3 := g.AddPoint(vec.Vec2{X: 0, Y: 10})
	e30 := g.AddLine(p3, p0)
	err := g.Connect(g.AddLine(p0, p1), g.AddLine(p1, p2), g.AddLine(p2, p3), e30)
	if err != nil {
		t.Fatal(err)
	}
	diagonal := g.AddLine(p1, p3)
	if err := g.Link(diagonal, e30); err != nil {
		t.Fatal(err)
	}

	// The ray touches the square at (10, 0), where the diagonal starts.
	_, err = RayCollisions(g, Ray{From: vec.Vec2{X: 10, Y: 0}, To: vec.Vec2{X: 11, Y: 1}})

	var missing *MissingPredecessorError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingPredecessorError, got %v", err)
	}
	if missing.Edge != diagonal {
		t.Errorf("expected edge %s, got %s", diagonal, missing.Edge)
	}
	if !errors.Is(err, ErrMalformedGraph) {
		t.Errorf("expected error to wrap ErrMalformedGraph")
	}
}

func TestAllCollinear(t *testing.T) {
	p := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 0}).
		LineTo(vec.Vec2{X: 20, Y: 0}).
		Close()
	g, err := graph.FromPath(p.Iter())
	if err != nil {
		t.Fatal(err)
	}

	got, err := RayCollisions(g, Ray{To: vec.Vec2{X: 1}})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("expected no collisions, got %v", got)
	}
}

// TestCasterReuse checks that a Caster gives the same results when it is
// reused, in particular after queries on larger graphs.
func TestCasterReuse(t *testing.T) {
	fresh := make(map[string][]Collision)
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			g, err := tc.Graph()
			if err != nil {
				t.Fatal(err)
			}
			res, err := RayCollisions(g, Ray{From: tc.From, To: tc.To})
			if err != nil {
				t.Fatal(err)
			}
			fresh[category+"_"+tc.Name] = res
		}
	}

	c := NewCaster()
	for range 2 {
		for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
			for _, tc := range slices.Backward(testcases.All[category]) {
				name := category + "_" + tc.Name
				g, err := tc.Graph()
				if err != nil {
					t.Fatal(err)
				}
				res, err := c.Collisions(g, Ray{From: tc.From, To: tc.To})
				if err != nil {
					t.Fatal(err)
				}
				if !slices.Equal(res, fresh[name]) {
					t.Errorf("%s: results differ after reuse", name)
				}
			}
		}
	}
}

// TestZeroValueCaster checks that a Caster without settings behaves like
// one from NewCaster.
func TestZeroValueCaster(t *testing.T) {
	for _, name := range []string{"concave_step", "split_run", "rectangle_edge"} {
		tc, g := findCase(t, "collinear", name)
		r := Ray{From: tc.From, To: tc.To}

		var c Caster
		got, err := c.Collisions(g, r)
		if err != nil {
			t.Fatal(err)
		}
		want, err := NewCaster().Collisions(g, r)
		if err != nil {
			t.Fatal(err)
		}
		if !slices.Equal(got, want) {
			t.Errorf("%s: expected %v, got %v", name, want, got)
		}
		if err := compareCollisions(got, tc.Want); err != nil {
			t.Errorf("%s: %v", name, err)
		}
	}
}

func TestKindString(t *testing.T) {
	if s := SingleEdge.String(); s != "SingleEdge" {
		t.Errorf("unexpected string %q", s)
	}
	if s := Intersection.String(); s != "Intersection" {
		t.Errorf("unexpected string %q", s)
	}
}
