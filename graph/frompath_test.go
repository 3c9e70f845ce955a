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
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

func TestFromPathSharedVertices(t *testing.T) {
	p := (&path.Data{}).
		MoveTo(pt(0, 0)).LineTo(pt(20, 0)).LineTo(pt(20, 10)).
		LineTo(pt(20, 20)).LineTo(pt(10, 20)).LineTo(pt(0, 20)).Close().
		MoveTo(pt(10, 10)).LineTo(pt(20, 10)).LineTo(pt(30, 10)).
		LineTo(pt(30, 30)).LineTo(pt(10, 30)).LineTo(pt(10, 20)).Close()

	g, err := FromPath(p.Iter())
	if err != nil {
		t.Fatal(err)
	}
	if err := g.Validate(); err != nil {
		t.Fatal(err)
	}

	if n := g.NumPoints(); n != 10 {
		t.Fatalf("expected 10 points, got %d", n)
	}
	for _, i := range []int{2, 4} {
		if n := g.NumEdges(i); n != 2 {
			t.Errorf("point %d: expected 2 edges, got %d", i, n)
		}
	}

	// The second loop passes through point 2 on its own edge slot.
	ref := EdgeRef{Start: 6, Edge: 0}
	next, c := g.NextEdge(ref)
	if want := (EdgeRef{Start: 2, Edge: 1}); next != want {
		t.Errorf("expected %s after %s, got %s", want, ref, next)
	}
	if c.P3 != pt(30, 10) {
		t.Errorf("expected edge to end at (30, 10), got %v", c.P3)
	}
}

func TestFromPathOpenSubpath(t *testing.T) {
	p := (&path.Data{}).
		MoveTo(pt(0, 0)).LineTo(pt(4, 0)).LineTo(pt(4, 0)).LineTo(pt(4, 3))

	g, err := FromPath(p.Iter())
	if err != nil {
		t.Fatal(err)
	}
	if err := g.Validate(); err != nil {
		t.Fatal(err)
	}

	if n := g.NumPoints(); n != 3 {
		t.Fatalf("expected 3 points, got %d", n)
	}
	total := 0
	for range g.AllEdges() {
		total++
	}
	if total != 3 {
		t.Errorf("expected 3 edges, got %d", total)
	}

	next, _ := g.NextEdge(EdgeRef{Start: 2, Edge: 0})
	if want := (EdgeRef{Start: 0, Edge: 0}); next != want {
		t.Errorf("closing edge should lead to %s, got %s", want, next)
	}
}

func TestFromPathCurves(t *testing.T) {
	p := (&path.Data{}).
		MoveTo(pt(0, 0)).
		QuadTo(pt(3, 3), pt(6, 0)).
		CubeTo(pt(6, -2), pt(0, -2), pt(0, 0)).
		Close()

	g, err := FromPath(p.Iter())
	if err != nil {
		t.Fatal(err)
	}
	if n := g.NumPoints(); n != 2 {
		t.Fatalf("expected 2 points, got %d", n)
	}

	c := g.Edge(EdgeRef{Start: 0, Edge: 0})
	if c.P3 != pt(6, 0) {
		t.Errorf("expected quadratic to end at (6, 0), got %v", c.P3)
	}
	// The cubic form of a quadratic has the same midpoint.
	if mid := c.Eval(0.5); mid.Sub(pt(3, 1.5)).Length() > 1e-9 {
		t.Errorf("expected midpoint (3, 1.5), got %v", mid)
	}

	c = g.Edge(EdgeRef{Start: 1, Edge: 0})
	if c.P1 != pt(6, -2) || c.P2 != pt(0, -2) {
		t.Errorf("cubic control points changed: %v", c)
	}
}

func TestFromPathEmpty(t *testing.T) {
	g, err := FromPath((&path.Data{}).MoveTo(pt(1, 1)).Iter())
	if err != nil {
		t.Fatal(err)
	}
	if n := g.NumPoints(); n != 0 {
		t.Errorf("expected no points, got %d", n)
	}
}
