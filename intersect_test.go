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
	"testing"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/raycast/graph"
)

func TestCurveIntersectsRayLine(t *testing.T) {
	l := Ray{From: vec.Vec2{X: 0, Y: 5}, To: vec.Vec2{X: 1, Y: 5}}
	k := lineCoeffs(l)
	c := graph.Line(vec.Vec2{X: 2, Y: 0}, vec.Vec2{X: 2, Y: 10})

	hits := curveIntersectsRay(nil, c, l, k)
	if len(hits) != 1 {
		t.Fatalf("expected 1 hit, got %d", len(hits))
	}
	h := hits[0]
	if math.Abs(h.curveT-0.5) > 1e-12 {
		t.Errorf("expected t = 0.5, got %g", h.curveT)
	}
	if math.Abs(h.lineT-2) > 1e-12 {
		t.Errorf("expected line position 2, got %g", h.lineT)
	}
}

func TestCurveIntersectsRayCubic(t *testing.T) {
	l := Ray{From: vec.Vec2{X: 0, Y: 20}, To: vec.Vec2{X: 1, Y: 20}}
	k := lineCoeffs(l)
	c := graph.Curve{
		P0: vec.Vec2{X: 0, Y: 0},
		P1: vec.Vec2{X: 0, Y: 30},
		P2: vec.Vec2{X: 30, Y: 30},
		P3: vec.Vec2{X: 30, Y: 0},
	}

	hits := curveIntersectsRay(nil, c, l, k)
	if len(hits) != 2 {
		t.Fatalf("expected 2 hits, got %d", len(hits))
	}
	ts := []float64{hits[0].curveT, hits[1].curveT}
	if ts[0] > ts[1] {
		ts[0], ts[1] = ts[1], ts[0]
	}
	if math.Abs(ts[0]-1.0/3) > 1e-9 || math.Abs(ts[1]-2.0/3) > 1e-9 {
		t.Errorf("expected t = 1/3 and 2/3, got %v", ts)
	}
	for _, h := range hits {
		if math.Abs(h.pos.Y-20) > 1e-9 {
			t.Errorf("hit %v is not on the line", h.pos)
		}
	}
}

func TestCurveIntersectsRayEndpoints(t *testing.T) {
	l := Ray{To: vec.Vec2{X: 1}}
	k := lineCoeffs(l)

	// hits exactly at the start and at the end of the curve
	for _, c := range []graph.Curve{
		graph.Line(vec.Vec2{X: 3, Y: 0}, vec.Vec2{X: 3, Y: 4}),
		graph.Line(vec.Vec2{X: 3, Y: 4}, vec.Vec2{X: 3, Y: 0}),
	} {
		hits := curveIntersectsRay(nil, c, l, k)
		if len(hits) != 1 {
			t.Fatalf("expected 1 hit, got %d", len(hits))
		}
		if h := hits[0]; h.curveT < 0 || h.curveT > 1 || math.Abs(h.pos.X-3) > 1e-9 {
			t.Errorf("unexpected hit %v", h)
		}
	}
}

func TestCurveIntersectsRayMiss(t *testing.T) {
	l := Ray{To: vec.Vec2{X: 1}}
	k := lineCoeffs(l)

	// the straight line through these points would cross at y = 0 beyond
	// the end of the curve
	c := graph.Line(vec.Vec2{X: 0, Y: 5}, vec.Vec2{X: 0, Y: 1})
	if hits := curveIntersectsRay(nil, c, l, k); len(hits) != 0 {
		t.Errorf("expected no hits, got %v", hits)
	}

	// a curve lying on the line has no isolated intersections
	c = graph.Line(vec.Vec2{X: 0}, vec.Vec2{X: 5})
	if hits := curveIntersectsRay(nil, c, l, k); len(hits) != 0 {
		t.Errorf("expected no hits, got %v", hits)
	}
}

func TestPolishRoot(t *testing.T) {
	// (t - 0.25)(t - 2)(t + 1) = t³ - 1.25t² - 1.75t + 0.5
	c0, c1, c2, c3 := 0.5, -1.75, -1.25, 1.0
	got := polishRoot(0.2501, c0, c1, c2, c3)
	if math.Abs(got-0.25) > 1e-8 {
		t.Errorf("expected 0.25, got %g", got)
	}
	if got := polishRoot(0.25, c0, c1, c2, c3); got != 0.25 {
		t.Errorf("exact root was moved to %g", got)
	}
}
