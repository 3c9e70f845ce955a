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
)

func TestRayCoefficients(t *testing.T) {
	r := Ray{From: vec.Vec2{X: 1, Y: 1}, To: vec.Vec2{X: 4, Y: 5}}
	a, b, c := r.Coefficients()
	if n := math.Hypot(a, b); math.Abs(n-1) > 1e-12 {
		t.Errorf("coefficients not normalised: |(a, b)| = %g", n)
	}
	for _, p := range []vec.Vec2{r.From, r.To, {X: 7, Y: 9}} {
		if d := a*p.X + b*p.Y + c; math.Abs(d) > 1e-12 {
			t.Errorf("point %v not on the line: %g", p, d)
		}
	}

	// distances are measured in the units of the coordinates
	k := lineCoeffs(r)
	if d := math.Abs(k.dist(vec.Vec2{X: 1 + 4, Y: 1 - 3})); math.Abs(d-5) > 1e-12 {
		t.Errorf("expected distance 5, got %g", d)
	}
}

func TestRayPosForPoint(t *testing.T) {
	type testCase struct {
		r    Ray
		p    vec.Vec2
		want float64
	}
	cases := []testCase{
		{Ray{To: vec.Vec2{X: 1}}, vec.Vec2{X: 7}, 7},
		{Ray{To: vec.Vec2{X: -2}}, vec.Vec2{X: 7}, -3.5},
		{Ray{To: vec.Vec2{Y: 1}}, vec.Vec2{Y: -4}, -4},
		{Ray{From: vec.Vec2{X: 1, Y: 1}, To: vec.Vec2{X: 3, Y: 5}}, vec.Vec2{X: 2, Y: 3}, 0.5},
		{Ray{From: vec.Vec2{X: 1, Y: 1}, To: vec.Vec2{X: 3, Y: 5}}, vec.Vec2{X: 1, Y: 1}, 0},
	}
	for _, c := range cases {
		if got := c.r.PosForPoint(c.p); math.Abs(got-c.want) > 1e-12 {
			t.Errorf("%v: expected position %g for %v, got %g", c.r, c.want, c.p, got)
		}
	}
}

func TestDegenerateCoefficients(t *testing.T) {
	p := vec.Vec2{X: 2, Y: 3}
	if lineCoeffs(Ray{From: p, To: p}).valid() {
		t.Error("ray through a single point accepted")
	}
	if lineCoeffs(Ray{From: p, To: vec.Vec2{X: math.NaN()}}).valid() {
		t.Error("ray with NaN coordinates accepted")
	}
}

func TestSide(t *testing.T) {
	k := lineCoeffs(Ray{To: vec.Vec2{X: 1}})
	if s := k.side(vec.Vec2{X: 5, Y: 0.0001}, sideTolerance); s != 0 {
		t.Errorf("expected point on the line, got side %d", s)
	}
	if k.side(vec.Vec2{Y: 1}, sideTolerance) == k.side(vec.Vec2{Y: -1}, sideTolerance) {
		t.Error("points on opposite sides report the same side")
	}
}
