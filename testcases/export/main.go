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
// Command export writes the ray casting test cases to a JSON file,
// together with the collisions computed for each case.
package main

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/raycast"
	"seehuhn.de/go/raycast/testcases"
	"seehuhn.de/go/raycast/testcases/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	if err := cfg.SetupLogging(); err != nil {
		panic(err)
	}
	c := cfg.Caster()

	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			jtc, err := toJSON(c, name, tc)
			if err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			out.TestCases = append(out.TestCases, jtc)
		}
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Output), 0755); err != nil {
		panic(err)
	}
	f, err := os.Create(cfg.Output)
	if err != nil {
		panic(err)
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		f.Close()
		panic(err)
	}
	if err := f.Close(); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name       string          `json:"name"`
	Path       []jsonSegment   `json:"path"`
	Ray        [2][]float64    `json:"ray"`
	Want       [][]float64     `json:"want"`
	Collisions []jsonCollision `json:"collisions"`
}

type jsonSegment struct {
	Cmd string      `json:"cmd"`
	Pts [][]float64 `json:"pts"`
}

type jsonCollision struct {
	Kind   string    `json:"kind"`
	Edge   string    `json:"edge"`
	CurveT float64   `json:"curve_t"`
	LineT  float64   `json:"line_t"`
	Point  []float64 `json:"point"`
}

func toJSON(c *raycast.Caster, name string, tc testcases.TestCase) (jsonTestCase, error) {
	jtc := jsonTestCase{
		Name: name,
		Path: pathToJSON(tc.Path.Iter()),
		Ray:  [2][]float64{point(tc.From), point(tc.To)},
		Want: make([][]float64, len(tc.Want)),
	}
	for i, p := range tc.Want {
		jtc.Want[i] = point(p)
	}

	g, err := tc.Graph()
	if err != nil {
		return jtc, err
	}
	res, err := c.Collisions(g, raycast.Ray{From: tc.From, To: tc.To})
	if err != nil {
		return jtc, err
	}
	jtc.Collisions = make([]jsonCollision, len(res))
	for i, col := range res {
		jtc.Collisions[i] = jsonCollision{
			Kind:   col.Kind.String(),
			Edge:   col.Edge.String(),
			CurveT: col.CurveT,
			LineT:  col.LineT,
			Point:  point(col.Point),
		}
	}
	return jtc, nil
}

func point(p vec.Vec2) []float64 {
	return []float64{p.X, p.Y}
}

func pathToJSON(p path.Path) []jsonSegment {
	var segs []jsonSegment
	for cmd, pts := range p {
		seg := jsonSegment{Pts: make([][]float64, len(pts))}
		switch cmd {
		case path.CmdMoveTo:
			seg.Cmd = "M"
		case path.CmdLineTo:
			seg.Cmd = "L"
		case path.CmdQuadTo:
			seg.Cmd = "Q"
		case path.CmdCubeTo:
			seg.Cmd = "C"
		case path.CmdClose:
			seg.Cmd = "Z"
		}
		for i, pt := range pts {
			seg.Pts[i] = point(pt)
		}
		segs = append(segs, seg)
	}
	return segs
}
