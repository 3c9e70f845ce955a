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
// Command genpdf draws the ray casting test cases, for visual debugging.
// It creates one PDF file per test case, showing the shape, its edges,
// the ray and the computed collisions.  Optionally, the PDFs are
// rendered to PNGs using Ghostscript.
package main

import (
	"fmt"
	"maps"
	"math"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/raycast"
	"seehuhn.de/go/raycast/testcases"
	"seehuhn.de/go/raycast/testcases/internal/config"
)

// margin is the space around the shape, in user units.
const margin = 5

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	if err := cfg.SetupLogging(); err != nil {
		panic(err)
	}
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		panic(err)
	}
	c := cfg.Caster()

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(cfg.OutputDir, name+".pdf")

			if err := generatePDF(c, cfg.Scale, tc, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			if cfg.PNG {
				pngPath := filepath.Join(cfg.OutputDir, name+".png")
				if err := renderPNG(pdfPath, pngPath); err != nil {
					panic(fmt.Errorf("%s: %w", name, err))
				}
			}
		}
	}
}

func generatePDF(c *raycast.Caster, scale float64, tc testcases.TestCase, pdfPath string) error {
	g, err := tc.Graph()
	if err != nil {
		return err
	}
	hits, err := c.Collisions(g, raycast.Ray{From: tc.From, To: tc.To})
	if err != nil {
		return err
	}

	b := g.Bounds()
	if g.NumPoints() == 0 {
		b = rect.Rect{URx: 1, URy: 1}
	}
	b = rect.Rect{
		LLx: b.LLx - margin, LLy: b.LLy - margin,
		URx: b.URx + margin, URy: b.URy + margin,
	}

	// Page size in points
	paper := &pdf.Rectangle{
		URx: scale * (b.URx - b.LLx),
		URy: scale * (b.URy - b.LLy),
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// Test cases use a y-axis pointing down, like images.
	page.Transform(matrix.Matrix{scale, 0, 0, -scale, -scale * b.LLx, paper.URy + scale*b.LLy})
	lw := 1 / scale

	// the filled shape
	page.SetFillColor(color.DeviceGray(0.85))
	drawPath(page, tc.Path.Iter())
	page.Fill()

	// the edges of the graph, one subpath per edge
	page.SetStrokeColor(color.DeviceGray(0))
	page.SetLineWidth(lw)
	drawPath(page, g.ToPath().Iter())
	page.Stroke()

	// the ray
	from, to := rayEnds(tc.From, tc.To, b)
	page.SetStrokeColor(color.DeviceGray(0.4))
	page.SetLineDash([]float64{4 * lw, 2 * lw}, 0)
	page.MoveTo(from.X, from.Y)
	page.LineTo(to.X, to.Y)
	page.Stroke()
	page.SetLineDash(nil, 0)

	// the collisions: filled for crossings in the middle of an edge,
	// outlined for crossings at branch points
	r := 3 * lw
	page.SetFillColor(color.DeviceGray(0))
	for _, h := range hits {
		page.Rectangle(h.Point.X-r, h.Point.Y-r, 2*r, 2*r)
		if h.Kind == raycast.Intersection {
			page.Stroke()
		} else {
			page.Fill()
		}
	}

	return page.Close()
}

// pathBuilder is the part of a PDF page used to construct paths.
type pathBuilder interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	CurveTo(x1, y1, x2, y2, x3, y3 float64)
	ClosePath()
}

// drawPath adds a path to the current page.
// Quadratic segments are converted to cubic ones, since PDF does not
// support them.
func drawPath(page pathBuilder, p path.Path) {
	for cmd, pts := range p.ToCubic() {
		switch cmd {
		case path.CmdMoveTo:
			page.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			page.LineTo(pts[0].X, pts[0].Y)
		case path.CmdCubeTo:
			page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case path.CmdClose:
			page.ClosePath()
		}
	}
}

// rayEnds returns two points on the line through from and to, far
// enough apart to cross the whole rectangle b.
func rayEnds(from, to vec.Vec2, b rect.Rect) (vec.Vec2, vec.Vec2) {
	dir := to.Sub(from)
	dir = dir.Mul(1 / dir.Length())

	centre := vec.Vec2{X: (b.LLx + b.URx) / 2, Y: (b.LLy + b.URy) / 2}
	foot := from.Add(dir.Mul(centre.Sub(from).Dot(dir)))
	l := math.Hypot(b.URx-b.LLx, b.URy-b.LLy)
	return foot.Sub(dir.Mul(l)), foot.Add(dir.Mul(l))
}

func renderPNG(pdfPath, pngPath string) error {
	// Render PDF to PNG using Ghostscript
	// -sDEVICE=pnggray: 8-bit grayscale
	// -r72: 72 DPI (1 point = 1 pixel)
	// -dGraphicsAlphaBits=4: 4x supersampling for anti-aliasing
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r72",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
