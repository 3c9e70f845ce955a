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

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// FillSpans determines which pixels inside the clip rectangle are inside
// the graph path g, by casting one horizontal ray through the pixel
// centres of each row.  Pixel (x, y) covers the unit square with lower
// left corner (x, y).  There is no anti-aliasing: each pixel is either
// fully covered or not at all.
//
// Coverage is delivered row-by-row via the emit callback, for every row
// which has at least one covered pixel.  The coverage slice starts at
// column xMin and is only valid for the duration of the callback.
func (c *Caster) FillSpans(g Graph, clip rect.Rect, rule FillRule, emit func(y, xMin int, coverage []float32)) error {
	xMin := int(math.Floor(clip.LLx))
	xMax := int(math.Ceil(clip.URx))
	yMin := int(math.Floor(clip.LLy))
	yMax := int(math.Ceil(clip.URy))
	if xMax <= xMin || yMax <= yMin {
		return nil
	}

	width := xMax - xMin
	if cap(c.cover) < width {
		c.cover = make([]float32, width)
	}
	cover := c.cover[:width]

	for y := yMin; y < yMax; y++ {
		yc := float64(y) + 0.5
		r := Ray{From: vec.Vec2{X: 0, Y: yc}, To: vec.Vec2{X: 1, Y: yc}}
		hits, err := c.Collisions(g, r)
		if err != nil {
			return err
		}
		if len(hits) == 0 {
			continue
		}
		k := lineCoeffs(r)

		clear(cover)
		covered := false
		winding := 0
		x := xMin // first pixel not yet assigned
		for _, h := range hits {
			dir := c.crossingDirection(g, h, k)
			if dir == 0 {
				continue // the path touches the ray here
			}

			// pixels with centres to the left of the hit
			end := int(math.Ceil(h.LineT - 0.5))
			end = min(max(end, xMin), xMax)
			if end > x && rule.inside(winding) {
				for i := x; i < end; i++ {
					cover[i-xMin] = 1
				}
				covered = true
			}
			x = max(x, end)
			winding -= dir
		}

		if covered {
			emit(y, xMin, cover)
		}
	}
	return nil
}

// inside reports whether a point with winding number n is inside the
// path.
func (r FillRule) inside(n int) bool {
	if r == EvenOdd {
		return n%2 != 0
	}
	return n != 0
}
