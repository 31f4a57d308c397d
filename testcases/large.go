// seehuhn.de/go/trapezoid - a 2D rendering library
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

package testcases

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// largeCases contains test cases with many slices and blocks.
var largeCases = []TestCase{
	// Simple large rectangle
	{
		Name:   "large_rectangle",
		Path:   rectangle(50, 50, 462, 462),
		Width:  512,
		Height: 512,
		Rule:   NonZero,
	},

	// Large concentric rectangles
	{
		Name:   "large_concentric_nonzero",
		Path:   concentricRectangles(256, 256, 200, 100),
		Width:  512,
		Height: 512,
		Rule:   NonZero,
	},
	{
		Name:   "large_concentric_evenodd",
		Path:   concentricRectangles(256, 256, 200, 100),
		Width:  512,
		Height: 512,
		Rule:   EvenOdd,
	},

	// Large diamond (diagonal edges)
	{
		Name:   "large_diamond",
		Path:   diamond(256, 256, 180),
		Width:  512,
		Height: 512,
		Rule:   NonZero,
	},

	// Grid of rectangles
	{
		Name:   "large_grid",
		Path:   rectangleGrid(8, 8, 512, 512, 4),
		Width:  512,
		Height: 512,
		Rule:   NonZero,
	},

	// Large shape that extends outside clip bounds, partly outside the canvas
	{
		Name:   "large_clipped",
		Path:   rectangle(-100, 100, 612, 400),
		Width:  512,
		Height: 512,
		Rule:   NonZero,
	},
}

// rectangleGrid builds a grid of rectangles.
func rectangleGrid(rows, cols, width, height int, gap float64) path.Path {
	cellW := float64(width) / float64(cols)
	cellH := float64(height) / float64(rows)

	return func(yield func(path.Command, []vec.Vec2) bool) {
		for row := range rows {
			for col := range cols {
				x1 := float64(col)*cellW + gap
				y1 := float64(row)*cellH + gap
				x2 := float64(col+1)*cellW - gap
				y2 := float64(row+1)*cellH - gap

				if !moveTo(yield, x1, y1) ||
					!lineTo(yield, x2, y1) ||
					!lineTo(yield, x2, y2) ||
					!lineTo(yield, x1, y2) ||
					!closePath(yield) {
					return
				}
			}
		}
	}
}

// concentricRectangles builds two squares around (cx, cy), both drawn
// clockwise.  The inner square is a hole under the even-odd rule only.
func concentricRectangles(cx, cy, outer, inner float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for _, r := range []float64{outer, inner} {
			if !moveTo(yield, cx-r, cy-r) ||
				!lineTo(yield, cx+r, cy-r) ||
				!lineTo(yield, cx+r, cy+r) ||
				!lineTo(yield, cx-r, cy+r) ||
				!closePath(yield) {
				return
			}
		}
	}
}

// diamond builds a square rotated by 45 degrees, with its corners at
// distance r from (cx, cy).
func diamond(cx, cy, r float64) path.Path {
	return polygon(pt(cx, cy-r), pt(cx+r, cy), pt(cx, cy+r), pt(cx-r, cy))
}
