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

// subpathCases contain paths made of several subpaths, which the
// decomposer has to merge into one slice chain.
var subpathCases = []TestCase{
	{
		Name:   "two_triangles",
		Path:   subpaths(isoTriangle(16, 32, 12), isoTriangle(48, 32, 12)),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "overlapping_rect_nonzero",
		Path:   subpaths(rectangle(10, 10, 40, 40), rectangle(24, 24, 54, 54)),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "overlapping_rect_evenodd",
		Path:   subpaths(rectangle(10, 10, 40, 40), rectangle(24, 24, 54, 54)),
		Width:  64,
		Height: 64,
		Rule:   EvenOdd,
	},
	{
		Name:   "ring_shape",
		Path:   squareRing(32, 32, 25, 12, false),
		Width:  64,
		Height: 64,
		Rule:   EvenOdd,
	},
	{
		Name:   "ring_reversed_nonzero",
		Path:   squareRing(32, 32, 25, 12, true),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name: "multiple_rings",
		Path: subpaths(
			squareRing(2, 2, 20, 10, false),
			squareRing(62, 2, 20, 10, false),
			squareRing(32, 62, 20, 10, false),
		),
		Width:  128,
		Height: 128,
		Rule:   EvenOdd,
	},
	{
		Name:   "many_small_shapes",
		Path:   triangleGrid(8, 8, 5, 14),
		Width:  128,
		Height: 128,
		Rule:   NonZero,
	},
	{
		Name:   "reopened_subpath", // drawing continues after a close
		Path:   reopened(),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
}

// subpaths builds a path containing the subpaths of all ps, in order.
func subpaths(ps ...path.Path) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for _, p := range ps {
			for cmd, pts := range p {
				if !yield(cmd, pts) {
					return
				}
			}
		}
	}
}

// isoTriangle builds an isosceles triangle with its apex at the top,
// centred on (cx, cy).
func isoTriangle(cx, cy, size float64) path.Path {
	return polygon(pt(cx, cy-size), pt(cx+size, cy+size), pt(cx-size, cy+size))
}

// squareRing builds a square with a square hole.  If reverse is set, the
// inner square runs against the outer one, so that the hole appears under
// both fill rules.
func squareRing(cx, cy, outer, inner float64, reverse bool) path.Path {
	hole := rectangle(cx-inner, cy-inner, cx+inner, cy+inner)
	if reverse {
		hole = polygon(
			pt(cx-inner, cy-inner), pt(cx-inner, cy+inner),
			pt(cx+inner, cy+inner), pt(cx+inner, cy-inner),
		)
	}
	return subpaths(rectangle(cx-outer, cy-outer, cx+outer, cy+outer), hole)
}

// triangleGrid builds rows×cols small triangles.
func triangleGrid(rows, cols int, size, spacing float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for row := range rows {
			for col := range cols {
				tri := isoTriangle(10+float64(col)*spacing, 10+float64(row)*spacing, size)
				for cmd, pts := range tri {
					if !yield(cmd, pts) {
						return
					}
				}
			}
		}
	}
}

// reopened builds a triangle, closes it, and draws a second triangle from
// the start point without a new move-to.
func reopened() path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		_ = moveTo(yield, 10, 10) &&
			lineTo(yield, 40, 10) &&
			lineTo(yield, 40, 40) &&
			closePath(yield) &&
			lineTo(yield, 10, 54) &&
			lineTo(yield, 2, 54)
	}
}
