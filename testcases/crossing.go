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
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// crossingCases contain paths whose edges cross or coincide.
var crossingCases = []TestCase{
	{
		Name:   "bowtie_nonzero",
		Path:   bowtie(12, 12, 52, 52),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "bowtie_evenodd",
		Path:   bowtie(12, 12, 52, 52),
		Width:  64,
		Height: 64,
		Rule:   EvenOdd,
	},
	{
		Name:   "heptagram_nonzero",
		Path:   starPolygon(32, 32, 28, 7, 3),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "heptagram_evenodd",
		Path:   starPolygon(32, 32, 28, 7, 3),
		Width:  64,
		Height: 64,
		Rule:   EvenOdd,
	},
	{
		Name:   "crossed_triangles",
		Path:   crossedTriangles(32, 32, 24),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "shared_edge",
		Path:   sharedEdge(10, 10, 32, 54, 20),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "identical_squares_nonzero",
		Path:   repeated(rectangle(16, 16, 48, 48), 2),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "identical_squares_evenodd", // empty
		Path:   repeated(rectangle(16, 16, 48, 48), 2),
		Width:  64,
		Height: 64,
		Rule:   EvenOdd,
	},
	{
		Name:   "cancelling_squares", // empty
		Path:   cancellingSquares(16, 16, 48, 48),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "slivers",
		Path:   slivers(4, 60, 8),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "fan",
		Path:   fan(32, 32, 28, 16),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name: "near_parallel",
		Path: polygon(
			pt(20.3, 4.1), pt(44.9, 60.2), pt(44.3, 60.2), pt(21.0, 4.1),
		),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name: "near_tangent",
		Path: subpaths(
			polygon(pt(3.7, 20.2), pt(60.4, 31.1), pt(60.4, 33.3)),
			polygon(pt(3.9, 32.9), pt(3.9, 30.6), pt(60.1, 20.4)),
		),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name: "near_tangent_evenodd",
		Path: subpaths(
			polygon(pt(3.7, 20.2), pt(60.4, 31.1), pt(60.4, 33.3)),
			polygon(pt(3.9, 32.9), pt(3.9, 30.6), pt(60.1, 20.4)),
		),
		Width:  64,
		Height: 64,
		Rule:   EvenOdd,
	},
	{
		Name:   "fan_evenodd",
		Path:   fan(32, 32, 28, 16),
		Width:  64,
		Height: 64,
		Rule:   EvenOdd,
	},
}

// bowtie builds a quadrilateral whose two diagonals are edges.  The two
// halves meet at the centre of the box and have opposite orientation.
func bowtie(x1, y1, x2, y2 float64) path.Path {
	return polygon(pt(x1, y1), pt(x2, y2), pt(x2, y1), pt(x1, y2))
}

// starPolygon builds the regular star polygon {n/k}.
func starPolygon(cx, cy, r float64, n, k int) path.Path {
	pts := make([]vec.Vec2, n)
	for i := range n {
		angle := float64(i*k)*2*math.Pi/float64(n) - math.Pi/2
		pts[i] = pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle))
	}
	return polygon(pts...)
}

// crossedTriangles builds a hexagram from two overlapping triangles,
// drawn in opposite directions.
func crossedTriangles(cx, cy, r float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for _, tri := range [][3]float64{{-90, 30, 150}, {90, -30, -150}} {
			for i, deg := range tri {
				a := deg * math.Pi / 180
				x, y := cx+r*math.Cos(a), cy+r*math.Sin(a)
				var ok bool
				if i == 0 {
					ok = moveTo(yield, x, y)
				} else {
					ok = lineTo(yield, x, y)
				}
				if !ok {
					return
				}
			}
			if !closePath(yield) {
				return
			}
		}
	}
}

// sharedEdge builds two rectangles which touch along the vertical line
// x = xm.
func sharedEdge(x1, y1, xm, x2, h float64) path.Path {
	left := rectangle(x1, y1, xm, y1+h)
	right := rectangle(xm, y1+h/2, x2, y1+2*h)
	return subpaths(left, right)
}

// repeated builds a path which contains all subpaths of p n times.
func repeated(p path.Path, n int) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for range n {
			for cmd, pts := range p {
				if !yield(cmd, pts) {
					return
				}
			}
		}
	}
}

// cancellingSquares builds the same square twice, in opposite directions.
func cancellingSquares(x1, y1, x2, y2 float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for cmd, pts := range rectangle(x1, y1, x2, y2) {
			if !yield(cmd, pts) {
				return
			}
		}
		for cmd, pts := range polygon(pt(x1, y1), pt(x1, y2), pt(x2, y2), pt(x2, y1)) {
			if !yield(cmd, pts) {
				return
			}
		}
	}
}

// slivers builds n long, thin triangles of decreasing height.
func slivers(x1, x2 float64, n int) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		y := 4.0
		for i := range n {
			h := 4 / float64(i+1)
			if !moveTo(yield, x1, y) ||
				!lineTo(yield, x2, y+h/2) ||
				!lineTo(yield, x1, y+h) ||
				!closePath(yield) {
				return
			}
			y += 7
		}
	}
}

// fan builds n thin wedges which all meet at (cx, cy).
func fan(cx, cy, r float64, n int) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for i := range n {
			a0 := float64(2*i) * math.Pi / float64(n)
			a1 := a0 + math.Pi/float64(2*n)
			if !moveTo(yield, cx, cy) ||
				!lineTo(yield, cx+r*math.Cos(a0), cy+r*math.Sin(a0)) ||
				!lineTo(yield, cx+r*math.Cos(a1), cy+r*math.Sin(a1)) ||
				!closePath(yield) {
				return
			}
		}
	}
}
