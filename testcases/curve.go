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

// kappa for cubic Bezier approximation of a quarter circle
const kappa = 0.5522847498307936

var curveCases = []TestCase{
	{
		Name:   "quadratic",
		Path:   quadraticCurve(10, 50, 32, 10, 54, 50),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "cubic",
		Path:   cubicCurve(10, 50, 20, 10, 44, 10, 54, 50),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "circle",
		Path:   circle(32, 32, 25),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},

	// quadratic Bezier
	{
		Name:   "quadratic_shallow",
		Path:   quadraticCurve(10, 32, 32, 28, 54, 32), // control point near chord
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "quadratic_deep",
		Path:   quadraticCurve(10, 50, 32, 5, 54, 50), // control point far from chord
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "quadratic_below",
		Path:   quadraticCurve(10, 20, 32, 55, 54, 20), // control point below chord (curves down)
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "quadratic_s_shape",
		Path:   sCurveQuadratic(10, 32, 54, 32),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},

	// cubic Bezier
	{
		Name:   "cubic_shallow",
		Path:   cubicCurve(10, 32, 22, 28, 42, 28, 54, 32), // control points near chord
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "cubic_deep",
		Path:   cubicCurve(10, 50, 15, 5, 49, 5, 54, 50), // control points far from chord
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "cubic_scurve",
		Path:   cubicCurve(10, 50, 10, 10, 54, 54, 54, 14), // S-curve with inflection
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "cubic_loop",
		Path:   cubicCurve(10, 32, 60, 5, 4, 59, 54, 32), // self-intersecting loop
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "cubic_loop_evenodd",
		Path:   cubicCurve(10, 32, 60, 5, 4, 59, 54, 32),
		Width:  64,
		Height: 64,
		Rule:   EvenOdd,
	},
	{
		Name:   "cubic_cusp",
		Path:   cubicCurve(10, 50, 54, 10, 10, 10, 54, 50), // cusp (control points crossed)
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "cubic_nearly_straight",
		Path:   cubicCurve(10, 32, 24, 31, 40, 31, 54, 32), // almost a straight line
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},

	// circle and ellipse
	{
		Name:   "circle_small",
		Path:   circle(32, 32, 5), // small radius
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "circle_large",
		Path:   circle(64, 64, 100), // large radius on 128x128 canvas
		Width:  128,
		Height: 128,
		Rule:   NonZero,
	},
	{
		Name:   "ellipse",
		Path:   ellipse(32, 32, 28, 14), // stretched circle
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "arc",
		Path:   arc(32, 32, 25, 0, 0.75), // partial circle (3/4)
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},

	// curve flattening edge cases
	{
		Name:   "curve_many_segments",
		Path:   cubicCurve(5, 60, 5, 5, 123, 5, 123, 60), // very detailed curve on large canvas
		Width:  128,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "curve_minimal_segments",
		Path:   cubicCurve(10, 32, 24, 31.5, 40, 31.5, 54, 32), // nearly flat
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "cubic_degenerate",
		Path:   cubicCurve(32, 32, 32, 32, 32, 32, 32, 32), // all control points coincident
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "quadratic_degenerate",
		Path:   quadraticCurve(10, 32, 10, 32, 54, 32), // control point on start endpoint
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
}

// quadraticCurve builds a closed shape with a quadratic Bezier curve.
func quadraticCurve(x1, y1, cx, cy, x2, y2 float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !moveTo(yield, x1, y1) {
			return
		}
		if !quadTo(yield, pt(cx, cy), pt(x2, y2)) {
			return
		}
		closePath(yield)
	}
}

// cubicCurve builds a closed shape with a cubic Bezier curve.
func cubicCurve(x1, y1, c1x, c1y, c2x, c2y, x2, y2 float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !moveTo(yield, x1, y1) {
			return
		}
		if !cubeTo(yield, pt(c1x, c1y), pt(c2x, c2y), pt(x2, y2)) {
			return
		}
		closePath(yield)
	}
}

// sCurveQuadratic builds a closed S-shaped path from two quadratic Bezier curves.
func sCurveQuadratic(x1, y1, x2, y2 float64) path.Path {
	midX := (x1 + x2) / 2
	midY := (y1 + y2) / 2

	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !moveTo(yield, x1, y1) {
			return
		}
		// first quadratic curves up
		if !quadTo(yield, pt((x1+midX)/2, y1-20), pt(midX, midY)) {
			return
		}
		// second quadratic curves down
		if !quadTo(yield, pt((midX+x2)/2, y2+20), pt(x2, y2)) {
			return
		}
		closePath(yield)
	}
}

// circle builds an approximate circle using four cubic Bezier curves.
func circle(cx, cy, r float64) path.Path {
	return ellipse(cx, cy, r, r)
}

// ellipse builds an approximate ellipse using four cubic Bezier curves.
func ellipse(cx, cy, rx, ry float64) path.Path {
	kx := rx * kappa
	ky := ry * kappa

	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !moveTo(yield, cx+rx, cy) { // start at right
			return
		}
		quadrants := [4][3]vec.Vec2{
			{pt(cx+rx, cy-ky), pt(cx+kx, cy-ry), pt(cx, cy-ry)}, // top-right
			{pt(cx-kx, cy-ry), pt(cx-rx, cy-ky), pt(cx-rx, cy)}, // top-left
			{pt(cx-rx, cy+ky), pt(cx-kx, cy+ry), pt(cx, cy+ry)}, // bottom-left
			{pt(cx+kx, cy+ry), pt(cx+rx, cy+ky), pt(cx+rx, cy)}, // bottom-right
		}
		for _, q := range quadrants {
			if !cubeTo(yield, q[0], q[1], q[2]) {
				return
			}
		}
		closePath(yield)
	}
}

// arc builds a partial circle (pie slice) from startFraction to endFraction (0-1).
// The arc is drawn in whole quadrants, starting from the right.
func arc(cx, cy, r float64, startFraction, endFraction float64) path.Path {
	k := r * kappa

	totalFraction := endFraction - startFraction
	if totalFraction <= 0 {
		return func(yield func(path.Command, []vec.Vec2) bool) {}
	}
	numQuadrants := min(max(int(totalFraction*4), 1), 4)

	quadrants := [4][3]vec.Vec2{
		{pt(cx+r, cy-k), pt(cx+k, cy-r), pt(cx, cy-r)},
		{pt(cx-k, cy-r), pt(cx-r, cy-k), pt(cx-r, cy)},
		{pt(cx-r, cy+k), pt(cx-k, cy+r), pt(cx, cy+r)},
		{pt(cx+k, cy+r), pt(cx+r, cy+k), pt(cx+r, cy)},
	}

	return func(yield func(path.Command, []vec.Vec2) bool) {
		// start at the centre, then line to the start of the arc
		if !moveTo(yield, cx, cy) {
			return
		}
		if !lineTo(yield, cx+r, cy) {
			return
		}
		for _, q := range quadrants[:numQuadrants] {
			if !cubeTo(yield, q[0], q[1], q[2]) {
				return
			}
		}
		closePath(yield)
	}
}
