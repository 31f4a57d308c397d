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
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// TestCase defines a single fill test.
type TestCase struct {
	Name   string        // lowercase a-z, 0-9 and _ only
	Path   path.Path     // the geometry to fill
	Width  int           // canvas width in pixels
	Height int           // canvas height in pixels
	Rule   FillRule      // fill rule
	CTM    matrix.Matrix // transformation matrix (zero-value means no transform)
}

// Matrix returns the transformation matrix of the test case,
// with the zero value replaced by the identity.
func (tc TestCase) Matrix() matrix.Matrix {
	if tc.CTM == (matrix.Matrix{}) {
		return matrix.Identity
	}
	return tc.CTM
}

// FillRule specifies the rule for determining interior points.
type FillRule int

const (
	NonZero FillRule = iota
	EvenOdd
)

func (r FillRule) String() string {
	if r == EvenOdd {
		return "evenodd"
	}
	return "nonzero"
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

func moveTo(yield func(path.Command, []vec.Vec2) bool, x, y float64) bool {
	return yield(path.CmdMoveTo, []vec.Vec2{pt(x, y)})
}

func lineTo(yield func(path.Command, []vec.Vec2) bool, x, y float64) bool {
	return yield(path.CmdLineTo, []vec.Vec2{pt(x, y)})
}

func quadTo(yield func(path.Command, []vec.Vec2) bool, c, p vec.Vec2) bool {
	return yield(path.CmdQuadTo, []vec.Vec2{c, p})
}

func cubeTo(yield func(path.Command, []vec.Vec2) bool, c1, c2, p vec.Vec2) bool {
	return yield(path.CmdCubeTo, []vec.Vec2{c1, c2, p})
}

func closePath(yield func(path.Command, []vec.Vec2) bool) bool {
	return yield(path.CmdClose, nil)
}

// polygon builds a closed path through the given points.
func polygon(pts ...vec.Vec2) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if len(pts) == 0 {
			return
		}
		if !moveTo(yield, pts[0].X, pts[0].Y) {
			return
		}
		for _, p := range pts[1:] {
			if !lineTo(yield, p.X, p.Y) {
				return
			}
		}
		closePath(yield)
	}
}
