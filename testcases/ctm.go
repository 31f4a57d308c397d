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
)

var ctmCases = []TestCase{
	// uniform scaling
	{
		Name:   "scale_2x",
		Path:   rectangle(0, 0, 20, 20),
		Width:  128,
		Height: 128,
		Rule:   NonZero,
		CTM:    matrix.Scale(2, 2).Translate(24, 24),
	},
	{
		Name:   "scale_half",
		Path:   rectangle(0, 0, 80, 80),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
		CTM:    matrix.Scale(0.5, 0.5).Translate(12, 12),
	},
	{
		Name:   "scale_10x",
		Path:   rectangle(0, 0, 4, 4),
		Width:  128,
		Height: 128,
		Rule:   NonZero,
		CTM:    matrix.Scale(10, 10).Translate(44, 44),
	},

	// rotation
	{
		Name:   "rotate_45deg",
		Path:   rectangle(-10, -10, 10, 10),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
		CTM:    matrix.RotateDeg(45).Translate(32, 32),
	},
	{
		Name:   "rotate_90deg",
		Path:   rectangle(-15, -10, 15, 10),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
		CTM:    matrix.RotateDeg(90).Translate(32, 32),
	},
	{
		Name:   "rotate_5deg",
		Path:   rectangle(-20, -10, 20, 10),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
		CTM:    matrix.RotateDeg(5).Translate(32, 32),
	},

	// non-uniform scaling
	{
		Name:   "scale_2x_1y",
		Path:   rectangle(-10, -10, 10, 10),
		Width:  128,
		Height: 64,
		Rule:   NonZero,
		CTM:    matrix.Scale(2, 1).Translate(64, 32),
	},
	{
		Name:   "scale_1x_2y",
		Path:   rectangle(-10, -10, 10, 10),
		Width:  64,
		Height: 128,
		Rule:   NonZero,
		CTM:    matrix.Scale(1, 2).Translate(32, 64),
	},
	{
		Name:   "circle_to_ellipse",
		Path:   circle(0, 0, 15),
		Width:  128,
		Height: 64,
		Rule:   NonZero,
		CTM:    matrix.Scale(2, 1).Translate(64, 32),
	},

	// shear
	{
		Name:   "shear_horizontal",
		Path:   rectangle(-15, -15, 15, 15),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
		// Shear matrix: [1, 0, 0.5, 1, 0, 0] then translate
		CTM: matrix.Matrix{1, 0, 0.5, 1, 0, 0}.Translate(32, 32),
	},
	{
		Name:   "shear_vertical",
		Path:   rectangle(-15, -15, 15, 15),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
		// Shear matrix: [1, 0.5, 0, 1, 0, 0] then translate
		CTM: matrix.Matrix{1, 0.5, 0, 1, 0, 0}.Translate(32, 32),
	},
	{
		Name:   "shear_and_rotate",
		Path:   rectangle(-12, -12, 12, 12),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
		// Shear then rotate 30 degrees
		CTM: matrix.Matrix{1, 0, 0.3, 1, 0, 0}.RotateDeg(30).Translate(32, 32),
	},
}
