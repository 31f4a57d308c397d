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

// Package trapezoid converts filled vector paths into triangle lists for
// immediate-mode rendering pipelines.
//
// A path is first flattened into line segments, which a [Decomposer] sorts
// into horizontal slices of non-crossing edges.  Each slice is then cut into
// trapezoids (or triangles, where two edges meet) according to the fill
// rule, and the resulting vertices are stored in a [TriangulatedPath].
//
// Antialiasing is done by geometric oversampling: [TriangulatedPath.Draw]
// submits the geometry n×n times at sub-pixel offsets with alpha 1/n², and
// relies on additive blending in the [Sink] to reconstruct partial coverage.
// A [CoverageFiller] is available as an alternative which computes exact
// pixel coverage on the CPU and submits horizontal runs instead.
package trapezoid

import "fmt"

// FillRule determines which regions of a self-overlapping path are inside.
type FillRule int

const (
	// NonZero fills every point with a non-zero winding number.
	NonZero FillRule = iota

	// EvenOdd fills every point with an odd winding number.
	EvenOdd
)

// mask returns the bit mask applied to the running winding number.
// A span between two edges is closed when (winding & mask) == 0.
func (r FillRule) mask() int32 {
	if r == EvenOdd {
		return 1
	}
	return -1
}

// Fills reports whether a point with the given winding number is inside.
func (r FillRule) Fills(winding int) bool {
	return int32(winding)&r.mask() != 0
}

func (r FillRule) String() string {
	switch r {
	case NonZero:
		return "nonzero"
	case EvenOdd:
		return "evenodd"
	}
	return fmt.Sprintf("FillRule(%d)", int(r))
}

// Default values for triangulation parameters.
const (
	// defaultFlatness is the default curve flattening tolerance in device
	// pixels. Values of 0.25-1.0 are typical; 0.25 is below the threshold
	// of visual perception.
	defaultFlatness = 0.25
)
