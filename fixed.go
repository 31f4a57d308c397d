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

package trapezoid

import "math"

// Fixed is a device-space coordinate in fixed-point representation, with
// [FixedScale] units per pixel.
//
// The decomposer works on integers so that splitting slices at edge
// intersections never accumulates floating-point error.  Products of two
// coordinate differences are evaluated in 64 bits, so coordinates must stay
// within about ±2^23 pixels.
type Fixed int32

// FixedScale is the number of Fixed units per device pixel.
const FixedScale = 128

// ToFixed rounds a device coordinate to the nearest Fixed value.
func ToFixed(x float64) Fixed {
	return Fixed(math.Round(x * FixedScale))
}

// Float converts x back to device coordinates.
func (x Fixed) Float() float32 {
	return float32(x) * (1.0 / FixedScale)
}

// Float64 converts x back to device coordinates.
func (x Fixed) Float64() float64 {
	return float64(x) / FixedScale
}

// lerp returns the x-coordinate at offset num/den along the edge from x0
// to x1.  den must be positive.
func lerp(x0, x1 Fixed, num, den Fixed) Fixed {
	return x0 + Fixed(int64(num)*(int64(x1)-int64(x0))/int64(den))
}
