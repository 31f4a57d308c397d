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

import (
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Sink receives geometry for rendering.
//
// Vertex data is passed as interleaved x, y pairs in device coordinates,
// shifted by the current origin.  The slices are only valid for the
// duration of the call.  For oversampled drawing the sink must blend
// additively, so that n² passes at alpha 1/n² sum to full coverage.
//
// A Sink is a single-writer resource: it must not be used by several
// goroutines at once.
type Sink interface {
	// SetColor sets the fill color for subsequent draw calls.
	SetColor(c Color)

	// SetOrigin moves the origin of the device coordinate system to (x, y).
	SetOrigin(x, y float32)

	// DrawTriangles draws len(xy)/6 independent triangles.
	DrawTriangles(xy []float32)

	// DrawTriangleStrip draws a triangle strip through len(xy)/2 vertices.
	DrawTriangleStrip(xy []float32)
}

// Color is a straight-alpha RGBA color with components in the range [0, 1].
type Color struct {
	R, G, B, A float32
}

// White is opaque white.
var White = Color{1, 1, 1, 1}

// WithAlpha returns c with its alpha multiplied by a.
func (c Color) WithAlpha(a float32) Color {
	c.A *= a
	return c
}

// FillRect fills the axis-aligned rectangle r using the current color.
func FillRect(s Sink, r rect.Rect) {
	x0, y0 := float32(r.LLx), float32(r.LLy)
	x1, y1 := float32(r.URx), float32(r.URy)
	s.DrawTriangleStrip([]float32{x0, y0, x1, y0, x0, y1, x1, y1})
}

// DrawQuad fills the quadrilateral with corners q[0], q[1], q[2], q[3]
// (in order around the outline) using color c.
func DrawQuad(s Sink, q [4]vec.Vec2, c Color) {
	s.SetColor(c)
	s.DrawTriangleStrip([]float32{
		float32(q[0].X), float32(q[0].Y),
		float32(q[1].X), float32(q[1].Y),
		float32(q[3].X), float32(q[3].Y),
		float32(q[2].X), float32(q[2].Y),
	})
}
