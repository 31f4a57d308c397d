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

// Package pdfsink implements a [trapezoid.Sink] which writes triangles into
// a single-page PDF file.
//
// The page has a black background and one point per device pixel, with the
// origin at the top-left corner.  Colors are written as DeviceGray, using
// the luminance of the color multiplied by its alpha.  PDF has no additive
// blending, so overlapping passes of oversampled drawing replace each other
// instead of adding up.  Use n = 1 with [trapezoid.TriangulatedPath.Draw],
// or the coverage runs of [trapezoid.CoverageFiller], for correct output.
package pdfsink

import (
	"fmt"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/trapezoid"
)

// Sink writes geometry to a PDF page.
type Sink struct {
	page *document.Page

	ox, oy float64

	gray     float64
	lastGray float64
	fills    int
}

var _ trapezoid.Sink = (*Sink)(nil)

// Create starts a new PDF file with a single page of the given size in
// device pixels.  The caller must call [Sink.Close] to complete the file.
func Create(fname string, width, height int) (*Sink, error) {
	paper := &pdf.Rectangle{
		URx: float64(width),
		URy: float64(height),
	}
	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return nil, fmt.Errorf("pdfsink: %w", err)
	}

	// Black background, so that gray values correspond to coverage.
	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, float64(width), float64(height))
	page.Fill()

	// PDF origin is bottom-left, device space has y pointing down.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(height)})

	s := &Sink{
		page:     page,
		gray:     1,
		lastGray: -1,
	}
	return s, nil
}

// SetColor implements [trapezoid.Sink].
func (s *Sink) SetColor(c trapezoid.Color) {
	lum := 0.2126*float64(c.R) + 0.7152*float64(c.G) + 0.0722*float64(c.B)
	s.gray = max(0, min(1, lum*float64(c.A)))
}

// SetOrigin implements [trapezoid.Sink].
func (s *Sink) SetOrigin(x, y float32) {
	s.ox, s.oy = float64(x), float64(y)
}

// DrawTriangles implements [trapezoid.Sink].
func (s *Sink) DrawTriangles(xy []float32) {
	s.draw(xy, 6)
}

// DrawTriangleStrip implements [trapezoid.Sink].
func (s *Sink) DrawTriangleStrip(xy []float32) {
	s.draw(xy, 2)
}

// draw fills the triangles starting every step values in xy.  The
// triangles of one call never overlap, so the nonzero rule fills each of
// them exactly once, whatever its orientation.
//
// Color operators are not allowed inside a path object, so the fill color
// is written before the first non-degenerate triangle.  Calls without such
// a triangle write nothing.
func (s *Sink) draw(xy []float32, step int) {
	first := -1
	for i := 0; i+6 <= len(xy); i += step {
		if _, ok := s.corners(xy[i : i+6]); ok {
			first = i
			break
		}
	}
	if first < 0 {
		return
	}

	if s.gray != s.lastGray {
		s.page.SetFillColor(color.DeviceGray(s.gray))
		s.lastGray = s.gray
	}
	for i := first; i+6 <= len(xy); i += step {
		c, ok := s.corners(xy[i : i+6])
		if !ok {
			continue
		}
		s.page.MoveTo(c[0], c[1])
		s.page.LineTo(c[2], c[3])
		s.page.LineTo(c[4], c[5])
		s.page.ClosePath()
	}
	s.page.Fill()
	s.fills++
}

// corners returns the vertices of a triangle, shifted by the origin.
// The second return value is false for degenerate triangles.
func (s *Sink) corners(v []float32) ([6]float64, bool) {
	x0, y0 := float64(v[0])+s.ox, float64(v[1])+s.oy
	x1, y1 := float64(v[2])+s.ox, float64(v[3])+s.oy
	x2, y2 := float64(v[4])+s.ox, float64(v[5])+s.oy
	c := [6]float64{x0, y0, x1, y1, x2, y2}
	return c, (x1-x0)*(y2-y0) != (x2-x0)*(y1-y0)
}

// Fills returns the number of fill operations written so far.
func (s *Sink) Fills() int {
	return s.fills
}

// Close completes the PDF file.
func (s *Sink) Close() error {
	if err := s.page.Close(); err != nil {
		return fmt.Errorf("pdfsink: %w", err)
	}
	return nil
}
