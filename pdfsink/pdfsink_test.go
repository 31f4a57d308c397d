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

package pdfsink

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/trapezoid"
)

func triangle(x1, y1, x2, y2, x3, y3 float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		_ = yield(path.CmdMoveTo, []vec.Vec2{{X: x1, Y: y1}}) &&
			yield(path.CmdLineTo, []vec.Vec2{{X: x2, Y: y2}}) &&
			yield(path.CmdLineTo, []vec.Vec2{{X: x3, Y: y3}}) &&
			yield(path.CmdClose, nil)
	}
}

func TestWritePDF(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "test.pdf")

	s, err := Create(fname, 64, 64)
	if err != nil {
		t.Fatal(err)
	}

	tp := trapezoid.New(triangle(10, 50, 32, 10, 54, 50), matrix.Identity, trapezoid.NonZero)
	tp.Draw(s, 1)

	s.SetColor(trapezoid.Color{R: 1, G: 1, B: 1, A: 0.5})
	trapezoid.FillRect(s, rect.Rect{LLx: 0, LLy: 0, URx: 8, URy: 8})

	// degenerate geometry does not produce a fill
	s.DrawTriangles([]float32{1, 1, 2, 2, 3, 3})

	if got := s.Fills(); got != 2 {
		t.Errorf("Fills() = %d, want 2", got)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Errorf("output does not start with a PDF header")
	}
}

func TestSetColor(t *testing.T) {
	s := &Sink{}
	s.SetColor(trapezoid.Color{R: 1, G: 1, B: 1, A: 0.25})
	if s.gray < 0.2499 || s.gray > 0.2501 {
		t.Errorf("gray = %g, want 0.25", s.gray)
	}
	s.SetColor(trapezoid.Color{R: 2, G: 2, B: 2, A: 1})
	if s.gray != 1 {
		t.Errorf("gray = %g, want 1", s.gray)
	}
}

func TestColorChanges(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "colors.pdf")

	s, err := Create(fname, 32, 32)
	if err != nil {
		t.Fatal(err)
	}

	s.SetColor(trapezoid.Color{R: 1, G: 1, B: 1, A: 0.25})
	s.DrawTriangles([]float32{0, 0, 8, 0, 0, 8, 8, 8, 8, 0, 0, 8})

	// a call with only degenerate triangles leaves the color unwritten
	s.SetColor(trapezoid.Color{R: 1, G: 1, B: 1, A: 0.5})
	s.DrawTriangleStrip([]float32{0, 0, 1, 1, 2, 2, 3, 3})
	if math.Abs(s.lastGray-0.25) > 1e-6 {
		t.Errorf("lastGray = %g, want 0.25", s.lastGray)
	}

	// a leading degenerate triangle is skipped before the color is set
	s.SetOrigin(10, 10)
	s.DrawTriangleStrip([]float32{0, 0, 1, 1, 2, 2, 2, 0, 4, 4})
	if math.Abs(s.lastGray-0.5) > 1e-6 {
		t.Errorf("lastGray = %g, want 0.5", s.lastGray)
	}

	s.SetColor(trapezoid.Color{R: 1, G: 1, B: 1, A: 1})
	s.SetOrigin(0, 0)
	trapezoid.FillRect(s, rect.Rect{LLx: 20, LLy: 20, URx: 30, URy: 30})

	if got := s.Fills(); got != 3 {
		t.Errorf("Fills() = %d, want 3", got)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}
}
