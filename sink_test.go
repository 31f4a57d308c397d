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
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// sinkCall is one method call recorded by recordingSink.
type sinkCall struct {
	Op    string
	Color Color
	X, Y  float32
	XY    []float32
}

// recordingSink is a Sink which records all calls.
type recordingSink struct {
	calls []sinkCall
}

func (s *recordingSink) SetColor(c Color) {
	s.calls = append(s.calls, sinkCall{Op: "color", Color: c})
}

func (s *recordingSink) SetOrigin(x, y float32) {
	s.calls = append(s.calls, sinkCall{Op: "origin", X: x, Y: y})
}

func (s *recordingSink) DrawTriangles(xy []float32) {
	s.calls = append(s.calls, sinkCall{Op: "triangles", XY: append([]float32(nil), xy...)})
}

func (s *recordingSink) DrawTriangleStrip(xy []float32) {
	s.calls = append(s.calls, sinkCall{Op: "strip", XY: append([]float32(nil), xy...)})
}

// ops returns the calls with the given operation name.
func (s *recordingSink) ops(op string) []sinkCall {
	var res []sinkCall
	for _, c := range s.calls {
		if c.Op == op {
			res = append(res, c)
		}
	}
	return res
}

func TestFillRect(t *testing.T) {
	s := &recordingSink{}
	FillRect(s, rect.Rect{LLx: 1, LLy: 2, URx: 5, URy: 7})

	want := []sinkCall{
		{Op: "strip", XY: []float32{1, 2, 5, 2, 1, 7, 5, 7}},
	}
	if d := cmp.Diff(want, s.calls); d != "" {
		t.Errorf("unexpected calls (-want +got):\n%s", d)
	}
}

func TestDrawQuad(t *testing.T) {
	s := &recordingSink{}
	q := [4]vec.Vec2{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 5, Y: 3}, {X: 1, Y: 3}}
	red := Color{R: 1, A: 0.5}
	DrawQuad(s, q, red)

	// The strip visits the corners in the order 0, 1, 3, 2.
	want := []sinkCall{
		{Op: "color", Color: red},
		{Op: "strip", XY: []float32{0, 0, 4, 0, 1, 3, 5, 3}},
	}
	if d := cmp.Diff(want, s.calls); d != "" {
		t.Errorf("unexpected calls (-want +got):\n%s", d)
	}
}

func TestWithAlpha(t *testing.T) {
	c := Color{R: 0.5, G: 0.25, B: 1, A: 0.5}.WithAlpha(0.5)
	want := Color{R: 0.5, G: 0.25, B: 1, A: 0.25}
	if c != want {
		t.Errorf("got %v, want %v", c, want)
	}
	if White.WithAlpha(1) != White {
		t.Error("WithAlpha(1) changed the color")
	}
}

func TestFillRuleFills(t *testing.T) {
	cases := []struct {
		rule    FillRule
		winding int
		want    bool
	}{
		{NonZero, 0, false},
		{NonZero, 1, true},
		{NonZero, -1, true},
		{NonZero, 2, true},
		{EvenOdd, 0, false},
		{EvenOdd, 1, true},
		{EvenOdd, -1, true},
		{EvenOdd, 2, false},
		{EvenOdd, -2, false},
		{EvenOdd, 3, true},
	}
	for _, c := range cases {
		if got := c.rule.Fills(c.winding); got != c.want {
			t.Errorf("%s.Fills(%d) = %t, want %t", c.rule, c.winding, got, c.want)
		}
	}
}
