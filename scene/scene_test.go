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

package scene

import (
	"bytes"
	"errors"
	"math"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/trapezoid"
)

type rec struct {
	Cmd path.Command
	Pts []vec.Vec2
}

func record(p path.Path) []rec {
	var res []rec
	for cmd, pts := range p {
		res = append(res, rec{cmd, slices.Clone(pts)})
	}
	return res
}

func TestParsePath(t *testing.T) {
	cases := []struct {
		in   string
		want []rec
	}{
		{
			in: "M1,2 L3,4 Z",
			want: []rec{
				{path.CmdMoveTo, []vec.Vec2{{X: 1, Y: 2}}},
				{path.CmdLineTo, []vec.Vec2{{X: 3, Y: 4}}},
				{path.CmdClose, nil},
			},
		},
		{
			in: "m1 1 l2 0 v2 h-2 z",
			want: []rec{
				{path.CmdMoveTo, []vec.Vec2{{X: 1, Y: 1}}},
				{path.CmdLineTo, []vec.Vec2{{X: 3, Y: 1}}},
				{path.CmdLineTo, []vec.Vec2{{X: 3, Y: 3}}},
				{path.CmdLineTo, []vec.Vec2{{X: 1, Y: 3}}},
				{path.CmdClose, nil},
			},
		},
		{
			in: "M0 0 10 0 10 10",
			want: []rec{
				{path.CmdMoveTo, []vec.Vec2{{X: 0, Y: 0}}},
				{path.CmdLineTo, []vec.Vec2{{X: 10, Y: 0}}},
				{path.CmdLineTo, []vec.Vec2{{X: 10, Y: 10}}},
			},
		},
		{
			in: "M0,0 Q1,1 2,0 C3,1 4,1 5,0",
			want: []rec{
				{path.CmdMoveTo, []vec.Vec2{{X: 0, Y: 0}}},
				{path.CmdQuadTo, []vec.Vec2{{X: 1, Y: 1}, {X: 2, Y: 0}}},
				{path.CmdCubeTo, []vec.Vec2{{X: 3, Y: 1}, {X: 4, Y: 1}, {X: 5, Y: 0}}},
			},
		},
		{
			in: "M1e1 -2.5E-1",
			want: []rec{
				{path.CmdMoveTo, []vec.Vec2{{X: 10, Y: -0.25}}},
			},
		},
		{
			in: "M0,0 L4,0 L4,4 Z l1,1",
			want: []rec{
				{path.CmdMoveTo, []vec.Vec2{{X: 0, Y: 0}}},
				{path.CmdLineTo, []vec.Vec2{{X: 4, Y: 0}}},
				{path.CmdLineTo, []vec.Vec2{{X: 4, Y: 4}}},
				{path.CmdClose, nil},
				{path.CmdLineTo, []vec.Vec2{{X: 1, Y: 1}}},
			},
		},
		{
			in:   "",
			want: nil,
		},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			p, err := ParsePath(tc.in)
			if err != nil {
				t.Fatal(err)
			}
			if d := cmp.Diff(tc.want, record(p)); d != "" {
				t.Error(d)
			}
		})
	}
}

func TestParsePathContinueAfterClose(t *testing.T) {
	// After Z the current point is the subpath start, and the following
	// lines form a second, implicitly closed triangle.
	p, err := ParsePath("M0,0 L10,0 L10,10 Z L0,20 L-10,20")
	if err != nil {
		t.Fatal(err)
	}
	tp := trapezoid.New(p, matrix.Identity, trapezoid.NonZero)
	if area := tp.Area(); math.Abs(area-150) > 1e-6 {
		t.Errorf("area = %g, want 150", area)
	}
}

func TestParsePathErrors(t *testing.T) {
	cases := []struct {
		in  string
		pos int
	}{
		{"L1 2", 1},
		{"M1", 2},
		{"M 1 2 X", 6},
		{"M 1 2 Z 3", 8},
		{"M 1 2 L 3 .", 10},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			_, err := ParsePath(tc.in)
			var se *SyntaxError
			if !errors.As(err, &se) {
				t.Fatalf("got %v, want a SyntaxError", err)
			}
			if se.Pos != tc.pos {
				t.Errorf("error position %d, want %d", se.Pos, tc.pos)
			}
		})
	}
}

func TestFormatPath(t *testing.T) {
	in := "M10,10 L20.5,10 Q25,15 20.5,20 C15,25 12,22 10,20 Z M1,1 L2,1 L1,2 Z"
	p, err := ParsePath(in)
	if err != nil {
		t.Fatal(err)
	}

	out := FormatPath(p)
	q, err := ParsePath(out)
	if err != nil {
		t.Fatalf("cannot parse %q: %v", out, err)
	}
	if d := cmp.Diff(record(p), record(q)); d != "" {
		t.Error(d)
	}
}

const testScene = `
width = 100
height = 50
background = [0.0, 0.0, 0.0]
oversampling = 2

[[shape]]
name = "box"
path = "M10,10 H40 V20 H10 Z"
rule = "evenodd"
color = [1.0, 0.0, 0.0, 0.5]
transform = [2.0, 0.0, 0.0, 2.0, 0.0, 0.0]

[[shape]]
path = "M0,0 L10,0 L0,10 Z"
`

func TestDecode(t *testing.T) {
	s, err := Decode(strings.NewReader(testScene))
	if err != nil {
		t.Fatal(err)
	}

	if s.Width != 100 || s.Height != 50 {
		t.Errorf("size %dx%d, want 100x50", s.Width, s.Height)
	}
	if s.Oversampling != 2 {
		t.Errorf("oversampling %d, want 2", s.Oversampling)
	}
	if s.Flatness != DefaultFlatness {
		t.Errorf("flatness %g, want %g", s.Flatness, DefaultFlatness)
	}
	if s.Background != (trapezoid.Color{A: 1}) {
		t.Errorf("background %v, want opaque black", s.Background)
	}
	if len(s.Shapes) != 2 {
		t.Fatalf("got %d shapes, want 2", len(s.Shapes))
	}

	box := s.Shapes[0]
	if box.Name != "box" || box.Rule != trapezoid.EvenOdd {
		t.Errorf("unexpected first shape %q, %v", box.Name, box.Rule)
	}
	if box.Color != (trapezoid.Color{R: 1, A: 0.5}) {
		t.Errorf("color %v", box.Color)
	}
	if box.CTM != (matrix.Matrix{2, 0, 0, 2, 0, 0}) {
		t.Errorf("CTM %v", box.CTM)
	}

	second := s.Shapes[1]
	if second.Rule != trapezoid.NonZero || second.Color != trapezoid.White || second.CTM != matrix.Identity {
		t.Errorf("defaults not applied: %v %v %v", second.Rule, second.Color, second.CTM)
	}

	layers := s.Triangulate()
	if len(layers) != 2 {
		t.Fatalf("got %d layers", len(layers))
	}
	// 30x10 box, scaled by 2
	if a := layers[0].Path.Area(); math.Abs(a-1200) > 1e-6 {
		t.Errorf("box area = %g, want 1200", a)
	}
	if a := layers[1].Path.Area(); math.Abs(a-50) > 1e-6 {
		t.Errorf("triangle area = %g, want 50", a)
	}
}

func TestDecodeErrors(t *testing.T) {
	cases := map[string]string{
		"size":         "width = 0\nheight = 10\n",
		"unknown key":  "width = 10\nheight = 10\ncolour = 1\n",
		"rule":         "width = 10\nheight = 10\n[[shape]]\npath = \"M0,0 L1,1 L0,1 Z\"\nrule = \"winding\"\n",
		"color":        "width = 10\nheight = 10\n[[shape]]\npath = \"M0,0 L1,1 L0,1 Z\"\ncolor = [1.0, 2.0]\n",
		"range":        "width = 10\nheight = 10\n[[shape]]\npath = \"M0,0 L1,1 L0,1 Z\"\ncolor = [1.0, 2.0, 0.0]\n",
		"transform":    "width = 10\nheight = 10\n[[shape]]\npath = \"M0,0 L1,1 L0,1 Z\"\ntransform = [1.0, 0.0]\n",
		"path":         "width = 10\nheight = 10\n[[shape]]\npath = \"M0,0 L1\"\n",
		"missing path": "width = 10\nheight = 10\n[[shape]]\nname = \"x\"\n",
		"oversampling": "width = 10\nheight = 10\noversampling = 17\n",
		"flatness":     "width = 10\nheight = 10\nflatness = -1.0\n",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := Decode(strings.NewReader(in)); err == nil {
				t.Error("missing error")
			}
		})
	}
}

func TestWrite(t *testing.T) {
	f := &File{
		Width:  64,
		Height: 32,
		Shapes: []ShapeFile{
			{
				Name:  "tri",
				Path:  "M0,0 L10,0 L0,10 Z",
				Rule:  "evenodd",
				Color: []float32{0, 1, 0},
			},
		},
	}
	buf := &bytes.Buffer{}
	if err := f.Write(buf); err != nil {
		t.Fatal(err)
	}

	s, err := Decode(buf)
	if err != nil {
		t.Fatal(err)
	}
	if s.Width != 64 || s.Height != 32 || len(s.Shapes) != 1 {
		t.Fatalf("unexpected scene %+v", s)
	}
	if s.Oversampling != DefaultOversampling {
		t.Errorf("oversampling %d, want %d", s.Oversampling, DefaultOversampling)
	}
	sh := s.Shapes[0]
	if sh.Name != "tri" || sh.Rule != trapezoid.EvenOdd || sh.Color != (trapezoid.Color{G: 1, A: 1}) {
		t.Errorf("unexpected shape %+v", sh)
	}
}
