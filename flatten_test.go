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
	"math"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

func TestFlattenLines(t *testing.T) {
	got := slices.Collect(Flatten(rectangle(1, 2, 5, 7), matrix.Identity, 0.25))
	want := []Segment{
		{P0: vec.Vec2{X: 1, Y: 2}, P1: vec.Vec2{X: 5, Y: 2}},
		{P0: vec.Vec2{X: 5, Y: 2}, P1: vec.Vec2{X: 5, Y: 7}},
		{P0: vec.Vec2{X: 5, Y: 7}, P1: vec.Vec2{X: 1, Y: 7}},
		{P0: vec.Vec2{X: 1, Y: 7}, P1: vec.Vec2{X: 1, Y: 2}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected segments (-want +got):\n%s", diff)
	}
}

func TestFlattenImplicitClose(t *testing.T) {
	open := func(yield func(path.Command, []vec.Vec2) bool) {
		_ = yield(path.CmdMoveTo, []vec.Vec2{{X: 0, Y: 0}}) &&
			yield(path.CmdLineTo, []vec.Vec2{{X: 4, Y: 0}}) &&
			yield(path.CmdLineTo, []vec.Vec2{{X: 0, Y: 3}}) &&
			// second subpath, also left open
			yield(path.CmdMoveTo, []vec.Vec2{{X: 10, Y: 10}}) &&
			yield(path.CmdLineTo, []vec.Vec2{{X: 12, Y: 10}}) &&
			yield(path.CmdLineTo, []vec.Vec2{{X: 10, Y: 12}})
	}
	got := slices.Collect(Flatten(open, matrix.Identity, 0.25))
	want := []Segment{
		{P0: vec.Vec2{X: 0, Y: 0}, P1: vec.Vec2{X: 4, Y: 0}},
		{P0: vec.Vec2{X: 4, Y: 0}, P1: vec.Vec2{X: 0, Y: 3}},
		{P0: vec.Vec2{X: 0, Y: 3}, P1: vec.Vec2{X: 0, Y: 0}},
		{P0: vec.Vec2{X: 10, Y: 10}, P1: vec.Vec2{X: 12, Y: 10}},
		{P0: vec.Vec2{X: 12, Y: 10}, P1: vec.Vec2{X: 10, Y: 12}},
		{P0: vec.Vec2{X: 10, Y: 12}, P1: vec.Vec2{X: 10, Y: 10}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected segments (-want +got):\n%s", diff)
	}

	// drawing after a close, without a move-to, starts a new open subpath
	reopened := func(yield func(path.Command, []vec.Vec2) bool) {
		_ = yield(path.CmdMoveTo, []vec.Vec2{{X: 0, Y: 0}}) &&
			yield(path.CmdLineTo, []vec.Vec2{{X: 10, Y: 0}}) &&
			yield(path.CmdLineTo, []vec.Vec2{{X: 10, Y: 10}}) &&
			yield(path.CmdClose, nil) &&
			yield(path.CmdLineTo, []vec.Vec2{{X: 0, Y: 20}}) &&
			yield(path.CmdLineTo, []vec.Vec2{{X: -10, Y: 20}})
	}
	got = slices.Collect(Flatten(reopened, matrix.Identity, 0.25))
	want = []Segment{
		{P0: vec.Vec2{X: 0, Y: 0}, P1: vec.Vec2{X: 10, Y: 0}},
		{P0: vec.Vec2{X: 10, Y: 0}, P1: vec.Vec2{X: 10, Y: 10}},
		{P0: vec.Vec2{X: 10, Y: 10}, P1: vec.Vec2{X: 0, Y: 0}},
		{P0: vec.Vec2{X: 0, Y: 0}, P1: vec.Vec2{X: 0, Y: 20}},
		{P0: vec.Vec2{X: 0, Y: 20}, P1: vec.Vec2{X: -10, Y: 20}},
		{P0: vec.Vec2{X: -10, Y: 20}, P1: vec.Vec2{X: 0, Y: 0}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("reopened subpath (-want +got):\n%s", diff)
	}
	if area := New(reopened, matrix.Identity, NonZero).Area(); math.Abs(area-150) > 1e-6 {
		t.Errorf("reopened subpath has area %g, want 150", area)
	}
}

func TestFlattenSkipsZeroLength(t *testing.T) {
	p := func(yield func(path.Command, []vec.Vec2) bool) {
		_ = yield(path.CmdMoveTo, []vec.Vec2{{X: 1, Y: 1}}) &&
			yield(path.CmdLineTo, []vec.Vec2{{X: 1, Y: 1}}) &&
			yield(path.CmdLineTo, []vec.Vec2{{X: 3, Y: 1}}) &&
			yield(path.CmdClose, nil) &&
			// a lone move-to produces nothing
			yield(path.CmdMoveTo, []vec.Vec2{{X: 7, Y: 7}})
	}
	got := slices.Collect(Flatten(p, matrix.Identity, 0.25))
	want := []Segment{
		{P0: vec.Vec2{X: 1, Y: 1}, P1: vec.Vec2{X: 3, Y: 1}},
		{P0: vec.Vec2{X: 3, Y: 1}, P1: vec.Vec2{X: 1, Y: 1}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected segments (-want +got):\n%s", diff)
	}
}

func TestFlattenTransform(t *testing.T) {
	ctm := matrix.Matrix{2, 0, 0, -1, 10, 20}
	got := slices.Collect(Flatten(polygon(vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 1, Y: 2}), ctm, 0.25))
	want := []Segment{
		{P0: vec.Vec2{X: 10, Y: 20}, P1: vec.Vec2{X: 12, Y: 18}},
		{P0: vec.Vec2{X: 12, Y: 18}, P1: vec.Vec2{X: 10, Y: 20}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected segments (-want +got):\n%s", diff)
	}
}

func TestFlattenCurves(t *testing.T) {
	const r = 25.0
	const cx, cy = 32.0, 32.0
	const k = 0.5522847498 * r

	circle := func(yield func(path.Command, []vec.Vec2) bool) {
		_ = yield(path.CmdMoveTo, []vec.Vec2{{X: cx + r, Y: cy}}) &&
			yield(path.CmdCubeTo, []vec.Vec2{{X: cx + r, Y: cy + k}, {X: cx + k, Y: cy + r}, {X: cx, Y: cy + r}}) &&
			yield(path.CmdCubeTo, []vec.Vec2{{X: cx - k, Y: cy + r}, {X: cx - r, Y: cy + k}, {X: cx - r, Y: cy}}) &&
			yield(path.CmdQuadTo, []vec.Vec2{{X: cx - r, Y: cy - r}, {X: cx, Y: cy - r}}) &&
			yield(path.CmdQuadTo, []vec.Vec2{{X: cx + r, Y: cy - r}, {X: cx + r, Y: cy}}) &&
			yield(path.CmdClose, nil)
	}

	for _, flatness := range []float64{0.05, 0.25, 1} {
		segs := slices.Collect(Flatten(circle, matrix.Identity, flatness))
		if len(segs) < 8 {
			t.Errorf("flatness %g: only %d segments", flatness, len(segs))
			continue
		}
		if segs[0].P0 != (vec.Vec2{X: cx + r, Y: cy}) || segs[len(segs)-1].P1 != segs[0].P0 {
			t.Errorf("flatness %g: outline is not closed", flatness)
		}
		for i := 1; i < len(segs); i++ {
			if segs[i].P0 != segs[i-1].P1 {
				t.Errorf("flatness %g: gap after segment %d", flatness, i-1)
			}
		}

		// The lower half is a circle, the upper half consists of two
		// parabolic arcs.  For the circle, check that the chords stay
		// within the tolerance.
		for _, s := range segs {
			if s.P0.Y < cy || s.P1.Y < cy {
				continue
			}
			mid := s.P0.Add(s.P1).Mul(0.5)
			d := r - mid.Sub(vec.Vec2{X: cx, Y: cy}).Length()
			if d > flatness+0.01 {
				t.Errorf("flatness %g: chord deviates by %g", flatness, d)
			}
		}
	}

	coarse := len(slices.Collect(Flatten(circle, matrix.Identity, 1)))
	fine := len(slices.Collect(Flatten(circle, matrix.Identity, 0.05)))
	if fine <= coarse {
		t.Errorf("smaller flatness gave %d segments, larger gave %d", fine, coarse)
	}
	scaled := len(slices.Collect(Flatten(circle, matrix.Matrix{4, 0, 0, 4, 0, 0}, 1)))
	if scaled <= coarse {
		t.Errorf("scaled circle has %d segments, unscaled %d", scaled, coarse)
	}
}

func TestFlattenEarlyStop(t *testing.T) {
	n := 0
	for range Flatten(starPolygon(32, 32, 25, 12, 5), matrix.Identity, 0.25) {
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Errorf("got %d segments, want 3", n)
	}
}

func TestFlattenBadFlatness(t *testing.T) {
	for _, f := range []float64{0, -1, math.NaN()} {
		mustPanic(t, "flatness", func() { Flatten(rectangle(0, 0, 1, 1), matrix.Identity, f) })
	}
}
