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
	"iter"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Segment is a straight edge in device coordinates.
type Segment struct {
	P0, P1 vec.Vec2
}

// flattener turns a path into device-space line segments.
type flattener struct {
	ctm      matrix.Matrix
	flatness float64
	yield    func(Segment) bool
	stopped  bool
}

// Flatten returns the line segments which approximate the filled outline
// of p in device space.  Curves are subdivided until they deviate from the
// segments by at most flatness device pixels.  Open subpaths are closed
// implicitly, as required for filling.  Zero-length segments are omitted.
func Flatten(p path.Path, ctm matrix.Matrix, flatness float64) iter.Seq[Segment] {
	if !(flatness > 0) {
		panic("trapezoid: flatness must be positive")
	}
	return func(yield func(Segment) bool) {
		f := &flattener{ctm: ctm, flatness: flatness, yield: yield}
		f.walk(p)
	}
}

func (f *flattener) walk(p path.Path) {
	var current vec.Vec2 // current point (user space)
	var subpath vec.Vec2 // subpath start (user space)
	open := false

	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			if open {
				f.line(current, subpath)
			}
			current = pts[0]
			subpath = current
			open = true

		case path.CmdLineTo:
			// drawing after a close starts a new subpath at the old start
			f.line(current, pts[0])
			current = pts[0]
			open = true

		case path.CmdQuadTo:
			f.quadratic(current, pts[0], pts[1])
			current = pts[1]
			open = true

		case path.CmdCubeTo:
			f.cubic(current, pts[0], pts[1], pts[2])
			current = pts[2]
			open = true

		case path.CmdClose:
			f.line(current, subpath)
			current = subpath
			open = false
		}
		if f.stopped {
			return
		}
	}
	if open {
		f.line(current, subpath)
	}
}

// line emits the segment from p0 to p1, given in user space.
func (f *flattener) line(p0, p1 vec.Vec2) {
	if f.stopped || p0 == p1 {
		return
	}
	seg := Segment{P0: f.apply(p0), P1: f.apply(p1)}
	if !f.yield(seg) {
		f.stopped = true
	}
}

// apply maps a point from user space to device space.
func (f *flattener) apply(p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: f.ctm[0]*p.X + f.ctm[2]*p.Y + f.ctm[4],
		Y: f.ctm[1]*p.X + f.ctm[3]*p.Y + f.ctm[5],
	}
}

// applyLinear applies only the 2×2 linear part of the CTM to a vector.
// Used for tolerance checks, where translation is irrelevant.
func (f *flattener) applyLinear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: f.ctm[0]*v.X + f.ctm[2]*v.Y,
		Y: f.ctm[1]*v.X + f.ctm[3]*v.Y,
	}
}

// quadratic flattens the quadratic Bézier curve p0, p1, p2 (user space).
func (f *flattener) quadratic(p0, p1, p2 vec.Vec2) {
	// e = (P0 - 2*P1 + P2) / 4
	e := f.applyLinear(p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25))

	n := 1
	if errDev := e.Length(); errDev > f.flatness {
		n = int(math.Ceil(math.Sqrt(errDev / f.flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		pt := p0.Mul(omt * omt).Add(p1.Mul(2 * omt * t)).Add(p2.Mul(t * t))
		if i == n {
			pt = p2
		}
		f.line(prev, pt)
		prev = pt
	}
}

// cubic flattens the cubic Bézier curve p0, p1, p2, p3 (user space).
// The number of segments is chosen using Wang's formula.
func (f *flattener) cubic(p0, p1, p2, p3 vec.Vec2) {
	d1 := f.applyLinear(p0.Sub(p1.Mul(2)).Add(p2))
	d2 := f.applyLinear(p1.Sub(p2.Mul(2)).Add(p3))

	n := 1
	if m := max(d1.Length(), d2.Length()); m > 0 {
		// n = ceil(sqrt(3 * m / (4 * ε)))
		if nf := math.Sqrt(3 * m / (4 * f.flatness)); nf > 1 {
			n = int(math.Ceil(nf))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		omt2 := omt * omt
		t2 := t * t
		pt := p0.Mul(omt2 * omt).Add(p1.Mul(3 * omt2 * t)).Add(p2.Mul(3 * omt * t2)).Add(p3.Mul(t2 * t))
		if i == n {
			pt = p3
		}
		f.line(prev, pt)
		prev = pt
	}
}
