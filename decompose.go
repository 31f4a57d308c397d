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
	"slices"
)

// noSlice marks the end of the slice chain.
const noSlice = -1

// Interval is the part of one edge which lies inside a horizontal slice.
type Interval struct {
	X1, X2  Fixed // x-coordinate at the top and at the bottom of the slice
	Winding int32 // +1 for downward edges, -1 for upward edges
}

// Slice is a horizontal band [Y1, Y2) of the decomposed path.
// Inside a slice no two intervals cross, and Intervals is sorted from left
// to right.
type Slice struct {
	Y1, Y2    Fixed
	Intervals []Interval
}

// hslice is a node in the slice chain.  Nodes live in Decomposer.slices
// and refer to their successor by index.
type hslice struct {
	y1, y2    Fixed
	next      int
	intervals []Interval
}

// pendingInterval is an interval waiting to be inserted into slice s.
type pendingInterval struct {
	s       int
	x1, x2  Fixed
	winding int32
}

// Decomposer breaks a set of line segments into horizontal slices.
//
// Edges are added one at a time using [Decomposer.AddLine].  Slices are
// split whenever an edge starts or ends inside a slice, or when two edges
// cross, so that every slice holds a sorted list of non-crossing intervals.
// The slices always cover a contiguous range of y values; vertical gaps
// between disjoint shapes are represented by empty slices.
//
// The zero value is an empty Decomposer, ready to use.  Internal buffers
// are kept by [Decomposer.Reset], so that one instance can be reused for
// many paths without allocations.
type Decomposer struct {
	slices []hslice
	first  int
	work   []pendingInterval
	lines  int
}

// Reset removes all edges, preserving buffer capacity.
func (d *Decomposer) Reset() {
	d.slices = d.slices[:0]
	d.first = noSlice
	d.work = d.work[:0]
	d.lines = 0
}

// AddSegment adds a line segment given in device coordinates.
func (d *Decomposer) AddSegment(seg Segment) {
	d.AddLine(ToFixed(seg.P0.X), ToFixed(seg.P0.Y), ToFixed(seg.P1.X), ToFixed(seg.P1.Y))
}

// AddLine adds the directed edge from (x1, y1) to (x2, y2).
// Horizontal edges do not contribute to the winding number and are ignored.
func (d *Decomposer) AddLine(x1, y1, x2, y2 Fixed) {
	winding := int32(1)
	if y2 < y1 {
		x1, x2 = x2, x1
		y1, y2 = y2, y1
		winding = -1
	}
	if y1 == y2 {
		return
	}
	d.lines++

	last := noSlice
	s := d.head()
	for y2 > y1 {
		if s == noSlice {
			// The remaining edge lies below all existing slices.
			if last != noSlice && d.slices[last].y2 < y1 {
				gap := d.newSlice(d.slices[last].y2, y1, noSlice)
				d.link(last, gap)
				last = gap
			}
			n := d.newSlice(y1, y2, noSlice)
			d.slices[n].intervals = append(d.slices[n].intervals, Interval{x1, x2, winding})
			d.link(last, n)
			break
		}

		top, bottom := d.slices[s].y1, d.slices[s].y2
		if bottom > y1 {
			if y1 < top {
				// The edge starts above the chain.
				if y2 <= top {
					n := d.newSlice(y1, y2, s)
					d.slices[n].intervals = append(d.slices[n].intervals, Interval{x1, x2, winding})
					if y2 < top {
						gap := d.newSlice(y2, top, s)
						d.slices[n].next = gap
					}
					d.link(last, n)
					break
				}
				newX := lerp(x1, x2, top-y1, y2-y1)
				n := d.newSlice(y1, top, s)
				d.slices[n].intervals = append(d.slices[n].intervals, Interval{x1, newX, winding})
				d.link(last, n)
				last = n
				x1, y1 = newX, top
				continue
			} else if y1 > top {
				d.split(s, y1)
				s = d.slices[s].next
				bottom = d.slices[s].y2
			}

			if y2 > bottom {
				newX := lerp(x1, x2, bottom-y1, y2-y1)
				d.insert(s, x1, newX, winding)
				x1, y1 = newX, bottom
			} else {
				if y2 < bottom {
					d.split(s, y2)
				}
				d.insert(s, x1, x2, winding)
				break
			}
		}

		last = s
		s = d.slices[s].next
	}
}

// head returns the index of the first slice, or noSlice.
func (d *Decomposer) head() int {
	if len(d.slices) == 0 {
		return noSlice
	}
	return d.first
}

// link makes n the successor of last, or the head of the chain if last is
// noSlice.
func (d *Decomposer) link(last, n int) {
	if last == noSlice {
		d.first = n
	} else {
		d.slices[last].next = n
	}
}

// newSlice allocates an empty slice covering [y1, y2).
// Pointers into d.slices are invalid after this call.
func (d *Decomposer) newSlice(y1, y2 Fixed, next int) int {
	if y2 <= y1 {
		panic("trapezoid: empty slice")
	}
	idx := len(d.slices)
	if idx < cap(d.slices) {
		d.slices = d.slices[:idx+1]
		s := &d.slices[idx]
		s.y1, s.y2, s.next = y1, y2, next
		s.intervals = s.intervals[:0]
	} else {
		d.slices = append(d.slices, hslice{y1: y1, y2: y2, next: next})
	}
	return idx
}

// split cuts slice s at height y, which must lie strictly inside the slice.
// The lower half becomes a new slice following s.  Each interval's x at the
// cut is interpolated once and shared by both halves.
func (d *Decomposer) split(s int, y Fixed) {
	top, bottom := d.slices[s].y1, d.slices[s].y2
	if y <= top || y >= bottom {
		panic("trapezoid: split outside slice")
	}

	n := d.newSlice(y, bottom, d.slices[s].next)
	old := &d.slices[s]
	lower := &d.slices[n]
	lower.intervals = append(lower.intervals, old.intervals...)
	old.y2 = y
	old.next = n

	dy1 := y - top
	dy2 := bottom - top
	for i := range old.intervals {
		l := &old.intervals[i]
		x := lerp(l.X1, l.X2, dy1, dy2)
		lower.intervals[i].X1 = x
		l.X2 = x
	}
}

// insert adds the interval (x1, x2) to slice s, which it spans vertically.
//
// If the new interval crosses an existing one, s is split at the crossing
// and the two halves of the interval are queued for the two new slices.
// Each queued piece only ever splits its own slice, so the work list holds
// at most one entry per edge crossing the original slice.
func (d *Decomposer) insert(s int, x1, x2 Fixed, winding int32) {
	d.work = append(d.work[:0], pendingInterval{s, x1, x2, winding})
	for len(d.work) > 0 {
		p := d.work[len(d.work)-1]
		d.work = d.work[:len(d.work)-1]
		d.insertOne(p)
	}
}

func (d *Decomposer) insertOne(p pendingInterval) {
	sl := &d.slices[p.s]
	dy := sl.y2 - sl.y1

	for i, l := range sl.intervals {
		diff1 := l.X1 - p.x1
		diff2 := l.X2 - p.x2

		if (diff1 < 0) == (diff2 > 0) {
			// The edges swap order between the top and the bottom.
			dx1 := l.X2 - l.X1
			dx2 := p.x2 - p.x1
			dxDiff := int64(dx2) - int64(dx1)
			if dxDiff != 0 {
				iy := Fixed(int64(dy) * int64(diff1) / dxDiff)
				if iy > 0 && iy < dy {
					ix := p.x1 + Fixed(int64(iy)*int64(dx2)/int64(dy))
					next := d.splitAt(p.s, sl.y1+iy)
					// Both edges pass through the crossing point, so that
					// the halves of p cannot cross l again.
					d.slices[p.s].intervals[i].X2 = ix
					d.slices[next].intervals[i].X1 = ix
					d.work = append(d.work,
						pendingInterval{p.s, p.x1, ix, p.winding},
						pendingInterval{next, ix, p.x2, p.winding})
					return
				}
			}
		}

		if int64(diff1)+int64(diff2) > 0 {
			sl.intervals = slices.Insert(sl.intervals, i, Interval{p.x1, p.x2, p.winding})
			return
		}
	}

	sl.intervals = append(sl.intervals, Interval{p.x1, p.x2, p.winding})
}

// splitAt splits slice s at y and returns the index of the lower half.
func (d *Decomposer) splitAt(s int, y Fixed) int {
	d.split(s, y)
	return d.slices[s].next
}

// NumSlices returns the number of slices in the chain.
func (d *Decomposer) NumSlices() int {
	n := 0
	for s := d.head(); s != noSlice; s = d.slices[s].next {
		n++
	}
	return n
}

// NumLines returns the number of non-horizontal edges added since the last
// reset.
func (d *Decomposer) NumLines() int {
	return d.lines
}

// Slices iterates over the slices from top to bottom.
// The Intervals slice is only valid until the next call to AddLine or Reset.
func (d *Decomposer) Slices() iter.Seq[Slice] {
	return func(yield func(Slice) bool) {
		for s := d.head(); s != noSlice; s = d.slices[s].next {
			sl := &d.slices[s]
			if !yield(Slice{Y1: sl.y1, Y2: sl.y2, Intervals: sl.intervals}) {
				return
			}
		}
	}
}

// Span is a filled trapezoid inside one slice, bounded on the left and on
// the right by two edges of the path.
type Span struct {
	Y1, Y2 Fixed

	LeftTop, LeftBottom   Fixed
	RightTop, RightBottom Fixed
}

// IsTriangle reports whether the two edges of s meet at the top or at the
// bottom of the slice.
func (s Span) IsTriangle() bool {
	return s.LeftTop == s.RightTop || s.LeftBottom == s.RightBottom
}

// Area returns the area of s in square device pixels.
func (s Span) Area() float64 {
	w := float64(s.RightTop-s.LeftTop) + float64(s.RightBottom-s.LeftBottom)
	return w / 2 * float64(s.Y2-s.Y1) / (FixedScale * FixedScale)
}

// Spans iterates over the filled parts of all slices, from top to bottom
// and from left to right, using the given fill rule.
//
// Walking the sorted intervals of a slice, a running sum of the windings is
// kept.  Whenever the sum returns to an unfilled value, the region between
// the interval where filling started and the current interval is yielded.
// Spans of zero width are skipped.
func (d *Decomposer) Spans(rule FillRule) iter.Seq[Span] {
	mask := rule.mask()
	return func(yield func(Span) bool) {
		for s := d.head(); s != noSlice; s = d.slices[s].next {
			sl := &d.slices[s]
			segs := sl.intervals
			if len(segs) < 2 {
				continue
			}

			start := 0
			winding := segs[0].Winding
			for i := 1; i < len(segs); i++ {
				winding += segs[i].Winding
				if winding&mask != 0 {
					continue
				}

				left, right := segs[start], segs[i]
				start = i + 1
				if left.X1 == right.X1 && left.X2 == right.X2 {
					continue
				}
				span := Span{
					Y1:          sl.y1,
					Y2:          sl.y2,
					LeftTop:     left.X1,
					LeftBottom:  left.X2,
					RightTop:    right.X1,
					RightBottom: right.X2,
				}
				if !yield(span) {
					return
				}
			}
		}
	}
}
