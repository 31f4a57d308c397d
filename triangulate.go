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
	"seehuhn.de/go/geom/rect"
)

// blockCapacity is the number of float32 values in a triangle block.
// Some drivers reject very large vertex arrays, so the triangles are
// submitted in blocks of at most 256 trapezoids.
const blockCapacity = 256 * 6

// TriangulatedPath holds the triangles covering a filled path.
//
// Vertices are stored as x, y pairs of float32 in device coordinates,
// three vertices per triangle, in blocks of at most blockCapacity values.
// A TriangulatedPath is immutable once constructed, except that
// [TriangulatedPath.OptimiseStorage] may shrink its buffers.
type TriangulatedPath struct {
	blocks [][]float32

	triangles  int
	trapezoids int

	// bounding box of all vertices
	empty                  bool
	xMin, xMax, yMin, yMax Fixed

	finalized bool
}

// New triangulates the path p, transformed to device space by ctm, using
// the given fill rule and the default flatness.
func New(p path.Path, ctm matrix.Matrix, rule FillRule) *TriangulatedPath {
	t := NewTriangulator()
	t.CTM = ctm
	t.Rule = rule
	return t.Triangulate(p)
}

func newTriangulatedPath() *TriangulatedPath {
	tp := &TriangulatedPath{empty: true}
	tp.startNewBlock()
	return tp
}

func (tp *TriangulatedPath) startNewBlock() {
	tp.blocks = append(tp.blocks, make([]float32, 0, blockCapacity))
	if len(tp.blocks) > 1 {
		Logger().Debug("new triangle block", "blocks", len(tp.blocks))
	}
}

// reserve makes sure the current block has room for n more values.
func (tp *TriangulatedPath) reserve(n int) []float32 {
	if tp.finalized {
		panic("trapezoid: triangulated path is finalized")
	}
	if len(tp.blocks[len(tp.blocks)-1])+n > blockCapacity {
		tp.startNewBlock()
	}
	return tp.blocks[len(tp.blocks)-1]
}

func (tp *TriangulatedPath) addTriangle(x1, y1, x2, y2, x3, y3 float32) {
	b := tp.reserve(6)
	tp.blocks[len(tp.blocks)-1] = append(b, x1, y1, x2, y2, x3, y3)
	tp.triangles++
}

// addTrapezoid adds the quad with horizontal edges at y1 and y2.  The left
// edge runs from x1 (top) to x2 (bottom), the right edge from x3 to x4.
func (tp *TriangulatedPath) addTrapezoid(y1, y2, x1, x2, x3, x4 float32) {
	b := tp.reserve(12)
	tp.blocks[len(tp.blocks)-1] = append(b,
		x1, y1, x2, y2, x3, y1,
		x4, y2, x2, y2, x3, y1)
	tp.trapezoids++
}

// addSpan converts a filled span into one or two triangles.
func (tp *TriangulatedPath) addSpan(sp Span) {
	y1, y2 := sp.Y1.Float(), sp.Y2.Float()
	lt, lb := sp.LeftTop.Float(), sp.LeftBottom.Float()
	rt, rb := sp.RightTop.Float(), sp.RightBottom.Float()

	switch {
	case sp.LeftTop == sp.RightTop:
		tp.addTriangle(lt, y1, lb, y2, rb, y2)
	case sp.LeftBottom == sp.RightBottom:
		tp.addTriangle(lt, y1, rt, y1, lb, y2)
	default:
		tp.addTrapezoid(y1, y2, lt, lb, rt, rb)
	}

	xMin := min(sp.LeftTop, sp.LeftBottom)
	xMax := max(sp.RightTop, sp.RightBottom)
	if tp.empty {
		tp.xMin, tp.xMax, tp.yMin, tp.yMax = xMin, xMax, sp.Y1, sp.Y2
		tp.empty = false
	} else {
		tp.xMin = min(tp.xMin, xMin)
		tp.xMax = max(tp.xMax, xMax)
		tp.yMin = min(tp.yMin, sp.Y1)
		tp.yMax = max(tp.yMax, sp.Y2)
	}
}

// Draw renders the path in white using n×n oversampling.
// See [TriangulatedPath.DrawColor].
func (tp *TriangulatedPath) Draw(s Sink, n int) {
	tp.DrawColor(s, White, n)
}

// DrawColor renders the path with color c, using n×n oversampling.
//
// The geometry is submitted n² times.  For each pass the origin is moved to
// the centre of one cell of an n×n grid spanning one pixel, and the alpha
// of c is divided by n².  With additive blending in the sink, the passes
// sum to an approximation of the pixel coverage.  For n = 1 the path is
// drawn once, at the original position and with the alpha of c.
//
// n must be at least 1.  The origin is reset to (0, 0) afterwards.
func (tp *TriangulatedPath) DrawColor(s Sink, c Color, n int) {
	if n < 1 {
		panic("trapezoid: oversampling level must be positive")
	}

	s.SetColor(c.WithAlpha(1 / float32(n*n)))

	inc := 1 / float32(n)
	for j := range n {
		dy := (float32(j)+0.5)*inc - 0.5
		for i := range n {
			dx := (float32(i)+0.5)*inc - 0.5
			s.SetOrigin(dx, dy)
			for _, b := range tp.blocks {
				if len(b) > 0 {
					s.DrawTriangles(b)
				}
			}
		}
	}
	s.SetOrigin(0, 0)

	Logger().Debug("draw triangulated path",
		"passes", n*n,
		"blocks", len(tp.blocks),
		"vertices", tp.NumVertices())
}

// OptimiseStorage releases the unused capacity of the last block.
// Calling it more than once has no further effect.
func (tp *TriangulatedPath) OptimiseStorage() {
	last := len(tp.blocks) - 1
	if b := tp.blocks[last]; cap(b) > len(b) {
		nb := make([]float32, len(b))
		copy(nb, b)
		tp.blocks[last] = nb
	}
}

// Blocks iterates over the vertex blocks.  Each block holds x, y pairs,
// six values per triangle.  The slices must not be modified.
func (tp *TriangulatedPath) Blocks() iter.Seq[[]float32] {
	return func(yield func([]float32) bool) {
		for _, b := range tp.blocks {
			if !yield(b) {
				return
			}
		}
	}
}

// NumBlocks returns the number of vertex blocks.
func (tp *TriangulatedPath) NumBlocks() int {
	return len(tp.blocks)
}

// NumVertices returns the total number of vertices in all blocks.
func (tp *TriangulatedPath) NumVertices() int {
	n := 0
	for _, b := range tp.blocks {
		n += len(b) / 2
	}
	return n
}

// Triangles returns the number of spans which were stored as a single
// triangle.
func (tp *TriangulatedPath) Triangles() int {
	return tp.triangles
}

// Trapezoids returns the number of spans which were stored as a pair of
// triangles.
func (tp *TriangulatedPath) Trapezoids() int {
	return tp.trapezoids
}

// IsEmpty reports whether the path covers no area.
func (tp *TriangulatedPath) IsEmpty() bool {
	return tp.empty
}

// Bounds returns the bounding box of all vertices in device coordinates.
// The result is the zero rectangle for an empty path.
func (tp *TriangulatedPath) Bounds() rect.Rect {
	if tp.empty {
		return rect.Rect{}
	}
	return rect.Rect{
		LLx: tp.xMin.Float64(),
		LLy: tp.yMin.Float64(),
		URx: tp.xMax.Float64(),
		URy: tp.yMax.Float64(),
	}
}

// Area returns the total area of all triangles in square device pixels.
func (tp *TriangulatedPath) Area() float64 {
	var area float64
	for _, b := range tp.blocks {
		for i := 0; i+6 <= len(b); i += 6 {
			ax, ay := float64(b[i]), float64(b[i+1])
			bx, by := float64(b[i+2]), float64(b[i+3])
			cx, cy := float64(b[i+4]), float64(b[i+5])
			area += math.Abs((bx-ax)*(cy-ay)-(cx-ax)*(by-ay)) / 2
		}
	}
	return area
}

// Triangulator converts paths into [TriangulatedPath] values.
// The caller creates one instance and reuses it for multiple paths;
// the internal slice buffers grow as needed but are not released.
//
// A Triangulator is not safe for concurrent use.
type Triangulator struct {
	// CTM transforms from user space to device space.
	CTM matrix.Matrix

	// Flatness is the curve flattening tolerance in device pixels.
	// Must be > 0.
	Flatness float64

	// Rule selects the fill rule.
	Rule FillRule

	dec Decomposer
}

// NewTriangulator returns a Triangulator with the identity transformation,
// the default flatness and the nonzero winding rule.
func NewTriangulator() *Triangulator {
	return &Triangulator{
		CTM:      matrix.Identity,
		Flatness: defaultFlatness,
		Rule:     NonZero,
	}
}

// Reset restores the default parameters, preserving buffer capacity.
func (t *Triangulator) Reset() {
	t.CTM = matrix.Identity
	t.Flatness = defaultFlatness
	t.Rule = NonZero
	t.dec.Reset()
}

// Triangulate flattens p and returns its triangulation.
func (t *Triangulator) Triangulate(p path.Path) *TriangulatedPath {
	return t.TriangulateSegments(Flatten(p, t.CTM, t.Flatness))
}

// TriangulateSegments returns the triangulation of the polygon formed by
// segs, which are given in device coordinates.  The CTM and Flatness
// fields are not used.
func (t *Triangulator) TriangulateSegments(segs iter.Seq[Segment]) *TriangulatedPath {
	t.dec.Reset()
	for seg := range segs {
		t.dec.AddSegment(seg)
	}

	tp := newTriangulatedPath()
	for sp := range t.dec.Spans(t.Rule) {
		tp.addSpan(sp)
	}
	tp.finalized = true

	Logger().Debug("triangulated path",
		"rule", t.Rule,
		"edges", t.dec.NumLines(),
		"slices", t.dec.NumSlices(),
		"triangles", tp.triangles,
		"trapezoids", tp.trapezoids,
		"blocks", len(tp.blocks))

	t.dec.Reset()
	return tp
}
