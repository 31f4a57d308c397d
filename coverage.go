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
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
)

// coverageEdge is a line segment in device coordinates, as used by the
// CoverageFiller.
type coverageEdge struct {
	x0, y0 float64 // start point
	x1, y1 float64 // end point
	dxdy   float64 // (x1-x0)/(y1-y0), precomputed for x-intercept calculation
}

func (e *coverageEdge) top() float64    { return min(e.y0, e.y1) }
func (e *coverageEdge) bottom() float64 { return max(e.y0, e.y1) }

// CoverageFiller computes exact per-pixel coverage of filled paths on the
// CPU, and submits the result to a Sink as horizontal runs of constant
// alpha.  This needs no additive blending, at the cost of one draw call per
// run.
//
// Internal buffers grow as needed but never shrink.  A CoverageFiller is
// not safe for concurrent use.
type CoverageFiller struct {
	// CTM transforms from user space to device space.
	CTM matrix.Matrix

	// Clip bounds the output to this device-space rectangle.
	// Coordinates must be integer-aligned.
	Clip rect.Rect

	// Flatness is the curve flattening tolerance in device pixels.
	Flatness float64

	cover     []float32 // cover change per pixel; reused as output
	area      []float32 // area within pixel
	edges     []coverageEdge
	activeIdx []int
	quad      []float32

	bboxFirst    bool
	xMinF, xMaxF float64
	yMinF, yMaxF float64
}

// NewCoverageFiller returns a CoverageFiller for the given clip rectangle,
// with the identity transformation and the default flatness.
func NewCoverageFiller(clip rect.Rect) *CoverageFiller {
	return &CoverageFiller{
		CTM:      matrix.Identity,
		Clip:     clip,
		Flatness: defaultFlatness,
	}
}

// Fill draws p with color c, using the given fill rule.  Each run of pixels
// with equal 8-bit coverage in a row becomes one 1-pixel high quad, with the
// alpha of c scaled by the coverage.
func (f *CoverageFiller) Fill(s Sink, p path.Path, rule FillRule, c Color) {
	lastLevel := -1
	runs := 0
	f.FillRows(p, rule, func(y, xMin int, coverage []float32) {
		fy0, fy1 := float32(y), float32(y+1)
		for x := 0; x < len(coverage); {
			level := alphaLevel(coverage[x])
			end := x + 1
			for end < len(coverage) && alphaLevel(coverage[end]) == level {
				end++
			}
			if level > 0 {
				if level != lastLevel {
					s.SetColor(c.WithAlpha(float32(level) / 255))
					lastLevel = level
				}
				x0, x1 := float32(xMin+x), float32(xMin+end)
				f.quad = append(f.quad[:0], x0, fy0, x0, fy1, x1, fy0, x1, fy1)
				s.DrawTriangleStrip(f.quad)
				runs++
			}
			x = end
		}
	})
	Logger().Debug("coverage fill", "rule", rule, "runs", runs)
}

// alphaLevel quantises a coverage value to the range 0-255.
func alphaLevel(c float32) int {
	return max(0, min(255, int(c*255+0.5)))
}

// FillRows computes the coverage of p using the given fill rule.
// Coverage is delivered row-by-row via the emit callback, trimmed to the
// non-zero part of each row.  The coverage slice is only valid for the
// duration of the callback.
func (f *CoverageFiller) FillRows(p path.Path, rule FillRule, emit func(y, xMin int, coverage []float32)) {
	xMin, xMax, yMin, yMax, ok := f.collectEdges(p)
	if !ok {
		return
	}

	width := xMax - xMin
	f.cover = slices.Grow(f.cover[:0], width)[:width]
	f.area = slices.Grow(f.area[:0], width)[:width]

	slices.SortFunc(f.edges, func(a, b coverageEdge) int {
		return cmp.Compare(a.top(), b.top())
	})

	f.activeIdx = f.activeIdx[:0]
	nextEdge := 0
	for y := yMin; y < yMax; y++ {
		yf := float64(y)
		yfNext := float64(y + 1)

		for nextEdge < len(f.edges) && f.edges[nextEdge].top() < yfNext {
			f.activeIdx = append(f.activeIdx, nextEdge)
			nextEdge++
		}
		if len(f.activeIdx) == 0 {
			continue
		}

		clear(f.cover)
		clear(f.area)

		touched := false
		for i := 0; i < len(f.activeIdx); {
			e := &f.edges[f.activeIdx[i]]
			if e.bottom() <= yf {
				// swap-remove
				f.activeIdx[i] = f.activeIdx[len(f.activeIdx)-1]
				f.activeIdx = f.activeIdx[:len(f.activeIdx)-1]
				continue
			}
			f.accumulateEdge(e, y, xMin, xMax)
			touched = true
			i++
		}
		if !touched {
			continue
		}

		if rule == EvenOdd {
			integrateScanlineEvenOdd(f.cover, f.area)
		} else {
			integrateScanlineNonZero(f.cover, f.area)
		}

		if trimmed, offset := trimZeros(f.cover); trimmed != nil {
			emit(y, xMin+offset, trimmed)
		}
	}
}

// collectEdges flattens p into the edge list and returns the bounding box
// of all edges, clamped to the clip rectangle.
func (f *CoverageFiller) collectEdges(p path.Path) (xMin, xMax, yMin, yMax int, ok bool) {
	f.edges = f.edges[:0]
	f.bboxFirst = true

	for seg := range Flatten(p, f.CTM, f.Flatness) {
		f.addEdge(seg)
	}
	if len(f.edges) == 0 {
		return 0, 0, 0, 0, false
	}

	xMin = max(int(math.Floor(f.xMinF)), int(f.Clip.LLx))
	xMax = min(int(math.Floor(f.xMaxF))+1, int(f.Clip.URx))
	yMin = max(int(math.Floor(f.yMinF)), int(f.Clip.LLy))
	yMax = min(int(math.Floor(f.yMaxF))+1, int(f.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

// addEdge appends a device-space segment to the edge list.
func (f *CoverageFiller) addEdge(seg Segment) {
	dx0, dy0 := seg.P0.X, seg.P0.Y
	dx1, dy1 := seg.P1.X, seg.P1.Y

	dy := dy1 - dy0
	if dy > -horizontalEdgeThreshold && dy < horizontalEdgeThreshold {
		return
	}
	f.edges = append(f.edges, coverageEdge{
		x0: dx0, y0: dy0,
		x1: dx1, y1: dy1,
		dxdy: (dx1 - dx0) / dy,
	})

	if f.bboxFirst {
		f.xMinF, f.xMaxF = min(dx0, dx1), max(dx0, dx1)
		f.yMinF, f.yMaxF = min(dy0, dy1), max(dy0, dy1)
		f.bboxFirst = false
	} else {
		f.xMinF = min(f.xMinF, dx0, dx1)
		f.xMaxF = max(f.xMaxF, dx0, dx1)
		f.yMinF = min(f.yMinF, dy0, dy1)
		f.yMaxF = max(f.yMaxF, dy0, dy1)
	}
}

// Coverage accumulation model:
//
// For each pixel, we track two values:
//   cover: signed vertical extent of edges crossing this pixel column
//   area:  horizontal position weighting (how far right the crossing is)
//
// An edge crossing a pixel contributes:
//   cover = sign * dy   (sign is +1 for downward, -1 for upward edges)
//   area  = cover * (1 - xFrac)
//
// The integrate functions then compute
//   pixel_coverage = accumulated_cover + area[i]
//   accumulated_cover += cover[i]
// which is the signed area of the path within each pixel.

// accumulateEdge adds the contribution of e within scanline y to the cover
// and area buffers, which are indexed by x - bboxXMin.
func (f *CoverageFiller) accumulateEdge(e *coverageEdge, y int, bboxXMin, bboxXMax int) {
	yTop := max(float64(y), e.top())
	yBot := min(float64(y+1), e.bottom())
	if yBot <= yTop {
		return
	}

	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xAtYTop := e.x0 + e.dxdy*(yTop-e.y0)
	xAtYBot := e.x0 + e.dxdy*(yBot-e.y0)
	xLeft, xRight := min(xAtYTop, xAtYBot), max(xAtYTop, xAtYBot)
	pixLeft := int(math.Floor(xLeft))
	pixRight := int(math.Floor(xRight))

	if pixRight < bboxXMin {
		// left of the bounding box: full cover for the whole row
		coverVal := sign * float32(yBot-yTop)
		f.cover[0] += coverVal
		f.area[0] += coverVal
		return
	}
	if pixLeft >= bboxXMax {
		return
	}

	if pixLeft == pixRight {
		f.accumulateInColumn(e, yTop, yBot, sign, pixLeft, bboxXMin, bboxXMax)
		return
	}

	// The edge spans several pixel columns; handle each column separately.
	dydx := 1 / e.dxdy
	for pix := pixLeft; pix <= pixRight; pix++ {
		yAtPixLeft := e.y0 + dydx*(float64(pix)-e.x0)
		yAtPixRight := e.y0 + dydx*(float64(pix+1)-e.x0)
		segYMin := max(min(yAtPixLeft, yAtPixRight), yTop)
		segYMax := min(max(yAtPixLeft, yAtPixRight), yBot)
		if segYMax <= segYMin {
			continue
		}
		f.accumulateInColumn(e, segYMin, segYMax, sign, pix, bboxXMin, bboxXMax)
	}
}

// accumulateInColumn handles the part of e between yTop and yBot, which lies
// within pixel column pix.
func (f *CoverageFiller) accumulateInColumn(e *coverageEdge, yTop, yBot float64, sign float32, pix int, bboxXMin, bboxXMax int) {
	coverVal := sign * float32(yBot-yTop)
	if pix < bboxXMin {
		f.cover[0] += coverVal
		f.area[0] += coverVal
		return
	}
	if pix >= bboxXMax {
		return
	}

	yMid := (yTop + yBot) / 2
	xMid := e.x0 + e.dxdy*(yMid-e.y0)
	xFrac := xMid - float64(pix)

	idx := pix - bboxXMin
	f.cover[idx] += coverVal
	f.area[idx] += coverVal * float32(1-xFrac)
}

// integrateScanlineNonZero converts accumulated cover/area to coverage
// using the nonzero winding rule.  The cover slice is modified in place.
func integrateScanlineNonZero(cover, area []float32) {
	var accum float32
	for i := range cover {
		raw := accum + area[i]
		accum += cover[i]
		cover[i] = min(abs32(raw), 1)
	}
}

// integrateScanlineEvenOdd converts accumulated cover/area to coverage
// using the even-odd rule.  The cover slice is modified in place.
func integrateScanlineEvenOdd(cover, area []float32) {
	var accum float32
	for i := range cover {
		raw := abs32(accum + area[i])
		accum += cover[i]

		// 1 - |1 - (raw mod 2)|
		mod := raw - 2*float32(int(raw/2))
		cover[i] = 1 - abs32(1-mod)
	}
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// trimZeros returns the non-zero part of coverage and its offset.
// It returns nil, 0 if coverage is entirely zero.
func trimZeros(coverage []float32) (trimmed []float32, offset int) {
	n := len(coverage)
	lo := 0
	for lo < n && coverage[lo] == 0 {
		lo++
	}
	if lo == n {
		return nil, 0
	}
	hi := n - 1
	for hi > lo && coverage[hi] == 0 {
		hi--
	}
	return coverage[lo : hi+1], lo
}

// horizontalEdgeThreshold is the minimum vertical extent for an edge to
// contribute to coverage.
const horizontalEdgeThreshold = 1e-10
