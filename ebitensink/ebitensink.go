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

// Package ebitensink implements a [trapezoid.Sink] which draws into an
// ebiten image on the GPU.
//
// Triangles are blended with [ebiten.BlendLighter], so that the passes of
// oversampled drawing add up.
package ebitensink

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"seehuhn.de/go/trapezoid"
)

// whiteImage is the source texture for all triangles.  Only the centre
// pixel is sampled, so that filtering at the border cannot bleed in.
var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// Sink draws triangles into an ebiten image.
type Sink struct {
	dst *ebiten.Image

	color  trapezoid.Color
	ox, oy float32

	vertices []ebiten.Vertex
	indices  []uint16
	opts     ebiten.DrawTrianglesOptions
}

var _ trapezoid.Sink = (*Sink)(nil)

// New returns a Sink which draws into dst.
func New(dst *ebiten.Image) *Sink {
	s := &Sink{
		dst:   dst,
		color: trapezoid.White,
	}
	s.opts.Blend = ebiten.BlendLighter
	return s
}

// SetTarget changes the destination image.
func (s *Sink) SetTarget(dst *ebiten.Image) {
	s.dst = dst
}

// SetColor implements [trapezoid.Sink].
func (s *Sink) SetColor(c trapezoid.Color) {
	s.color = c
}

// SetOrigin implements [trapezoid.Sink].
func (s *Sink) SetOrigin(x, y float32) {
	s.ox, s.oy = x, y
}

// DrawTriangles implements [trapezoid.Sink].
func (s *Sink) DrawTriangles(xy []float32) {
	s.setVertices(xy)
	s.indices = s.indices[:0]
	for i := range len(s.vertices) / 3 * 3 {
		s.indices = append(s.indices, uint16(i))
	}
	s.flush()
}

// DrawTriangleStrip implements [trapezoid.Sink].
func (s *Sink) DrawTriangleStrip(xy []float32) {
	s.setVertices(xy)
	s.indices = s.indices[:0]
	for i := 2; i < len(s.vertices); i++ {
		s.indices = append(s.indices, uint16(i-2), uint16(i-1), uint16(i))
	}
	s.flush()
}

func (s *Sink) setVertices(xy []float32) {
	c := s.color
	s.vertices = s.vertices[:0]
	for i := 0; i+2 <= len(xy); i += 2 {
		s.vertices = append(s.vertices, ebiten.Vertex{
			DstX:   xy[i] + s.ox,
			DstY:   xy[i+1] + s.oy,
			SrcX:   1,
			SrcY:   1,
			ColorR: c.R,
			ColorG: c.G,
			ColorB: c.B,
			ColorA: c.A,
		})
	}
}

func (s *Sink) flush() {
	if len(s.indices) == 0 {
		return
	}
	s.dst.DrawTriangles(s.vertices, s.indices, whiteSubImage, &s.opts)
}
