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

// Package imagesink implements a software [trapezoid.Sink].
//
// Triangles are rasterized with exact area coverage using
// golang.org/x/image/vector, and blended additively into a floating-point
// RGBA buffer.  This makes the result of oversampled drawing independent of
// the order of the passes.
package imagesink

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/vector"

	"seehuhn.de/go/trapezoid"
)

// Image is an additive-blending render target.
//
// Pixel values are stored as premultiplied RGBA in float32.  Values may
// exceed 1 where geometry overlaps; the conversion functions clamp.
type Image struct {
	width, height int

	pix []float32 // 4 values per pixel

	color  trapezoid.Color
	ox, oy float32

	r    *vector.Rasterizer
	mask *image.Alpha
}

var _ trapezoid.Sink = (*Image)(nil)

// New allocates a transparent image of the given size.
func New(width, height int) *Image {
	return &Image{
		width:  width,
		height: height,
		pix:    make([]float32, 4*width*height),
		color:  trapezoid.White,
		r:      vector.NewRasterizer(width, height),
		mask:   image.NewAlpha(image.Rect(0, 0, width, height)),
	}
}

// Bounds returns the pixel rectangle of the image.
func (im *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, im.width, im.height)
}

// Clear resets all pixels to transparent black.
func (im *Image) Clear() {
	clear(im.pix)
}

// SetColor implements [trapezoid.Sink].
func (im *Image) SetColor(c trapezoid.Color) {
	im.color = c
}

// SetOrigin implements [trapezoid.Sink].
func (im *Image) SetOrigin(x, y float32) {
	im.ox, im.oy = x, y
}

// DrawTriangles implements [trapezoid.Sink].
func (im *Image) DrawTriangles(xy []float32) {
	im.resetRasterizer()
	for i := 0; i+6 <= len(xy); i += 6 {
		im.addTriangle(xy[i:i+6])
	}
	im.composite()
}

// DrawTriangleStrip implements [trapezoid.Sink].
func (im *Image) DrawTriangleStrip(xy []float32) {
	im.resetRasterizer()
	for i := 0; i+6 <= len(xy); i += 2 {
		im.addTriangle(xy[i : i+6])
	}
	im.composite()
}

// resetRasterizer clears the rasterizer path.  The mask is overwritten,
// not blended, by the next call to composite.
func (im *Image) resetRasterizer() {
	im.r.Reset(im.width, im.height)
	im.r.DrawOp = draw.Src
}

// addTriangle adds one triangle to the rasterizer path.  All triangles are
// given the same orientation, so that neighbouring triangles add up instead
// of cancelling in pixels which they share.
func (im *Image) addTriangle(v []float32) {
	x0, y0 := v[0]+im.ox, v[1]+im.oy
	x1, y1 := v[2]+im.ox, v[3]+im.oy
	x2, y2 := v[4]+im.ox, v[5]+im.oy

	cross := (x1-x0)*(y2-y0) - (x2-x0)*(y1-y0)
	if cross == 0 {
		return
	}
	if cross < 0 {
		x1, y1, x2, y2 = x2, y2, x1, y1
	}
	im.r.MoveTo(x0, y0)
	im.r.LineTo(x1, y1)
	im.r.LineTo(x2, y2)
	im.r.ClosePath()
}

// composite adds the rasterized mask, multiplied by the current color,
// to the pixel buffer.
func (im *Image) composite() {
	im.r.Draw(im.mask, im.mask.Bounds(), image.Opaque, image.Point{})

	c := im.color
	for i, m := range im.mask.Pix {
		if m == 0 {
			continue
		}
		a := float32(m) / 255 * c.A
		p := im.pix[4*i : 4*i+4]
		p[0] += c.R * a
		p[1] += c.G * a
		p[2] += c.B * a
		p[3] += a
	}
}

// At returns the premultiplied color of pixel (x, y), without clamping.
func (im *Image) At(x, y int) trapezoid.Color {
	if x < 0 || y < 0 || x >= im.width || y >= im.height {
		return trapezoid.Color{}
	}
	p := im.pix[4*(y*im.width+x):]
	return trapezoid.Color{R: p[0], G: p[1], B: p[2], A: p[3]}
}

// Coverage returns the accumulated alpha of every pixel, in row-major
// order.
func (im *Image) Coverage() []float32 {
	res := make([]float32, im.width*im.height)
	for i := range res {
		res[i] = im.pix[4*i+3]
	}
	return res
}

// Sum returns the sum of the alpha values of all pixels.
func (im *Image) Sum() float64 {
	var sum float64
	for i := 3; i < len(im.pix); i += 4 {
		sum += float64(im.pix[i])
	}
	return sum
}

// RGBA converts the image to 8-bit premultiplied RGBA.
func (im *Image) RGBA() *image.RGBA {
	res := image.NewRGBA(im.Bounds())
	for i := range im.width * im.height {
		p := im.pix[4*i : 4*i+4]
		q := res.Pix[4*i : 4*i+4]
		for j := range 4 {
			q[j] = toByte(p[j])
		}
	}
	return res
}

// Gray converts the alpha channel to an 8-bit gray image, so that white
// means full coverage.
func (im *Image) Gray() *image.Gray {
	res := image.NewGray(im.Bounds())
	for i := range im.width * im.height {
		res.Pix[i] = toByte(im.pix[4*i+3])
	}
	return res
}

// Composite draws the image over a background color and returns the
// result.
func (im *Image) Composite(bg color.Color) *image.RGBA {
	res := image.NewRGBA(im.Bounds())
	draw.Draw(res, res.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	draw.Draw(res, res.Bounds(), im.RGBA(), image.Point{}, draw.Over)
	return res
}

func toByte(x float32) uint8 {
	return uint8(max(0, min(255, x*255+0.5)))
}
