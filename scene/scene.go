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

// Package scene reads and writes TOML scene descriptions, which list filled
// paths for the command line tools.
//
// A scene file looks like this:
//
//	width = 256
//	height = 256
//	oversampling = 4
//
//	[[shape]]
//	name = "star"
//	path = "M128,16 L194,220 L20,94 L236,94 L62,220 Z"
//	rule = "evenodd"
//	color = [1, 0.8, 0.2, 1]
//	transform = [1, 0, 0, 1, 0, 0]
package scene

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/trapezoid"
)

// Default values for optional scene fields.
const (
	DefaultOversampling = 4
	DefaultFlatness     = 0.25

	// MaxOversampling is the largest supported oversampling level.
	MaxOversampling = 16
)

// File is the TOML representation of a scene.
type File struct {
	Width        int         `toml:"width"`
	Height       int         `toml:"height"`
	Background   []float32   `toml:"background,omitempty"`
	Oversampling int         `toml:"oversampling,omitempty"`
	Flatness     float64     `toml:"flatness,omitempty"`
	Shapes       []ShapeFile `toml:"shape"`
}

// ShapeFile is the TOML representation of one filled path.
type ShapeFile struct {
	Name      string    `toml:"name,omitempty"`
	Path      string    `toml:"path"`
	Rule      string    `toml:"rule,omitempty"`
	Color     []float32 `toml:"color,omitempty"`
	Transform []float64 `toml:"transform,omitempty"`
}

// Scene is a validated scene, ready for rendering.
type Scene struct {
	Width, Height int
	Background    trapezoid.Color
	Oversampling  int
	Flatness      float64
	Shapes        []Shape
}

// Shape is a filled path with its color.
type Shape struct {
	Name  string
	Path  path.Path
	Rule  trapezoid.FillRule
	Color trapezoid.Color
	CTM   matrix.Matrix
}

// Load reads and validates the scene file fname.
func Load(fname string) (*Scene, error) {
	var f File
	md, err := toml.DecodeFile(fname, &f)
	if err != nil {
		return nil, fmt.Errorf("scene %q: %w", fname, err)
	}
	if err := checkUndecoded(md); err != nil {
		return nil, fmt.Errorf("scene %q: %w", fname, err)
	}
	s, err := f.Scene()
	if err != nil {
		return nil, fmt.Errorf("scene %q: %w", fname, err)
	}
	trapezoid.Logger().Debug("loaded scene",
		"file", fname,
		"width", s.Width,
		"height", s.Height,
		"shapes", len(s.Shapes))
	return s, nil
}

// Decode reads and validates a scene from r.
func Decode(r io.Reader) (*Scene, error) {
	var f File
	md, err := toml.NewDecoder(r).Decode(&f)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	if err := checkUndecoded(md); err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	s, err := f.Scene()
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	return s, nil
}

func checkUndecoded(md toml.MetaData) error {
	undecoded := md.Undecoded()
	if len(undecoded) == 0 {
		return nil
	}
	keys := make([]string, len(undecoded))
	for i, k := range undecoded {
		keys[i] = k.String()
	}
	return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
}

// Write encodes f as TOML.
func (f *File) Write(w io.Writer) error {
	return toml.NewEncoder(w).Encode(f)
}

// Scene validates f and converts it into a Scene.
func (f *File) Scene() (*Scene, error) {
	if f.Width <= 0 || f.Height <= 0 {
		return nil, fmt.Errorf("invalid size %dx%d", f.Width, f.Height)
	}
	s := &Scene{
		Width:        f.Width,
		Height:       f.Height,
		Oversampling: f.Oversampling,
		Flatness:     f.Flatness,
	}
	if s.Oversampling == 0 {
		s.Oversampling = DefaultOversampling
	}
	if s.Oversampling < 1 || s.Oversampling > MaxOversampling {
		return nil, fmt.Errorf("oversampling %d out of range 1-%d", s.Oversampling, MaxOversampling)
	}
	if s.Flatness == 0 {
		s.Flatness = DefaultFlatness
	}
	if !(s.Flatness > 0) {
		return nil, fmt.Errorf("invalid flatness %g", s.Flatness)
	}

	var err error
	s.Background, err = parseColor(f.Background, trapezoid.Color{A: 1})
	if err != nil {
		return nil, fmt.Errorf("background: %w", err)
	}

	for i, sf := range f.Shapes {
		sh, err := sf.shape()
		if err != nil {
			name := sf.Name
			if name == "" {
				name = fmt.Sprintf("#%d", i+1)
			}
			return nil, fmt.Errorf("shape %s: %w", name, err)
		}
		s.Shapes = append(s.Shapes, sh)
	}
	return s, nil
}

func (sf *ShapeFile) shape() (Shape, error) {
	sh := Shape{Name: sf.Name}

	if strings.TrimSpace(sf.Path) == "" {
		return sh, errors.New("missing path")
	}
	p, err := ParsePath(sf.Path)
	if err != nil {
		return sh, err
	}
	sh.Path = p

	sh.Rule, err = ParseRule(sf.Rule)
	if err != nil {
		return sh, err
	}

	sh.Color, err = parseColor(sf.Color, trapezoid.White)
	if err != nil {
		return sh, fmt.Errorf("color: %w", err)
	}

	switch len(sf.Transform) {
	case 0:
		sh.CTM = matrix.Identity
	case 6:
		copy(sh.CTM[:], sf.Transform)
	default:
		return sh, fmt.Errorf("transform needs 6 values, got %d", len(sf.Transform))
	}
	return sh, nil
}

// ParseRule converts "nonzero" or "evenodd" into a fill rule.
// The empty string selects the nonzero rule.
func ParseRule(s string) (trapezoid.FillRule, error) {
	switch strings.ToLower(s) {
	case "", "nonzero":
		return trapezoid.NonZero, nil
	case "evenodd":
		return trapezoid.EvenOdd, nil
	}
	return 0, fmt.Errorf("unknown fill rule %q", s)
}

// parseColor converts an RGB or RGBA component list into a color.
func parseColor(v []float32, def trapezoid.Color) (trapezoid.Color, error) {
	var c trapezoid.Color
	switch len(v) {
	case 0:
		return def, nil
	case 3:
		c = trapezoid.Color{R: v[0], G: v[1], B: v[2], A: 1}
	case 4:
		c = trapezoid.Color{R: v[0], G: v[1], B: v[2], A: v[3]}
	default:
		return c, fmt.Errorf("need 3 or 4 components, got %d", len(v))
	}
	for _, x := range v {
		if x < 0 || x > 1 {
			return c, fmt.Errorf("component %g out of range [0, 1]", x)
		}
	}
	return c, nil
}

// Bounds returns the canvas rectangle in device coordinates.
func (s *Scene) Bounds() rect.Rect {
	return rect.Rect{URx: float64(s.Width), URy: float64(s.Height)}
}

// Layer is a triangulated shape.
type Layer struct {
	Name  string
	Path  *trapezoid.TriangulatedPath
	Color trapezoid.Color
}

// Triangulate converts all shapes of the scene into triangles.
func (s *Scene) Triangulate() []Layer {
	t := trapezoid.NewTriangulator()
	t.Flatness = s.Flatness

	layers := make([]Layer, 0, len(s.Shapes))
	for _, sh := range s.Shapes {
		t.CTM = sh.CTM
		t.Rule = sh.Rule
		tp := t.Triangulate(sh.Path)
		tp.OptimiseStorage()
		layers = append(layers, Layer{Name: sh.Name, Path: tp, Color: sh.Color})
	}
	return layers
}

// DrawLayers draws all layers using n×n oversampling.  Layers are blended
// additively by the sink.
func DrawLayers(sink trapezoid.Sink, layers []Layer, n int) {
	for _, l := range layers {
		l.Path.DrawColor(sink, l.Color, n)
	}
}

// FillCoverage draws all shapes using the coverage-run renderer.
func (s *Scene) FillCoverage(sink trapezoid.Sink) {
	f := trapezoid.NewCoverageFiller(s.Bounds())
	f.Flatness = s.Flatness
	for _, sh := range s.Shapes {
		f.CTM = sh.CTM
		f.Fill(sink, sh.Path, sh.Rule, sh.Color)
	}
}

// DrawBackground fills the whole canvas with the background color.
// Nothing is drawn for a transparent background.
func (s *Scene) DrawBackground(sink trapezoid.Sink) {
	if s.Background.A == 0 {
		return
	}
	sink.SetColor(s.Background)
	trapezoid.FillRect(sink, s.Bounds())
}
