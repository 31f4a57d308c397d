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

// Command trapfill renders a TOML scene file to PNG or PDF.
//
// Usage:
//
//	trapfill [-n level] [-coverage] [-v] -o out.png scene.toml
//	trapfill -example > scene.toml
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"seehuhn.de/go/trapezoid"
	"seehuhn.de/go/trapezoid/imagesink"
	"seehuhn.de/go/trapezoid/pdfsink"
	"seehuhn.de/go/trapezoid/scene"
	"seehuhn.de/go/trapezoid/testcases"
)

func main() {
	out := flag.String("o", "", "output file, ending in .png or .pdf")
	n := flag.Int("n", 0, "oversampling level, overriding the scene file")
	coverage := flag.Bool("coverage", false, "use exact coverage runs instead of oversampling")
	verbose := flag.Bool("v", false, "log debug messages")
	example := flag.Bool("example", false, "write an example scene to standard output")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [options] -o out.png scene.toml\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	trapezoid.SetLogger(logger)

	if *example {
		if err := exampleScene().Write(os.Stdout); err != nil {
			fmt.Fprintln(os.Stderr, "trapfill:", err)
			os.Exit(1)
		}
		return
	}

	if flag.NArg() != 1 || *out == "" {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(logger, flag.Arg(0), *out, *n, *coverage); err != nil {
		fmt.Fprintln(os.Stderr, "trapfill:", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, in, out string, n int, coverage bool) error {
	s, err := scene.Load(in)
	if err != nil {
		return err
	}
	if n == 0 {
		n = s.Oversampling
	}
	if n < 1 || n > scene.MaxOversampling {
		return fmt.Errorf("oversampling level %d out of range 1-%d", n, scene.MaxOversampling)
	}

	ext := strings.ToLower(filepath.Ext(out))
	switch ext {
	case ".png":
		return writePNG(logger, s, out, n, coverage)
	case ".pdf":
		if !coverage && n > 1 {
			logger.Warn("PDF output has no additive blending, drawing without oversampling")
			n = 1
		}
		return writePDF(logger, s, out, n, coverage)
	}
	return fmt.Errorf("unsupported output format %q", ext)
}

// render draws the scene into sink.
func render(logger *slog.Logger, s *scene.Scene, sink trapezoid.Sink, n int, coverage bool) {
	start := time.Now()
	s.DrawBackground(sink)
	if coverage {
		s.FillCoverage(sink)
		logger.Info("rendered scene",
			"method", "coverage",
			"shapes", len(s.Shapes),
			"elapsed", time.Since(start))
		return
	}

	layers := s.Triangulate()
	vertices := 0
	for _, l := range layers {
		vertices += l.Path.NumVertices()
	}
	scene.DrawLayers(sink, layers, n)
	logger.Info("rendered scene",
		"method", "oversampling",
		"n", n,
		"shapes", len(s.Shapes),
		"vertices", vertices,
		"elapsed", time.Since(start))
}

func writePNG(logger *slog.Logger, s *scene.Scene, fname string, n int, coverage bool) (err error) {
	im := imagesink.New(s.Width, s.Height)
	render(logger, s, im, n, coverage)

	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()
	if err := png.Encode(f, im.RGBA()); err != nil {
		return fmt.Errorf("%s: %w", fname, err)
	}
	return nil
}

func writePDF(logger *slog.Logger, s *scene.Scene, fname string, n int, coverage bool) error {
	sink, err := pdfsink.Create(fname, s.Width, s.Height)
	if err != nil {
		return err
	}
	render(logger, s, sink, n, coverage)
	return sink.Close()
}

var exampleShapes = []struct {
	category, name string
	color          []float32
}{
	{"curve", "circle", []float32{0.2, 0.4, 1, 1}},
	{"fill", "star_evenodd", []float32{1, 0.8, 0.2, 1}},
	{"crossing", "bowtie_nonzero", []float32{0.9, 0.1, 0.1, 0.5}},
}

// exampleScene builds a scene from some of the test fixtures.
func exampleScene() *scene.File {
	f := &scene.File{
		Width:        64,
		Height:       64,
		Oversampling: scene.DefaultOversampling,
	}
	for _, ex := range exampleShapes {
		tc, err := findTestCase(ex.category, ex.name)
		if err != nil {
			panic(err)
		}
		m := tc.Matrix()
		f.Shapes = append(f.Shapes, scene.ShapeFile{
			Name:      ex.name,
			Path:      scene.FormatPath(tc.Path),
			Rule:      tc.Rule.String(),
			Color:     ex.color,
			Transform: m[:],
		})
	}
	return f
}

func findTestCase(category, name string) (testcases.TestCase, error) {
	for _, tc := range testcases.All[category] {
		if tc.Name == name {
			return tc, nil
		}
	}
	return testcases.TestCase{}, errors.New("unknown test case " + category + "_" + name)
}
