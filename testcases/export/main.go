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

// Command export writes the triangulation of every test case to JSON.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/trapezoid"
	"seehuhn.de/go/trapezoid/scene"
	"seehuhn.de/go/trapezoid/testcases"
)

func main() {
	out := flag.String("o", "testdata/triangulation.json", "output file")
	flag.Parse()

	if err := run(*out); err != nil {
		fmt.Fprintln(os.Stderr, "export:", err)
		os.Exit(1)
	}
}

func run(fname string) (err error) {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	tr := trapezoid.NewTriangulator()
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(tr, category, tc))
		}
	}

	if err := os.MkdirAll(filepath.Dir(fname), 0755); err != nil {
		return err
	}
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

type jsonTestCase struct {
	Name       string      `json:"name"`
	Width      int         `json:"width"`
	Height     int         `json:"height"`
	Path       string      `json:"path"`
	CTM        [6]float64  `json:"ctm"`
	FillRule   string      `json:"fill_rule"`
	Triangles  int         `json:"triangles"`
	Trapezoids int         `json:"trapezoids"`
	Area       float64     `json:"area"`
	Bounds     [4]float64  `json:"bounds"`
	Blocks     [][]float32 `json:"blocks"`
}

func toJSON(tr *trapezoid.Triangulator, category string, tc testcases.TestCase) jsonTestCase {
	tr.CTM = tc.Matrix()
	tr.Rule = trapezoid.NonZero
	if tc.Rule == testcases.EvenOdd {
		tr.Rule = trapezoid.EvenOdd
	}
	tp := tr.Triangulate(tc.Path)
	tp.OptimiseStorage()

	b := tp.Bounds()
	jtc := jsonTestCase{
		Name:       category + "_" + tc.Name,
		Width:      tc.Width,
		Height:     tc.Height,
		Path:       scene.FormatPath(tc.Path),
		CTM:        tr.CTM,
		FillRule:   tr.Rule.String(),
		Triangles:  tp.Triangles(),
		Trapezoids: tp.Trapezoids(),
		Area:       tp.Area(),
		Bounds:     [4]float64{b.LLx, b.LLy, b.URx, b.URy},
	}
	for block := range tp.Blocks() {
		if len(block) > 0 {
			jtc.Blocks = append(jtc.Blocks, block)
		}
	}
	return jtc
}
