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

// Command genpdf writes the triangulation of every test case as a PDF file.
// With -png, the PDFs are also rendered to PNGs using Ghostscript, which
// gives independent reference images for the triangles.
package main

import (
	"flag"
	"fmt"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/trapezoid"
	"seehuhn.de/go/trapezoid/pdfsink"
	"seehuhn.de/go/trapezoid/testcases"
)

func main() {
	dir := flag.String("d", "testdata/pdf", "output directory")
	withPNG := flag.Bool("png", false, "render PNG files using Ghostscript")
	flag.Parse()

	if err := os.MkdirAll(*dir, 0755); err != nil {
		fmt.Fprintln(os.Stderr, "genpdf:", err)
		os.Exit(1)
	}

	tr := trapezoid.NewTriangulator()
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(*dir, name+".pdf")

			if err := generatePDF(tr, tc, pdfPath); err != nil {
				fmt.Fprintf(os.Stderr, "genpdf: %s: %v\n", name, err)
				os.Exit(1)
			}

			if *withPNG {
				pngPath := filepath.Join(*dir, name+".png")
				if err := renderPNG(pdfPath, pngPath); err != nil {
					fmt.Fprintf(os.Stderr, "genpdf: %s: %v\n", name, err)
					os.Exit(1)
				}
			}
		}
	}
}

func generatePDF(tr *trapezoid.Triangulator, tc testcases.TestCase, pdfPath string) error {
	tr.CTM = tc.Matrix()
	tr.Rule = trapezoid.NonZero
	if tc.Rule == testcases.EvenOdd {
		tr.Rule = trapezoid.EvenOdd
	}
	tp := tr.Triangulate(tc.Path)

	sink, err := pdfsink.Create(pdfPath, tc.Width, tc.Height)
	if err != nil {
		return err
	}

	// white on black, so that gray values are coverage values
	tp.Draw(sink, 1)

	return sink.Close()
}

func renderPNG(pdfPath, pngPath string) error {
	// Render PDF to PNG using Ghostscript
	// -sDEVICE=pnggray: 8-bit grayscale
	// -r72: 72 DPI (1 point = 1 pixel)
	// -dGraphicsAlphaBits=4: 4x supersampling for anti-aliasing
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r72",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
