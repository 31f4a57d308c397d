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

// Command trapview shows a TOML scene file in a window.
//
// The keys 1 to 8 select the oversampling level, C toggles between
// oversampling and exact coverage runs, and Escape or Q closes the window.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"seehuhn.de/go/trapezoid"
	"seehuhn.de/go/trapezoid/ebitensink"
	"seehuhn.de/go/trapezoid/scene"
)

var digitKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4,
	ebiten.KeyDigit5, ebiten.KeyDigit6, ebiten.KeyDigit7, ebiten.KeyDigit8,
}

func main() {
	scale := flag.Int("scale", 2, "window scale factor")
	verbose := flag.Bool("v", false, "log debug messages")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	trapezoid.SetLogger(logger)

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [-scale k] [-v] scene.toml\n", os.Args[0])
		os.Exit(2)
	}

	s, err := scene.Load(flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, "trapview:", err)
		os.Exit(1)
	}

	v := &viewer{
		logger: logger,
		scene:  s,
		layers: s.Triangulate(),
		n:      min(s.Oversampling, len(digitKeys)),
	}

	ebiten.SetWindowTitle("trapview: " + flag.Arg(0))
	k := max(*scale, 1)
	ebiten.SetWindowSize(s.Width*k, s.Height*k)
	if err := ebiten.RunGame(v); err != nil {
		fmt.Fprintln(os.Stderr, "trapview:", err)
		os.Exit(1)
	}
}

// viewer implements ebiten.Game.
type viewer struct {
	logger *slog.Logger
	scene  *scene.Scene
	layers []scene.Layer
	sink   *ebitensink.Sink

	n        int
	coverage bool
}

func (v *viewer) Update() error {
	for i, key := range digitKeys {
		if inpututil.IsKeyJustPressed(key) {
			v.n = i + 1
			v.coverage = false
			v.logger.Info("oversampling", "n", v.n)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		v.coverage = !v.coverage
		v.logger.Info("coverage runs", "enabled", v.coverage)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	screen.Clear()
	if v.sink == nil {
		v.sink = ebitensink.New(screen)
	} else {
		v.sink.SetTarget(screen)
	}

	v.scene.DrawBackground(v.sink)
	if v.coverage {
		v.scene.FillCoverage(v.sink)
	} else {
		scene.DrawLayers(v.sink, v.layers, v.n)
	}
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.scene.Width, v.scene.Height
}
