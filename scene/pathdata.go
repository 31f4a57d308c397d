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

package scene

import (
	"fmt"
	"iter"
	"strconv"

	"honnef.co/go/curve"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// SyntaxError describes a malformed path string.
type SyntaxError struct {
	Pos int // byte offset of the error
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("path data: position %d: %s", e.Pos, e.Msg)
}

// element is one command of a parsed path.
type element struct {
	cmd path.Command
	pts [3]vec.Vec2
}

func (el *element) points() []vec.Vec2 {
	switch el.cmd {
	case path.CmdMoveTo, path.CmdLineTo:
		return el.pts[:1]
	case path.CmdQuadTo:
		return el.pts[:2]
	case path.CmdCubeTo:
		return el.pts[:3]
	}
	return nil
}

// ParsePath parses path data in the style of the SVG "d" attribute.
//
// The commands M, L, H, V, Q, C and Z are supported, in upper case for
// absolute and in lower case for relative coordinates.  Numbers may be
// separated by white space or commas.  As in SVG, a command letter can be
// omitted when the previous command repeats, and coordinates following a
// move are treated as lines.
func ParsePath(s string) (path.Path, error) {
	p := &pathParser{s: s}
	elems, err := p.parse()
	if err != nil {
		return nil, err
	}
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for i := range elems {
			if !yield(elems[i].cmd, elems[i].points()) {
				return
			}
		}
	}, nil
}

type pathParser struct {
	s   string
	pos int
}

func (p *pathParser) parse() ([]element, error) {
	var elems []element
	var cur, start vec.Vec2
	hasCurrent := false
	var cmd byte

	for {
		p.skipSeparators()
		if p.pos >= len(p.s) {
			break
		}

		c := p.s[p.pos]
		if isCommand(c) {
			cmd = c
			p.pos++
		} else if cmd == 0 || cmd == 'Z' || cmd == 'z' {
			return nil, p.errorf("expected command, found %q", c)
		}

		upper := cmd &^ 0x20
		if upper != 'M' && !hasCurrent {
			return nil, p.errorf("path must start with a move")
		}
		rel := cmd != upper

		offset := vec.Vec2{}
		if rel {
			offset = cur
		}

		var el element
		switch upper {
		case 'M':
			pt, err := p.point(offset)
			if err != nil {
				return nil, err
			}
			el = element{cmd: path.CmdMoveTo, pts: [3]vec.Vec2{pt}}
			cur, start = pt, pt
			hasCurrent = true
			// further coordinate pairs are lines
			cmd = 'L' | (cmd & 0x20)
		case 'L':
			pt, err := p.point(offset)
			if err != nil {
				return nil, err
			}
			el = element{cmd: path.CmdLineTo, pts: [3]vec.Vec2{pt}}
			cur = pt
		case 'H':
			x, err := p.number()
			if err != nil {
				return nil, err
			}
			pt := vec.Vec2{X: x + offset.X, Y: cur.Y}
			el = element{cmd: path.CmdLineTo, pts: [3]vec.Vec2{pt}}
			cur = pt
		case 'V':
			y, err := p.number()
			if err != nil {
				return nil, err
			}
			pt := vec.Vec2{X: cur.X, Y: y + offset.Y}
			el = element{cmd: path.CmdLineTo, pts: [3]vec.Vec2{pt}}
			cur = pt
		case 'Q':
			var pts [2]vec.Vec2
			for i := range pts {
				pt, err := p.point(offset)
				if err != nil {
					return nil, err
				}
				pts[i] = pt
			}
			el = element{cmd: path.CmdQuadTo, pts: [3]vec.Vec2{pts[0], pts[1]}}
			cur = pts[1]
		case 'C':
			var pts [3]vec.Vec2
			for i := range pts {
				pt, err := p.point(offset)
				if err != nil {
					return nil, err
				}
				pts[i] = pt
			}
			el = element{cmd: path.CmdCubeTo, pts: pts}
			cur = pts[2]
		case 'Z':
			el = element{cmd: path.CmdClose}
			cur = start
		}
		elems = append(elems, el)
	}
	return elems, nil
}

func isCommand(c byte) bool {
	switch c &^ 0x20 {
	case 'M', 'L', 'H', 'V', 'Q', 'C', 'Z':
		return true
	}
	return false
}

func (p *pathParser) skipSeparators() {
	for p.pos < len(p.s) {
		switch p.s[p.pos] {
		case ' ', '\t', '\n', '\r', ',':
			p.pos++
		default:
			return
		}
	}
}

func (p *pathParser) point(offset vec.Vec2) (vec.Vec2, error) {
	x, err := p.number()
	if err != nil {
		return vec.Vec2{}, err
	}
	y, err := p.number()
	if err != nil {
		return vec.Vec2{}, err
	}
	return vec.Vec2{X: x + offset.X, Y: y + offset.Y}, nil
}

// number reads one floating point number.
func (p *pathParser) number() (float64, error) {
	p.skipSeparators()
	start := p.pos
	i := p.pos
	if i < len(p.s) && (p.s[i] == '+' || p.s[i] == '-') {
		i++
	}
	digits := 0
	for i < len(p.s) && isDigit(p.s[i]) {
		i++
		digits++
	}
	if i < len(p.s) && p.s[i] == '.' {
		i++
		for i < len(p.s) && isDigit(p.s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return 0, p.errorf("expected number")
	}
	if i < len(p.s) && (p.s[i] == 'e' || p.s[i] == 'E') {
		j := i + 1
		if j < len(p.s) && (p.s[j] == '+' || p.s[j] == '-') {
			j++
		}
		if j < len(p.s) && isDigit(p.s[j]) {
			for j < len(p.s) && isDigit(p.s[j]) {
				j++
			}
			i = j
		}
	}

	x, err := strconv.ParseFloat(p.s[start:i], 64)
	if err != nil {
		return 0, &SyntaxError{Pos: start, Msg: err.Error()}
	}
	p.pos = i
	return x, nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func (p *pathParser) errorf(format string, args ...any) error {
	return &SyntaxError{Pos: p.pos, Msg: fmt.Sprintf(format, args...)}
}

// FormatPath converts p to SVG path data, which can be read back using
// [ParsePath].
func FormatPath(p path.Path) string {
	return curve.SVG(pathElements(p), curve.SVGOptions{})
}

func pathElements(p path.Path) iter.Seq[curve.PathElement] {
	return func(yield func(curve.PathElement) bool) {
		for cmd, pts := range p {
			var el curve.PathElement
			switch cmd {
			case path.CmdMoveTo:
				el = curve.MoveTo(toPoint(pts[0]))
			case path.CmdLineTo:
				el = curve.LineTo(toPoint(pts[0]))
			case path.CmdQuadTo:
				el = curve.QuadTo(toPoint(pts[0]), toPoint(pts[1]))
			case path.CmdCubeTo:
				el = curve.CubicTo(toPoint(pts[0]), toPoint(pts[1]), toPoint(pts[2]))
			case path.CmdClose:
				el = curve.ClosePath()
			default:
				continue
			}
			if !yield(el) {
				return
			}
		}
	}
}

func toPoint(v vec.Vec2) curve.Point {
	return curve.Pt(v.X, v.Y)
}
