// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"fmt"

	"cogentcore.org/glint/math32"
	"github.com/tdewolff/parse/v2/strconv"
)

// Ops is a path segment operation.
type Ops int32

const (
	MoveTo Ops = iota
	LineTo
	QuadTo
	CubeTo
	Close
)

// Segment is one operation of a [Path], with up to three points of
// arguments depending on the operation.
type Segment struct {
	Op   Ops
	Args [3]math32.Vector2
}

// Path is a sequence of segment operations describing a filled outline.
type Path []Segment

// MoveTo starts a new subpath at the given point.
func (p *Path) MoveTo(pt math32.Vector2) {
	*p = append(*p, Segment{Op: MoveTo, Args: [3]math32.Vector2{pt}})
}

// LineTo adds a line to the given point.
func (p *Path) LineTo(pt math32.Vector2) {
	*p = append(*p, Segment{Op: LineTo, Args: [3]math32.Vector2{pt}})
}

// QuadTo adds a quadratic Bezier via the given control point to the
// given end point.
func (p *Path) QuadTo(cp, pt math32.Vector2) {
	*p = append(*p, Segment{Op: QuadTo, Args: [3]math32.Vector2{cp, pt}})
}

// CubeTo adds a cubic Bezier via the two given control points to the
// given end point.
func (p *Path) CubeTo(cp1, cp2, pt math32.Vector2) {
	*p = append(*p, Segment{Op: CubeTo, Args: [3]math32.Vector2{cp1, cp2, pt}})
}

// Close closes the current subpath.
func (p *Path) Close() {
	*p = append(*p, Segment{Op: Close})
}

// ParsePathData parses SVG path data ("d" attribute) into a [Path].
// It supports the M, L, H, V, Q, C, and Z commands in absolute and
// relative forms. An unsupported command is an error.
func ParsePathData(d string) (Path, error) {
	s := pathScanner{data: []byte(d)}
	var p Path
	var cur, start math32.Vector2
	var cmd byte
	for {
		c, ok := s.command()
		if ok {
			cmd = c
		} else if s.done() {
			break
		} else if cmd == 0 {
			return nil, fmt.Errorf("svg: expected command in path data: %q", d)
		}
		// a command with no letter repeats the previous one
		rel := cmd >= 'a'
		switch cmd {
		case 'M', 'm':
			pt := s.point()
			if rel {
				pt = pt.Add(cur)
			}
			p.MoveTo(pt)
			cur, start = pt, pt
			// subsequent implicit pairs are LineTo
			if cmd == 'M' {
				cmd = 'L'
			} else {
				cmd = 'l'
			}
		case 'L', 'l':
			pt := s.point()
			if rel {
				pt = pt.Add(cur)
			}
			p.LineTo(pt)
			cur = pt
		case 'H', 'h':
			x := s.number()
			if rel {
				x += cur.X
			}
			cur.X = x
			p.LineTo(cur)
		case 'V', 'v':
			y := s.number()
			if rel {
				y += cur.Y
			}
			cur.Y = y
			p.LineTo(cur)
		case 'Q', 'q':
			cp, pt := s.point(), s.point()
			if rel {
				cp, pt = cp.Add(cur), pt.Add(cur)
			}
			p.QuadTo(cp, pt)
			cur = pt
		case 'C', 'c':
			cp1, cp2, pt := s.point(), s.point(), s.point()
			if rel {
				cp1, cp2, pt = cp1.Add(cur), cp2.Add(cur), pt.Add(cur)
			}
			p.CubeTo(cp1, cp2, pt)
			cur = pt
		case 'Z', 'z':
			p.Close()
			cur = start
			// close consumes no numbers, so it never repeats
			// implicitly; anything next must be a command
			cmd = 0
		default:
			return nil, fmt.Errorf("svg: unsupported path command %q", string(cmd))
		}
		if s.err != nil {
			return nil, s.err
		}
	}
	return p, nil
}

// pathScanner scans commands and numbers out of SVG path data,
// using tdewolff/parse for number parsing.
type pathScanner struct {
	data []byte
	i    int
	err  error
}

func (s *pathScanner) skipSep() {
	for s.i < len(s.data) {
		c := s.data[s.i]
		if c == ' ' || c == ',' || c == '\t' || c == '\n' || c == '\r' {
			s.i++
			continue
		}
		return
	}
}

func (s *pathScanner) done() bool {
	s.skipSep()
	return s.i >= len(s.data) || s.err != nil
}

// command returns the next command letter, if one is next.
func (s *pathScanner) command() (byte, bool) {
	s.skipSep()
	if s.i >= len(s.data) {
		return 0, false
	}
	c := s.data[s.i]
	if (c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z') && c != 'e' && c != 'E' {
		s.i++
		return c, true
	}
	return 0, false
}

func (s *pathScanner) number() float32 {
	s.skipSep()
	f, n := scanFloat(s.data[s.i:])
	if n == 0 {
		s.err = fmt.Errorf("svg: expected number in path data at offset %d", s.i)
		return 0
	}
	s.i += n
	return f
}

func (s *pathScanner) point() math32.Vector2 {
	x := s.number()
	y := s.number()
	return math32.Vec2(x, y)
}

// scanFloat parses a leading float from b, returning the value and the
// number of bytes consumed (0 if none).
func scanFloat(b []byte) (float32, int) {
	f, n := strconv.ParseFloat(b)
	return float32(f), n
}
