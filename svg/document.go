// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"encoding/xml"
	"fmt"
	"image/color"
	"io"
	"strings"

	"cogentcore.org/glint/math32"
)

// Document is a parsed vector document: an intrinsic size and a list
// of filled shapes. One Document can serve rasterization at any number
// of pixel sizes.
type Document struct {

	// Size is the intrinsic size of the document in user units,
	// from the viewBox or the width and height attributes.
	Size math32.Vector2

	// Shapes are the filled shapes of the document, in paint order.
	Shapes []Shape
}

// Shape is one filled path of a [Document].
type Shape struct {
	Path Path
	Fill color.RGBA
}

// Parse parses the given SVG document bytes. It handles the subset of
// SVG that vector icons and simple artwork use: svg, g, path, rect,
// and circle elements with solid fills. Unknown elements and
// attributes are skipped.
func Parse(data []byte) (*Document, error) {
	doc := &Document{}
	dec := xml.NewDecoder(strings.NewReader(string(data)))
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("svg: parse: %w", err)
		}
		se, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		switch se.Name.Local {
		case "svg":
			doc.Size = svgSize(se)
		case "path":
			if sh, ok := pathShape(se); ok {
				doc.Shapes = append(doc.Shapes, sh)
			}
		case "rect":
			if sh, ok := rectShape(se); ok {
				doc.Shapes = append(doc.Shapes, sh)
			}
		case "circle":
			if sh, ok := circleShape(se); ok {
				doc.Shapes = append(doc.Shapes, sh)
			}
		}
	}
	if doc.Size == (math32.Vector2{}) {
		return nil, fmt.Errorf("svg: document has no size")
	}
	return doc, nil
}

// ParseHandle loads and parses the document identified by the handle.
func ParseHandle(h Handle) (*Document, error) {
	data, err := h.Load()
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

func attr(se xml.StartElement, name string) (string, bool) {
	for _, a := range se.Attr {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

func floatAttr(se xml.StartElement, name string) float32 {
	v, ok := attr(se, name)
	if !ok {
		return 0
	}
	f, _ := scanFloat([]byte(strings.TrimSuffix(strings.TrimSpace(v), "px")))
	return f
}

// svgSize returns the intrinsic size from the viewBox, falling back
// on the width and height attributes.
func svgSize(se xml.StartElement) math32.Vector2 {
	if vb, ok := attr(se, "viewBox"); ok {
		f := strings.Fields(strings.ReplaceAll(vb, ",", " "))
		if len(f) == 4 {
			w, _ := scanFloat([]byte(f[2]))
			h, _ := scanFloat([]byte(f[3]))
			if w > 0 && h > 0 {
				return math32.Vec2(w, h)
			}
		}
	}
	return math32.Vec2(floatAttr(se, "width"), floatAttr(se, "height"))
}

func shapeFill(se xml.StartElement) (color.RGBA, bool) {
	fill, ok := attr(se, "fill")
	if !ok {
		return color.RGBA{0, 0, 0, 255}, true // SVG default fill is black
	}
	return ParseColor(fill)
}

func pathShape(se xml.StartElement) (Shape, bool) {
	fill, ok := shapeFill(se)
	if !ok {
		return Shape{}, false
	}
	d, ok := attr(se, "d")
	if !ok {
		return Shape{}, false
	}
	p, err := ParsePathData(d)
	if err != nil || len(p) == 0 {
		return Shape{}, false
	}
	return Shape{Path: p, Fill: fill}, true
}

func rectShape(se xml.StartElement) (Shape, bool) {
	fill, ok := shapeFill(se)
	if !ok {
		return Shape{}, false
	}
	x, y := floatAttr(se, "x"), floatAttr(se, "y")
	w, h := floatAttr(se, "width"), floatAttr(se, "height")
	if w <= 0 || h <= 0 {
		return Shape{}, false
	}
	var p Path
	p.MoveTo(math32.Vec2(x, y))
	p.LineTo(math32.Vec2(x+w, y))
	p.LineTo(math32.Vec2(x+w, y+h))
	p.LineTo(math32.Vec2(x, y+h))
	p.Close()
	return Shape{Path: p, Fill: fill}, true
}

// circleKappa is the cubic Bezier control distance factor for
// approximating a quarter circle.
const circleKappa = 0.5522848

func circleShape(se xml.StartElement) (Shape, bool) {
	fill, ok := shapeFill(se)
	if !ok {
		return Shape{}, false
	}
	cx, cy, r := floatAttr(se, "cx"), floatAttr(se, "cy"), floatAttr(se, "r")
	if r <= 0 {
		return Shape{}, false
	}
	k := circleKappa * r
	var p Path
	p.MoveTo(math32.Vec2(cx+r, cy))
	p.CubeTo(math32.Vec2(cx+r, cy+k), math32.Vec2(cx+k, cy+r), math32.Vec2(cx, cy+r))
	p.CubeTo(math32.Vec2(cx-k, cy+r), math32.Vec2(cx-r, cy+k), math32.Vec2(cx-r, cy))
	p.CubeTo(math32.Vec2(cx-r, cy-k), math32.Vec2(cx-k, cy-r), math32.Vec2(cx, cy-r))
	p.CubeTo(math32.Vec2(cx+k, cy-r), math32.Vec2(cx+r, cy-k), math32.Vec2(cx+r, cy))
	p.Close()
	return Shape{Path: p, Fill: fill}, true
}
