// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"image"

	"cogentcore.org/glint/math32"
	"golang.org/x/image/vector"
)

// Rasterize renders the document into a new RGBA image of the given
// pixel dimensions, scaling the document's intrinsic size to fill
// them. Degenerate dimensions yield nil.
func (d *Document) Rasterize(width, height int) *image.RGBA {
	if width <= 0 || height <= 0 || d.Size.X <= 0 || d.Size.Y <= 0 {
		return nil
	}
	scale := math32.Vec2(float32(width)/d.Size.X, float32(height)/d.Size.Y)
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	z := vector.NewRasterizer(width, height)
	for _, sh := range d.Shapes {
		z.Reset(width, height)
		rasterPath(z, sh.Path, scale)
		z.Draw(dst, dst.Bounds(), image.NewUniform(sh.Fill), image.Point{})
	}
	return dst
}

func rasterPath(z *vector.Rasterizer, p Path, scale math32.Vector2) {
	at := func(v math32.Vector2) (float32, float32) {
		return v.X * scale.X, v.Y * scale.Y
	}
	open := false
	for _, seg := range p {
		switch seg.Op {
		case MoveTo:
			if open {
				z.ClosePath()
			}
			x, y := at(seg.Args[0])
			z.MoveTo(x, y)
			open = true
		case LineTo:
			x, y := at(seg.Args[0])
			z.LineTo(x, y)
		case QuadTo:
			cx, cy := at(seg.Args[0])
			x, y := at(seg.Args[1])
			z.QuadTo(cx, cy, x, y)
		case CubeTo:
			c1x, c1y := at(seg.Args[0])
			c2x, c2y := at(seg.Args[1])
			x, y := at(seg.Args[2])
			z.CubeTo(c1x, c1y, c2x, c2y, x, y)
		case Close:
			z.ClosePath()
			open = false
		}
	}
	if open {
		z.ClosePath()
	}
}
