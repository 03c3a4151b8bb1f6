// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package paint provides the software renderer: widgets draw into a
// host-memory RGBA image, and vector assets rasterize through the
// render cache with the software backend. It is the renderer used by
// tests and headless examples; a GPU renderer encodes the same
// primitives instead.
package paint

import (
	"image"
	"image/color"

	"cogentcore.org/glint/math32"
	"cogentcore.org/glint/raster"
	"cogentcore.org/glint/styles"
	"cogentcore.org/glint/svg"
	"cogentcore.org/glint/widget"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// Renderer is a software implementation of [widget.Renderer].
type Renderer struct {
	img    *image.RGBA
	defs   styles.Defaults
	cache  *raster.Cache
	shaper widget.TextShaper
	scale  float32
}

// NewRenderer returns a new software [Renderer] of the given pixel
// size. The scale factor maps logical units to pixels: all drawing
// coordinates are multiplied by it, and a vector asset drawn into a
// w x h box is rasterized at round(scale*w) x round(scale*h) pixels.
func NewRenderer(size image.Point, scale float32) *Renderer {
	if scale <= 0 {
		scale = 1
	}
	return &Renderer{
		img:    image.NewRGBA(image.Rectangle{Max: size}),
		defs:   styles.NewDefaults(),
		cache:  raster.NewCache(raster.ImageBackend{}),
		shaper: Metrics{},
		scale:  scale,
	}
}

// SetShaper sets the text shaping collaborator, replacing the default
// metrics-only shaper.
func (r *Renderer) SetShaper(sh widget.TextShaper) *Renderer {
	r.shaper = sh
	return r
}

// Image returns the target image.
func (r *Renderer) Image() *image.RGBA {
	return r.img
}

// Cache returns the render cache for vector assets.
func (r *Renderer) Cache() *raster.Cache {
	return r.cache
}

// Defaults implements [widget.Renderer].
func (r *Renderer) Defaults() *styles.Defaults {
	return &r.defs
}

// BeginFrame clears the target image to the surface color.
func (r *Renderer) BeginFrame() {
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(r.defs.Surface), image.Point{}, draw.Src)
}

// EndFrame trims the render cache, evicting every asset not drawn
// this frame. Call it once per frame, after all drawing.
func (r *Renderer) EndFrame() {
	r.cache.Trim()
}

// MeasureText implements [widget.Renderer] via the shaper.
func (r *Renderer) MeasureText(text string, size float32, maxWidth float32) math32.Vector2 {
	return r.shaper.Measure(text, size, maxWidth)
}

// rect returns the pixel rectangle for the given logical box.
func (r *Renderer) rect(b math32.Box2) image.Rectangle {
	return math32.B2(b.Min.X*r.scale, b.Min.Y*r.scale,
		b.Max.X*r.scale, b.Max.Y*r.scale).ToRect()
}

// DrawText implements [widget.Renderer]. The software renderer uses a
// fixed bitmap face regardless of the requested size; accurate glyph
// rendering belongs to the shaping collaborator.
func (r *Renderer) DrawText(text string, size float32, pos math32.Vector2, clr color.RGBA) {
	face := basicfont.Face7x13
	pos = pos.MulScalar(r.scale)
	d := font.Drawer{
		Dst:  r.img,
		Src:  image.NewUniform(clr),
		Face: face,
		Dot: fixed.P(int(math32.Round(pos.X)),
			int(math32.Round(pos.Y))+face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(text)
}

// FillRect implements [widget.Renderer].
func (r *Renderer) FillRect(b math32.Box2, clr color.RGBA) {
	draw.Draw(r.img, r.rect(b), image.NewUniform(clr), image.Point{}, draw.Over)
}

// FillCircle implements [widget.Renderer].
func (r *Renderer) FillCircle(center math32.Vector2, radius float32, clr color.RGBA) {
	r.circle(center.MulScalar(r.scale), radius*r.scale, clr)
}

// StrokeCircle implements [widget.Renderer]. The stroke is rendered
// as two fills: the outline circle minus an inner one would need path
// differencing, so it fills the ring by drawing the outer circle and
// letting the caller fill the interior first.
func (r *Renderer) StrokeCircle(center math32.Vector2, radius, width float32, clr color.RGBA) {
	r.ring(center.MulScalar(r.scale), radius*r.scale, width*r.scale, clr)
}

func (r *Renderer) circle(center math32.Vector2, radius float32, clr color.RGBA) {
	sz := r.img.Bounds().Size()
	z := vector.NewRasterizer(sz.X, sz.Y)
	circlePath(z, center, radius)
	z.Draw(r.img, r.img.Bounds(), image.NewUniform(clr), image.Point{})
}

func (r *Renderer) ring(center math32.Vector2, radius, width float32, clr color.RGBA) {
	sz := r.img.Bounds().Size()
	z := vector.NewRasterizer(sz.X, sz.Y)
	// even-odd-like ring: outer circle clockwise, inner counterclockwise
	circlePath(z, center, radius)
	circlePathCCW(z, center, math32.Max(0, radius-width))
	z.Draw(r.img, r.img.Bounds(), image.NewUniform(clr), image.Point{})
}

// circleKappa is the cubic Bezier control distance factor for a quarter circle.
const circleKappa = 0.5522848

func circlePath(z *vector.Rasterizer, c math32.Vector2, radius float32) {
	k := circleKappa * radius
	z.MoveTo(c.X+radius, c.Y)
	z.CubeTo(c.X+radius, c.Y+k, c.X+k, c.Y+radius, c.X, c.Y+radius)
	z.CubeTo(c.X-k, c.Y+radius, c.X-radius, c.Y+k, c.X-radius, c.Y)
	z.CubeTo(c.X-radius, c.Y-k, c.X-k, c.Y-radius, c.X, c.Y-radius)
	z.CubeTo(c.X+k, c.Y-radius, c.X+radius, c.Y-k, c.X+radius, c.Y)
	z.ClosePath()
}

func circlePathCCW(z *vector.Rasterizer, c math32.Vector2, radius float32) {
	k := circleKappa * radius
	z.MoveTo(c.X+radius, c.Y)
	z.CubeTo(c.X+radius, c.Y-k, c.X+k, c.Y-radius, c.X, c.Y-radius)
	z.CubeTo(c.X-k, c.Y-radius, c.X-radius, c.Y-k, c.X-radius, c.Y)
	z.CubeTo(c.X-radius, c.Y+k, c.X-k, c.Y+radius, c.X, c.Y+radius)
	z.CubeTo(c.X+k, c.Y+radius, c.X+radius, c.Y+k, c.X+radius, c.Y)
	z.ClosePath()
}

// VectorSize implements [widget.Renderer], returning (1, 1) for an
// asset that cannot be loaded.
func (r *Renderer) VectorSize(h svg.Handle) math32.Vector2 {
	doc := r.cache.Load(h)
	if doc == nil {
		return math32.Vec2(1, 1)
	}
	return doc.Size
}

// DrawVector implements [widget.Renderer]: the asset is rasterized at
// round(scale * bounds size) pixels through the cache and composited
// into the bounds.
func (r *Renderer) DrawVector(h svg.Handle, b math32.Box2) {
	bm, ok := r.cache.Upload(h, b.Size(), r.scale)
	if !ok {
		return
	}
	bm.Retain()
	defer bm.Release()
	src := bm.(*raster.ImageBitmap).Image()
	if src == nil {
		return
	}
	draw.ApproxBiLinear.Scale(r.img, r.rect(b), src, src.Bounds(), draw.Over, nil)
}
