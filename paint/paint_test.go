// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import (
	"image"
	"image/color"
	"testing"

	"cogentcore.org/glint/math32"
	"cogentcore.org/glint/svg"
	"github.com/stretchr/testify/assert"
)

func TestMetricsMeasure(t *testing.T) {
	m := Metrics{}
	assert.Equal(t, math32.Vec2(48, 24), m.Measure("Test", 20, 0))
	assert.Equal(t, math32.Vec2(0, 24), m.Measure("", 20, 0))
	// maxWidth clamps
	assert.Equal(t, math32.Vec2(30, 24), m.Measure("Test", 20, 30))
}

func TestFillRect(t *testing.T) {
	r := NewRenderer(image.Pt(20, 20), 1)
	r.BeginFrame()
	red := color.RGBA{255, 0, 0, 255}
	r.FillRect(math32.B2(5, 5, 15, 15), red)

	assert.Equal(t, red, r.Image().RGBAAt(10, 10))
	assert.Equal(t, r.Defaults().Surface, r.Image().RGBAAt(2, 2))
}

func TestFillCircle(t *testing.T) {
	r := NewRenderer(image.Pt(40, 40), 1)
	r.BeginFrame()
	blue := color.RGBA{0, 0, 255, 255}
	r.FillCircle(math32.Vec2(20, 20), 10, blue)

	assert.Equal(t, blue, r.Image().RGBAAt(20, 20))
	// corners stay untouched
	assert.Equal(t, r.Defaults().Surface, r.Image().RGBAAt(2, 2))
}

func TestStrokeCircle(t *testing.T) {
	r := NewRenderer(image.Pt(40, 40), 1)
	r.BeginFrame()
	blue := color.RGBA{0, 0, 255, 255}
	r.StrokeCircle(math32.Vec2(20, 20), 10, 3, blue)

	// on the ring, but not at the center
	assert.Equal(t, blue, r.Image().RGBAAt(20, 12))
	assert.Equal(t, r.Defaults().Surface, r.Image().RGBAAt(20, 20))
}

func TestScaleGeometry(t *testing.T) {
	// at scale 2 every logical coordinate lands at twice the pixel
	r := NewRenderer(image.Pt(40, 40), 2)
	r.BeginFrame()
	red := color.RGBA{255, 0, 0, 255}
	r.FillRect(math32.B2(5, 5, 15, 15), red)

	assert.Equal(t, red, r.Image().RGBAAt(12, 12))
	assert.Equal(t, r.Defaults().Surface, r.Image().RGBAAt(8, 8))
	assert.Equal(t, r.Defaults().Surface, r.Image().RGBAAt(31, 31))

	blue := color.RGBA{0, 0, 255, 255}
	r.FillCircle(math32.Vec2(10, 10), 4, blue)
	assert.Equal(t, blue, r.Image().RGBAAt(20, 20))
	assert.Equal(t, blue, r.Image().RGBAAt(14, 20))
	assert.NotEqual(t, blue, r.Image().RGBAAt(10, 10))
}

const testDoc = `<svg viewBox="0 0 10 10"><rect width="10" height="10" fill="#f00"/></svg>`

func TestVectorSize(t *testing.T) {
	r := NewRenderer(image.Pt(40, 40), 1)
	assert.Equal(t, math32.Vec2(10, 10), r.VectorSize(svg.NewHandleBytes([]byte(testDoc))))
	// unloadable assets measure as a unit square
	assert.Equal(t, math32.Vec2(1, 1), r.VectorSize(svg.NewHandleBytes([]byte("nope"))))
}

func TestDrawVector(t *testing.T) {
	r := NewRenderer(image.Pt(40, 40), 2)
	r.BeginFrame()
	r.DrawVector(svg.NewHandleBytes([]byte(testDoc)), math32.B2(0, 0, 10, 10))
	r.EndFrame()

	assert.Equal(t, 1, r.Cache().NumBitmaps())
	// rasterized at scale 2: 20x20 pixels for a 10x10 box
	got := r.Image().RGBAAt(5, 5)
	assert.Equal(t, uint8(255), got.R)

	// a frame that draws nothing empties the cache
	r.BeginFrame()
	r.EndFrame()
	assert.Equal(t, 0, r.Cache().NumBitmaps())
}
