// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widget

import (
	"image/color"

	"cogentcore.org/glint/math32"
	"cogentcore.org/glint/styles"
	"cogentcore.org/glint/svg"
)

// Renderer is the drawing backend consumed by widget Layout and Draw.
// The software renderer in the paint package implements it; a GPU
// renderer encodes the same primitives as draw calls.
type Renderer interface {

	// Defaults returns the default drawing styles.
	Defaults() *styles.Defaults

	// MeasureText returns the size of the given text at the given
	// size, wrapped to the given maximum width, using the renderer's
	// text shaping collaborator.
	MeasureText(text string, size float32, maxWidth float32) math32.Vector2

	// DrawText draws the given text with its top-left corner at pos.
	DrawText(text string, size float32, pos math32.Vector2, clr color.RGBA)

	// FillRect fills the given box with the given color.
	FillRect(b math32.Box2, clr color.RGBA)

	// FillCircle fills the circle with the given center and radius.
	FillCircle(center math32.Vector2, radius float32, clr color.RGBA)

	// StrokeCircle strokes the circle outline at the given line width.
	StrokeCircle(center math32.Vector2, radius, width float32, clr color.RGBA)

	// VectorSize returns the intrinsic size of the given vector asset,
	// or (1, 1) if the asset cannot be loaded.
	VectorSize(h svg.Handle) math32.Vector2

	// DrawVector draws the given vector asset scaled into the given
	// box, rasterizing through the render cache as needed.
	DrawVector(h svg.Handle, b math32.Box2)
}

// TextShaper is the text shaping collaborator: given a string, a text
// size, and a maximum line width, it returns the drawable extent.
// Full shaping is external to glint; renderers take any TextShaper.
type TextShaper interface {
	Measure(text string, size float32, maxWidth float32) math32.Vector2
}
