// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widget

import (
	"hash"
	"image/color"

	"cogentcore.org/glint/events"
	"cogentcore.org/glint/layout"
	"cogentcore.org/glint/math32"
	"cogentcore.org/glint/styles"
)

// Text is a leaf widget displaying a string of text.
// It shrinks to the measured size of its content.
type Text struct {
	Base

	// Text is the displayed string.
	Text string

	// Size is the text size in units; zero means the default size.
	Size float32

	// Color is the text color; zero means the default color.
	Color color.RGBA
}

// NewText returns a new [Text] displaying the given string.
func NewText(text string) *Text {
	return &Text{Text: text}
}

// SetSize sets the text size and returns the widget.
func (t *Text) SetSize(size float32) *Text {
	t.Size = size
	return t
}

// SetColor sets the text color and returns the widget.
func (t *Text) SetColor(clr color.RGBA) *Text {
	t.Color = clr
	return t
}

func (t *Text) size(rend Renderer) float32 {
	if t.Size > 0 {
		return t.Size
	}
	return rend.Defaults().TextSize
}

func (t *Text) color(defs *styles.Defaults) color.RGBA {
	if t.Color != (color.RGBA{}) {
		return t.Color
	}
	return defs.TextColor
}

func (t *Text) Layout(rend Renderer, limits layout.Limits) layout.Node {
	limits = limits.Width(t.Wd).Height(t.Ht)
	sz := rend.MeasureText(t.Text, t.size(rend), limits.Max.X)
	return layout.NewNode(limits.Resolve(sz))
}

func (t *Text) OnEvent(e events.Event, p layout.Placed, cursor math32.Vector2, send func(Message)) {
}

func (t *Text) Draw(rend Renderer, defs *styles.Defaults, p layout.Placed, cursor math32.Vector2) {
	rend.DrawText(t.Text, t.size(rend), p.Bounds().Min, t.color(defs))
}

func (t *Text) HashLayout(h hash.Hash) {
	HashString(h, t.Text)
	HashFloat32(h, t.Size)
	HashLength(h, t.Wd)
	HashLength(h, t.Ht)
}
