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

// Button is a labeled widget that sends its Message when clicked.
type Button struct {
	Base

	// Label is the button text.
	Label string

	// Message is sent when the button is pressed.
	Message Message

	// Padding is the space between the label and the button edge.
	Padding float32

	// MinWidth is the minimum button width in units.
	MinWidth float32

	// Background overrides the default button background when non-zero.
	Background color.RGBA
}

// NewButton returns a new [Button] with the given label, sending the
// given message when pressed.
func NewButton(label string, msg Message) *Button {
	return &Button{Label: label, Message: msg, Padding: 10}
}

// SetMinWidth sets the minimum width and returns the button.
func (b *Button) SetMinWidth(w float32) *Button {
	b.MinWidth = w
	return b
}

// SetBackground sets the background color and returns the button.
func (b *Button) SetBackground(clr color.RGBA) *Button {
	b.Background = clr
	return b
}

func (b *Button) Layout(rend Renderer, limits layout.Limits) layout.Node {
	limits = limits.Width(b.Wd).Height(b.Ht)
	pad := math32.Vector2Scalar(2 * b.Padding)
	content := rend.MeasureText(b.Label, rend.Defaults().TextSize, limits.Max.X-pad.X)
	sz := content.Add(pad)
	sz.X = math32.Max(sz.X, b.MinWidth)
	label := layout.NewNode(content)
	label.Move(math32.Vec2((sz.X-content.X)/2, b.Padding))
	return layout.NewNodeChildren(limits.Resolve(sz), []layout.Node{label})
}

func (b *Button) OnEvent(e events.Event, p layout.Placed, cursor math32.Vector2, send func(Message)) {
	if e.Typ != events.ButtonPress || e.Button != events.Left {
		return
	}
	if p.Bounds().ContainsPoint(cursor) {
		send(b.Message)
	}
}

func (b *Button) Draw(rend Renderer, defs *styles.Defaults, p layout.Placed, cursor math32.Vector2) {
	bounds := p.Bounds()
	bg := b.Background
	if bg == (color.RGBA{}) {
		bg = defs.Accent
	}
	if bounds.ContainsPoint(cursor) {
		bg.A = 230 // hover: visual state only, never a message
	}
	rend.FillRect(bounds, bg)
	rend.DrawText(b.Label, defs.TextSize, p.Child(0).Bounds().Min, color.RGBA{255, 255, 255, 255})
}

func (b *Button) HashLayout(h hash.Hash) {
	HashString(h, b.Label)
	HashFloat32(h, b.Padding)
	HashFloat32(h, b.MinWidth)
	HashLength(h, b.Wd)
	HashLength(h, b.Ht)
}
