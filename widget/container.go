// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widget

import (
	"hash"

	"cogentcore.org/glint/events"
	"cogentcore.org/glint/layout"
	"cogentcore.org/glint/math32"
	"cogentcore.org/glint/styles"
)

// Container wraps a single child with padding and alignment of the
// child within the container's resolved bounds.
type Container struct {
	Base

	// Child is the contained widget.
	Child Widget

	// Padding is the space around the child on all sides.
	Padding float32

	// AlignX and AlignY position the child within leftover space.
	AlignX styles.Aligns
	AlignY styles.Aligns
}

// NewContainer returns a new [Container] wrapping the given child.
func NewContainer(child Widget) *Container {
	return &Container{Child: child}
}

// SetCenter makes the container fill the available space on both axes
// and center its child, and returns the container.
func (c *Container) SetCenter() *Container {
	c.Wd = styles.FillLength()
	c.Ht = styles.FillLength()
	c.AlignX = styles.Center
	c.AlignY = styles.Center
	return c
}

// SetPadding sets the padding and returns the container.
func (c *Container) SetPadding(pad float32) *Container {
	c.Padding = pad
	return c
}

func (c *Container) Layout(rend Renderer, limits layout.Limits) layout.Node {
	limits = limits.Width(c.Wd).Height(c.Ht)
	pad := math32.Vector2Scalar(2 * c.Padding)
	child := c.Child.Layout(rend, limits.Loose().Shrink(pad))
	size := limits.Resolve(child.Size.Add(pad))
	child.Move(math32.Vec2(
		c.Padding+styles.AlignPos(c.AlignX, child.Size.X, size.X-pad.X),
		c.Padding+styles.AlignPos(c.AlignY, child.Size.Y, size.Y-pad.Y)))
	return layout.NewNodeChildren(size, []layout.Node{child})
}

func (c *Container) OnEvent(e events.Event, p layout.Placed, cursor math32.Vector2, send func(Message)) {
	c.Child.OnEvent(e, p.Child(0), cursor, send)
}

func (c *Container) Draw(rend Renderer, defs *styles.Defaults, p layout.Placed, cursor math32.Vector2) {
	c.Child.Draw(rend, defs, p.Child(0), cursor)
}

func (c *Container) HashLayout(h hash.Hash) {
	HashFloat32(h, c.Padding)
	HashFloat32(h, float32(c.AlignX))
	HashFloat32(h, float32(c.AlignY))
	HashLength(h, c.Wd)
	HashLength(h, c.Ht)
	c.Child.HashLayout(h)
}
