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
	"cogentcore.org/glint/svg"
)

// Image displays a vector asset. The asset is rasterized on demand at
// the size the layout resolves, deduplicated through the renderer's
// cache by the handle's content id and pixel dimensions.
type Image struct {
	Base

	// Handle identifies the vector asset.
	Handle svg.Handle
}

// NewImage returns a new [Image] for the given vector asset.
// It shrinks to the asset's intrinsic size by default.
func NewImage(h svg.Handle) *Image {
	return &Image{Handle: h}
}

// SetWidth sets the horizontal sizing policy and returns the widget.
func (im *Image) SetWidth(w styles.Length) *Image {
	im.Wd = w
	return im
}

// SetHeight sets the vertical sizing policy and returns the widget.
func (im *Image) SetHeight(h styles.Length) *Image {
	im.Ht = h
	return im
}

func (im *Image) Layout(rend Renderer, limits layout.Limits) layout.Node {
	intrinsic := rend.VectorSize(im.Handle)
	return layout.NewNode(limits.Width(im.Wd).Height(im.Ht).Resolve(intrinsic))
}

func (im *Image) OnEvent(e events.Event, p layout.Placed, cursor math32.Vector2, send func(Message)) {
}

func (im *Image) Draw(rend Renderer, defs *styles.Defaults, p layout.Placed, cursor math32.Vector2) {
	rend.DrawVector(im.Handle, p.Bounds())
}

func (im *Image) HashLayout(h hash.Hash) {
	HashUint64(h, im.Handle.ID())
	HashLength(h, im.Wd)
	HashLength(h, im.Ht)
}
