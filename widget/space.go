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

// Space is a blank spacing element. It does not render anything.
type Space struct {
	Base
}

// NewSpace returns a new fixed-size [Space] of the given dimensions.
func NewSpace(width, height float32) *Space {
	return &Space{Base{Wd: styles.UnitsLength(width), Ht: styles.UnitsLength(height)}}
}

// NewStretch returns a new [Space] that grows to fill available space
// on both axes.
func NewStretch() *Space {
	return &Space{Base{Wd: styles.FillLength(), Ht: styles.FillLength()}}
}

func (s *Space) Layout(rend Renderer, limits layout.Limits) layout.Node {
	return layout.NewNode(limits.Width(s.Wd).Height(s.Ht).Resolve(math32.Vector2{}))
}

func (s *Space) OnEvent(e events.Event, p layout.Placed, cursor math32.Vector2, send func(Message)) {
}

func (s *Space) Draw(rend Renderer, defs *styles.Defaults, p layout.Placed, cursor math32.Vector2) {
}

func (s *Space) HashLayout(h hash.Hash) {
	HashLength(h, s.Wd)
	HashLength(h, s.Ht)
}
