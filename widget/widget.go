// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package widget provides the Widget capability contract that all
// glint UI elements implement, and the standard widgets built on it.
// A widget tree is rebuilt by the application's View on every update;
// no widget identity persists across frames.
package widget

import (
	"encoding/binary"
	"hash"
	"math"

	"cogentcore.org/glint/events"
	"cogentcore.org/glint/layout"
	"cogentcore.org/glint/math32"
	"cogentcore.org/glint/styles"
)

// Message is an opaque application-defined value produced by a
// widget's event handling and consumed by the application's Update.
type Message = any

// Widget is the interface that all glint widgets satisfy.
type Widget interface {

	// Width returns the horizontal sizing policy of the widget.
	Width() styles.Length

	// Height returns the vertical sizing policy of the widget.
	Height() styles.Length

	// Layout computes the widget's geometry within the given limits,
	// returning its [layout.Node] with recursively computed children.
	// Layout is a pure, non-failing computation: the resolved size of
	// the returned node always lies within the limits.
	Layout(rend Renderer, limits layout.Limits) layout.Node

	// OnEvent processes one input event against the widget's computed
	// geometry, sending zero or more Messages. Containers forward the
	// event to every child in traversal order, without short-circuiting,
	// so every matching descendant gets a chance to respond.
	OnEvent(e events.Event, p layout.Placed, cursor math32.Vector2, send func(Message))

	// Draw projects the widget and its computed geometry into the
	// renderer. The cursor position may be consulted for hover styling
	// only; Draw never produces a Message and has no side effects on
	// application state.
	Draw(rend Renderer, defs *styles.Defaults, p layout.Placed, cursor math32.Vector2)

	// HashLayout writes the widget's layout-affecting state into the
	// hash, allowing the update loop to skip relayout when the rebuilt
	// tree would produce identical geometry.
	HashLayout(h hash.Hash)
}

// HashString writes the given string into the layout hash.
func HashString(h hash.Hash, s string) {
	h.Write([]byte(s))
	h.Write([]byte{0})
}

// HashFloat32 writes the given float into the layout hash.
func HashFloat32(h hash.Hash, f float32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], math.Float32bits(f))
	h.Write(b[:])
}

// HashUint64 writes the given integer into the layout hash.
func HashUint64(h hash.Hash, v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	h.Write(b[:])
}

// HashLength writes the given length into the layout hash.
func HashLength(h hash.Hash, l styles.Length) {
	HashFloat32(h, float32(l.Sizing))
	HashFloat32(h, l.Units)
}

// Base provides the common sizing fields of a widget. Widget types
// embed Base and set the policy defaults in their constructors.
type Base struct {

	// Wd is the horizontal sizing policy.
	Wd styles.Length

	// Ht is the vertical sizing policy.
	Ht styles.Length
}

func (b *Base) Width() styles.Length {
	return b.Wd
}

func (b *Base) Height() styles.Length {
	return b.Ht
}
