// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package layout provides the size constraint and computed geometry
// types used by the glint layout engine. Limits flow top-down from
// parent to child; each child resolves a concrete size within its
// limits, and sizes flow back bottom-up as [Node] trees.
package layout

import (
	"cogentcore.org/glint/math32"
	"cogentcore.org/glint/styles"
)

// Limits are the minimum and maximum width and height available
// to a widget during layout. Limits are passed top-down; a widget
// must never resolve a size outside of its limits.
type Limits struct {
	Min math32.Vector2
	Max math32.Vector2
}

// NewLimits returns new [Limits] with the given minimum and maximum sizes.
// Malformed inputs are clamped, never an error: negative extents become
// zero, and any Max below Min is raised to Min.
func NewLimits(min, max math32.Vector2) Limits {
	min = min.Max(math32.Vector2{})
	max = max.Max(min)
	return Limits{Min: min, Max: max}
}

// Unbounded returns [Limits] with zero minimum and infinite maximum.
func Unbounded() Limits {
	return Limits{Max: math32.Vector2Scalar(math32.Infinity)}
}

// Width applies the given width policy to these limits,
// returning the updated limits.
// [styles.Fill] pins the minimum width to the maximum; an unbounded
// maximum is left unpinned, so filling unbounded space degenerates to
// the content size instead of propagating infinity into geometry.
// [styles.Fixed] pins both to the unit count, clamped within the
// current limits; [styles.Shrink] leaves the limits open.
func (l Limits) Width(w styles.Length) Limits {
	return l.dim(math32.X, w)
}

// Height applies the given height policy to these limits,
// returning the updated limits. See [Limits.Width].
func (l Limits) Height(h styles.Length) Limits {
	return l.dim(math32.Y, h)
}

func (l Limits) dim(d math32.Dims, ln styles.Length) Limits {
	switch ln.Sizing {
	case styles.Fill:
		if max := l.Max.Dim(d); max != math32.Infinity {
			l.Min.SetDim(d, max)
		}
	case styles.Fixed:
		u := math32.Clamp(ln.Units, l.Min.Dim(d), l.Max.Dim(d))
		l.Min.SetDim(d, u)
		l.Max.SetDim(d, u)
	}
	return l
}

// Loose returns these limits with the minimum size zeroed,
// for measuring the natural size of content.
func (l Limits) Loose() Limits {
	return Limits{Max: l.Max}
}

// Shrink returns these limits reduced by the given amount on each axis,
// e.g., for padding. The result never goes below zero.
func (l Limits) Shrink(amount math32.Vector2) Limits {
	return NewLimits(l.Min.Sub(amount).Max(math32.Vector2{}),
		l.Max.Sub(amount).Max(math32.Vector2{}))
}

// MaxDim returns these limits with the maximum along the given
// dimension replaced by the given value, clamped to be at least
// the current minimum.
func (l Limits) MaxDim(d math32.Dims, max float32) Limits {
	l.Max.SetDim(d, math32.Max(max, l.Min.Dim(d)))
	return l
}

// Resolve clamps the given intrinsic content size into these limits,
// returning the concrete size to use. The result always lies within
// [Min, Max] on each axis.
func (l Limits) Resolve(intrinsic math32.Vector2) math32.Vector2 {
	return intrinsic.Clamp(l.Min, l.Max)
}
