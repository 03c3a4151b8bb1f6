// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit glint functionality.

package math32

import "image"

// Box2 represents a 2D bounding box defined by two points:
// the point with minimum coordinates and the point with maximum coordinates.
type Box2 struct {
	Min Vector2
	Max Vector2
}

// B2 returns a new [Box2] from the given minimum and maximum x and y coordinates.
func B2(x0, y0, x1, y1 float32) Box2 {
	return Box2{Vec2(x0, y0), Vec2(x1, y1)}
}

// B2FromPosSize returns a new [Box2] from the given position and size.
func B2FromPosSize(pos, size Vector2) Box2 {
	return Box2{pos, pos.Add(size)}
}

// Size returns the size of this box (Max - Min).
func (b Box2) Size() Vector2 {
	return b.Max.Sub(b.Min)
}

// IsEmpty returns whether this bounding box is empty (max < min on any coord).
func (b Box2) IsEmpty() bool {
	return b.Max.X < b.Min.X || b.Max.Y < b.Min.Y
}

// Center returns the center point of this box.
func (b Box2) Center() Vector2 {
	return b.Min.Add(b.Max).MulScalar(0.5)
}

// ContainsPoint returns whether this bounding box contains the given point.
// Points on the minimum edges are inside; points on the maximum edges are not,
// consistent with [image.Rectangle] semantics.
func (b Box2) ContainsPoint(pt Vector2) bool {
	return pt.X >= b.Min.X && pt.X < b.Max.X && pt.Y >= b.Min.Y && pt.Y < b.Max.Y
}

// Translate returns this box translated by the given offset.
func (b Box2) Translate(offset Vector2) Box2 {
	return Box2{b.Min.Add(offset), b.Max.Add(offset)}
}

// Union returns the smallest box containing both this box and the other.
func (b Box2) Union(other Box2) Box2 {
	return Box2{b.Min.Min(other.Min), b.Max.Max(other.Max)}
}

// ToRect returns this box as an [image.Rectangle], using rounding.
func (b Box2) ToRect() image.Rectangle {
	return image.Rectangle{Min: b.Min.ToPoint(), Max: b.Max.ToPoint()}
}
