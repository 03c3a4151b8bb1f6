// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit glint functionality.

package math32

import (
	"fmt"
	"image"
)

// Vector2 is a 2D vector/point with X and Y components.
type Vector2 struct {
	X float32
	Y float32
}

// Vec2 returns a new [Vector2] with the given x and y components.
func Vec2(x, y float32) Vector2 {
	return Vector2{X: x, Y: y}
}

// Vector2Scalar returns a new [Vector2] with all components set to the given scalar value.
func Vector2Scalar(s float32) Vector2 {
	return Vector2{X: s, Y: s}
}

// FromPoint returns a new [Vector2] from the given [image.Point].
func FromPoint(pt image.Point) Vector2 {
	return Vec2(float32(pt.X), float32(pt.Y))
}

// ToPoint returns this vector as an [image.Point], using rounding.
func (v Vector2) ToPoint() image.Point {
	return image.Pt(int(Round(v.X)), int(Round(v.Y)))
}

func (v Vector2) String() string {
	return fmt.Sprintf("(%v, %v)", v.X, v.Y)
}

// Dim returns the given vector component.
func (v Vector2) Dim(dim Dims) float32 {
	if dim == X {
		return v.X
	}
	return v.Y
}

// SetDim sets the given vector component to the given value.
func (v *Vector2) SetDim(dim Dims, value float32) {
	if dim == X {
		v.X = value
	} else {
		v.Y = value
	}
}

// Add adds the other given vector to this one and returns the result.
func (v Vector2) Add(other Vector2) Vector2 {
	return Vec2(v.X+other.X, v.Y+other.Y)
}

// AddScalar adds the given scalar to each component and returns the result.
func (v Vector2) AddScalar(s float32) Vector2 {
	return Vec2(v.X+s, v.Y+s)
}

// Sub subtracts the other given vector from this one and returns the result.
func (v Vector2) Sub(other Vector2) Vector2 {
	return Vec2(v.X-other.X, v.Y-other.Y)
}

// MulScalar multiplies each component by the given scalar and returns the result.
func (v Vector2) MulScalar(s float32) Vector2 {
	return Vec2(v.X*s, v.Y*s)
}

// DivScalar divides each component by the given scalar and returns the result.
// It returns the zero vector for a zero scalar.
func (v Vector2) DivScalar(s float32) Vector2 {
	if s == 0 {
		return Vector2{}
	}
	return Vec2(v.X/s, v.Y/s)
}

// Min returns the componentwise minimum of this vector and the other.
func (v Vector2) Min(other Vector2) Vector2 {
	return Vec2(Min(v.X, other.X), Min(v.Y, other.Y))
}

// Max returns the componentwise maximum of this vector and the other.
func (v Vector2) Max(other Vector2) Vector2 {
	return Vec2(Max(v.X, other.X), Max(v.Y, other.Y))
}

// Clamp clamps each component into the interval given by min and max.
func (v Vector2) Clamp(min, max Vector2) Vector2 {
	return Vec2(Clamp(v.X, min.X, max.X), Clamp(v.Y, min.Y, max.Y))
}

// Round rounds each component to the nearest integer value.
func (v Vector2) Round() Vector2 {
	return Vec2(Round(v.X), Round(v.Y))
}

// Ceil applies [Ceil] to each component.
func (v Vector2) Ceil() Vector2 {
	return Vec2(Ceil(v.X), Ceil(v.Y))
}

// Negate returns the vector with each component negated.
func (v Vector2) Negate() Vector2 {
	return Vec2(-v.X, -v.Y)
}
