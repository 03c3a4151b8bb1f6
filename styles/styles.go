// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package styles provides the sizing, alignment, and default drawing
// styles used by glint widgets.
package styles

import (
	"cogentcore.org/glint/math32"
)

// Sizing is the policy for how a widget occupies space along one axis.
type Sizing int32

const (
	// Shrink sizes the widget to fit its content.
	Shrink Sizing = iota

	// Fill expands the widget to fill all of the available space.
	Fill

	// Fixed sizes the widget to a fixed number of units,
	// clamped into the available space.
	Fixed
)

func (s Sizing) String() string {
	switch s {
	case Shrink:
		return "Shrink"
	case Fill:
		return "Fill"
	case Fixed:
		return "Fixed"
	}
	return "Sizing(invalid)"
}

// Length is a sizing policy for one axis of a widget,
// with the unit count for the [Fixed] policy.
type Length struct {
	Sizing Sizing
	Units  float32
}

// FillLength returns a [Fill] length.
func FillLength() Length {
	return Length{Sizing: Fill}
}

// ShrinkLength returns a [Shrink] length.
func ShrinkLength() Length {
	return Length{Sizing: Shrink}
}

// UnitsLength returns a [Fixed] length of the given number of units.
func UnitsLength(units float32) Length {
	return Length{Sizing: Fixed, Units: units}
}

// FillFactor returns the weight this length contributes when
// distributing leftover space: 1 for [Fill], 0 otherwise.
func (l Length) FillFactor() float32 {
	if l.Sizing == Fill {
		return 1
	}
	return 0
}

// Aligns has the cross-axis alignment options for layout of items
// within a container.
type Aligns int32

const (
	// Start aligns items to the start (top, left) of the container.
	Start Aligns = iota

	// Center aligns items centered within the container.
	Center

	// End aligns items to the end (bottom, right) of the container.
	End
)

func (a Aligns) String() string {
	switch a {
	case Start:
		return "Start"
	case Center:
		return "Center"
	case End:
		return "End"
	}
	return "Aligns(invalid)"
}

// AlignPos returns the position offset for an item of the given size
// within the given extent, according to the alignment.
// The offset is never negative: items larger than the extent stay at 0.
func AlignPos(align Aligns, size, extent float32) float32 {
	if size >= extent {
		return 0
	}
	switch align {
	case Center:
		return 0.5 * (extent - size)
	case End:
		return extent - size
	}
	return 0
}

// Directions is the main axis direction of a container layout.
type Directions int32

const (
	// Row arranges items horizontally.
	Row Directions = iota

	// Column arranges items vertically.
	Column
)

func (d Directions) String() string {
	if d == Row {
		return "Row"
	}
	return "Column"
}

// Dim returns the main axis dimension: [math32.X] for [Row]
// and [math32.Y] for [Column].
func (d Directions) Dim() math32.Dims {
	if d == Row {
		return math32.X
	}
	return math32.Y
}
