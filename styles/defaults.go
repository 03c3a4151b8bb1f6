// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styles

import "image/color"

// Defaults has the default drawing styles passed to widget Draw methods.
// Widgets consult these for anything they do not style themselves.
type Defaults struct {

	// TextColor is the default text color.
	TextColor color.RGBA

	// TextSize is the default text size in units.
	TextSize float32

	// RadioSize is the diameter of a radio button circle in units.
	RadioSize float32

	// Accent is the color used for selected and hovered states.
	Accent color.RGBA

	// Surface is the default widget background color.
	Surface color.RGBA
}

// NewDefaults returns the standard [Defaults].
func NewDefaults() Defaults {
	return Defaults{
		TextColor: color.RGBA{20, 20, 20, 255},
		TextSize:  20,
		RadioSize: 28,
		Accent:    color.RGBA{28, 107, 222, 255},
		Surface:   color.RGBA{245, 245, 245, 255},
	}
}
