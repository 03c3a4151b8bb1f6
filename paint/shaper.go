// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import (
	"unicode/utf8"

	"cogentcore.org/glint/math32"
)

// Metrics is the default [widget.TextShaper]: a metrics-only shaper
// with a fixed advance per rune, proportional to the text size. It is
// deterministic across platforms, which the layout tests rely on;
// replace it with a real shaping collaborator for proportional fonts.
type Metrics struct{}

// advanceFactor is the per-rune advance as a fraction of the text size.
const advanceFactor = 0.6

// lineFactor is the line height as a fraction of the text size.
const lineFactor = 1.2

// Measure implements [widget.TextShaper]. Text is measured as a
// single line; maxWidth only clamps the result.
func (Metrics) Measure(text string, size float32, maxWidth float32) math32.Vector2 {
	w := float32(utf8.RuneCountInString(text)) * advanceFactor * size
	if maxWidth > 0 {
		w = math32.Min(w, maxWidth)
	}
	return math32.Vec2(w, lineFactor*size)
}
