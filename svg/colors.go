// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"image/color"
	"strings"
)

// names are the CSS color keywords the parser recognizes, which is
// enough for icon artwork; anything else should use hex notation.
var names = map[string]color.RGBA{
	"black":        {0, 0, 0, 255},
	"white":        {255, 255, 255, 255},
	"red":          {255, 0, 0, 255},
	"green":        {0, 128, 0, 255},
	"blue":         {0, 0, 255, 255},
	"gray":         {128, 128, 128, 255},
	"currentColor": {0, 0, 0, 255},
}

// ParseColor parses a solid SVG fill value: hex notation (#rgb or
// #rrggbb) or a recognized color keyword. It returns false for "none"
// and for anything it cannot parse, meaning the shape is not filled.
func ParseColor(v string) (color.RGBA, bool) {
	v = strings.TrimSpace(v)
	if v == "" || strings.EqualFold(v, "none") {
		return color.RGBA{}, false
	}
	if c, ok := names[v]; ok {
		return c, true
	}
	if strings.HasPrefix(v, "#") {
		return parseHex(v[1:])
	}
	return color.RGBA{}, false
}

func parseHex(h string) (color.RGBA, bool) {
	nib := func(c byte) (uint8, bool) {
		switch {
		case c >= '0' && c <= '9':
			return c - '0', true
		case c >= 'a' && c <= 'f':
			return c - 'a' + 10, true
		case c >= 'A' && c <= 'F':
			return c - 'A' + 10, true
		}
		return 0, false
	}
	switch len(h) {
	case 3:
		var v [3]uint8
		for i := 0; i < 3; i++ {
			n, ok := nib(h[i])
			if !ok {
				return color.RGBA{}, false
			}
			v[i] = n<<4 | n
		}
		return color.RGBA{v[0], v[1], v[2], 255}, true
	case 6:
		var v [3]uint8
		for i := 0; i < 3; i++ {
			hi, ok1 := nib(h[2*i])
			lo, ok2 := nib(h[2*i+1])
			if !ok1 || !ok2 {
				return color.RGBA{}, false
			}
			v[i] = hi<<4 | lo
		}
		return color.RGBA{v[0], v[1], v[2], 255}, true
	}
	return color.RGBA{}, false
}
