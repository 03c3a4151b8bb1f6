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

// Flex is the container widget organizing the sizes and positions of
// its children along a main axis, as a [styles.Row] or [styles.Column].
//
// Layout is two-pass: the first pass measures the natural size of
// every child that does not Fill the main axis; the second pass
// divides the space left over (after natural sizes and gaps) equally
// among the Fill children, in child order. Children smaller than the
// cross-axis extent are offset per [Flex.Align].
type Flex struct {
	Base

	// Dir is the main axis direction.
	Dir styles.Directions

	// Gap is the fixed spacing between adjacent children,
	// added once per boundary.
	Gap float32

	// Align is the cross-axis alignment of children.
	Align styles.Aligns

	// Kids are the child widgets, in layout and traversal order.
	Kids []Widget
}

// NewRow returns a new [Flex] arranging the given children horizontally.
func NewRow(kids ...Widget) *Flex {
	return &Flex{Dir: styles.Row, Kids: kids}
}

// NewColumn returns a new [Flex] arranging the given children vertically.
func NewColumn(kids ...Widget) *Flex {
	return &Flex{Dir: styles.Column, Kids: kids}
}

// Add appends children and returns the container.
func (f *Flex) Add(kids ...Widget) *Flex {
	f.Kids = append(f.Kids, kids...)
	return f
}

// SetGap sets the inter-child spacing and returns the container.
func (f *Flex) SetGap(gap float32) *Flex {
	f.Gap = gap
	return f
}

// SetAlign sets the cross-axis alignment and returns the container.
func (f *Flex) SetAlign(align styles.Aligns) *Flex {
	f.Align = align
	return f
}

// SetWidth sets the horizontal sizing policy and returns the container.
func (f *Flex) SetWidth(w styles.Length) *Flex {
	f.Wd = w
	return f
}

// SetHeight sets the vertical sizing policy and returns the container.
func (f *Flex) SetHeight(h styles.Length) *Flex {
	f.Ht = h
	return f
}

// mainLength returns the child's sizing policy along the main axis.
func (f *Flex) mainLength(k Widget) styles.Length {
	if f.Dir == styles.Row {
		return k.Width()
	}
	return k.Height()
}

func (f *Flex) Layout(rend Renderer, limits layout.Limits) layout.Node {
	limits = limits.Width(f.Wd).Height(f.Ht)
	ma := f.Dir.Dim()
	ca := ma.Other()

	gaps := f.Gap * float32(max(0, len(f.Kids)-1))
	available := math32.Max(0, limits.Max.Dim(ma)-gaps)
	crossMax := limits.Max.Dim(ca)

	nodes := make([]layout.Node, len(f.Kids))
	fills := 0

	// first pass: natural sizes of children that do not fill the main axis
	for i, k := range f.Kids {
		if f.mainLength(k).Sizing == styles.Fill {
			fills++
			continue
		}
		var childMax math32.Vector2
		childMax.SetDim(ma, available)
		childMax.SetDim(ca, crossMax)
		nodes[i] = k.Layout(rend, layout.NewLimits(math32.Vector2{}, childMax))
		available = math32.Max(0, available-nodes[i].Size.Dim(ma))
	}

	// second pass: fill children split the remaining space equally,
	// ties broken by child order through rounding of equal portions
	if fills > 0 {
		portion := available / float32(fills)
		if available == math32.Infinity {
			// fill children in unbounded space degenerate to zero
			portion = 0
		}
		for i, k := range f.Kids {
			if f.mainLength(k).Sizing != styles.Fill {
				continue
			}
			var cmin, cmax math32.Vector2
			cmin.SetDim(ma, portion)
			cmax.SetDim(ma, portion)
			cmax.SetDim(ca, crossMax)
			nodes[i] = k.Layout(rend, layout.NewLimits(cmin, cmax))
		}
	}

	var intrinsic math32.Vector2
	main := float32(0)
	cross := float32(0)
	for i := range nodes {
		main += nodes[i].Size.Dim(ma)
		cross = math32.Max(cross, nodes[i].Size.Dim(ca))
	}
	main += gaps
	intrinsic.SetDim(ma, main)
	intrinsic.SetDim(ca, cross)
	size := limits.Resolve(intrinsic)

	// position children along the main axis, aligning on the cross axis
	extent := size.Dim(ca)
	at := float32(0)
	for i := range nodes {
		var pos math32.Vector2
		pos.SetDim(ma, at)
		pos.SetDim(ca, styles.AlignPos(f.Align, nodes[i].Size.Dim(ca), extent))
		nodes[i].Move(pos)
		at += nodes[i].Size.Dim(ma) + f.Gap
	}

	return layout.NewNodeChildren(size, nodes)
}

func (f *Flex) OnEvent(e events.Event, p layout.Placed, cursor math32.Vector2, send func(Message)) {
	for i, k := range f.Kids {
		k.OnEvent(e, p.Child(i), cursor, send)
	}
}

func (f *Flex) Draw(rend Renderer, defs *styles.Defaults, p layout.Placed, cursor math32.Vector2) {
	for i, k := range f.Kids {
		k.Draw(rend, defs, p.Child(i), cursor)
	}
}

func (f *Flex) HashLayout(h hash.Hash) {
	HashFloat32(h, float32(f.Dir))
	HashFloat32(h, f.Gap)
	HashFloat32(h, float32(f.Align))
	HashLength(h, f.Wd)
	HashLength(h, f.Ht)
	for _, k := range f.Kids {
		k.HashLayout(h)
	}
}
