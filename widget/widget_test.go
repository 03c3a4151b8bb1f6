// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widget_test

import (
	"hash/fnv"
	"image"
	"testing"

	"cogentcore.org/glint/events"
	"cogentcore.org/glint/layout"
	"cogentcore.org/glint/math32"
	"cogentcore.org/glint/paint"
	"cogentcore.org/glint/styles"
	"cogentcore.org/glint/widget"
	"github.com/stretchr/testify/assert"
)

func testRenderer() *paint.Renderer {
	return paint.NewRenderer(image.Pt(400, 300), 1)
}

// checkWithin asserts that every node in the tree resolved a size
// within the limits it could have been given, recursively.
func checkWithin(t *testing.T, n layout.Node, max math32.Vector2) {
	t.Helper()
	assert.LessOrEqual(t, n.Size.X, max.X)
	assert.LessOrEqual(t, n.Size.Y, max.Y)
	for _, c := range n.Children {
		checkWithin(t, c, n.Size)
	}
}

func TestRowFillSplit(t *testing.T) {
	rend := testRenderer()
	row := widget.NewRow(widget.NewStretch(), widget.NewStretch()).SetGap(20)
	n := row.Layout(rend, layout.NewLimits(math32.Vector2{}, math32.Vec2(200, 100)))

	assert.Equal(t, math32.Vec2(200, 100), n.Size)
	assert.Len(t, n.Children, 2)
	assert.Equal(t, float32(90), n.Children[0].Size.X)
	assert.Equal(t, float32(90), n.Children[1].Size.X)
	assert.Equal(t, float32(0), n.Children[0].Pos.X)
	assert.Equal(t, float32(110), n.Children[1].Pos.X)
	checkWithin(t, n, math32.Vec2(200, 100))
}

func TestRowNaturalThenFill(t *testing.T) {
	rend := testRenderer()
	row := widget.NewRow(
		widget.NewSpace(50, 10),
		widget.NewStretch(),
	).SetGap(10)
	n := row.Layout(rend, layout.NewLimits(math32.Vector2{}, math32.Vec2(200, 100)))

	// fixed child keeps its natural size; the fill child takes the rest
	assert.Equal(t, float32(50), n.Children[0].Size.X)
	assert.Equal(t, float32(140), n.Children[1].Size.X)
	assert.Equal(t, float32(60), n.Children[1].Pos.X)
}

func TestRowUnboundedFill(t *testing.T) {
	rend := testRenderer()
	row := widget.NewRow(widget.NewStretch())
	n := row.Layout(rend, layout.Unbounded())
	// fill in unbounded space degenerates to zero instead of
	// infinity, on the cross axis as well as the main axis
	assert.Equal(t, math32.Vector2{}, n.Children[0].Size)
	assert.Equal(t, math32.Vector2{}, n.Size)
}

func TestColumnCrossAlign(t *testing.T) {
	rend := testRenderer()
	col := widget.NewColumn(
		widget.NewSpace(20, 10),
		widget.NewSpace(100, 10),
	).SetAlign(styles.Center)
	n := col.Layout(rend, layout.NewLimits(math32.Vector2{}, math32.Vec2(100, 100)))

	assert.Equal(t, float32(40), n.Children[0].Pos.X)
	assert.Equal(t, float32(0), n.Children[1].Pos.X)
}

func TestTextLayout(t *testing.T) {
	rend := testRenderer()
	txt := widget.NewText("Hi").SetSize(20)
	n := txt.Layout(rend, layout.Unbounded())
	assert.Equal(t, math32.Vec2(24, 24), n.Size)
}

func TestButtonLayout(t *testing.T) {
	rend := testRenderer()
	btn := widget.NewButton("OK", nil).SetMinWidth(80)
	n := btn.Layout(rend, layout.NewLimits(math32.Vector2{}, math32.Vec2(300, 300)))

	assert.Equal(t, math32.Vec2(80, 44), n.Size)
	// label is centered horizontally and padded vertically
	assert.Equal(t, math32.Vec2(28, 10), n.Children[0].Pos)
}

func TestButtonPress(t *testing.T) {
	rend := testRenderer()
	btn := widget.NewButton("OK", "pressed")
	n := btn.Layout(rend, layout.NewLimits(math32.Vector2{}, math32.Vec2(300, 300)))
	p := layout.Placed{Node: &n}

	var got []widget.Message
	send := func(m widget.Message) { got = append(got, m) }

	inside := n.Size.MulScalar(0.5)
	btn.OnEvent(events.NewButtonPress(events.Left, inside), p, inside, send)
	assert.Equal(t, []widget.Message{"pressed"}, got)

	// outside the bounds, and non-press events, send nothing
	got = nil
	outside := n.Size.AddScalar(10)
	btn.OnEvent(events.NewButtonPress(events.Left, outside), p, outside, send)
	btn.OnEvent(events.NewPointerMove(inside), p, inside, send)
	btn.OnEvent(events.NewButtonRelease(events.Left, inside), p, inside, send)
	assert.Empty(t, got)
}

func TestContainerCenter(t *testing.T) {
	rend := testRenderer()
	c := widget.NewContainer(widget.NewSpace(20, 20)).SetCenter()
	n := c.Layout(rend, layout.NewLimits(math32.Vector2{}, math32.Vec2(100, 100)))

	assert.Equal(t, math32.Vec2(100, 100), n.Size)
	assert.Equal(t, math32.Vec2(40, 40), n.Children[0].Pos)
}

type choice int

const (
	first choice = iota
	second
	third
)

type pickMsg struct {
	c choice
}

func radioGroup(selected choice) *widget.Flex {
	return widget.NewColumn(
		widget.NewRadio(first, "First", selected, pickMsg{first}),
		widget.NewRadio(second, "Second", selected, pickMsg{second}),
		widget.NewRadio(third, "Third", selected, pickMsg{third}),
	)
}

func TestRadioGroup(t *testing.T) {
	rend := testRenderer()
	col := radioGroup(first)
	n := col.Layout(rend, layout.NewLimits(math32.Vector2{}, math32.Vec2(200, 300)))
	p := layout.Placed{Node: &n}

	// every radio fills the width; one is selected
	for i := 0; i < 3; i++ {
		assert.Equal(t, float32(200), n.Children[i].Size.X)
	}
	assert.True(t, col.Kids[0].(*widget.Radio).IsSelected())
	assert.False(t, col.Kids[1].(*widget.Radio).IsSelected())

	// clicking inside the second radio sends exactly its message
	var got []widget.Message
	cursor := p.Child(1).Bounds().Center()
	col.OnEvent(events.NewButtonPress(events.Left, cursor), p, cursor,
		func(m widget.Message) { got = append(got, m) })
	assert.Equal(t, []widget.Message{pickMsg{second}}, got)
}

func layoutHash(w widget.Widget) uint64 {
	h := fnv.New64a()
	w.HashLayout(h)
	return h.Sum64()
}

func TestHashLayout(t *testing.T) {
	// rebuilt trees with the same layout-affecting state hash equal
	assert.Equal(t, layoutHash(radioGroup(first)), layoutHash(radioGroup(second)))

	a := widget.NewColumn(widget.NewText("a"))
	b := widget.NewColumn(widget.NewText("b"))
	assert.NotEqual(t, layoutHash(a), layoutHash(b))

	gapped := widget.NewColumn(widget.NewText("a")).SetGap(5)
	assert.NotEqual(t, layoutHash(a), layoutHash(gapped))
}
