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

// radioGap is the spacing between the radio circle and its label.
const radioGap = 15

// Radio is a circular button representing one choice among a set.
// Radios sharing a selection value form a group: the one whose Value
// equals the Selected value reports selected and draws highlighted.
// Values are compared by value equality, so they must be comparable
// (e.g., a string or an int-like enum), never by reference identity.
//
// Clicking a Radio sends its Message; the application's Update should
// set the new selected value, which View then reflects on the next
// tree build.
type Radio struct {
	Base

	// Value is the choice this radio represents.
	Value any

	// Selected is the currently selected value of the group.
	Selected any

	// Label is the text shown next to the radio circle.
	Label string

	// Message is sent when the radio is clicked.
	Message Message
}

// NewRadio returns a new [Radio] for the given choice value, label,
// currently selected value, and click message.
// It fills the available width, per group convention.
func NewRadio(value any, label string, selected any, msg Message) *Radio {
	return &Radio{
		Base:     Base{Wd: styles.FillLength()},
		Value:    value,
		Selected: selected,
		Label:    label,
		Message:  msg,
	}
}

// IsSelected returns whether this radio's value is the selected value.
func (r *Radio) IsSelected() bool {
	return r.Value == r.Selected
}

// row returns the internal layout tree: the circle box and the label.
func (r *Radio) row(rend Renderer) *Flex {
	size := rend.Defaults().RadioSize
	return NewRow(NewSpace(size, size), NewText(r.Label)).
		SetGap(radioGap).
		SetAlign(styles.Center).
		SetWidth(r.Wd).
		SetHeight(r.Ht)
}

func (r *Radio) Layout(rend Renderer, limits layout.Limits) layout.Node {
	return r.row(rend).Layout(rend, limits)
}

func (r *Radio) OnEvent(e events.Event, p layout.Placed, cursor math32.Vector2, send func(Message)) {
	if e.Typ != events.ButtonPress || e.Button != events.Left {
		return
	}
	if p.Bounds().ContainsPoint(cursor) {
		send(r.Message)
	}
}

func (r *Radio) Draw(rend Renderer, defs *styles.Defaults, p layout.Placed, cursor math32.Vector2) {
	bounds := p.Bounds()
	circle := p.Child(0).Bounds()
	label := p.Child(1).Bounds()

	isMouseOver := bounds.ContainsPoint(cursor)
	radius := circle.Size().X / 2
	center := circle.Center()

	outline := defs.TextColor
	if r.IsSelected() || isMouseOver {
		outline = defs.Accent
	}
	rend.FillCircle(center, radius, defs.Surface)
	rend.StrokeCircle(center, radius, 2, outline)
	if r.IsSelected() {
		rend.FillCircle(center, radius/2, defs.Accent)
	}
	rend.DrawText(r.Label, defs.TextSize, label.Min, defs.TextColor)
}

func (r *Radio) HashLayout(h hash.Hash) {
	HashString(h, r.Label)
	HashLength(h, r.Wd)
	HashLength(h, r.Ht)
}
