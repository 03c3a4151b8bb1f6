// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events provides the normalized input events consumed by
// glint widgets, and a queue for feeding them from a window driver
// into the update loop.
package events

import (
	"fmt"

	"cogentcore.org/glint/math32"
)

// Types is the set of normalized input event types.
type Types int32

const (
	// UnknownType is an unset event type.
	UnknownType Types = iota

	// PointerMove is a movement of the pointer to a new position.
	PointerMove

	// ButtonPress is a press of a pointer button at a position.
	ButtonPress

	// ButtonRelease is a release of a pointer button at a position.
	ButtonRelease
)

func (t Types) String() string {
	switch t {
	case PointerMove:
		return "PointerMove"
	case ButtonPress:
		return "ButtonPress"
	case ButtonRelease:
		return "ButtonRelease"
	}
	return "UnknownType"
}

// Buttons is a mouse button.
type Buttons int32

const (
	NoButton Buttons = iota
	Left
	Middle
	Right
)

func (b Buttons) String() string {
	switch b {
	case Left:
		return "Left"
	case Middle:
		return "Middle"
	case Right:
		return "Right"
	}
	return "NoButton"
}

// Event is one normalized input event. The window driver produces
// these; the update loop dispatches each one once through the widget
// tree via OnEvent.
type Event struct {

	// Typ is the type of the event.
	Typ Types

	// Button is the button involved, for button events.
	Button Buttons

	// Pos is the pointer position in scene coordinates.
	Pos math32.Vector2
}

// NewPointerMove returns a new [PointerMove] event at the given position.
func NewPointerMove(pos math32.Vector2) Event {
	return Event{Typ: PointerMove, Pos: pos}
}

// NewButtonPress returns a new [ButtonPress] event for the given
// button at the given position.
func NewButtonPress(but Buttons, pos math32.Vector2) Event {
	return Event{Typ: ButtonPress, Button: but, Pos: pos}
}

// NewButtonRelease returns a new [ButtonRelease] event for the given
// button at the given position.
func NewButtonRelease(but Buttons, pos math32.Vector2) Event {
	return Event{Typ: ButtonRelease, Button: but, Pos: pos}
}

func (e Event) String() string {
	return fmt.Sprintf("%v{Button: %v, Pos: %v}", e.Typ, e.Button, e.Pos)
}
