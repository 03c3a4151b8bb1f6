// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package app runs glint applications: an [Application] owns all state
// and the [Program] drives the update loop around it. Every frame the
// program drains pending input events through the current widget tree,
// applies the resulting messages one at a time through Update, rebuilds
// the view, lays it out if its layout hash changed, draws it, and trims
// the render cache.
package app

import (
	"cogentcore.org/glint/widget"
)

// Message is an application-defined value carried from widgets and
// subscriptions into [Application.Update].
type Message = widget.Message

// Application is the state and logic of a glint program. All three
// methods are called from the program goroutine only, so they need no
// internal locking.
type Application interface {

	// Update applies one message to the application state. Messages
	// are applied strictly one at a time, in the order produced.
	Update(msg Message)

	// View returns the widget tree for the current state. The tree is
	// rebuilt from scratch on every call; widgets carry no identity
	// across frames.
	View() widget.Widget

	// Subscription returns the recurring event source the application
	// currently wants, derived from its state. Return the zero
	// [Subscription] for none.
	Subscription() Subscription
}
