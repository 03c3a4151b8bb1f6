// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"context"
	"hash/fnv"
	"time"

	"cogentcore.org/glint/events"
	"cogentcore.org/glint/layout"
	"cogentcore.org/glint/math32"
	"cogentcore.org/glint/widget"
)

// Renderer is the rendering surface a [Program] drives: the widget
// drawing primitives plus per-frame begin and end hooks. EndFrame is
// where the renderer trims its render cache, so it must be called
// exactly once per frame, after all drawing.
type Renderer interface {
	widget.Renderer

	// BeginFrame prepares the surface for a new frame.
	BeginFrame()

	// EndFrame finishes the frame and trims the render cache.
	EndFrame()
}

// Program drives one [Application]: it owns the event queue, the
// message channel, the current widget tree and its layout, and the
// running subscription. All application methods are called from the
// goroutine running [Program.Run] (or, in tests, the goroutine calling
// [Program.Frame] and [Program.Dispatch] directly).
type Program struct {
	app   Application
	rend  Renderer
	size  math32.Vector2
	clock Clock
	fps   int

	// queue buffers input events between frames; the window driver
	// sends into it from its own goroutine.
	queue events.Queue

	msgs chan Message
	done chan struct{}

	cursor math32.Vector2

	view       widget.Widget
	node       layout.Node
	layoutHash uint64
	haveLayout bool

	subHash uint64
	subStop chan struct{}
}

// NewProgram returns a new [Program] running the given application on
// the given renderer, with the given logical size.
func NewProgram(app Application, rend Renderer, size math32.Vector2) *Program {
	p := &Program{
		app:   app,
		rend:  rend,
		size:  size,
		clock: WallClock{},
		fps:   60,
		msgs:  make(chan Message, 64),
		done:  make(chan struct{}),
	}
	p.queue.Init()
	return p
}

// SetClock sets the clock used for frames and subscriptions.
// Call before [Program.Run].
func (p *Program) SetClock(c Clock) *Program {
	p.clock = c
	return p
}

// SetFPS sets the frame rate. Call before [Program.Run].
func (p *Program) SetFPS(fps int) *Program {
	if fps > 0 {
		p.fps = fps
	}
	return p
}

// SendEvent queues an input event for processing on the next frame.
// It is safe to call from any goroutine.
func (p *Program) SendEvent(ev events.Event) {
	p.queue.Send(ev)
}

// Run drives the program until the context is canceled: it starts the
// application's subscription, then alternates between applying queued
// messages and rendering frames at the configured rate.
func (p *Program) Run(ctx context.Context) error {
	p.syncSubscription()
	frames, cancel := p.clock.Ticker(time.Second / time.Duration(p.fps))
	defer cancel()
	defer p.shutdown()
	p.Frame()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg := <-p.msgs:
			p.Dispatch(msg)
		case <-frames:
			p.Frame()
		}
	}
}

func (p *Program) shutdown() {
	close(p.done)
	if p.subStop != nil {
		close(p.subStop)
		p.subStop = nil
	}
}

// Dispatch applies one message through the application's Update, then
// reconciles the subscription against the updated state.
func (p *Program) Dispatch(msg Message) {
	p.app.Update(msg)
	p.syncSubscription()
}

// Poll applies every message currently queued from subscriptions,
// without blocking. Run does this itself; Poll is for driving the
// program manually.
func (p *Program) Poll() {
	for {
		select {
		case msg := <-p.msgs:
			p.Dispatch(msg)
		default:
			return
		}
	}
}

// Frame renders one frame: queued input events are dispatched through
// the current widget tree, the view is rebuilt, relaid out if its
// layout hash changed, and drawn.
func (p *Program) Frame() {
	p.buildView()
	for {
		ev, ok := p.queue.NextEvent()
		if !ok {
			break
		}
		p.processEvent(ev)
		// messages may have changed the tree for the next event
		p.buildView()
	}
	p.rend.BeginFrame()
	placed := layout.Placed{Node: &p.node}
	p.view.Draw(p.rend, p.rend.Defaults(), placed, p.cursor)
	p.rend.EndFrame()
}

func (p *Program) processEvent(ev events.Event) {
	if ev.Typ == events.PointerMove {
		p.cursor = ev.Pos
	}
	var pending []Message
	placed := layout.Placed{Node: &p.node}
	p.view.OnEvent(ev, placed, p.cursor, func(msg Message) {
		pending = append(pending, msg)
	})
	for _, msg := range pending {
		p.Dispatch(msg)
	}
}

// buildView rebuilds the widget tree from the application and relays
// it out only if the layout hash of the new tree differs from the
// current one.
func (p *Program) buildView() {
	p.view = p.app.View()
	h := fnv.New64a()
	p.view.HashLayout(h)
	widget.HashFloat32(h, p.size.X)
	widget.HashFloat32(h, p.size.Y)
	hash := h.Sum64()
	if p.haveLayout && hash == p.layoutHash {
		return
	}
	p.node = p.view.Layout(p.rend, layout.NewLimits(math32.Vector2{}, p.size))
	p.layoutHash = hash
	p.haveLayout = true
}

// syncSubscription reconciles the running subscription with the one
// the application currently wants. Same identity: the producer is
// left running. Different identity: the old producer is stopped
// before the new one starts.
func (p *Program) syncSubscription() {
	sub := p.app.Subscription()
	hash := sub.Hash()
	if hash == p.subHash {
		return
	}
	if p.subStop != nil {
		close(p.subStop)
		p.subStop = nil
	}
	p.subHash = hash
	if sub.IsNone() {
		return
	}
	stop := make(chan struct{})
	p.subStop = stop
	go sub.run(p.clock, p.send, stop)
}

func (p *Program) send(msg Message) {
	select {
	case p.msgs <- msg:
	case <-p.done:
	}
}
