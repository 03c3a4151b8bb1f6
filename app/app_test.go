// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app_test

import (
	"fmt"
	"hash"
	"image"
	"sync/atomic"
	"testing"
	"time"

	"cogentcore.org/glint/app"
	"cogentcore.org/glint/events"
	"cogentcore.org/glint/layout"
	"cogentcore.org/glint/math32"
	"cogentcore.org/glint/paint"
	"cogentcore.org/glint/styles"
	"cogentcore.org/glint/widget"
	"github.com/stretchr/testify/assert"
)

func TestSubscriptionHash(t *testing.T) {
	assert.Equal(t, app.Every(10*time.Millisecond).Hash(), app.Every(10*time.Millisecond).Hash())
	assert.NotEqual(t, app.Every(10*time.Millisecond).Hash(), app.Every(20*time.Millisecond).Hash())

	var none app.Subscription
	assert.True(t, none.IsNone())
	assert.Equal(t, uint64(0), none.Hash())
	assert.False(t, app.Every(time.Second).IsNone())
}

// testClock is a manually driven [app.Clock]: every Ticker shares one
// buffered channel the test pushes ticks into.
type testClock struct {
	tickers atomic.Int32
	ch      chan time.Time
}

func newTestClock() *testClock {
	return &testClock{ch: make(chan time.Time, 8)}
}

func (c *testClock) Ticker(d time.Duration) (<-chan time.Time, func()) {
	c.tickers.Add(1)
	return c.ch, func() {}
}

func (c *testClock) Now() time.Time {
	return time.Unix(0, 0)
}

type toggleMsg struct{}

type renameMsg struct {
	name string
}

type retimeMsg struct {
	interval time.Duration
}

type tickerApp struct {
	running  bool
	interval time.Duration
	name     string
	ticks    int
}

func (a *tickerApp) Update(msg app.Message) {
	switch msg := msg.(type) {
	case toggleMsg:
		a.running = !a.running
	case renameMsg:
		a.name = msg.name
	case retimeMsg:
		a.interval = msg.interval
	case app.TickMsg:
		a.ticks++
	}
}

func (a *tickerApp) Subscription() app.Subscription {
	if a.running {
		return app.Every(a.interval)
	}
	return app.Subscription{}
}

func (a *tickerApp) View() widget.Widget {
	return widget.NewText(fmt.Sprintf("%s: %d", a.name, a.ticks))
}

func testProgram(a app.Application, clk app.Clock) *app.Program {
	rend := paint.NewRenderer(image.Pt(200, 100), 1)
	return app.NewProgram(a, rend, math32.Vec2(200, 100)).SetClock(clk)
}

// waitTicks polls queued subscription messages into the application
// until it has seen n ticks.
func waitTicks(t *testing.T, p *app.Program, a *tickerApp, n int) {
	t.Helper()
	assert.Eventually(t, func() bool {
		p.Poll()
		return a.ticks >= n
	}, time.Second, time.Millisecond)
}

func TestSubscriptionLifecycle(t *testing.T) {
	clk := newTestClock()
	a := &tickerApp{interval: 10 * time.Millisecond}
	p := testProgram(a, clk)

	// no subscription until the application asks for one
	p.Dispatch(renameMsg{"idle"})
	assert.Equal(t, int32(0), clk.tickers.Load())

	p.Dispatch(toggleMsg{})
	assert.Eventually(t, func() bool { return clk.tickers.Load() == 1 },
		time.Second, time.Millisecond)

	clk.ch <- time.Unix(1, 0)
	waitTicks(t, p, a, 1)
}

func TestSubscriptionIdenticalSwap(t *testing.T) {
	clk := newTestClock()
	a := &tickerApp{running: true, interval: 10 * time.Millisecond}
	p := testProgram(a, clk)

	p.Dispatch(renameMsg{"a"})
	assert.Eventually(t, func() bool { return clk.tickers.Load() == 1 },
		time.Second, time.Millisecond)

	// unrelated state changes leave the identical subscription running
	for i := 0; i < 3; i++ {
		p.Dispatch(renameMsg{fmt.Sprintf("swap %d", i)})
		clk.ch <- time.Unix(int64(i), 0)
		waitTicks(t, p, a, i+1)
	}
	assert.Equal(t, int32(1), clk.tickers.Load())
	assert.Equal(t, 3, a.ticks)
}

func TestSubscriptionRestart(t *testing.T) {
	clk := newTestClock()
	a := &tickerApp{running: true, interval: 10 * time.Millisecond}
	p := testProgram(a, clk)

	p.Dispatch(renameMsg{"start"})
	assert.Eventually(t, func() bool { return clk.tickers.Load() == 1 },
		time.Second, time.Millisecond)

	// a different interval is a different subscription: the old
	// producer stops and a new one starts
	p.Dispatch(retimeMsg{20 * time.Millisecond})
	assert.Eventually(t, func() bool { return clk.tickers.Load() == 2 },
		time.Second, time.Millisecond)

	// stopping ends delivery: a late tick is dropped, not applied
	p.Dispatch(toggleMsg{})
	clk.ch <- time.Unix(9, 0)
	time.Sleep(10 * time.Millisecond)
	p.Poll()
	assert.Equal(t, 0, a.ticks)
}

type buttonApp struct {
	count int
}

type pressMsg struct{}

func (a *buttonApp) Update(msg app.Message) {
	if _, ok := msg.(pressMsg); ok {
		a.count++
	}
}

func (a *buttonApp) Subscription() app.Subscription {
	return app.Subscription{}
}

func (a *buttonApp) View() widget.Widget {
	return widget.NewContainer(widget.NewButton("Go", pressMsg{})).SetCenter()
}

func TestFrameEventDispatch(t *testing.T) {
	clk := newTestClock()
	a := &buttonApp{}
	p := testProgram(a, clk)

	// the button is centered in the 200x100 scene
	center := math32.Vec2(100, 50)
	p.SendEvent(events.NewPointerMove(center))
	p.SendEvent(events.NewButtonPress(events.Left, center))
	p.Frame()
	assert.Equal(t, 1, a.count)

	// a press outside the button does nothing
	p.SendEvent(events.NewPointerMove(math32.Vec2(5, 5)))
	p.SendEvent(events.NewButtonPress(events.Left, math32.Vec2(5, 5)))
	p.Frame()
	assert.Equal(t, 1, a.count)
}

// countingWidget counts its Layout calls.
type countingWidget struct {
	widget.Base
	label   string
	layouts *int
}

func (w *countingWidget) Layout(rend widget.Renderer, limits layout.Limits) layout.Node {
	*w.layouts++
	return layout.NewNode(limits.Resolve(math32.Vec2(10, 10)))
}

func (w *countingWidget) OnEvent(e events.Event, p layout.Placed, cursor math32.Vector2, send func(widget.Message)) {
}

func (w *countingWidget) Draw(rend widget.Renderer, defs *styles.Defaults, p layout.Placed, cursor math32.Vector2) {
}

func (w *countingWidget) HashLayout(h hash.Hash) {
	widget.HashString(h, w.label)
}

type countingApp struct {
	label   string
	layouts int
}

func (a *countingApp) Update(msg app.Message) {
	a.label = msg.(string)
}

func (a *countingApp) Subscription() app.Subscription {
	return app.Subscription{}
}

func (a *countingApp) View() widget.Widget {
	return &countingWidget{label: a.label, layouts: &a.layouts}
}

func TestLayoutHashSkipsRelayout(t *testing.T) {
	clk := newTestClock()
	a := &countingApp{label: "a"}
	p := testProgram(a, clk)

	p.Frame()
	p.Frame()
	p.Frame()
	// identical rebuilt trees reuse the computed layout
	assert.Equal(t, 1, a.layouts)

	p.Dispatch("b")
	p.Frame()
	assert.Equal(t, 2, a.layouts)
}
