// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"encoding/binary"
	"hash/fnv"
	"time"
)

// TickMsg is the message delivered by an [Every] subscription on each
// interval boundary.
type TickMsg struct {

	// Time is the delivery time of the tick.
	Time time.Time
}

// Subscription describes a recurring external event source that the
// application wants while it is active. Subscriptions are compared by
// structural identity ([Subscription.Hash]): after an update, a
// subscription with the same identity as the running one is left
// undisturbed, so a timer does not lose phase just because the state
// changed. A changed identity stops the old producer before the new
// one starts.
type Subscription struct {
	kind     string
	interval time.Duration
}

// Every returns a [Subscription] that delivers a [TickMsg]
// approximately every interval.
func Every(interval time.Duration) Subscription {
	return Subscription{kind: "time.every", interval: interval}
}

// IsNone reports whether the subscription is the zero value,
// describing no event source.
func (s Subscription) IsNone() bool {
	return s.kind == ""
}

// Hash returns the structural identity of the subscription: equal
// kind and parameters produce equal hashes. The zero subscription
// hashes to 0.
func (s Subscription) Hash() uint64 {
	if s.IsNone() {
		return 0
	}
	h := fnv.New64a()
	h.Write([]byte(s.kind))
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(s.interval))
	h.Write(b[:])
	return h.Sum64()
}

// run produces the subscription's messages until stop is closed,
// using clock for time. It runs on its own goroutine.
func (s Subscription) run(clock Clock, send func(Message), stop <-chan struct{}) {
	ticks, cancel := clock.Ticker(s.interval)
	defer cancel()
	for {
		select {
		case <-stop:
			return
		case tm := <-ticks:
			select {
			case <-stop:
				return
			default:
			}
			send(TickMsg{Time: tm})
		}
	}
}

// Clock abstracts time for subscriptions and the frame loop, so tests
// can drive ticks deterministically.
type Clock interface {

	// Ticker returns a channel delivering ticks approximately every d,
	// and a cancel function releasing the ticker's resources.
	Ticker(d time.Duration) (<-chan time.Time, func())

	// Now returns the current time.
	Now() time.Time
}

// WallClock is the real-time [Clock] backed by the time package.
type WallClock struct{}

func (WallClock) Ticker(d time.Duration) (<-chan time.Time, func()) {
	t := time.NewTicker(d)
	return t.C, t.Stop
}

func (WallClock) Now() time.Time {
	return time.Now()
}
