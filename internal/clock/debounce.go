// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package clock

import (
	"sync"
	"time"
)

// Debouncer runs fn once after window has passed without a new Trigger.
// At most one timer is pending at any time: triggering again replaces the
// pending timer instead of stacking another one.
type Debouncer struct {
	clock  Clock
	window time.Duration
	fn     func()

	mu    sync.Mutex
	timer Timer
	gen   uint64
}

// NewDebouncer returns a debouncer calling fn on c after window.
func NewDebouncer(c Clock, window time.Duration, fn func()) *Debouncer {
	return &Debouncer{clock: c, window: window, fn: fn}
}

// Trigger starts the window, superseding any pending call.
func (d *Debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	gen := d.gen
	d.timer = d.clock.AfterFunc(d.window, func() { d.fire(gen) })
}

// Cancel drops the pending call. It reports whether one was pending.
func (d *Debouncer) Cancel() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer == nil {
		return false
	}
	d.timer.Stop()
	d.timer = nil
	d.gen++
	return true
}

// Pending reports whether a call is scheduled.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}

// Flush runs a pending call immediately.
func (d *Debouncer) Flush() bool {
	if !d.Cancel() {
		return false
	}
	d.fn()
	return true
}

func (d *Debouncer) fire(gen uint64) {
	d.mu.Lock()
	if gen != d.gen {
		d.mu.Unlock()
		return
	}
	d.timer = nil
	d.mu.Unlock()

	d.fn()
}
