// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)

func TestFake_AdvanceFiresDueTimersInOrder(t *testing.T) {
	c := NewFake(epoch)
	var order []int

	c.AfterFunc(3*time.Second, func() { order = append(order, 3) })
	c.AfterFunc(time.Second, func() { order = append(order, 1) })
	c.AfterFunc(2*time.Second, func() { order = append(order, 2) })

	c.Advance(2 * time.Second)
	assert.Equal(t, []int{1, 2}, order)
	assert.Equal(t, epoch.Add(2*time.Second), c.Now())
	assert.Equal(t, 1, c.Pending())

	c.Advance(time.Second)
	assert.Equal(t, []int{1, 2, 3}, order)
	assert.Zero(t, c.Pending())
}

func TestFake_StoppedTimerDoesNotFire(t *testing.T) {
	c := NewFake(epoch)
	fired := false

	timer := c.AfterFunc(time.Second, func() { fired = true })
	require.True(t, timer.Stop())
	assert.False(t, timer.Stop())

	c.Advance(time.Minute)
	assert.False(t, fired)
}

func TestFake_CallbackSchedulesFollowUp(t *testing.T) {
	c := NewFake(epoch)
	count := 0

	var tick func()
	tick = func() {
		count++
		if count < 3 {
			c.AfterFunc(time.Second, tick)
		}
	}
	c.AfterFunc(time.Second, tick)

	c.Advance(10 * time.Second)
	assert.Equal(t, 3, count)
}

func TestDebouncer_BatchesTriggersWithinWindow(t *testing.T) {
	c := NewFake(epoch)
	calls := 0
	d := NewDebouncer(c, time.Second, func() { calls++ })

	d.Trigger()
	c.Advance(500 * time.Millisecond)
	d.Trigger()
	c.Advance(500 * time.Millisecond)
	d.Trigger()
	c.Advance(999 * time.Millisecond)
	assert.Zero(t, calls)
	assert.True(t, d.Pending())

	c.Advance(time.Millisecond)
	assert.Equal(t, 1, calls)
	assert.False(t, d.Pending())
	assert.Zero(t, c.Pending(), "superseded timers must not accumulate")
}

func TestDebouncer_Cancel(t *testing.T) {
	c := NewFake(epoch)
	calls := 0
	d := NewDebouncer(c, time.Second, func() { calls++ })

	assert.False(t, d.Cancel())
	d.Trigger()
	assert.True(t, d.Cancel())

	c.Advance(time.Minute)
	assert.Zero(t, calls)
}

func TestDebouncer_Flush(t *testing.T) {
	c := NewFake(epoch)
	calls := 0
	d := NewDebouncer(c, time.Second, func() { calls++ })

	assert.False(t, d.Flush())
	d.Trigger()
	assert.True(t, d.Flush())
	assert.Equal(t, 1, calls)

	c.Advance(time.Minute)
	assert.Equal(t, 1, calls)
}
