// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package clock abstracts wall-clock time and timers so that debounce
// windows, quiet periods and backoff delays can be driven deterministically
// in tests.
package clock

import "time"

// Timer is a scheduled callback that can be cancelled before it fires.
type Timer interface {
	// Stop prevents the timer from firing. It returns false if the timer
	// already fired or was stopped.
	Stop() bool
}

// Clock is the source of time for the sync engine components.
type Clock interface {
	// Now returns the current time.
	Now() time.Time

	// AfterFunc calls f in its own goroutine (real clock) or synchronously
	// during Advance (fake clock) once d has elapsed.
	AfterFunc(d time.Duration, f func()) Timer
}

type realClock struct{}

// Real returns a [Clock] backed by package time.
func Real() Clock {
	return realClock{}
}

func (realClock) Now() time.Time {
	return time.Now().UTC()
}

func (realClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
