// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package network tracks connectivity to the remote backend.
//
// A [Monitor] turns raw connectivity observations into settled
// [models.NetworkState] transitions: a new state is announced only after it
// has held for the quiet period, so a flapping connection does not cause a
// burst of sync attempts. A [Prober] is the default source of observations.
package network

import (
	"sync"
	"time"

	"github.com/MKhiriev/go-offline-sync/internal/clock"
	"github.com/MKhiriev/go-offline-sync/internal/logger"
	"github.com/MKhiriev/go-offline-sync/models"
)

// DefaultQuietPeriod is how long a state must hold before it is announced.
const DefaultQuietPeriod = 2 * time.Second

// Observer receives settled state transitions.
type Observer func(from, to models.NetworkState)

// Monitor is safe for concurrent use.
type Monitor struct {
	mu        sync.Mutex
	state     models.NetworkState
	candidate models.NetworkState
	observers map[uint64]Observer
	nextID    uint64

	settle *clock.Debouncer
	logger *logger.Logger
}

// NewMonitor returns a monitor in the Unknown state. A non-positive quiet
// period falls back to [DefaultQuietPeriod].
func NewMonitor(c clock.Clock, quiet time.Duration, logger *logger.Logger) *Monitor {
	if quiet <= 0 {
		quiet = DefaultQuietPeriod
	}
	m := &Monitor{
		observers: make(map[uint64]Observer),
		logger:    logger,
	}
	m.settle = clock.NewDebouncer(c, quiet, m.commit)
	return m
}

// CurrentState returns the last settled state.
func (m *Monitor) CurrentState() models.NetworkState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// IsOnline is a shorthand for CurrentState() == Online.
func (m *Monitor) IsOnline() bool {
	return m.CurrentState() == models.NetworkOnline
}

// Subscribe registers obs for settled transitions and returns a function
// removing it. Observers run on the goroutine that settles the state and
// must not block.
func (m *Monitor) Subscribe(obs Observer) (unsubscribe func()) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextID
	m.nextID++
	m.observers[id] = obs

	var once sync.Once
	return func() {
		once.Do(func() {
			m.mu.Lock()
			delete(m.observers, id)
			m.mu.Unlock()
		})
	}
}

// Observe feeds one connectivity observation. The quiet period restarts on
// every change of the observed state; observing the settled state again
// drops a pending transition.
func (m *Monitor) Observe(connected bool) {
	next := models.NetworkOffline
	if connected {
		next = models.NetworkOnline
	}

	m.mu.Lock()
	if next == m.state {
		m.candidate = next
		m.mu.Unlock()
		m.settle.Cancel()
		return
	}
	if next == m.candidate && m.settle.Pending() {
		m.mu.Unlock()
		return
	}
	m.candidate = next
	m.mu.Unlock()

	m.settle.Trigger()
}

// Close drops a pending transition.
func (m *Monitor) Close() {
	m.settle.Cancel()
}

func (m *Monitor) commit() {
	m.mu.Lock()
	from, to := m.state, m.candidate
	if from == to {
		m.mu.Unlock()
		return
	}
	m.state = to

	observers := make([]Observer, 0, len(m.observers))
	for _, obs := range m.observers {
		observers = append(observers, obs)
	}
	m.mu.Unlock()

	m.logger.Info().
		Str("from", from.String()).
		Str("to", to.String()).
		Msg("network state changed")

	for _, obs := range observers {
		obs(from, to)
	}
}
