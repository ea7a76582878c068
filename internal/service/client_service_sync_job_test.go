// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-offline-sync/internal/network"
	"github.com/MKhiriev/go-offline-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spyEngine counts ScheduleSync calls. Other methods are not used by the
// job and panic through the nil embedded interface.
type spyEngine struct {
	SyncEngine
	calls atomic.Int64
	types atomic.Int64
}

func (s *spyEngine) ScheduleSync(types ...models.EntityType) {
	s.calls.Add(1)
	s.types.Store(int64(len(types)))
}

type switchableNetwork struct {
	state atomic.Int32
}

func (n *switchableNetwork) CurrentState() models.NetworkState {
	return models.NetworkState(n.state.Load())
}

func (n *switchableNetwork) Subscribe(network.Observer) func() {
	return func() {}
}

func onlineNetwork() *switchableNetwork {
	n := &switchableNetwork{}
	n.state.Store(int32(models.NetworkOnline))
	return n
}

// ── NewSyncJob ───────────────────────────────────────────────────────────────

func TestNewSyncJob_ReturnsInterface(t *testing.T) {
	job := NewSyncJob(&spyEngine{}, onlineNetwork())
	require.NotNil(t, job)

	var _ SyncJob = job
}

// ── Start / Stop ─────────────────────────────────────────────────────────────

func TestSyncJob_Start_SchedulesEveryType(t *testing.T) {
	spy := &spyEngine{}
	job := NewSyncJob(spy, onlineNetwork())

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	got := spy.calls.Load()
	assert.GreaterOrEqual(t, got, int64(3), "ScheduleSync called %d times", got)
	assert.Zero(t, spy.types.Load(), "the job schedules all types")
}

func TestSyncJob_SkipsWhileOffline(t *testing.T) {
	spy := &spyEngine{}
	net := &switchableNetwork{}
	net.state.Store(int32(models.NetworkOffline))
	job := NewSyncJob(spy, net)

	job.Start(context.Background(), 5*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	assert.Zero(t, spy.calls.Load())

	net.state.Store(int32(models.NetworkUnknown))
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	assert.Positive(t, spy.calls.Load(), "an unknown network does not block the job")
}

func TestSyncJob_Stop_StopsGoroutine(t *testing.T) {
	spy := &spyEngine{}
	job := NewSyncJob(spy, onlineNetwork())

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	callsAfterStop := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)

	assert.Equal(t, callsAfterStop, spy.calls.Load(), "no calls after Stop")
}

func TestSyncJob_Stop_BeforeStart_NoPanic(t *testing.T) {
	job := NewSyncJob(&spyEngine{}, onlineNetwork())

	assert.NotPanics(t, func() { job.Stop() })
}

func TestSyncJob_DoubleStop_NoPanic(t *testing.T) {
	job := NewSyncJob(&spyEngine{}, onlineNetwork())

	job.Start(context.Background(), 10*time.Millisecond)
	job.Stop()

	assert.NotPanics(t, func() { job.Stop() })
}

func TestSyncJob_Start_DefaultInterval(t *testing.T) {
	tests := []struct {
		name     string
		interval time.Duration
	}{
		{name: "zero", interval: 0},
		{name: "negative", interval: -time.Second},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spy := &spyEngine{}
			job := NewSyncJob(spy, onlineNetwork())

			job.Start(context.Background(), tt.interval)
			time.Sleep(20 * time.Millisecond)
			job.Stop()

			assert.Zero(t, spy.calls.Load(), "the default interval is minutes long")
		})
	}
}

func TestSyncJob_Restart_KeepsTicking(t *testing.T) {
	spy := &spyEngine{}
	job := NewSyncJob(spy, onlineNetwork())
	ctx := context.Background()

	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	callsBefore := spy.calls.Load()
	assert.Positive(t, callsBefore)

	// Start on a running job replaces the previous goroutine
	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	assert.Greater(t, spy.calls.Load(), callsBefore)
}

func TestSyncJob_ContextCancel_StopsJob(t *testing.T) {
	job := NewSyncJob(&spyEngine{}, onlineNetwork())
	ctx, cancel := context.WithCancel(context.Background())

	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	cancel()

	done := make(chan struct{})
	go func() {
		job.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop hung after context cancellation")
	}
}
