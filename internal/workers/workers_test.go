// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// recordingWorker appends "<event>:<id>" to a shared journal.
type recordingWorker struct {
	id      int
	journal *[]string
	ctx     context.Context
}

func (r *recordingWorker) Start(ctx context.Context) {
	r.ctx = ctx
	*r.journal = append(*r.journal, fmt.Sprintf("start:%d", r.id))
}

func (r *recordingWorker) Stop() {
	*r.journal = append(*r.journal, fmt.Sprintf("stop:%d", r.id))
}

type recordingIntervalWorker struct {
	interval time.Duration
	stopped  bool
}

func (r *recordingIntervalWorker) Start(_ context.Context, interval time.Duration) {
	r.interval = interval
}

func (r *recordingIntervalWorker) Stop() {
	r.stopped = true
}

func TestWorkers_StartInOrderStopInReverse(t *testing.T) {
	var journal []string
	w1 := &recordingWorker{id: 1, journal: &journal}
	w2 := &recordingWorker{id: 2, journal: &journal}
	w3 := &recordingWorker{id: 3, journal: &journal}

	ws := NewWorkers(w1, w2, w3)
	ctx := context.Background()
	ws.Start(ctx)
	ws.Stop()

	assert.Equal(t, []string{"start:1", "start:2", "start:3", "stop:3", "stop:2", "stop:1"}, journal)
	assert.Equal(t, ctx, w2.ctx)
}

func TestWorkers_Empty(t *testing.T) {
	ws := NewWorkers()

	// Should not panic on empty workers list
	ws.Start(context.Background())
	ws.Stop()
}

func TestWorkers_ZeroValue(t *testing.T) {
	ws := &Workers{}

	// Should not panic when workers field is nil
	ws.Start(context.Background())
	ws.Stop()
}

func TestWithInterval(t *testing.T) {
	job := &recordingIntervalWorker{}

	w := WithInterval(job, 30*time.Second)
	NewWorkers(w).Start(context.Background())
	assert.Equal(t, 30*time.Second, job.interval)

	w.Stop()
	assert.True(t, job.stopped)
}
