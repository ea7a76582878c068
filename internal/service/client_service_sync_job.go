package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-offline-sync/models"
)

// DefaultSyncInterval is used by SyncJob.Start for a non-positive interval.
const DefaultSyncInterval = 5 * time.Minute

type syncJob struct {
	engine  SyncEngine
	network NetworkStatus

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSyncJob creates a syncJob that schedules a sync of every type on a
// ticker. The job is idle until Start is called.
func NewSyncJob(engine SyncEngine, network NetworkStatus) SyncJob {
	return &syncJob{engine: engine, network: network}
}

// Start implements SyncJob. It stops any previously running job, then
// launches a background goroutine that schedules a sync every interval
// unless the network is known to be offline. The goroutine exits when ctx
// is cancelled or Stop is called.
func (j *syncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultSyncInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if j.network.CurrentState() != models.NetworkOffline {
					j.engine.ScheduleSync()
				}
			}
		}
	}()
}

// Stop implements SyncJob. It cancels the background goroutine's context and
// blocks until the goroutine has fully exited. Safe to call when the job is
// not running.
func (j *syncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
