package workers

import (
	"context"
	"time"
)

type Workers struct {
	workers []Worker
}

func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Start starts every worker in registration order.
func (w *Workers) Start(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Start(ctx)
	}
}

// Stop stops the workers in reverse order, so a worker never outlives the
// ones registered before it.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}

type intervalWorker struct {
	IntervalWorker
	interval time.Duration
}

// WithInterval binds interval to w so it can join [Workers].
func WithInterval(w IntervalWorker, interval time.Duration) Worker {
	return &intervalWorker{IntervalWorker: w, interval: interval}
}

func (w *intervalWorker) Start(ctx context.Context) {
	w.IntervalWorker.Start(ctx, w.interval)
}
