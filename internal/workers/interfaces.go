// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that starts and
// stops multiple workers in a unified way.
package workers

import (
	"context"
	"time"
)

// Worker is the interface that must be implemented by any background worker.
//
// Start must not block: implementations spawn their own goroutines and keep
// running until ctx is cancelled or Stop is called. Stop waits for those
// goroutines to exit.
//
// Example implementation:
//
//	type MyWorker struct{ done chan struct{} }
//
//	func (w *MyWorker) Start(ctx context.Context) {
//	    go w.loop(ctx)
//	}
//
//	func (w *MyWorker) Stop() {
//	    <-w.done
//	}
type Worker interface {
	Start(ctx context.Context)
	Stop()
}

// IntervalWorker is a worker whose period is chosen by the caller, such as
// the periodic sync job.
type IntervalWorker interface {
	Start(ctx context.Context, interval time.Duration)
	Stop()
}
