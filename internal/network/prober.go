package network

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-offline-sync/internal/logger"
)

// DefaultProbeInterval is the delay between two health checks.
const DefaultProbeInterval = 10 * time.Second

// Pinger checks reachability of the remote backend.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Prober polls a [Pinger] and feeds the results into a [Monitor].
type Prober struct {
	pinger   Pinger
	monitor  *Monitor
	interval time.Duration
	timeout  time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewProber builds an idle prober. Start launches the polling loop.
func NewProber(pinger Pinger, monitor *Monitor, interval, timeout time.Duration, logger *logger.Logger) *Prober {
	if interval <= 0 {
		interval = DefaultProbeInterval
	}
	if timeout <= 0 || timeout > interval {
		timeout = interval
	}
	return &Prober{
		pinger:   pinger,
		monitor:  monitor,
		interval: interval,
		timeout:  timeout,
		logger:   logger,
	}
}

// ProbeOnce runs a single health check and reports the result to the
// monitor.
func (p *Prober) ProbeOnce(ctx context.Context) bool {
	probeCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	err := p.pinger.Ping(probeCtx)
	if err != nil {
		p.logger.Debug().Err(err).Msg("backend health check failed")
	}
	connected := err == nil
	p.monitor.Observe(connected)
	return connected
}

// Start probes immediately and then every interval until ctx is cancelled
// or Stop is called. A running loop is stopped first.
func (p *Prober) Start(ctx context.Context) {
	p.Stop()

	p.mu.Lock()
	loopCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.wg.Add(1)
	p.mu.Unlock()

	go func() {
		defer p.wg.Done()
		t := time.NewTicker(p.interval)
		defer t.Stop()

		p.ProbeOnce(loopCtx)
		for {
			select {
			case <-loopCtx.Done():
				return
			case <-t.C:
				p.ProbeOnce(loopCtx)
			}
		}
	}()
}

// Stop cancels the loop and waits for it to exit. Safe to call when the
// prober is not running.
func (p *Prober) Stop() {
	p.mu.Lock()
	cancel := p.cancel
	p.cancel = nil
	p.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	p.wg.Wait()
}
