package network

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-offline-sync/internal/logger"
	"github.com/MKhiriev/go-offline-sync/models"
	"github.com/stretchr/testify/assert"
)

type fakePinger struct {
	calls atomic.Int32
	err   atomic.Value
}

func (p *fakePinger) Ping(ctx context.Context) error {
	p.calls.Add(1)
	if _, ok := ctx.Deadline(); !ok {
		return errors.New("probe without deadline")
	}
	if err, ok := p.err.Load().(error); ok {
		return err
	}
	return nil
}

func TestProber_ProbeOnce(t *testing.T) {
	m, c := newTestMonitor()
	pinger := &fakePinger{}
	p := NewProber(pinger, m, time.Second, 0, logger.Nop())

	assert.True(t, p.ProbeOnce(context.Background()))
	c.Advance(quiet)
	assert.Equal(t, models.NetworkOnline, m.CurrentState())

	pinger.err.Store(errors.New("connection refused"))
	assert.False(t, p.ProbeOnce(context.Background()))
	c.Advance(quiet)
	assert.Equal(t, models.NetworkOffline, m.CurrentState())
}

func TestProber_StartStop(t *testing.T) {
	m, _ := newTestMonitor()
	pinger := &fakePinger{}
	p := NewProber(pinger, m, 10*time.Millisecond, time.Second, logger.Nop())

	p.Start(context.Background())
	assert.Eventually(t, func() bool { return pinger.calls.Load() >= 3 }, time.Second, 5*time.Millisecond)

	p.Stop()
	calls := pinger.calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, calls, pinger.calls.Load(), "no probes after Stop")

	p.Stop()
}

func TestNewProber_Defaults(t *testing.T) {
	m, _ := newTestMonitor()
	p := NewProber(&fakePinger{}, m, 0, 0, logger.Nop())

	assert.Equal(t, DefaultProbeInterval, p.interval)
	assert.Equal(t, DefaultProbeInterval, p.timeout)
}
