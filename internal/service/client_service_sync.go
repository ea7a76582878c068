// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-offline-sync/internal/adapter"
	"github.com/MKhiriev/go-offline-sync/internal/clock"
	"github.com/MKhiriev/go-offline-sync/internal/conflict"
	"github.com/MKhiriev/go-offline-sync/internal/logger"
	"github.com/MKhiriev/go-offline-sync/internal/store"
	"github.com/MKhiriev/go-offline-sync/models"
)

const (
	DefaultPushConcurrency = 4
	DefaultRetryBase       = 500 * time.Millisecond
	DefaultRetryMax        = 30 * time.Second
	DefaultMaxAttempts     = 3
	DefaultScheduleDelay   = 250 * time.Millisecond
)

// SyncConfig tunes a [SyncEngine]. Zero values fall back to the Default*
// constants.
type SyncConfig struct {
	EntityTypes     []models.EntityType
	PushConcurrency int
	RetryBase       time.Duration
	RetryMax        time.Duration
	MaxAttempts     int
	// ScheduleDelay is the debounce window of ScheduleSync.
	ScheduleDelay time.Duration
}

func (c SyncConfig) withDefaults() SyncConfig {
	if c.PushConcurrency <= 0 {
		c.PushConcurrency = DefaultPushConcurrency
	}
	if c.RetryBase <= 0 {
		c.RetryBase = DefaultRetryBase
	}
	if c.RetryMax <= 0 {
		c.RetryMax = DefaultRetryMax
	}
	if c.RetryMax < c.RetryBase {
		c.RetryMax = c.RetryBase
	}
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = DefaultMaxAttempts
	}
	if c.ScheduleDelay <= 0 {
		c.ScheduleDelay = DefaultScheduleDelay
	}
	return c
}

// SyncDependencies are the collaborators of a [SyncEngine].
type SyncDependencies struct {
	Entities EntityStore
	Queue    SyncQueue
	Backend  adapter.RemoteBackend
	Resolver conflict.Resolver
	Crypto   ClientCryptoService
	States   store.SyncStateRepository
	Network  NetworkStatus
	Clock    clock.Clock
}

type pushOutcome int

const (
	outcomePushed pushOutcome = iota
	outcomeSkipped
	outcomeConflict
	outcomeFailed
)

type pushResult struct {
	op      models.SyncOperation
	outcome pushOutcome
	err     error
}

type syncEngine struct {
	entities EntityStore
	queue    SyncQueue
	backend  adapter.RemoteBackend
	resolver conflict.Resolver
	crypto   ClientCryptoService
	states   store.SyncStateRepository
	network  NetworkStatus
	clock    clock.Clock
	cfg      SyncConfig
	known    map[models.EntityType]struct{}

	mu      sync.Mutex
	running map[models.EntityType]struct{}

	subMu       sync.RWMutex
	subscribers map[uint64]func(models.SyncEvent)
	nextSub     uint64

	schedMu     sync.Mutex
	scheduled   map[models.EntityType]struct{}
	scheduler   *clock.Debouncer
	runCtx      context.Context
	stopRuns    context.CancelFunc
	unsubscribe func()
	runs        sync.WaitGroup

	// sleep waits between retry attempts.
	sleep func(ctx context.Context, d time.Duration) error

	logger *logger.Logger
}

// NewSyncEngine builds the engine. It is idle until Start is called;
// Sync and SyncWithRetry work without Start.
func NewSyncEngine(deps SyncDependencies, cfg SyncConfig, logger *logger.Logger) SyncEngine {
	return newSyncEngine(deps, cfg, logger)
}

func newSyncEngine(deps SyncDependencies, cfg SyncConfig, logger *logger.Logger) *syncEngine {
	cfg = cfg.withDefaults()
	if deps.Clock == nil {
		deps.Clock = clock.Real()
	}
	if deps.Resolver == nil {
		deps.Resolver = conflict.NewLastWriterWins()
	}

	e := &syncEngine{
		entities:    deps.Entities,
		queue:       deps.Queue,
		backend:     deps.Backend,
		resolver:    deps.Resolver,
		crypto:      deps.Crypto,
		states:      deps.States,
		network:     deps.Network,
		clock:       deps.Clock,
		cfg:         cfg,
		known:       make(map[models.EntityType]struct{}, len(cfg.EntityTypes)),
		running:     make(map[models.EntityType]struct{}),
		subscribers: make(map[uint64]func(models.SyncEvent)),
		scheduled:   make(map[models.EntityType]struct{}),
		logger:      logger,
	}
	for _, t := range cfg.EntityTypes {
		e.known[t] = struct{}{}
	}
	e.sleep = e.wait
	e.scheduler = clock.NewDebouncer(deps.Clock, cfg.ScheduleDelay, e.runScheduled)
	return e
}

func (e *syncEngine) EntityTypes() []models.EntityType {
	return append([]models.EntityType(nil), e.cfg.EntityTypes...)
}

// Sync implements [SyncEngine]. Once the push phase starts, cancelling ctx
// no longer interrupts the cycle.
func (e *syncEngine) Sync(ctx context.Context, entityType models.EntityType) (models.SyncReport, error) {
	report := models.SyncReport{EntityType: entityType, StartedAt: e.clock.Now()}

	if _, ok := e.known[entityType]; !ok {
		return report, fmt.Errorf("%w: unknown entity type %q", ErrValidation, entityType)
	}
	if err := ctx.Err(); err != nil {
		return report, err
	}
	if _, ok := e.backend.AuthenticatedUser(); !ok {
		e.fail(entityType, ErrNotAuthenticated)
		return report, ErrNotAuthenticated
	}
	if !e.acquire(entityType) {
		return report, fmt.Errorf("%w: %s", ErrAlreadyInProgress, entityType)
	}
	defer e.release(entityType)

	if e.network.CurrentState() == models.NetworkOffline {
		err := fmt.Errorf("%w: offline", ErrNetwork)
		e.fail(entityType, err)
		return report, err
	}

	ctx = context.WithoutCancel(ctx)
	e.emit(models.SyncEvent{Type: models.EventStarted, EntityType: entityType})

	e.push(ctx, entityType, &report)

	if err := e.pull(ctx, entityType, &report); err != nil {
		report.FinishedAt = e.clock.Now()
		e.fail(entityType, err)
		return report, err
	}

	report.FinishedAt = e.clock.Now()
	e.emit(models.SyncEvent{Type: models.EventCompleted, EntityType: entityType, Progress: 100})

	e.logger.Info().
		Str("entity_type", entityType.String()).
		Int("pushed", report.Pushed).
		Int("failed", report.Failed).
		Int("skipped", report.Skipped).
		Int("conflicts", report.Conflicts).
		Int("pulled", report.Pulled).
		Dur("took", report.FinishedAt.Sub(report.StartedAt)).
		Msg("sync cycle completed")

	return report, nil
}

func (e *syncEngine) acquire(entityType models.EntityType) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, busy := e.running[entityType]; busy {
		return false
	}
	e.running[entityType] = struct{}{}
	return true
}

func (e *syncEngine) release(entityType models.EntityType) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.running, entityType)
}

// push uploads the queued operations of entityType. Items fail
// independently; events are emitted in enqueue order whatever the
// completion order.
func (e *syncEngine) push(ctx context.Context, entityType models.EntityType, report *models.SyncReport) {
	ops := e.queue.DrainType(entityType)
	if len(ops) == 0 {
		return
	}

	results := make([]pushResult, len(ops))
	done := make([]bool, len(ops))
	next := 0
	var mu sync.Mutex

	var g errgroup.Group
	g.SetLimit(e.cfg.PushConcurrency)
	for i, op := range ops {
		g.Go(func() error {
			res := e.pushOne(ctx, op)

			mu.Lock()
			defer mu.Unlock()
			results[i] = res
			done[i] = true
			for next < len(ops) && done[next] {
				e.reportItem(results[next], next+1, len(ops))
				next++
			}
			return nil
		})
	}
	_ = g.Wait()

	for _, res := range results {
		switch res.outcome {
		case outcomePushed:
			report.Pushed++
		case outcomeSkipped:
			report.Skipped++
		case outcomeConflict:
			report.Conflicts++
		case outcomeFailed:
			report.Failed++
		}
	}
}

func (e *syncEngine) reportItem(res pushResult, position, total int) {
	if res.outcome == outcomeFailed {
		e.emit(models.SyncEvent{
			Type:       models.EventFailed,
			EntityType: res.op.EntityType,
			EntityID:   res.op.EntityID,
			Err:        res.err,
		})
	}
	e.emit(models.SyncEvent{
		Type:       models.EventProgress,
		EntityType: res.op.EntityType,
		EntityID:   res.op.EntityID,
		Progress:   position * 100 / total,
	})
}

func (e *syncEngine) pushOne(ctx context.Context, op models.SyncOperation) pushResult {
	res := pushResult{op: op}

	entity, err := e.entities.MarkSyncing(ctx, op.EntityType, op.EntityID)
	switch {
	case errors.Is(err, store.ErrEntityNotFound), errors.Is(err, store.ErrNothingToSync):
		res.outcome = outcomeSkipped
		return res
	case err != nil:
		res.outcome, res.err = outcomeFailed, err
		e.logger.Err(err).Str("func", "syncEngine.pushOne").
			Str("entity_type", op.EntityType.String()).Str("id", op.EntityID).
			Msg("cannot mark entity as syncing")
		return res
	}

	if entity.IsDeleted() {
		res.outcome, err = e.pushDelete(ctx, entity)
	} else {
		res.outcome, err = e.pushUpsert(ctx, entity)
	}
	if err == nil {
		return res
	}

	res.outcome, res.err = outcomeFailed, err
	if markErr := e.entities.MarkFailed(ctx, entity.Type, entity.ID, sanitizeSyncError(err)); markErr != nil {
		e.logger.Err(markErr).Str("func", "syncEngine.pushOne").
			Str("entity_type", entity.Type.String()).Str("id", entity.ID).
			Msg("cannot mark entity as failed")
	}
	e.logger.Warn().Err(err).
		Str("entity_type", entity.Type.String()).Str("id", entity.ID).
		Msg("push failed")
	return res
}

func (e *syncEngine) pushUpsert(ctx context.Context, entity models.Entity) (pushOutcome, error) {
	record, err := e.crypto.EncryptRecord(models.RecordFromEntity(entity))
	if err != nil {
		return outcomeFailed, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	saved, err := e.backend.Upsert(ctx, record)
	if err != nil {
		err = mapAdapterError(err)
		if errors.Is(err, ErrConflictDetected) {
			return e.resolvePushConflict(ctx, entity)
		}
		return outcomeFailed, err
	}

	err = e.entities.MarkSynced(ctx, entity.Type, entity.ID, saved.UpdatedAt)
	if errors.Is(err, store.ErrEntityNotFound) {
		return outcomeSkipped, nil
	}
	return outcomePushed, err
}

func (e *syncEngine) pushDelete(ctx context.Context, entity models.Entity) (pushOutcome, error) {
	// a record that never reached the remote has nothing to delete there
	if entity.RemoteVersion != nil {
		if err := e.backend.Delete(ctx, entity.Type, entity.ID); err != nil && !errors.Is(err, adapter.ErrNotFound) {
			return outcomeFailed, mapAdapterError(err)
		}
	}

	current, err := e.entities.Get(ctx, entity.Type, entity.ID)
	if errors.Is(err, store.ErrEntityNotFound) {
		return outcomePushed, nil
	}
	if err != nil {
		return outcomeFailed, err
	}
	// revived while the delete was in flight; its next push reconciles
	if !current.IsDeleted() {
		return outcomePushed, nil
	}

	err = e.entities.Evict(ctx, current)
	if err != nil && !errors.Is(err, store.ErrEntityChanged) {
		return outcomeFailed, err
	}
	return outcomePushed, nil
}

// resolvePushConflict fetches the remote version that rejected the push
// and lets the resolver decide against the current local copy.
func (e *syncEngine) resolvePushConflict(ctx context.Context, entity models.Entity) (pushOutcome, error) {
	remote, err := e.backend.Fetch(ctx, entity.Type, entity.ID)
	if err != nil {
		return outcomeFailed, mapAdapterError(err)
	}
	remote, err = e.crypto.DecryptRecord(remote)
	if err != nil {
		return outcomeFailed, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	var winner conflict.Winner
	err = retryOnLocalChange(func() error {
		local, err := e.entities.Get(ctx, entity.Type, entity.ID)
		if err != nil {
			return err
		}
		winner, err = e.reconcile(ctx, local, remote)
		return err
	})
	if errors.Is(err, store.ErrEntityNotFound) {
		return outcomeSkipped, nil
	}
	if err != nil {
		return outcomeFailed, err
	}
	e.logger.Info().
		Str("entity_type", entity.Type.String()).Str("id", entity.ID).
		Str("winner", string(winner)).
		Msg("push conflict resolved")
	return outcomeConflict, nil
}

// reconcile applies the resolver's decision between a local record with
// unsynced changes and its remote version.
func (e *syncEngine) reconcile(ctx context.Context, local models.Entity, remote models.RemoteRecord) (conflict.Winner, error) {
	resolution := e.resolver.Resolve(local, remote.AsEntity(e.clock.Now()))

	if resolution.Winner == conflict.WinnerLocal {
		version := remote.UpdatedAt
		_, err := e.entities.MarkPending(ctx, local.Type, local.ID, &version)
		return resolution.Winner, err
	}
	return resolution.Winner, e.entities.ApplyRemote(ctx, &local, resolution.Merged)
}

// maxMergeAttempts bounds how often a remote write is decided again after a
// local edit landed between the read and the write.
const maxMergeAttempts = 3

// retryOnLocalChange runs decide until its guarded write is not refused
// with [store.ErrEntityChanged]. Each run must read the local record again.
func retryOnLocalChange(decide func() error) error {
	var err error
	for range maxMergeAttempts {
		if err = decide(); !errors.Is(err, store.ErrEntityChanged) {
			return err
		}
	}
	return err
}

// pull merges remote changes newer than the watermark. It never enqueues.
func (e *syncEngine) pull(ctx context.Context, entityType models.EntityType, report *models.SyncReport) error {
	state, err := e.states.GetSyncState(ctx, entityType)
	if err != nil {
		return fmt.Errorf("load sync state of %s: %w", entityType, err)
	}

	records, err := e.backend.FetchSince(ctx, entityType, state.Watermark)
	if err != nil {
		return fmt.Errorf("fetch %s since %s: %w", entityType, state.Watermark.Format(time.RFC3339Nano), mapAdapterError(err))
	}

	watermark := state.Watermark
	for _, record := range records {
		if record.Type == "" {
			record.Type = entityType
		}

		plain, err := e.crypto.DecryptRecord(record)
		if err != nil {
			// a record this device cannot read is skipped, not retried forever
			report.Failed++
			e.emit(models.SyncEvent{
				Type:       models.EventFailed,
				EntityType: entityType,
				EntityID:   record.ID,
				Err:        fmt.Errorf("%w: %w", ErrValidation, err),
			})
			e.logger.Err(err).Str("func", "syncEngine.pull").
				Str("entity_type", entityType.String()).Str("id", record.ID).
				Msg("skipping undecryptable remote record")
		} else {
			applied, err := e.merge(ctx, plain)
			if err != nil {
				if saveErr := e.saveState(ctx, entityType, watermark, state.LastSyncedAt); saveErr != nil {
					err = errors.Join(err, saveErr)
				}
				return fmt.Errorf("merge %s/%s: %w", entityType, record.ID, err)
			}
			if applied {
				report.Pulled++
			}
		}

		if record.UpdatedAt.After(watermark) {
			watermark = record.UpdatedAt
		}
	}

	now := e.clock.Now()
	return e.saveState(ctx, entityType, watermark, &now)
}

func (e *syncEngine) saveState(ctx context.Context, entityType models.EntityType, watermark time.Time, lastSyncedAt *time.Time) error {
	err := e.states.SaveSyncState(ctx, models.SyncState{
		EntityType:   entityType,
		Watermark:    watermark,
		LastSyncedAt: lastSyncedAt,
	})
	if err != nil {
		return fmt.Errorf("save sync state of %s: %w", entityType, err)
	}
	return nil
}

// merge applies one pulled record and reports whether it changed the
// local state.
func (e *syncEngine) merge(ctx context.Context, record models.RemoteRecord) (bool, error) {
	var applied bool
	err := retryOnLocalChange(func() (err error) {
		applied, err = e.mergeOnce(ctx, record)
		return err
	})
	return applied, err
}

func (e *syncEngine) mergeOnce(ctx context.Context, record models.RemoteRecord) (bool, error) {
	remote := record.AsEntity(e.clock.Now())

	local, err := e.entities.Get(ctx, record.Type, record.ID)
	if errors.Is(err, store.ErrEntityNotFound) {
		if record.DeletedAt != nil {
			return false, nil
		}
		return true, e.entities.ApplyRemote(ctx, nil, remote)
	}
	if err != nil {
		return false, err
	}

	// already reconciled, e.g. the echo of our own push
	if local.RemoteVersion != nil && !record.UpdatedAt.After(*local.RemoteVersion) {
		return false, nil
	}

	if local.HasLocalChanges() {
		_, err = e.reconcile(ctx, local, record)
		return true, err
	}

	remote.CreatedAt = local.CreatedAt
	return true, e.entities.ApplyRemote(ctx, &local, remote)
}

// SyncWithRetry implements [SyncEngine]. Only network errors are retried.
func (e *syncEngine) SyncWithRetry(ctx context.Context, entityType models.EntityType, maxAttempts int) models.RetryResult {
	if maxAttempts <= 0 {
		maxAttempts = e.cfg.MaxAttempts
	}

	result := models.RetryResult{EntityType: entityType}
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		result.Attempts = attempt

		report, err := e.Sync(ctx, entityType)
		result.Report = report
		if err == nil {
			result.Success = true
			result.Err = nil
			return result
		}
		result.Err = err

		if !isRetryableSyncError(err) || attempt == maxAttempts {
			break
		}

		delay := e.backoff(attempt)
		e.logger.Debug().Err(err).
			Str("entity_type", entityType.String()).
			Int("attempt", attempt).Dur("delay", delay).
			Msg("sync attempt failed, retrying")
		if waitErr := e.sleep(ctx, delay); waitErr != nil {
			break
		}
	}

	e.logger.Warn().Err(result.Err).
		Str("entity_type", entityType.String()).
		Int("attempts", result.Attempts).
		Msg("sync gave up")
	return result
}

// backoff returns base * 2^(attempt-1), capped at RetryMax.
func (e *syncEngine) backoff(attempt int) time.Duration {
	delay := e.cfg.RetryBase
	for i := 1; i < attempt; i++ {
		delay *= 2
		if delay >= e.cfg.RetryMax {
			return e.cfg.RetryMax
		}
	}
	return min(delay, e.cfg.RetryMax)
}

func (e *syncEngine) wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	fired := make(chan struct{})
	timer := e.clock.AfterFunc(d, func() { close(fired) })
	select {
	case <-fired:
		return nil
	case <-ctx.Done():
		timer.Stop()
		return ctx.Err()
	}
}

// SyncAll implements [SyncEngine]. Results follow the configured order.
func (e *syncEngine) SyncAll(ctx context.Context) []models.RetryResult {
	results := make([]models.RetryResult, len(e.cfg.EntityTypes))

	var g errgroup.Group
	for i, entityType := range e.cfg.EntityTypes {
		g.Go(func() error {
			results[i] = e.SyncWithRetry(ctx, entityType, e.cfg.MaxAttempts)
			return nil
		})
	}
	_ = g.Wait()
	return results
}

// ScheduleSync implements [SyncEngine]. Scheduled runs need Start.
func (e *syncEngine) ScheduleSync(types ...models.EntityType) {
	if len(types) == 0 {
		types = e.cfg.EntityTypes
	}

	e.schedMu.Lock()
	for _, t := range types {
		if _, ok := e.known[t]; ok {
			e.scheduled[t] = struct{}{}
		}
	}
	e.schedMu.Unlock()

	e.scheduler.Trigger()
}

func (e *syncEngine) runScheduled() {
	e.schedMu.Lock()
	defer e.schedMu.Unlock()

	ctx := e.runCtx
	if ctx == nil || ctx.Err() != nil {
		return
	}

	var types []models.EntityType
	for _, t := range e.cfg.EntityTypes {
		if _, ok := e.scheduled[t]; ok {
			types = append(types, t)
		}
	}
	clear(e.scheduled)

	for _, entityType := range types {
		e.runs.Add(1)
		go func() {
			defer e.runs.Done()
			res := e.SyncWithRetry(ctx, entityType, e.cfg.MaxAttempts)
			if !res.Success && errors.Is(res.Err, ErrAlreadyInProgress) {
				e.logger.Debug().Str("entity_type", entityType.String()).Msg("scheduled sync skipped, cycle in progress")
			}
		}()
	}
}

// Start implements [SyncEngine]. A queue drain while offline waits for the
// next online transition.
func (e *syncEngine) Start(ctx context.Context) {
	e.schedMu.Lock()
	if e.runCtx != nil {
		e.schedMu.Unlock()
		return
	}
	e.runCtx, e.stopRuns = context.WithCancel(ctx)
	e.schedMu.Unlock()

	e.queue.OnReady(func(types []models.EntityType) {
		if e.network.CurrentState() == models.NetworkOffline {
			return
		}
		e.ScheduleSync(types...)
	})
	unsubscribe := e.network.Subscribe(func(from, to models.NetworkState) {
		if to == models.NetworkOnline {
			e.ScheduleSync()
		}
	})

	e.schedMu.Lock()
	e.unsubscribe = unsubscribe
	e.schedMu.Unlock()
}

// Stop implements [SyncEngine]. A scheduled run that has not started is
// dropped; running cycles finish.
func (e *syncEngine) Stop() {
	e.scheduler.Cancel()

	e.schedMu.Lock()
	stop, unsubscribe := e.stopRuns, e.unsubscribe
	e.runCtx, e.stopRuns, e.unsubscribe = nil, nil, nil
	clear(e.scheduled)
	e.schedMu.Unlock()

	if stop == nil {
		return
	}
	e.queue.OnReady(nil)
	if unsubscribe != nil {
		unsubscribe()
	}
	stop()
	e.runs.Wait()
}

// RetryFailed implements [SyncEngine].
func (e *syncEngine) RetryFailed(ctx context.Context, entityType models.EntityType, id string) error {
	entity, err := e.entities.Get(ctx, entityType, id)
	if err != nil {
		return mapAdapterError(err)
	}
	if entity.SyncStatus != models.SyncStatusFailed {
		return fmt.Errorf("%w: %s/%s is %s, not failed", ErrValidation, entityType, id, entity.SyncStatus)
	}
	if _, err = e.entities.MarkPending(ctx, entityType, id, nil); err != nil {
		return mapAdapterError(err)
	}
	e.ScheduleSync(entityType)
	return nil
}

// RetryAllFailed implements [SyncEngine].
func (e *syncEngine) RetryAllFailed(ctx context.Context, entityType models.EntityType) (int, error) {
	failed, err := e.entities.Query(ctx, models.EntityFilter{
		Type:           entityType,
		Statuses:       []models.SyncStatus{models.SyncStatusFailed},
		IncludeDeleted: true,
	})
	if err != nil {
		return 0, err
	}

	requeued := 0
	for _, entity := range failed {
		if _, err = e.entities.MarkPending(ctx, entityType, entity.ID, nil); err != nil {
			if errors.Is(err, store.ErrEntityNotFound) {
				continue
			}
			return requeued, err
		}
		requeued++
	}
	if requeued > 0 {
		e.ScheduleSync(entityType)
	}
	return requeued, nil
}

// RecoverQueue implements [SyncEngine].
func (e *syncEngine) RecoverQueue(ctx context.Context) (int, error) {
	return e.entities.RecoverPending(ctx)
}

// Subscribe implements [SyncEngine].
func (e *syncEngine) Subscribe(fn func(models.SyncEvent)) (unsubscribe func()) {
	e.subMu.Lock()
	id := e.nextSub
	e.nextSub++
	e.subscribers[id] = fn
	e.subMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			e.subMu.Lock()
			delete(e.subscribers, id)
			e.subMu.Unlock()
		})
	}
}

func (e *syncEngine) emit(event models.SyncEvent) {
	if event.At.IsZero() {
		event.At = e.clock.Now()
	}

	e.subMu.RLock()
	subscribers := make([]func(models.SyncEvent), 0, len(e.subscribers))
	for _, fn := range e.subscribers {
		subscribers = append(subscribers, fn)
	}
	e.subMu.RUnlock()

	for _, fn := range subscribers {
		fn(event)
	}
}

func (e *syncEngine) fail(entityType models.EntityType, err error) {
	e.emit(models.SyncEvent{Type: models.EventFailed, EntityType: entityType, Err: err})
	e.logger.Warn().Err(err).Str("entity_type", entityType.String()).Msg("sync cycle failed")
}
