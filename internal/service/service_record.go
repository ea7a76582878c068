package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-offline-sync/internal/clock"
	"github.com/MKhiriev/go-offline-sync/internal/logger"
	"github.com/MKhiriev/go-offline-sync/internal/store"
	"github.com/MKhiriev/go-offline-sync/models"
)

const (
	// DefaultListLimit is used when a list request has no limit.
	DefaultListLimit uint64 = 500
	// MaxListLimit caps a single page of ListRecordsSince.
	MaxListLimit uint64 = 1000
)

type recordService struct {
	recordRepository store.RemoteRecordRepository
	clock            clock.Clock

	logger *logger.Logger
}

func NewRecordService(recordRepository store.RemoteRecordRepository, c clock.Clock, logger *logger.Logger) RecordService {
	return &recordService{
		recordRepository: recordRepository,
		clock:            c,
		logger:           logger,
	}
}

func (s *recordService) UpsertRecord(ctx context.Context, userID int64, record models.RemoteRecord) (models.RemoteRecord, error) {
	saved, err := s.recordRepository.UpsertRecord(ctx, userID, record, s.clock.Now())
	if err != nil {
		return models.RemoteRecord{}, fmt.Errorf("upsert %s/%s: %w", record.Type, record.ID, err)
	}

	logger.FromContext(ctx).Debug().
		Int64("user_id", userID).
		Str("entity_type", saved.Type.String()).
		Str("id", saved.ID).
		Time("updated_at", saved.UpdatedAt).
		Msg("record stored")
	return saved, nil
}

func (s *recordService) DeleteRecord(ctx context.Context, userID int64, entityType models.EntityType, id string) (models.RemoteRecord, error) {
	deleted, err := s.recordRepository.DeleteRecord(ctx, userID, entityType, id, s.clock.Now())
	if err != nil {
		return models.RemoteRecord{}, fmt.Errorf("delete %s/%s: %w", entityType, id, err)
	}
	return deleted, nil
}

func (s *recordService) GetRecord(ctx context.Context, userID int64, entityType models.EntityType, id string) (models.RemoteRecord, error) {
	return s.recordRepository.GetRecord(ctx, userID, entityType, id)
}

func (s *recordService) ListRecordsSince(ctx context.Context, userID int64, entityType models.EntityType, since time.Time, limit uint64) ([]models.RemoteRecord, error) {
	if limit == 0 {
		limit = DefaultListLimit
	}
	limit = min(limit, MaxListLimit)

	records, err := s.recordRepository.ListRecordsSince(ctx, userID, entityType, since, limit)
	if err != nil {
		return nil, fmt.Errorf("list %s since %s: %w", entityType, since.Format(time.RFC3339Nano), err)
	}
	return records, nil
}
