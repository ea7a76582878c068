package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-offline-sync/internal/validators"
	"github.com/MKhiriev/go-offline-sync/models"
)

type RecordValidationService struct {
	inner     RecordService
	validator validators.Validator
}

func NewRecordValidationService() RecordServiceWrapper {
	return &RecordValidationService{
		validator: validators.NewRecordValidator(),
	}
}

func (v *RecordValidationService) UpsertRecord(ctx context.Context, userID int64, record models.RemoteRecord) (models.RemoteRecord, error) {
	record.UserID = userID
	if err := v.validator.Validate(ctx, record,
		validators.FieldUserID, validators.FieldEntityType, validators.FieldID, validators.FieldFields, validators.FieldBaseVersion,
	); err != nil {
		return models.RemoteRecord{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.UpsertRecord(ctx, userID, record)
}

func (v *RecordValidationService) DeleteRecord(ctx context.Context, userID int64, entityType models.EntityType, id string) (models.RemoteRecord, error) {
	if err := v.validateKey(ctx, userID, entityType, id); err != nil {
		return models.RemoteRecord{}, err
	}

	return v.inner.DeleteRecord(ctx, userID, entityType, id)
}

func (v *RecordValidationService) GetRecord(ctx context.Context, userID int64, entityType models.EntityType, id string) (models.RemoteRecord, error) {
	if err := v.validateKey(ctx, userID, entityType, id); err != nil {
		return models.RemoteRecord{}, err
	}

	return v.inner.GetRecord(ctx, userID, entityType, id)
}

func (v *RecordValidationService) ListRecordsSince(ctx context.Context, userID int64, entityType models.EntityType, since time.Time, limit uint64) ([]models.RemoteRecord, error) {
	key := models.RemoteRecord{UserID: userID, Type: entityType}
	if err := v.validator.Validate(ctx, key, validators.FieldUserID, validators.FieldEntityType); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.ListRecordsSince(ctx, userID, entityType, since, limit)
}

func (v *RecordValidationService) validateKey(ctx context.Context, userID int64, entityType models.EntityType, id string) error {
	key := models.RemoteRecord{UserID: userID, Type: entityType, ID: id}
	if err := v.validator.Validate(ctx, key, validators.FieldUserID, validators.FieldEntityType, validators.FieldID); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return nil
}

func (v *RecordValidationService) Wrap(wrapper RecordService) RecordService {
	v.inner = wrapper
	return v
}
