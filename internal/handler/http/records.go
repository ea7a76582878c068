// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/MKhiriev/go-offline-sync/internal/app"
	"github.com/MKhiriev/go-offline-sync/internal/logger"
	"github.com/MKhiriev/go-offline-sync/internal/utils"
	"github.com/MKhiriev/go-offline-sync/models"
	"github.com/go-chi/chi/v5"
)

// upsertRecord handles PUT /api/records/{type}/{id}. The URL names the
// record; the body carries fields, timestamps and the base version.
func (h *Handler) upsertRecord(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	entityType, id, err := recordKey(r)
	if err != nil {
		writeError(w, r, err, "bad record key")
		return
	}

	var record models.RemoteRecord
	if err = utils.DecodeJSON(w, r, &record, maxRequestBody); err != nil {
		logger.FromRequest(r).Err(err).Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}
	if (record.Type != "" && record.Type != entityType) || (record.ID != "" && record.ID != id) {
		writeError(w, r, fmt.Errorf("%w: %s/%s", ErrPathBodyMismatch, record.Type, record.ID), "bad record key")
		return
	}
	record.Type, record.ID = entityType, id

	saved, err := h.services.RecordService.UpsertRecord(r.Context(), userID, record)
	if err != nil {
		writeError(w, r, err, "upsert record failed")
		return
	}

	utils.WriteJSON(w, saved, http.StatusOK)
}

// deleteRecord handles DELETE /api/records/{type}/{id}. The record stays
// as a tombstone so other devices pull the deletion.
func (h *Handler) deleteRecord(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	entityType, id, err := recordKey(r)
	if err != nil {
		writeError(w, r, err, "bad record key")
		return
	}

	if _, err = h.services.RecordService.DeleteRecord(r.Context(), userID, entityType, id); err != nil {
		writeError(w, r, err, "delete record failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getRecord(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	entityType, id, err := recordKey(r)
	if err != nil {
		writeError(w, r, err, "bad record key")
		return
	}

	record, err := h.services.RecordService.GetRecord(r.Context(), userID, entityType, id)
	if err != nil {
		writeError(w, r, err, "get record failed")
		return
	}

	utils.WriteJSON(w, record, http.StatusOK)
}

// listRecords handles GET /api/records/{type}?since=&limit=. since is an
// RFC 3339 timestamp and is exclusive; an absent since lists everything.
func (h *Handler) listRecords(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	entityType, err := pathParam(r, "type")
	if err != nil {
		writeError(w, r, err, "bad entity type")
		return
	}

	query := r.URL.Query()

	since := time.Unix(0, 0).UTC()
	if raw := query.Get("since"); raw != "" {
		if since, err = time.Parse(time.RFC3339Nano, raw); err != nil {
			logger.FromRequest(r).Err(err).Str("since", raw).Msg("invalid since")
			http.Error(w, app.MsgInvalidSince, http.StatusBadRequest)
			return
		}
	}

	var limit uint64
	if raw := query.Get("limit"); raw != "" {
		if limit, err = strconv.ParseUint(raw, 10, 64); err != nil {
			logger.FromRequest(r).Err(err).Str("limit", raw).Msg("invalid limit")
			http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		}
	}

	records, err := h.services.RecordService.ListRecordsSince(r.Context(), userID, models.EntityType(entityType), since, limit)
	if err != nil {
		writeError(w, r, err, "list records failed")
		return
	}
	if records == nil {
		records = []models.RemoteRecord{}
	}

	utils.WriteJSON(w, models.RecordsPage{Records: records, Length: len(records)}, http.StatusOK)
}

func (h *Handler) userID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, ok := utils.UserIDFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Error().Msg("no user ID in request context")
		http.Error(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
	}
	return userID, ok
}

func recordKey(r *http.Request) (models.EntityType, string, error) {
	entityType, err := pathParam(r, "type")
	if err != nil {
		return "", "", err
	}
	id, err := pathParam(r, "id")
	if err != nil {
		return "", "", err
	}
	return models.EntityType(entityType), id, nil
}

// pathParam returns the unescaped value of a chi URL parameter.
func pathParam(r *http.Request, name string) (string, error) {
	value, err := url.PathUnescape(chi.URLParam(r, name))
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrInvalidPathParam, name, err)
	}
	return value, nil
}
