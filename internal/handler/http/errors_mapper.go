package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-offline-sync/internal/app"
	"github.com/MKhiriev/go-offline-sync/internal/logger"
	"github.com/MKhiriev/go-offline-sync/internal/service"
	"github.com/MKhiriev/go-offline-sync/internal/store"
	"github.com/MKhiriev/go-offline-sync/internal/validators"
)

type errorStatus struct {
	target  error
	status  int
	message string
}

// errorStatusMap is checked in order so that the most specific message
// wins for wrapped validation errors.
var errorStatusMap = []errorStatus{
	{validators.ErrInvalidEntityType, http.StatusBadRequest, app.MsgInvalidEntityType},
	{validators.ErrInvalidRecordID, http.StatusBadRequest, app.MsgInvalidRecordID},
	{ErrInvalidPathParam, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{ErrPathBodyMismatch, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidDataProvided},

	{service.ErrWrongPassword, http.StatusUnauthorized, app.MsgInvalidLoginPassword},
	{store.ErrNoUserWasFound, http.StatusUnauthorized, app.MsgInvalidLoginPassword},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},

	{store.ErrRecordNotFound, http.StatusNotFound, app.MsgRecordNotFound},

	{store.ErrLoginAlreadyExists, http.StatusConflict, app.MsgLoginAlreadyExists},
	{service.ErrLoginAlreadyExists, http.StatusConflict, app.MsgLoginAlreadyExists},
	{store.ErrVersionConflict, http.StatusConflict, app.MsgVersionConflict},

	{store.ErrTransient, http.StatusServiceUnavailable, http.StatusText(http.StatusServiceUnavailable)},
}

func statusFromError(err error) (int, string) {
	for _, e := range errorStatusMap {
		if errors.Is(err, e.target) {
			return e.status, e.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

// writeError answers with the status mapped from err. The body is the
// plain-text message clients match against.
func writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	status, message := statusFromError(err)

	log := logger.FromRequest(r)
	event := log.Warn()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Int("status", status).Msg(msg)

	http.Error(w, message, status)
}
