package http

import (
	"net/http"
	"testing"

	"github.com/MKhiriev/go-offline-sync/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestRoutes(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		target     string
		auth       bool
		setup      func(m handlerMocks)
		wantStatus int
	}{
		{name: "health", method: http.MethodGet, target: "/api/health", wantStatus: http.StatusOK},
		{
			name:   "version",
			method: http.MethodGet,
			target: "/api/version",
			setup: func(m handlerMocks) {
				m.info.EXPECT().GetAppInfo(gomock.Any()).Return(models.AppInfo{Version: "1.0.0"})
			},
			wantStatus: http.StatusOK,
		},
		{name: "unknown path", method: http.MethodGet, target: "/api/nope", wantStatus: http.StatusNotFound},
		{name: "wrong method on health", method: http.MethodPost, target: "/api/health", wantStatus: http.StatusMethodNotAllowed},
		{name: "records without token", method: http.MethodGet, target: "/api/records/budgets", wantStatus: http.StatusUnauthorized},
		{name: "record without token", method: http.MethodDelete, target: "/api/records/budgets/b1", wantStatus: http.StatusUnauthorized},
		{name: "post on record", method: http.MethodPost, target: "/api/records/budgets/b1", auth: true, wantStatus: http.StatusMethodNotAllowed},
		{
			name:   "list with token",
			method: http.MethodGet,
			target: "/api/records/budgets",
			auth:   true,
			setup: func(m handlerMocks) {
				m.records.EXPECT().ListRecordsSince(gomock.Any(), int64(7), budgets, gomock.Any(), uint64(0)).Return(nil, nil)
			},
			wantStatus: http.StatusOK,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newTestRouter(t, nil)
			m.authorize(7)
			if tt.setup != nil {
				tt.setup(m)
			}

			var headers []string
			if tt.auth {
				headers = bearer()
			}
			rec := serve(t, router, tt.method, tt.target, "", headers...)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
		})
	}
}

func TestRoutes_MethodNotAllowedListsAllowed(t *testing.T) {
	router, m := newTestRouter(t, nil)
	m.authorize(7)

	rec := serve(t, router, http.MethodPatch, "/api/records/budgets/b1", "", bearer()...)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "GET, PUT, DELETE", rec.Header().Get("Allow"))
}
