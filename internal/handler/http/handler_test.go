// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-offline-sync/internal/config"
	"github.com/MKhiriev/go-offline-sync/internal/logger"
	"github.com/MKhiriev/go-offline-sync/internal/mock"
	"github.com/MKhiriev/go-offline-sync/internal/service"
	"github.com/MKhiriev/go-offline-sync/models"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const (
	goodToken = "good.jwt.token"
	budgets   = models.EntityType("budgets")
)

type handlerMocks struct {
	auth    *mock.MockAuthService
	records *mock.MockRecordService
	info    *mock.MockAppInfoService
}

func newTestHandler(t *testing.T, cfg *config.ServerConfig) (*Handler, handlerMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := handlerMocks{
		auth:    mock.NewMockAuthService(ctrl),
		records: mock.NewMockRecordService(ctrl),
		info:    mock.NewMockAppInfoService(ctrl),
	}
	svcs := &service.Services{
		AuthService:    m.auth,
		RecordService:  m.records,
		AppInfoService: m.info,
	}
	return NewHandler(svcs, cfg, logger.Nop()), m
}

func newTestRouter(t *testing.T, cfg *config.ServerConfig) (http.Handler, handlerMocks) {
	t.Helper()
	h, m := newTestHandler(t, cfg)
	return h.Init(), m
}

// authorize lets goodToken through as userID.
func (m handlerMocks) authorize(userID int64) {
	m.auth.EXPECT().ParseToken(gomock.Any(), goodToken).Return(models.Token{UserID: userID}, nil).AnyTimes()
}

// serve runs one request through router. headers are key/value pairs.
func serve(t *testing.T, router http.Handler, method, target, body string, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	require.Zero(t, len(headers)%2, "headers come in pairs")

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	for i := 0; i < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func bearer() []string {
	return []string{"Authorization", "Bearer " + goodToken}
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_Config(t *testing.T) {
	h, _ := newTestHandler(t, nil)
	require.Nil(t, h.limiter)
	require.False(t, h.signer.Enabled())

	h, _ = newTestHandler(t, &config.ServerConfig{
		App:    config.App{HashKey: "k"},
		Server: config.Server{RateLimit: 5},
	})
	require.NotNil(t, h.limiter)
	require.Equal(t, 1, h.limiter.burst, "burst is at least one")
	require.True(t, h.signer.Enabled())
}
