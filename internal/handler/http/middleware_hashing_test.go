package http

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/MKhiriev/go-offline-sync/internal/app"
	"github.com/MKhiriev/go-offline-sync/internal/config"
	"github.com/MKhiriev/go-offline-sync/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testHashKey = "hash-key"

// echoBody writes the body it received so tests can see it was restored.
var echoBody = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	b, _ := io.ReadAll(r.Body)
	w.Write(b)
})

func TestWithHashCheck(t *testing.T) {
	const body = `{"fields":{"title":"Rent"}}`

	h, _ := newTestHandler(t, &config.ServerConfig{App: config.App{HashKey: testHashKey}})
	checked := h.withHashCheck(echoBody)
	signer := utils.NewBodySigner(testHashKey)
	valid := signer.Sign([]byte(body))

	tests := []struct {
		name       string
		hash       string
		wantStatus int
		wantBody   string
	}{
		{name: "matching hash", hash: valid, wantStatus: http.StatusOK, wantBody: body},
		{name: "upper-case hex", hash: strings.ToUpper(valid), wantStatus: http.StatusOK, wantBody: body},
		{name: "no header", wantStatus: http.StatusOK, wantBody: body},
		{name: "tampered", hash: signer.Sign([]byte(body + " ")), wantStatus: http.StatusBadRequest, wantBody: app.MsgHashMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var headers []string
			if tt.hash != "" {
				headers = []string{hashHeader, tt.hash}
			}
			rec := serve(t, checked, http.MethodPut, "/api/records/budgets/b1", body, headers...)

			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantBody, strings.TrimSpace(rec.Body.String()))
		})
	}
}

func TestWithHashCheck_NoKeyConfigured(t *testing.T) {
	h, _ := newTestHandler(t, nil)

	rec := serve(t, h.withHashCheck(echoBody), http.MethodPut, "/", "payload", hashHeader, "deadbeef")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "payload", rec.Body.String())
}
