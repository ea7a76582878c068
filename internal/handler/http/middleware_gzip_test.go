package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-offline-sync/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gzipped(t *testing.T, s string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(s))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestCompressJSON_GzipsJSONResponses(t *testing.T) {
	jsonBody := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	rec := serve(t, compressJSON(jsonBody), http.MethodGet, "/api/health", "", "Accept-Encoding", "gzip")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))

	zr, err := gzip.NewReader(rec.Body)
	require.NoError(t, err)
	plain, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"ok"}`, string(plain))
}

func TestWithGzipBody_InflatesRequest(t *testing.T) {
	h, _ := newTestHandler(t, nil)

	for i := 0; i < 2; i++ { // second pass reuses the pooled reader
		req := httptest.NewRequest(http.MethodPut, "/", bytes.NewReader(gzipped(t, `{"fields":{}}`)))
		req.Header.Set("Content-Encoding", "gzip")
		rec := httptest.NewRecorder()

		h.withGzipBody(echoBody).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, `{"fields":{}}`, rec.Body.String())
	}
}

func TestWithGzipBody_PlainPassesThrough(t *testing.T) {
	h, _ := newTestHandler(t, nil)

	rec := serve(t, h.withGzipBody(echoBody), http.MethodPut, "/", "plain")
	assert.Equal(t, "plain", rec.Body.String())
}

func TestWithGzipBody_InvalidRequestBody(t *testing.T) {
	h, _ := newTestHandler(t, nil)

	rec := serve(t, h.withGzipBody(echoBody), http.MethodPut, "/", "not gzip", "Content-Encoding", "gzip")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), app.MsgInvalidDataProvided)
}
