package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_AppliesOptions(t *testing.T) {
	body := []byte(`{"id":"b1"}`)
	signer := NewBodySigner(testHashKey)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/ping", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "sync-test", r.Header.Get("User-Agent"))
		assert.Equal(t, signer.Sign(body), r.Header.Get(BodyHashHeader))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := NewHTTPClient(HTTPClientOptions{
		BaseURL:   srv.URL,
		Timeout:   2 * time.Second,
		UserAgent: "sync-test",
		Signer:    signer,
	})
	assert.Equal(t, 2*time.Second, c.GetClient().Timeout)

	resp, err := c.R().SetBody(body).Post("/api/ping")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode())
}

func TestNewHTTPClient_UnsignedWithoutKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get(BodyHashHeader))
	}))
	defer srv.Close()

	c := NewHTTPClient(HTTPClientOptions{BaseURL: srv.URL, Signer: NewBodySigner("")})
	_, err := c.R().SetBody([]byte("x")).Post("/")
	require.NoError(t, err)
}

func TestNewHTTPClient_Independence(t *testing.T) {
	a := NewHTTPClient(HTTPClientOptions{})
	b := NewHTTPClient(HTTPClientOptions{})
	assert.NotSame(t, a.Client, b.Client)
}
