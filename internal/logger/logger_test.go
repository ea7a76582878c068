package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, b []byte) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(b), &entry))
	return entry
}

func TestNewLogger_EntryShape(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("go-offline-sync-server")
	l.Logger = l.Output(&buf)

	l.Info().Str("entity_type", "budgets").Msg("records listed")

	entry := decodeEntry(t, buf.Bytes())
	assert.Equal(t, "go-offline-sync-server", entry["role"])
	assert.Equal(t, "budgets", entry["entity_type"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry, "func")
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestNewClientLogger_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "client.log")
	l := NewClientLogger("client", FileOptions{Path: path, Level: "info"})

	l.Debug().Msg("filtered")
	l.Info().Str("entity_type", "budgets").Msg("sync completed")

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	entry := decodeEntry(t, data)
	assert.Equal(t, "client", entry["role"])
	assert.Equal(t, "budgets", entry["entity_type"])
	assert.Equal(t, "sync completed", entry["message"])
}

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"":         zerolog.DebugLevel,
		"nonsense": zerolog.DebugLevel,
		" WARN ":   zerolog.WarnLevel,
		"error":    zerolog.ErrorLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), "level %q", in)
	}
}

func TestChildLoggers(t *testing.T) {
	var buf bytes.Buffer
	parent := &Logger{zerolog.New(&buf).With().Str("role", "client").Logger()}

	child := parent.GetChildLogger()
	assert.NotSame(t, parent, child)

	child.WithComponent("queue").Info().Msg("enqueued")

	entry := decodeEntry(t, buf.Bytes())
	assert.Equal(t, "client", entry["role"], "fields are inherited")
	assert.Equal(t, "queue", entry["component"])
}

func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("dropped")
	assert.Empty(t, buf.String())
}

func TestFromContextAndRequest(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("trace_id", "t-1").Logger()
	ctx := zl.WithContext(context.Background())

	FromContext(ctx).Info().Msg("from context")
	assert.Equal(t, "t-1", decodeEntry(t, buf.Bytes())["trace_id"])

	buf.Reset()
	req := httptest.NewRequest(http.MethodGet, "/api/records/budgets", nil).WithContext(ctx)
	FromRequest(req).Info().Msg("from request")
	assert.Equal(t, "t-1", decodeEntry(t, buf.Bytes())["trace_id"])
}

func TestFromContext_WithoutLogger(t *testing.T) {
	require.NotNil(t, FromContext(context.Background()))
	require.NotNil(t, FromRequest(httptest.NewRequest(http.MethodGet, "/", nil)))
}
