package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-idiotic-api/internal/logger"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// logLine routes one request through traceID+logging and decodes the access
// log entry.
func logLine(t *testing.T, target string, status int) map[string]any {
	t.Helper()

	var buf bytes.Buffer
	h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&buf)}}

	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging)
	router.Get("/api/image/{endpoint}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte("0123456789"))
	})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, target, nil))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	return entry
}

func TestWithLogging_Fields(t *testing.T) {
	entry := logLine(t, "/api/image/blame?name=x", http.StatusOK)

	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "/api/image/blame?name=x", entry["uri"])
	assert.Equal(t, http.MethodGet, entry["method"])
	assert.Equal(t, "blame", entry["endpoint"])
	assert.EqualValues(t, http.StatusOK, entry["status"])
	assert.EqualValues(t, 10, entry["size"])
	assert.Contains(t, entry, "duration")
	assert.NotEmpty(t, entry["trace_id"])
}

func TestWithLogging_ServerErrorsLoggedAsErrors(t *testing.T) {
	entry := logLine(t, "/api/image/wanted", http.StatusBadGateway)

	assert.Equal(t, "error", entry["level"])
	assert.EqualValues(t, http.StatusBadGateway, entry["status"])
}

func TestWithLogging_ClientErrorsLoggedAsInfo(t *testing.T) {
	entry := logLine(t, "/api/image/wanted", http.StatusBadRequest)

	assert.Equal(t, "info", entry["level"])
}
