package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-idiotic-api/internal/logger"
	"github.com/MKhiriev/go-idiotic-api/internal/utils"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithTraceID_GeneratesID(t *testing.T) {
	h := &Handler{logger: logger.Nop()}

	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = utils.GetTraceIDFromContext(r.Context())
	})

	rr := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	traceID := rr.Header().Get(traceIDHeader)
	_, err := uuid.Parse(traceID)
	require.NoError(t, err)
	assert.Equal(t, traceID, seen)
}

func TestWithTraceID_ReusesIncomingID(t *testing.T) {
	h := &Handler{logger: logger.Nop()}

	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = utils.GetTraceIDFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(traceIDHeader, "upstream-id")
	rr := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rr, req)

	assert.Equal(t, "upstream-id", rr.Header().Get(traceIDHeader))
	assert.Equal(t, "upstream-id", seen)
}

func TestWithTraceID_AttachesLogger(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&buf)}}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Msg("inside")
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(traceIDHeader, "trace-42")
	h.withTraceID(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, buf.String(), `"trace_id":"trace-42"`)
	assert.Contains(t, buf.String(), `"message":"inside"`)
}

func TestWithTraceID_UniquePerRequest(t *testing.T) {
	h := &Handler{logger: logger.Nop()}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	seen := make(map[string]struct{})
	for range 20 {
		rr := httptest.NewRecorder()
		h.withTraceID(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
		seen[rr.Header().Get(traceIDHeader)] = struct{}{}
	}
	assert.Len(t, seen, 20)
}
