package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-idiotic-api/internal/logger"
	"github.com/go-chi/chi/v5"
)

// withLogging writes one access log line per request. The endpoint path
// parameter is logged separately so image and text calls can be filtered.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		start := time.Now()

		lw := &responseWriter{ResponseWriter: w}
		next.ServeHTTP(lw, r)

		event := log.Info()
		if lw.status >= http.StatusInternalServerError {
			event = log.Error()
		}

		event.
			Str("uri", r.RequestURI).
			Str("method", r.Method).
			Str("endpoint", chi.URLParam(r, endpointURLParam)).
			Int("status", lw.status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Send()
	})
}
