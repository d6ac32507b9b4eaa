package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-idiotic-api/idiotic"
	"github.com/MKhiriev/go-idiotic-api/internal/service"
	"github.com/MKhiriev/go-idiotic-api/internal/utils"
)

var errorStatusMap = map[error]int{
	idiotic.ErrUnknownEndpoint:    http.StatusNotFound,
	idiotic.ErrMissingParameter:   http.StatusBadRequest,
	idiotic.ErrUnknownParameter:   http.StatusBadRequest,
	idiotic.ErrDuplicateParameter: http.StatusBadRequest,
	idiotic.ErrOutOfRange:         http.StatusBadRequest,
	idiotic.ErrValueNotAllowed:    http.StatusBadRequest,
	idiotic.ErrWrongResultKind:    http.StatusBadRequest,
	idiotic.ErrMalformedResponse:  http.StatusBadGateway,
	idiotic.ErrClientClosed:       http.StatusServiceUnavailable,

	service.ErrNoEndpointName: http.StatusBadRequest,

	context.DeadlineExceeded: http.StatusGatewayTimeout,
	errRouteNotFound:         http.StatusNotFound,
}

type errorResponse struct {
	Error   string `json:"error"`
	TraceID string `json:"trace_id,omitempty"`
}

func statusFromError(err error) int {
	var unavailable *idiotic.EndpointUnavailableError
	if errors.As(err, &unavailable) {
		return http.StatusNotFound
	}

	var mismatch *idiotic.TypeMismatchError
	if errors.As(err, &mismatch) {
		return http.StatusBadRequest
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return http.StatusGatewayTimeout
	}

	var remote *idiotic.RemoteRequestError
	if errors.As(err, &remote) {
		return http.StatusBadGateway
	}

	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError answers with a JSON error body and the status mapped from err.
// Server-side failures are not described to the caller; the trace id lets
// them be found in the logs.
func writeError(w http.ResponseWriter, r *http.Request, err error) int {
	status := statusFromError(err)

	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = http.StatusText(status)
	}

	traceID, _ := utils.GetTraceIDFromContext(r.Context())
	_, _ = utils.WriteJSON(w, errorResponse{Error: msg, TraceID: traceID}, status)
	return status
}

func notFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, errRouteNotFound)
}
