package http

import (
	"net/http"

	"github.com/MKhiriev/go-idiotic-api/internal/utils"
	"github.com/go-chi/chi/v5"
)

// listEndpoints returns the endpoints callable in the configured environment.
func (h *Handler) listEndpoints(w http.ResponseWriter, r *http.Request) {
	svc := h.services.GeneratorService
	env := svc.Environment()

	eps := svc.Endpoints(r.Context())
	resp := endpointsResponse{
		Environment: env.String(),
		Endpoints:   make([]endpointView, 0, len(eps)),
	}
	for _, ep := range eps {
		resp.Endpoints = append(resp.Endpoints, newEndpointView(ep, env))
	}

	_, _ = utils.WriteJSON(w, resp, http.StatusOK)
}

// describeEndpoint returns one endpoint, including development-only ones so
// callers can see why a call would be rejected.
func (h *Handler) describeEndpoint(w http.ResponseWriter, r *http.Request) {
	svc := h.services.GeneratorService

	ep, err := svc.Describe(r.Context(), chi.URLParam(r, endpointURLParam))
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, newEndpointView(ep, svc.Environment()), http.StatusOK)
}
