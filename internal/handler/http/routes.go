package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const endpointURLParam = "endpoint"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)

	if h.metrics != nil {
		router.Use(h.withMetrics)
		router.Method(http.MethodGet, "/metrics", h.metrics.Handler())
	}

	router.Route("/api", func(r chi.Router) {
		r.Get("/endpoints", h.listEndpoints)
		r.Get("/endpoints/{endpoint}", h.describeEndpoint)
		r.Get("/image/{endpoint}", h.generateImage)
		r.Get("/text/{endpoint}", h.generateText)
		r.Get("/version", h.getServerVersion)
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
