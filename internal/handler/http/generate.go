// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-idiotic-api/idiotic"
	"github.com/MKhiriev/go-idiotic-api/internal/logger"
	"github.com/MKhiriev/go-idiotic-api/internal/utils"
	"github.com/MKhiriev/go-idiotic-api/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) generateImage(w http.ResponseWriter, r *http.Request) {
	h.generate(w, r, models.BinaryImage)
}

func (h *Handler) generateText(w http.ResponseWriter, r *http.Request) {
	h.generate(w, r, models.Text)
}

// generate checks that the endpoint produces kind before forwarding the query
// parameters, so /api/text/blame fails without reaching the remote API.
func (h *Handler) generate(w http.ResponseWriter, r *http.Request, kind models.ResultKind) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	name := chi.URLParam(r, endpointURLParam)

	ep, err := h.services.GeneratorService.Describe(ctx, name)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if ep.Result != kind {
		writeError(w, r, fmt.Errorf("%w: %s returns %s", idiotic.ErrWrongResultKind, ep.Name, ep.Result))
		return
	}

	res, err := h.services.GeneratorService.Generate(ctx, ep.Name, r.URL.Query())
	if err != nil {
		status := writeError(w, r, err)
		log.Debug().Err(err).Str("endpoint", ep.Name).Int("status", status).Msg("generate rejected")
		return
	}

	body := res.Bytes()
	w.Header().Set("X-Idiotic-Endpoint", ep.Name)
	w.Header().Set("X-Idiotic-Size", strconv.Itoa(len(body)))
	if _, err = utils.WriteBytes(w, res.ContentType(), body, http.StatusOK); err != nil {
		log.Error().Err(err).Msg("error writing response")
	}
}
