package http

import (
	"net/http"

	"github.com/MKhiriev/go-idiotic-api/internal/logger"
	"github.com/MKhiriev/go-idiotic-api/internal/utils"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	if _, err := utils.WriteBytes(w, "text/plain", []byte(serverVersion), http.StatusOK); err != nil {
		logger.FromRequest(r).Error().Err(err).Msg("error writing version")
	}
}
