package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-waste-tracker/internal/logger"
)

type versionResponse struct {
	Version string `json:"version"`
}

// getServerVersion answers with the bare version string, or with
// {"version": "..."} when the client accepts JSON.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	version := h.services.AppInfoService.GetAppVersion(r.Context())

	if strings.Contains(r.Header.Get("Accept"), "application/json") {
		h.writeJSON(w, r, versionResponse{Version: version}, http.StatusOK)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := w.Write([]byte(version)); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getServerVersion").Msg("error writing version")
	}
}
