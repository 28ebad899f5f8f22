package http

import (
	"net/http"

	"github.com/MKhiriev/go-blog-list/internal/utils"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(serverVersion))
}

// ping reports storage health.
func (h *Handler) ping(w http.ResponseWriter, r *http.Request) {
	if err := h.services.AppInfoService.Ping(r.Context()); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}

// resetStorage wipes all data. Mounted only in the test environment.
func (h *Handler) resetStorage(w http.ResponseWriter, r *http.Request) {
	if err := h.services.AppInfoService.ResetStorage(r.Context()); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
