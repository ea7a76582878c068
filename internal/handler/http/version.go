package http

import (
	"net/http"

	"github.com/MKhiriev/go-offline-sync/internal/utils"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.AppInfoService.GetAppInfo(r.Context()), http.StatusOK)
}

// health answers the client's connectivity probe.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}
