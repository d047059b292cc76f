package http

import (
	"net/http"

	"github.com/MKhiriev/resume-gate/internal/app"
	"github.com/MKhiriev/resume-gate/internal/utils"
	"github.com/MKhiriev/resume-gate/models"
)

func (h *Handler) liveness(w http.ResponseWriter, r *http.Request) {
	_ = h.services.HealthService.Liveness(r.Context())

	utils.WriteJSON(w, models.ProbeResponse{Status: app.MsgProbeOK, System: app.MsgSystemAlive}, http.StatusOK)
}

func (h *Handler) readiness(w http.ResponseWriter, r *http.Request) {
	if err := h.services.HealthService.Readiness(r.Context()); err != nil {
		utils.WriteJSON(w, models.ProbeResponse{Status: app.MsgProbeFail, Reason: app.MsgDBUnreachable}, http.StatusServiceUnavailable)
		return
	}

	utils.WriteJSON(w, models.ProbeResponse{Status: app.MsgProbeOK, System: app.MsgSystemReady}, http.StatusOK)
}
