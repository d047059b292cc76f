package http

import (
	"net/http"

	"github.com/MKhiriev/resume-gate/internal/app"
	"github.com/MKhiriev/resume-gate/internal/logger"
	"github.com/MKhiriev/resume-gate/internal/utils"
	"github.com/MKhiriev/resume-gate/models"
)

// downloadResume issues a link for the configured resume. The request
// carries no parameters: bucket, key and lifetime are server-side only.
func (h *Handler) downloadResume(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	req := models.DownloadRequest{
		RequesterIP: utils.ClientIP(r),
		UserAgent:   r.UserAgent(),
	}

	link, err := h.services.DownloadService.RequestDownload(r.Context(), req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.downloadResume").Msg("download link was not issued")
		utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgDownloadFailed}, statusFromError(err))
		return
	}

	// the body is a bearer credential
	w.Header().Set("Cache-Control", "no-store")
	utils.WriteJSON(w, models.LinkResponse{
		PresignedURL: link.URL,
		ExpiresIn:    link.ExpiresIn,
	}, http.StatusOK)
}
