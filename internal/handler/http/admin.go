package http

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/MKhiriev/resume-gate/internal/logger"
	"github.com/MKhiriev/resume-gate/internal/utils"
	"github.com/MKhiriev/resume-gate/models"
)

// listDownloadLogs returns audit records, newest first.
//
// Query parameters (all optional):
//   - status: exact status, e.g. PENDING or FAILED:NoSuchKey
//   - failed: true to match every FAILED:<code> record
//   - before: RFC 3339 timestamp, exclusive upper bound
//   - limit:  page size, capped by the store
func (h *Handler) listDownloadLogs(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	filter, err := parseDownloadLogFilter(r.URL.Query())
	if err != nil {
		log.Err(err).Str("func", "*Handler.listDownloadLogs").Msg("invalid query")
		utils.WriteJSON(w, models.ErrorResponse{Error: err.Error()}, http.StatusBadRequest)
		return
	}

	logs, err := h.services.AuditService.ListDownloadLogs(r.Context(), filter)
	if err != nil {
		status := statusFromError(err)
		log.Err(err).Str("func", "*Handler.listDownloadLogs").Msg("error listing download logs")
		utils.WriteJSON(w, models.ErrorResponse{Error: http.StatusText(status)}, status)
		return
	}

	utils.WriteJSON(w, models.DownloadLogsResponse{
		DownloadLogs: logs,
		Length:       len(logs),
	}, http.StatusOK)
}

func parseDownloadLogFilter(query url.Values) (models.DownloadLogFilter, error) {
	filter := models.DownloadLogFilter{
		Status: models.DownloadStatus(query.Get("status")),
	}

	if raw := query.Get("failed"); raw != "" {
		failed, err := strconv.ParseBool(raw)
		if err != nil {
			return models.DownloadLogFilter{}, fmt.Errorf("%w: failed=%q", ErrInvalidQueryParam, raw)
		}
		filter.FailedOnly = failed
	}

	if raw := query.Get("before"); raw != "" {
		before, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return models.DownloadLogFilter{}, fmt.Errorf("%w: before=%q", ErrInvalidQueryParam, raw)
		}
		filter.Before = before
	}

	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || limit == 0 {
			return models.DownloadLogFilter{}, fmt.Errorf("%w: limit=%q", ErrInvalidQueryParam, raw)
		}
		filter.Limit = limit
	}

	return filter, nil
}
