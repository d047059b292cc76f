package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/resume-gate/internal/service"
)

var errorStatusMap = map[error]int{
	service.ErrAuditStoreUnavailable: http.StatusInternalServerError,
	service.ErrLinkIssuance:          http.StatusInternalServerError,
	service.ErrDatabaseUnreachable:   http.StatusServiceUnavailable,
	service.ErrInvalidLogsFilter:     http.StatusBadRequest,
	service.ErrListingDownloadLogs:   http.StatusInternalServerError,
	service.ErrInvalidAdminToken:     http.StatusUnauthorized,
	service.ErrAdminDisabled:         http.StatusNotFound,

	ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrInvalidQueryParam:          http.StatusBadRequest,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
