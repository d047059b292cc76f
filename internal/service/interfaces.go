package service

import (
	"context"

	"github.com/MKhiriev/resume-gate/models"
)

// DownloadService runs the audited link-issuance workflow.
type DownloadService interface {
	// RequestDownload records the attempt, issues a link for the configured
	// object and records the outcome. It never issues a link without a
	// committed audit record.
	RequestDownload(ctx context.Context, req models.DownloadRequest) (models.DownloadLink, error)
}

type HealthService interface {
	// Liveness reports whether the process can serve requests at all.
	// It checks no dependencies.
	Liveness(ctx context.Context) error

	// Readiness reports whether the audit database answers within the
	// readiness timeout.
	Readiness(ctx context.Context) error
}

type AuditService interface {
	ListDownloadLogs(ctx context.Context, filter models.DownloadLogFilter) ([]models.DownloadLog, error)
}

type AuthService interface {
	// AdminEnabled reports whether admin tokens can be verified at all.
	AdminEnabled() bool
	ParseAdminToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
