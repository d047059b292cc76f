package store

import (
	"context"
	"time"

	"github.com/MKhiriev/resume-gate/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// DownloadLogRepository persists the audit trail of download attempts.
type DownloadLogRepository interface {
	// Create stores a new PENDING record. LogID and Timestamp are assigned
	// here; the returned record is what the database holds. It returns only
	// once the row is committed.
	Create(ctx context.Context, log models.DownloadLog) (models.DownloadLog, error)

	// UpdateStatus sets the terminal status of an existing record.
	// Re-applying the same terminal status is a no-op.
	UpdateStatus(ctx context.Context, logID string, status models.DownloadStatus) error

	// GetByLogID returns a single record.
	GetByLogID(ctx context.Context, logID string) (models.DownloadLog, error)

	// List returns records matching filter, newest first.
	List(ctx context.Context, filter models.DownloadLogFilter) ([]models.DownloadLog, error)

	// CountStalePending counts PENDING records created before olderThan.
	CountStalePending(ctx context.Context, olderThan time.Time) (int64, error)
}

// ConnectionChecker runs a trivial query against the audit database.
type ConnectionChecker interface {
	CheckConnection(ctx context.Context) error
}

// IDGenerator produces globally unique record identifiers.
type IDGenerator interface {
	Generate() string
}
