package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/resume-gate/internal/logger"
	"github.com/MKhiriev/resume-gate/internal/store"
	"github.com/MKhiriev/resume-gate/internal/utils"
	"github.com/MKhiriev/resume-gate/internal/validators"
	"github.com/MKhiriev/resume-gate/models"
)

type auditService struct {
	downloadLogs store.DownloadLogRepository
	validator    validators.Validator

	logger *logger.Logger
}

func NewAuditService(downloadLogs store.DownloadLogRepository, logger *logger.Logger) AuditService {
	return &auditService{
		downloadLogs: downloadLogs,
		validator:    validators.NewDownloadLogValidator(),
		logger:       logger,
	}
}

// ListDownloadLogs returns audit records newest first. Status and FailedOnly
// are mutually exclusive; Status must be a known status.
func (a *auditService) ListDownloadLogs(ctx context.Context, filter models.DownloadLogFilter) ([]models.DownloadLog, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, filter); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidLogsFilter, err)
	}

	logs, err := a.downloadLogs.List(ctx, filter)
	if err != nil {
		log.Err(err).Any("filter", filter).Msg("listing download logs ended with error")
		return nil, fmt.Errorf("%w: %w", ErrListingDownloadLogs, err)
	}

	if operator, ok := utils.GetOperatorFromContext(ctx); ok {
		log.Info().Str("operator", operator).Int("count", len(logs)).Msg("download logs listed")
	}

	return logs, nil
}
