package service

import (
	"fmt"

	"github.com/MKhiriev/resume-gate/internal/adapter"
	"github.com/MKhiriev/resume-gate/internal/config"
	"github.com/MKhiriev/resume-gate/internal/logger"
	"github.com/MKhiriev/resume-gate/internal/store"
)

type Services struct {
	DownloadService DownloadService
	HealthService   HealthService
	AuditService    AuditService
	AuthService     AuthService
	AppInfoService  AppInfoService
}

func NewServices(storages *store.Storages, linkIssuer adapter.LinkIssuer, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		DownloadService: NewDownloadService(storages.DownloadLogRepository, linkIssuer, cfg.Resume, logger),
		HealthService:   NewHealthService(storages.ConnectionChecker, cfg.Server, logger),
		AuditService:    NewAuditService(storages.DownloadLogRepository, logger),
		AuthService:     NewAuthService(cfg.App, logger),
		AppInfoService:  appInfoService,
	}, nil
}
