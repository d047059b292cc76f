package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/resume-gate/internal/config"
	"github.com/MKhiriev/resume-gate/internal/logger"
	"github.com/MKhiriev/resume-gate/internal/store"
)

type healthService struct {
	checker          store.ConnectionChecker
	readinessTimeout time.Duration

	logger *logger.Logger
}

func NewHealthService(checker store.ConnectionChecker, cfg config.Server, logger *logger.Logger) HealthService {
	return &healthService{
		checker:          checker,
		readinessTimeout: cfg.ReadinessTimeout,
		logger:           logger,
	}
}

// Liveness always succeeds while the process is able to run handlers.
func (h *healthService) Liveness(ctx context.Context) error {
	return nil
}

// Readiness runs a trivial query against the audit database. It never
// writes and never fails the process; a slow or broken database is
// reported as [ErrDatabaseUnreachable].
func (h *healthService) Readiness(ctx context.Context) error {
	if h.readinessTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.readinessTimeout)
		defer cancel()
	}

	if err := h.checker.CheckConnection(ctx); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Msg("readiness check failed")
		return fmt.Errorf("%w: %w", ErrDatabaseUnreachable, err)
	}

	return nil
}
