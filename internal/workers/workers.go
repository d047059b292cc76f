package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/resume-gate/internal/config"
	"github.com/MKhiriev/resume-gate/internal/logger"
	"github.com/MKhiriev/resume-gate/internal/store"
)

type Workers struct {
	workers []Worker
}

// New groups already constructed workers.
func New(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// NewWorkers builds the background workers enabled by cfg.
func NewWorkers(storages *store.Storages, cfg config.Workers, logger *logger.Logger) *Workers {
	ws := &Workers{}

	if cfg.PendingSweepInterval > 0 {
		ws.workers = append(ws.workers, NewStalePendingMonitor(storages.DownloadLogRepository, cfg, logger))
	} else {
		logger.Info().Msg("stale pending monitor disabled")
	}

	return ws
}

// Run starts every worker in its own goroutine and blocks until all of
// them have returned.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Go(func() {
			worker.Run(ctx)
		})
	}
	wg.Wait()
}
