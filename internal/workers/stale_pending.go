package workers

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/MKhiriev/resume-gate/internal/config"
	"github.com/MKhiriev/resume-gate/internal/logger"
	"github.com/MKhiriev/resume-gate/internal/store"
)

var stalePendingDownloads = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "resume_gate_stale_pending_downloads",
	Help: "Download logs still PENDING after the stale threshold",
})

// StalePendingMonitor reports download logs left PENDING by a crash or a
// timeout between link issuance and the final audit write. It only counts;
// reconciling the records is left to operators.
type StalePendingMonitor struct {
	downloadLogs store.DownloadLogRepository

	interval   time.Duration
	staleAfter time.Duration
	now        func() time.Time

	logger *logger.Logger
}

func NewStalePendingMonitor(downloadLogs store.DownloadLogRepository, cfg config.Workers, logger *logger.Logger) *StalePendingMonitor {
	return &StalePendingMonitor{
		downloadLogs: downloadLogs,
		interval:     cfg.PendingSweepInterval,
		staleAfter:   cfg.PendingStaleAfter,
		now:          time.Now,
		logger:       logger,
	}
}

// Run checks once immediately and then every interval until ctx is done.
func (m *StalePendingMonitor) Run(ctx context.Context) {
	if m.interval <= 0 {
		return
	}

	m.logger.Info().
		Dur("interval", m.interval).
		Dur("stale_after", m.staleAfter).
		Msg("stale pending monitor started")

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		m.check(ctx)

		select {
		case <-ctx.Done():
			m.logger.Info().Msg("stale pending monitor stopped")
			return
		case <-ticker.C:
		}
	}
}

func (m *StalePendingMonitor) check(ctx context.Context) {
	cutoff := m.now().Add(-m.staleAfter)

	count, err := m.downloadLogs.CountStalePending(ctx, cutoff)
	if err != nil {
		if ctx.Err() == nil {
			m.logger.Err(err).Msg("error counting stale pending download logs")
		}
		return
	}

	stalePendingDownloads.Set(float64(count))
	if count > 0 {
		m.logger.Warn().
			Int64("count", count).
			Time("created_before", cutoff).
			Msg("download logs stuck in PENDING")
	}
}
