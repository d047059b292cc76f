package service

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/MKhiriev/resume-gate/internal/adapter"
	"github.com/MKhiriev/resume-gate/internal/config"
	"github.com/MKhiriev/resume-gate/internal/logger"
	"github.com/MKhiriev/resume-gate/internal/store"
	"github.com/MKhiriev/resume-gate/internal/validators"
	"github.com/MKhiriev/resume-gate/models"
)

const (
	// unknownUserAgent is recorded when the client sends no User-Agent.
	unknownUserAgent = "unknown"

	// statusUpdateTimeout bounds the final audit write. The write runs on a
	// context detached from the client, so a disconnect cannot leave the
	// record PENDING.
	statusUpdateTimeout = 5 * time.Second
)

const (
	outcomeSuccess = "success"
	outcomeFailed  = "failed"
	outcomeAborted = "aborted"
)

var (
	downloadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "resume_gate_downloads_total",
		Help: "Download attempts by outcome (success, failed, aborted)",
	}, []string{"outcome"})

	linkIssuanceDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "resume_gate_link_issuance_duration_seconds",
		Help:    "Time spent issuing a download link, including the object check",
		Buckets: prometheus.DefBuckets,
	})

	auditGapsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "resume_gate_audit_gaps_total",
		Help: "Download attempts whose terminal status could not be recorded",
	})
)

type downloadService struct {
	downloadLogs store.DownloadLogRepository
	linkIssuer   adapter.LinkIssuer

	bucket  string
	fileKey string
	ttl     time.Duration

	updateTimeout time.Duration

	logger *logger.Logger
}

// NewDownloadService wires the workflow to its audit store and link issuer.
// Bucket, object key and link lifetime come from cfg only.
func NewDownloadService(downloadLogs store.DownloadLogRepository, linkIssuer adapter.LinkIssuer, cfg config.Resume, logger *logger.Logger) DownloadService {
	return &downloadService{
		downloadLogs:  downloadLogs,
		linkIssuer:    linkIssuer,
		bucket:        cfg.Bucket,
		fileKey:       cfg.ObjectKey,
		ttl:           cfg.LinkTTL(),
		updateTimeout: statusUpdateTimeout,
		logger:        logger,
	}
}

// RequestDownload implements [DownloadService].
//
// Steps:
//  1. Create a PENDING record. On failure nothing else happens and
//     [ErrAuditStoreUnavailable] is returned.
//  2. Ask the issuer for a link.
//  3. Record SUCCESS or FAILED:<code>, whatever the issuer returned.
//  4. Return the link, or [ErrLinkIssuance] without provider details.
//
// A failed final write after a successful issuance is logged as an audit
// gap and the link is still returned.
func (s *downloadService) RequestDownload(ctx context.Context, req models.DownloadRequest) (models.DownloadLink, error) {
	log := logger.FromContext(ctx)

	record, err := s.downloadLogs.Create(ctx, newAuditRecord(s.fileKey, req))
	if err != nil {
		log.Err(err).Str("ip", req.RequesterIP).Msg("download attempt could not be recorded, aborting")
		downloadsTotal.WithLabelValues(outcomeAborted).Inc()
		return models.DownloadLink{}, fmt.Errorf("%w: %w", ErrAuditStoreUnavailable, err)
	}

	log.Info().
		Str("ip", req.RequesterIP).
		Str("log_id", record.LogID).
		Msg("Secure Download Attempt Initiated")

	start := time.Now()
	link, issueErr := s.linkIssuer.IssueLink(ctx, s.bucket, s.fileKey, s.ttl)
	linkIssuanceDuration.Observe(time.Since(start).Seconds())

	status := models.StatusSuccess
	if issueErr != nil {
		status = models.FailedStatus(adapter.ProviderCode(issueErr))
	}

	if err := s.recordOutcome(ctx, record.LogID, status); err != nil {
		if errors.Is(err, store.ErrTerminalStatusConflict) {
			// the record already holds another outcome; nothing is missing
			log.Warn().Err(err).
				Str("log_id", record.LogID).
				Str("status", status.String()).
				Msg("terminal status conflict, outcome not overwritten")
		} else {
			auditGapsTotal.Inc()
			log.Error().Err(err).
				Str("log_id", record.LogID).
				Str("status", status.String()).
				Msg("audit gap: terminal status was not recorded")
		}
	}

	if issueErr != nil {
		log.Error().Err(issueErr).
			Str("ip", req.RequesterIP).
			Str("log_id", record.LogID).
			Str("s3_error", status.FailureCode()).
			Msg("Presigned URL Generation Failed")
		downloadsTotal.WithLabelValues(outcomeFailed).Inc()
		return models.DownloadLink{}, fmt.Errorf("%w: %w", ErrLinkIssuance, issueErr)
	}

	log.Info().
		Str("ip", req.RequesterIP).
		Str("log_id", record.LogID).
		Msg("Presigned URL Generated Successfully")
	downloadsTotal.WithLabelValues(outcomeSuccess).Inc()

	link.ExpiresIn = int(s.ttl / time.Second)
	return link, nil
}

// recordOutcome writes the terminal status even if the client has gone away.
func (s *downloadService) recordOutcome(ctx context.Context, logID string, status models.DownloadStatus) error {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.updateTimeout)
	defer cancel()

	return s.downloadLogs.UpdateStatus(ctx, logID, status)
}

// newAuditRecord builds the PENDING record for req. An unparsable address is
// stored as NULL.
func newAuditRecord(fileKey string, req models.DownloadRequest) models.DownloadLog {
	record := models.DownloadLog{FileKey: fileKey}

	if ip := net.ParseIP(strings.TrimSpace(req.RequesterIP)); ip != nil {
		addr := ip.String()
		record.RequesterIP = &addr
	}

	userAgent := normalizeUserAgent(req.UserAgent)
	record.UserAgent = &userAgent

	return record
}

func normalizeUserAgent(userAgent string) string {
	userAgent = strings.TrimSpace(strings.ToValidUTF8(userAgent, "\uFFFD"))
	if userAgent == "" {
		return unknownUserAgent
	}
	if utf8.RuneCountInString(userAgent) <= validators.MaxUserAgentLength {
		return userAgent
	}

	runes := []rune(userAgent)
	return string(runes[:validators.MaxUserAgentLength])
}
