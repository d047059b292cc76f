package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"

	"github.com/MKhiriev/resume-gate/internal/logger"
	"github.com/MKhiriev/resume-gate/internal/validators"
	"github.com/MKhiriev/resume-gate/models"
)

// downloadLogRepository is the database/sql implementation of
// [DownloadLogRepository] backed by the "download_logs" table. It works with
// both supported drivers; dialect differences live in [DB].
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type downloadLogRepository struct {
	db        *DB
	ids       IDGenerator
	validator validators.Validator
	now       func() time.Time
	logger    *logger.Logger
}

// NewDownloadLogRepository constructs a [DownloadLogRepository] backed by the
// provided database connection.
func NewDownloadLogRepository(db *DB, ids IDGenerator, logger *logger.Logger) DownloadLogRepository {
	logger.Debug().Msg("creating download log repository")
	return &downloadLogRepository{
		db:        db,
		ids:       ids,
		validator: validators.NewDownloadLogValidator(),
		now:       func() time.Time { return time.Now().UTC() },
		logger:    logger,
	}
}

// Create persists a new PENDING record and returns it with LogID, Timestamp
// and Status assigned. FileKey, RequesterIP and UserAgent are taken from the
// input as is.
//
// Every failure is wrapped with [ErrAuditStoreUnavailable]; a log_id
// collision additionally matches [ErrDownloadLogIDConflict].
func (r *downloadLogRepository) Create(ctx context.Context, log models.DownloadLog) (models.DownloadLog, error) {
	l := logger.FromContext(ctx)

	if err := r.validator.Validate(ctx, log); err != nil {
		l.Err(err).Str("func", "*downloadLogRepository.Create").Msg("invalid download log")
		return models.DownloadLog{}, fmt.Errorf("%w: %w: %w", ErrAuditStoreUnavailable, ErrInvalidDownloadLog, err)
	}

	log.LogID = r.ids.Generate()
	log.Timestamp = r.now()
	log.Status = models.StatusPending

	query, args, err := r.db.insertDownloadLogQuery(log)
	if err != nil {
		l.Err(err).Str("func", "*downloadLogRepository.Create").Msg("error building query")
		return models.DownloadLog{}, fmt.Errorf("%w: %w: %w", ErrAuditStoreUnavailable, ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		l.Err(err).Str("func", "*downloadLogRepository.Create").Msg("error inserting download log")
		if postgresError(err) == pgerrcode.UniqueViolation || isSQLiteUniqueViolation(err) {
			return models.DownloadLog{}, fmt.Errorf("%w: %w", ErrAuditStoreUnavailable, ErrDownloadLogIDConflict)
		}
		return models.DownloadLog{}, fmt.Errorf("%w: %w: %w", ErrAuditStoreUnavailable, ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil || affected != 1 {
		l.Error().Err(err).Int64("affected", affected).Str("func", "*downloadLogRepository.Create").Msg("download log was not saved")
		return models.DownloadLog{}, fmt.Errorf("%w: %w", ErrAuditStoreUnavailable, ErrExecutingStatement)
	}

	return log, nil
}

// UpdateStatus moves a record to a terminal status inside a transaction.
//
// Outcomes:
//   - PENDING → status: applied.
//   - status → status: no-op, nil.
//   - other terminal → status: [ErrTerminalStatusConflict], nothing written.
//   - unknown logID: [ErrDownloadLogNotFound].
//   - non-terminal status: [ErrInvalidStatusTransition].
func (r *downloadLogRepository) UpdateStatus(ctx context.Context, logID string, status models.DownloadStatus) (err error) {
	l := logger.FromContext(ctx)

	if !status.IsTerminal() {
		return fmt.Errorf("%w: %q", ErrInvalidStatusTransition, status)
	}

	query, args, err := r.db.updateStatusQuery(logID, status)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		l.Err(err).Str("func", "*downloadLogRepository.UpdateStatus").Msg("error beginning transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	// released on every path; a no-op once committed
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		l.Err(err).Str("func", "*downloadLogRepository.UpdateStatus").Msg("error updating status")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected == 0 {
		current, lookupErr := r.currentStatus(ctx, tx, logID)
		if lookupErr != nil {
			return lookupErr
		}

		l.Error().
			Str("func", "*downloadLogRepository.UpdateStatus").
			Str("log_id", logID).
			Str("current_status", current.String()).
			Str("requested_status", status.String()).
			Msg("anomalous terminal status change rejected")
		return fmt.Errorf("%w: %s -> %s", ErrTerminalStatusConflict, current, status)
	}

	if err = tx.Commit(); err != nil {
		l.Err(err).Str("func", "*downloadLogRepository.UpdateStatus").Msg("error committing transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (r *downloadLogRepository) currentStatus(ctx context.Context, tx *sql.Tx, logID string) (models.DownloadStatus, error) {
	query, args, err := r.db.selectStatusQuery(logID)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var status string
	if err := tx.QueryRowContext(ctx, query, args...).Scan(&status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrDownloadLogNotFound
		}
		return "", fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return models.DownloadStatus(status), nil
}

// GetByLogID returns the record identified by logID or
// [ErrDownloadLogNotFound].
func (r *downloadLogRepository) GetByLogID(ctx context.Context, logID string) (models.DownloadLog, error) {
	query, args, err := r.db.selectByLogIDQuery(logID)
	if err != nil {
		return models.DownloadLog{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	log, err := scanDownloadLog(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.DownloadLog{}, ErrDownloadLogNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "*downloadLogRepository.GetByLogID").Msg("error scanning download log")
		return models.DownloadLog{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return log, nil
}

// List returns the records matching filter ordered by timestamp descending.
func (r *downloadLogRepository) List(ctx context.Context, filter models.DownloadLogFilter) ([]models.DownloadLog, error) {
	l := logger.FromContext(ctx)

	query, args, err := r.db.listQuery(filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		l.Err(err).Str("func", "*downloadLogRepository.List").Msg("error listing download logs")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	logs := make([]models.DownloadLog, 0, listLimit(filter.Limit))
	for rows.Next() {
		log, err := scanDownloadLog(rows)
		if err != nil {
			l.Err(err).Str("func", "*downloadLogRepository.List").Msg("error scanning download log")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		logs = append(logs, log)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return logs, nil
}

// CountStalePending counts records still PENDING that were created before
// olderThan.
func (r *downloadLogRepository) CountStalePending(ctx context.Context, olderThan time.Time) (int64, error) {
	query, args, err := r.db.countStalePendingQuery(olderThan)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*downloadLogRepository.CountStalePending").Msg("error counting pending logs")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanDownloadLog(row rowScanner) (models.DownloadLog, error) {
	var (
		log         models.DownloadLog
		requesterIP sql.NullString
		userAgent   sql.NullString
		status      string
	)

	if err := row.Scan(&log.LogID, &log.FileKey, &log.Timestamp, &requesterIP, &userAgent, &status); err != nil {
		return models.DownloadLog{}, err
	}

	if requesterIP.Valid {
		log.RequesterIP = &requesterIP.String
	}
	if userAgent.Valid {
		log.UserAgent = &userAgent.String
	}
	log.Status = models.DownloadStatus(status)
	log.Timestamp = log.Timestamp.UTC()

	return log, nil
}
