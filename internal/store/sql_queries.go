package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/resume-gate/models"
)

const (
	downloadLogsTable = "download_logs"

	// defaultListLimit and maxListLimit bound administrative listings.
	defaultListLimit uint64 = 50
	maxListLimit     uint64 = 500
)

var downloadLogColumns = []string{
	"log_id",
	"file_key",
	"timestamp",
	"requester_ip",
	"user_agent",
	"status",
}

func (db *DB) insertDownloadLogQuery(log models.DownloadLog) (string, []any, error) {
	return db.builder.
		Insert(downloadLogsTable).
		Columns(downloadLogColumns...).
		Values(log.LogID, log.FileKey, log.Timestamp, log.RequesterIP, log.UserAgent, string(log.Status)).
		ToSql()
}

// updateStatusQuery only matches a record that is still PENDING or already
// holds the requested status, so a terminal status can never be replaced by
// a different one.
func (db *DB) updateStatusQuery(logID string, status models.DownloadStatus) (string, []any, error) {
	return db.builder.
		Update(downloadLogsTable).
		Set("status", string(status)).
		Where(sq.Eq{"log_id": logID}).
		Where(sq.Or{
			sq.Eq{"status": string(models.StatusPending)},
			sq.Eq{"status": string(status)},
		}).
		ToSql()
}

func (db *DB) selectStatusQuery(logID string) (string, []any, error) {
	return db.builder.
		Select("status").
		From(downloadLogsTable).
		Where(sq.Eq{"log_id": logID}).
		ToSql()
}

func (db *DB) selectByLogIDQuery(logID string) (string, []any, error) {
	return db.builder.
		Select(downloadLogColumns...).
		From(downloadLogsTable).
		Where(sq.Eq{"log_id": logID}).
		ToSql()
}

func (db *DB) listQuery(filter models.DownloadLogFilter) (string, []any, error) {
	query := db.builder.
		Select(downloadLogColumns...).
		From(downloadLogsTable)

	if filter.Status != "" {
		query = query.Where(sq.Eq{"status": string(filter.Status)})
	}
	if filter.FailedOnly {
		query = query.Where(sq.Like{"status": "FAILED:%"})
	}
	if !filter.Before.IsZero() {
		query = query.Where(sq.Lt{"timestamp": filter.Before.UTC()})
	}

	return query.
		OrderBy("timestamp DESC", "id DESC").
		Limit(listLimit(filter.Limit)).
		ToSql()
}

func (db *DB) countStalePendingQuery(olderThan time.Time) (string, []any, error) {
	return db.builder.
		Select("COUNT(*)").
		From(downloadLogsTable).
		Where(sq.Eq{"status": string(models.StatusPending)}).
		Where(sq.Lt{"timestamp": olderThan.UTC()}).
		ToSql()
}

func listLimit(limit uint64) uint64 {
	switch {
	case limit == 0:
		return defaultListLimit
	case limit > maxListLimit:
		return maxListLimit
	default:
		return limit
	}
}
