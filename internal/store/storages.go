package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/resume-gate/internal/config"
	"github.com/MKhiriev/resume-gate/internal/logger"
)

// Storages groups the persistence components of the service.
type Storages struct {
	DownloadLogRepository DownloadLogRepository
	ConnectionChecker     ConnectionChecker

	db *DB
}

// NewStorages connects to the configured audit database, applies pending
// migrations and builds the repositories on top of the connection pool.
func NewStorages(ctx context.Context, cfg config.Storage, ids IDGenerator, log *logger.Logger) (*Storages, error) {
	log.Info().Str("driver", cfg.DB.Driver).Msg("creating new storages...")

	var (
		db  *DB
		err error
	)
	switch cfg.DB.Driver {
	case config.DriverPostgres:
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	case config.DriverSQLite:
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.DB.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("error connecting to audit database: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("error migrating audit database: %w", err)
	}

	return newStorages(db, ids, log), nil
}

func newStorages(db *DB, ids IDGenerator, log *logger.Logger) *Storages {
	return &Storages{
		DownloadLogRepository: NewDownloadLogRepository(db, ids, log),
		ConnectionChecker:     db,
		db:                    db,
	}
}

// Close releases the connection pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
