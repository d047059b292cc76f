// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// maxLinkTTLSeconds is the longest validity a SigV4 presigned URL may have
// (seven days).
const maxLinkTTLSeconds = 7 * 24 * 60 * 60

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// ErrInvalid* sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 || cfg.Server.ReadinessTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty DSN", ErrInvalidStorageConfigs)
	}

	if cfg.Resume.ObjectKey == "" || cfg.Resume.Bucket == "" {
		return fmt.Errorf("%w: object key and bucket are required", ErrInvalidResumeConfigs)
	}
	if cfg.Resume.LinkTTLSeconds < 1 || cfg.Resume.LinkTTLSeconds > maxLinkTTLSeconds {
		return fmt.Errorf("%w: link TTL must be within [1, %d] seconds", ErrInvalidResumeConfigs, maxLinkTTLSeconds)
	}

	if cfg.Workers.PendingSweepInterval < 0 ||
		(cfg.Workers.PendingSweepInterval > 0 && cfg.Workers.PendingStaleAfter <= 0) {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
