package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates invalid HTTP server settings
	// (for example, missing address or non-positive timeouts).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates invalid audit database settings
	// (for example, empty DSN or unsupported driver).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidResumeConfigs indicates an incomplete description of the
	// protected object (bucket, key, link TTL).
	ErrInvalidResumeConfigs = errors.New("invalid resume configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, a sweep interval without a stale threshold).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
