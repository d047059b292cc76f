package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrAuditStoreUnavailable means the attempt could not be recorded, so
	// no link was issued.
	ErrAuditStoreUnavailable = errors.New("audit store unavailable")

	// ErrLinkIssuance means the provider refused or failed to issue a link.
	// The attempt is recorded as FAILED.
	ErrLinkIssuance = errors.New("could not generate download link")

	ErrDatabaseUnreachable = errors.New("database unreachable")

	ErrAdminDisabled       = errors.New("admin access is disabled")
	ErrInvalidAdminToken   = errors.New("invalid admin token")
	ErrInvalidLogsFilter   = errors.New("invalid download logs filter")
	ErrListingDownloadLogs = errors.New("error listing download logs")
)
