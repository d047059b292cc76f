package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrAuditStoreUnavailable wraps every failure to persist a new audit
	// record. Callers must not perform the audited action after it.
	ErrAuditStoreUnavailable = errors.New("audit store unavailable")

	// ErrDownloadLogIDConflict is returned when the generated log_id already
	// exists in the database.
	ErrDownloadLogIDConflict = errors.New("download log id already exists")

	// ErrDownloadLogNotFound is returned when an update or lookup targets a
	// log_id that does not exist.
	ErrDownloadLogNotFound = errors.New("download log was not found")

	// ErrTerminalStatusConflict is returned when a record that already holds
	// a terminal status is asked to move to a different terminal status.
	ErrTerminalStatusConflict = errors.New("download log already has a different terminal status")

	// ErrInvalidStatusTransition is returned when the requested status is
	// not terminal (e.g. moving a record back to PENDING).
	ErrInvalidStatusTransition = errors.New("invalid download log status transition")

	// ErrInvalidDownloadLog is returned by Create for a record the schema
	// would reject (missing file key, malformed ip, oversized user agent).
	ErrInvalidDownloadLog = errors.New("invalid download log")

	// ErrUnsupportedDriver is returned by NewStorages for an unknown driver.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan download log row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan download log rows")
)
