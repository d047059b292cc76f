package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrUnknownStatus       = errors.New("unknown download status")
	ErrExclusiveFilters    = errors.New("status and failed filters are exclusive")
	ErrEmptyFileKey        = errors.New("file key is required")
	ErrEmptyLogID          = errors.New("log id is required")
	ErrInvalidRequesterIP  = errors.New("invalid requester ip")
	ErrUserAgentTooLong    = errors.New("user agent is too long")
	ErrNonPendingNewRecord = errors.New("new download log must be PENDING")
)
