package validators

import (
	"context"
	"net"
	"unicode/utf8"

	"github.com/MKhiriev/resume-gate/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldStatus targets the exact status filter or the status of a record.
	FieldStatus = "status"

	// FieldFailedOnly targets the FAILED:<code> prefix filter; it cannot be
	// combined with an exact status.
	FieldFailedOnly = "failed_only"

	FieldLogID       = "log_id"
	FieldFileKey     = "file_key"
	FieldRequesterIP = "requester_ip"
	FieldUserAgent   = "user_agent"
)

// MaxUserAgentLength is the longest user agent, in runes, an audit record keeps.
const MaxUserAgentLength = 255

type DownloadLogValidator struct{}

func NewDownloadLogValidator() Validator {
	return &DownloadLogValidator{}
}

func (v *DownloadLogValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.DownloadLogFilter:
		return v.validateFilter(ctx, value, fields...)
	case *models.DownloadLogFilter:
		return v.validateFilter(ctx, *value, fields...)

	case models.DownloadLog:
		return v.validateNewRecord(ctx, value, fields...)
	case *models.DownloadLog:
		return v.validateNewRecord(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func isKnownStatus(s models.DownloadStatus) bool {
	return s == models.StatusPending || s.IsTerminal()
}

func (v *DownloadLogValidator) validateFilter(_ context.Context, filter models.DownloadLogFilter, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldStatus, FieldFailedOnly}
	}

	for _, f := range fields {
		switch f {
		case FieldStatus:
			if filter.Status != "" && !isKnownStatus(filter.Status) {
				return ErrUnknownStatus
			}
		case FieldFailedOnly:
			if filter.FailedOnly && filter.Status != "" {
				return ErrExclusiveFilters
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateNewRecord checks a record about to be inserted by the download workflow.
func (v *DownloadLogValidator) validateNewRecord(_ context.Context, log models.DownloadLog, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFileKey, FieldRequesterIP, FieldUserAgent}
	}

	for _, f := range fields {
		switch f {
		case FieldLogID:
			if log.LogID == "" {
				return ErrEmptyLogID
			}
		case FieldFileKey:
			if log.FileKey == "" {
				return ErrEmptyFileKey
			}
		case FieldStatus:
			if log.Status != "" && log.Status != models.StatusPending {
				return ErrNonPendingNewRecord
			}
		case FieldRequesterIP:
			if log.RequesterIP != nil && net.ParseIP(*log.RequesterIP) == nil {
				return ErrInvalidRequesterIP
			}
		case FieldUserAgent:
			if log.UserAgent != nil && utf8.RuneCountInString(*log.UserAgent) > MaxUserAgentLength {
				return ErrUserAgentTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
