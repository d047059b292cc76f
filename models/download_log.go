// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
	"time"
)

// DownloadStatus is the lifecycle state of a [DownloadLog].
//
// A record is created as [StatusPending] and moves exactly once to either
// [StatusSuccess] or a failure status built with [FailedStatus].
type DownloadStatus string

const (
	// StatusPending marks an attempt whose outcome has not been recorded yet.
	StatusPending DownloadStatus = "PENDING"

	// StatusSuccess marks an attempt that returned a usable link.
	StatusSuccess DownloadStatus = "SUCCESS"

	// failedPrefix prefixes every failure status ("FAILED:<reason-code>").
	failedPrefix = "FAILED:"
)

// FailedStatus builds the terminal failure status for the given provider
// reason code, e.g. FailedStatus("NoSuchKey") == "FAILED:NoSuchKey".
func FailedStatus(code string) DownloadStatus {
	return DownloadStatus(failedPrefix + code)
}

// IsTerminal reports whether s is a final status (SUCCESS or FAILED:<code>).
func (s DownloadStatus) IsTerminal() bool {
	return s == StatusSuccess || s.IsFailed()
}

// IsFailed reports whether s is a FAILED:<code> status.
func (s DownloadStatus) IsFailed() bool {
	return strings.HasPrefix(string(s), failedPrefix) && len(s) > len(failedPrefix)
}

// FailureCode returns the reason code of a failure status, or an empty
// string for any other status.
func (s DownloadStatus) FailureCode() string {
	if !s.IsFailed() {
		return ""
	}
	return strings.TrimPrefix(string(s), failedPrefix)
}

// String implements [fmt.Stringer].
func (s DownloadStatus) String() string {
	return string(s)
}

// DownloadLog is the audit record of a single download attempt.
//
// Every field except Status is set once at creation and never changes.
type DownloadLog struct {
	// LogID is the external correlation key of the attempt (UUID).
	LogID string `json:"log_id"`

	// FileKey is the object key that was requested. It always comes from
	// server-side configuration, never from the request.
	FileKey string `json:"file_key"`

	// Timestamp is the creation time of the record in UTC.
	Timestamp time.Time `json:"timestamp"`

	// RequesterIP is the client address, nil when it could not be parsed.
	RequesterIP *string `json:"requester_ip,omitempty"`

	// UserAgent is the client User-Agent header ("unknown" when absent).
	UserAgent *string `json:"user_agent,omitempty"`

	// Status is the only mutable field.
	Status DownloadStatus `json:"status"`
}

// DownloadRequest carries the request metadata captured for the audit record.
type DownloadRequest struct {
	RequesterIP string
	UserAgent   string
}

// DownloadLink is a bearer-capability URL for the protected object.
type DownloadLink struct {
	// URL grants read access to the object without further credentials.
	URL string

	// ExpiresIn is the validity of URL in seconds from issuance.
	ExpiresIn int
}

// DownloadLogFilter narrows an administrative listing of audit records.
// Zero values disable the corresponding condition.
type DownloadLogFilter struct {
	// Status matches records with exactly this status.
	Status DownloadStatus

	// FailedOnly matches every FAILED:<code> record.
	FailedOnly bool

	// Before matches records created strictly before this time.
	Before time.Time

	// Limit caps the number of returned records.
	Limit uint64
}
