// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// resume-gate HTTP handlers.
//
// The Msg* constants are written verbatim into response bodies. Clients and
// uptime checks match on them, so the wording must not change.
package app

const (
	// MsgDownloadFailed is the only failure body of the download route.
	// Provider and database details stay in the logs.
	MsgDownloadFailed = "Could not generate secure download link."

	// MsgProbeOK and MsgProbeFail fill the "status" field of probe responses.
	MsgProbeOK   = "OK"
	MsgProbeFail = "FAIL"

	// MsgSystemAlive is reported by the liveness probe.
	MsgSystemAlive = "Alive"

	// MsgSystemReady is reported by the readiness probe when the audit
	// database answers.
	MsgSystemReady = "Ready to Serve"

	// MsgDBUnreachable is the readiness failure reason.
	MsgDBUnreachable = "DB Unreachable"

	// MsgTokenIsExpiredOrInvalid is returned when an admin bearer token is
	// either expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"
)
