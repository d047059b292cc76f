// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the object-storage side of resume-gate.
//
// The primary abstraction is [LinkIssuer], which decouples the download
// workflow from the storage provider. The package ships an S3 implementation
// ([NewS3LinkIssuer]) built on aws-sdk-go-v2 that works against AWS and any
// S3-compatible endpoint.
//
// Every provider failure is returned as a [*ProviderError] carrying a short
// provider reason code (for example "NoSuchKey" or "AccessDenied") so that
// callers can record the outcome without inspecting SDK types.
package adapter

import (
	"context"
	"time"

	"github.com/MKhiriev/resume-gate/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// LinkIssuer issues time-limited bearer links for objects in a bucket.
type LinkIssuer interface {
	// IssueLink returns a link granting read access to bucket/key for ttl.
	// The link is usable by anyone who holds it until it expires.
	// Failures are returned as [*ProviderError].
	IssueLink(ctx context.Context, bucket, key string, ttl time.Duration) (models.DownloadLink, error)
}
