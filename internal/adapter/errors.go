package adapter

import (
	"errors"
	"fmt"
)

const (
	// CodeNoSuchKey is reported when the configured object does not exist.
	CodeNoSuchKey = "NoSuchKey"

	// CodeUnknown is reported for failures that carry no provider code
	// (network errors, credential resolution, cancelled contexts).
	CodeUnknown = "Unknown"
)

var ErrInvalidLinkParams = errors.New("invalid link parameters")

// ProviderError describes a failed interaction with the object-storage
// provider. Code is safe to persist; Err may contain provider details and
// must not be shown to clients.
type ProviderError struct {
	Code string
	Err  error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("object storage error %s: %v", e.Code, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
