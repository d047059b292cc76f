package adapter

import (
	"errors"

	"github.com/aws/smithy-go"
)

// providerCodeAliases normalises codes that describe the same condition.
// HeadObject responses have no body, so a missing object surfaces as a bare
// "NotFound" instead of "NoSuchKey".
var providerCodeAliases = map[string]string{
	"NotFound": CodeNoSuchKey,
}

// mapS3Error wraps err into a [*ProviderError]. A nil err maps to nil.
func mapS3Error(err error) error {
	if err == nil {
		return nil
	}

	var providerErr *ProviderError
	if errors.As(err, &providerErr) {
		return providerErr
	}

	code := CodeUnknown
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) && apiErr.ErrorCode() != "" {
		code = apiErr.ErrorCode()
		if alias, ok := providerCodeAliases[code]; ok {
			code = alias
		}
	}

	return &ProviderError{Code: code, Err: err}
}

// ProviderCode returns the provider reason code carried by err, or
// [CodeUnknown] when err is not a [*ProviderError].
func ProviderCode(err error) string {
	var providerErr *ProviderError
	if errors.As(err, &providerErr) && providerErr.Code != "" {
		return providerErr.Code
	}
	return CodeUnknown
}
