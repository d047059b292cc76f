// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP request and response helpers, ID generation, and admin JWT
// token generation and validation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// OperatorCtxKey is the key used to store the authenticated admin operator
// in the context. It is set by the admin auth middleware.
//
//	ctx := context.WithValue(ctx, utils.OperatorCtxKey, "alice")
var OperatorCtxKey = contextKey("operator")

// GetOperatorFromContext retrieves the admin operator name from the context.
// ok is false when the value is missing, empty or has an unexpected type.
func GetOperatorFromContext(ctx context.Context) (string, bool) {
	operator, ok := ctx.Value(OperatorCtxKey).(string)
	return operator, ok && operator != ""
}
