// Package utils provides general-purpose helper utilities
// used across different parts of the SDK.
// Includes tools for working with context, type-safe keys,
// HTTP client initialization, identifier generation,
// and other common operations.
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

// TraceIDCtxKey is the key used to store the operation trace identifier in
// the context. The sync engine stamps a fresh trace id on every cycle, and
// the HTTP adapter propagates it into outgoing request headers so that a
// whole read-reconcile-write sequence can be correlated in the logs.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.TraceIDCtxKey, "0195c2...")
var TraceIDCtxKey = contextKey("traceID")

// GetTraceIDFromContext retrieves the operation trace identifier from the
// context.
//
// Returns the trace id and an ok flag:
//   - ok == true: value is found and has the correct string type
//   - ok == false: value is missing or has an unexpected type
func GetTraceIDFromContext(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(TraceIDCtxKey).(string)
	return traceID, ok
}

// WithTraceID returns a child context carrying the given trace identifier.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDCtxKey, traceID)
}
