// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, hashing,
// HTTP response writing, HTTP client initialization, JWT token generation
// and validation, and other common operations.
package utils

import (
	"context"

	"github.com/MKhiriev/go-key-vault/models"
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

// UserIDCtxKey is the key used to store the user identifier in the context.
// Used together with GetUserIDFromContext for type-safe retrieval
// of the user ID from context.Context.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.UserIDCtxKey, int64(42))
var UserIDCtxKey = contextKey("userID")

// FingerprintCtxKey is the key used to store the request's browser
// fingerprint (user agent plus remote address) in the context. Populated by
// the fingerprint middleware and consumed by the session vault service.
var FingerprintCtxKey = contextKey("fingerprint")

// GetUserIDFromContext retrieves the user identifier from the context.
//
// Returns the user ID of type int64 and an ok flag:
//   - ok == true  — value is found and has the correct int64 type
//   - ok == false — value is missing or has an unexpected type
//
// Example usage:
//
//	userID, ok := utils.GetUserIDFromContext(ctx)
//	if !ok {
//	    // handle missing user in context
//	}
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}

// GetFingerprintFromContext retrieves the browser fingerprint stored in the
// context by the fingerprint middleware.
//
// Returns the fingerprint and an ok flag; ok == false means the middleware
// did not run for this request or stored an unexpected type.
func GetFingerprintFromContext(ctx context.Context) (models.Fingerprint, bool) {
	fp, ok := ctx.Value(FingerprintCtxKey).(models.Fingerprint)
	return fp, ok
}
