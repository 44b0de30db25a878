// Package utils provides general-purpose helper utilities
// used across different parts of the application:
// context keys, JSON response writing, the outbound HTTP client,
// bearer token parsing and id generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is the key used to store the authenticated user id in the
// context. The id is the "sub" claim of the hosted provider's token.
//
//	ctx := context.WithValue(ctx, utils.UserIDCtxKey, "7d0f...")
var UserIDCtxKey = contextKey("userID")

// GetUserIDFromContext retrieves the user identifier from the context.
// ok is false when the value is missing, empty or of an unexpected type.
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}

// WithUserID returns a copy of ctx carrying userID.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, UserIDCtxKey, userID)
}
