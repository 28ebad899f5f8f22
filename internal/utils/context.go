// Package utils provides general-purpose helper utilities
// used across different parts of the application: context keys,
// JWT token generation and validation, bearer header parsing, password
// hashing, HTTP response writing and identifier generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-blog-list/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// IdentityCtxKey is the key under which the authenticated identity is
// stored in the request context.
var IdentityCtxKey = contextKey("identity")

// WithIdentity returns a copy of ctx carrying the given identity.
func WithIdentity(ctx context.Context, identity models.Identity) context.Context {
	return context.WithValue(ctx, IdentityCtxKey, identity)
}

// GetIdentityFromContext retrieves the identity attached by the auth
// middleware. ok is false for anonymous requests.
func GetIdentityFromContext(ctx context.Context) (models.Identity, bool) {
	identity, ok := ctx.Value(IdentityCtxKey).(models.Identity)
	if !ok || identity.IsZero() {
		return models.Identity{}, false
	}
	return identity, true
}
