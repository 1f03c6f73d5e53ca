// ABOUTME: Identity context for tracking the authenticated user through request handlers
// ABOUTME: Provides WithIdentity/IdentityFromContext for explicit propagation

package auth

import (
	"context"
)

// Identity holds the authenticated user information extracted from a session
// token. It is attached to the request context by the Gate and read
// explicitly by handlers; there is no ambient session state.
type Identity struct {
	UserID int64
}

// identityKey is the key type for storing Identity in context.Context.
type identityKey struct{}

// WithIdentity returns a new context with the Identity attached.
func WithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFromContext retrieves the Identity from the context, returning nil if not present.
func IdentityFromContext(ctx context.Context) *Identity {
	val := ctx.Value(identityKey{})
	if val == nil {
		return nil
	}
	id, ok := val.(*Identity)
	if !ok {
		return nil
	}
	return id
}
