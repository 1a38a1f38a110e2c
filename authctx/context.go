// Package authctx propagates the authenticated identity through
// context.Context.
//
// The authentication middleware calls Set after verifying the bearer
// token; handlers and the role gate read it back with Get or MustGet.
//
// Usage:
//
//	ctx = authctx.Set(ctx, identity)
//
//	id, ok := authctx.Get(ctx)
//	id := authctx.MustGet(ctx) // panics if missing
package authctx

import (
	"context"
	"errors"

	"github.com/skillsenselab/authkit/token"
)

// contextKey is an unexported type to prevent collisions with other packages.
type contextKey struct{}

// identityKey is the single key used to store the identity in context.
var identityKey = contextKey{}

// Set stores the authenticated identity in the context.
func Set(ctx context.Context, id token.Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// Get retrieves the authenticated identity from the context.
// Returns the identity and true if present, or zero value and false.
func Get(ctx context.Context) (token.Identity, bool) {
	id, ok := ctx.Value(identityKey).(token.Identity)
	return id, ok
}

// MustGet retrieves the authenticated identity from the context.
// Panics if absent. Use in handlers where the authentication middleware
// guarantees an identity exists.
func MustGet(ctx context.Context) token.Identity {
	id, ok := Get(ctx)
	if !ok {
		panic("authctx: identity not found in context")
	}
	return id
}

// ErrNoIdentity is returned when no identity is attached to the context.
var ErrNoIdentity = errors.New("authctx: no identity in context")

// GetOrError retrieves the identity, returning ErrNoIdentity if absent.
func GetOrError(ctx context.Context) (token.Identity, error) {
	id, ok := Get(ctx)
	if !ok {
		return token.Identity{}, ErrNoIdentity
	}
	return id, nil
}
