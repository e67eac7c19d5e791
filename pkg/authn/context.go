package authn

import "context"

// contextKey is a private type to prevent collisions with other context keys.
type contextKey struct{}

// WithIdentity adds a verified identity to the context.
func WithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// IdentityFromContext retrieves the verified identity from the context.
// Returns nil, false if no identity is present.
func IdentityFromContext(ctx context.Context) (*Identity, bool) {
	id, ok := ctx.Value(contextKey{}).(*Identity)
	return id, ok && id != nil
}
