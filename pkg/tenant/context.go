package tenant

import (
	"context"
	"log/slog"
)

// contextKey is a private type to prevent collisions with other context keys.
type contextKey struct{}

// cleared marks a context whose tenant value has been explicitly removed.
// It shadows any value set further up the context chain, so a cleared
// context reads as empty even when an ancestor carries a tenant.
type cleared struct{}

// WithID returns a context carrying the given clinic id. The value lives
// on the request context and is visible only to the request that set it:
// concurrent requests can never observe each other's value, and the value
// is gone on every exit path the moment the request context is abandoned.
// Setting again on the same chain overwrites.
func WithID(ctx context.Context, id int64) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// IDFromContext retrieves the clinic id from the context.
// Returns 0, false if no tenant is set or it has been cleared.
func IDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(contextKey{}).(int64)
	return id, ok
}

// Clear returns a context whose tenant value reads as empty, regardless
// of what any parent context carries. Handlers spawning background work
// that must not inherit the caller's tenant use this.
func Clear(ctx context.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, cleared{})
}

// MustID retrieves the clinic id from the context and panics if absent.
// Use only where a missing tenant is a programming error, never for
// caller-controlled paths.
func MustID(ctx context.Context) int64 {
	id, ok := IDFromContext(ctx)
	if !ok {
		panic("tenant: no clinic id in context")
	}
	return id
}

// LoggerExtractor returns a context extractor for the logger that stamps
// records with the current clinic id.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if id, ok := IDFromContext(ctx); ok {
			return slog.Int64("clinic_id", id), true
		}
		return slog.Attr{}, false
	}
}
