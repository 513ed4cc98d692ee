// Package ctxutil provides context utilities that can be safely imported anywhere.
// This package has no internal dependencies to avoid import cycles.
package ctxutil

import "context"

// ActorKey is the context key for the actor behind a change.
type ActorKey struct{}

// DefaultActor is reported when no actor was attached to the context.
const DefaultActor = "session"

// WithActor returns a context with the actor embedded, for example
// "tui" or "import:questions.json".
func WithActor(ctx context.Context, actor string) context.Context {
	return context.WithValue(ctx, ActorKey{}, actor)
}

// ActorFromContext returns the actor from context, or DefaultActor if not set.
func ActorFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(ActorKey{}).(string); ok && v != "" {
		return v
	}
	return DefaultActor
}
