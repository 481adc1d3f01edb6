// Package audit carries the acting user's id on a context.Context so write
// operations can stamp created_by/updated_by without every call signature
// mentioning the actor. The binding lives and dies with the request context,
// so it can never leak between concurrent requests.
package audit

import "context"

type actorKey struct{}

// WithActor binds the acting user id to ctx.
func WithActor(ctx context.Context, userID uint) context.Context {
	return context.WithValue(ctx, actorKey{}, userID)
}

// ActorID returns the bound actor id, or false for system/internal calls.
func ActorID(ctx context.Context) (uint, bool) {
	id, ok := ctx.Value(actorKey{}).(uint)
	return id, ok && id != 0
}
