package middleware

import (
	"context"

	"github.com/google/uuid"
)

type holderKey struct{}

// actorHolder carries the authenticated staff id back out to outer
// middleware, which only see the request context they created.
type actorHolder struct {
	id  uuid.UUID
	set bool
}

func withActorHolder(ctx context.Context, h *actorHolder) context.Context {
	return context.WithValue(ctx, holderKey{}, h)
}

func recordActor(ctx context.Context, id uuid.UUID) {
	if h, ok := ctx.Value(holderKey{}).(*actorHolder); ok {
		h.id = id
		h.set = true
	}
}
