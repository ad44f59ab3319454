// Package net holds transport-neutral request context helpers and the response envelope
package net

import (
	"context"

	"tutorhub/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
)

type ctxKey string

const keyActor ctxKey = "actor"

// WithRequest annotates ctx with the request id and calling actor
// both are mirrored onto the logger context so logger.C picks them up
func WithRequest(ctx context.Context, reqID, actor string) context.Context {
	if reqID != "" {
		// chi's key so chimw.GetReqID sees it
		ctx = context.WithValue(ctx, chimw.RequestIDKey, reqID)
	}
	if actor != "" {
		ctx = context.WithValue(ctx, keyActor, actor)
	}
	return logger.WithRequest(ctx, reqID, actor)
}

// RequestID returns the request id on the context if present
func RequestID(ctx context.Context) string { return chimw.GetReqID(ctx) }

// Actor returns who is calling (the bot name for bearer callers) if present
func Actor(ctx context.Context) string {
	v, _ := ctx.Value(keyActor).(string)
	return v
}
