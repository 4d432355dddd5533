// Package net holds request scoped context values shared by transports
package net

import (
	"context"

	"langshim/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
)

type ctxKey string

const keyEngine ctxKey = "engine"

// WithRequest stores the request id where chi and the logger both find it
func WithRequest(ctx context.Context, reqID string) context.Context {
	if reqID == "" {
		return ctx
	}
	// set chi RequestID so chimw.GetReqID can retrieve it
	ctx = context.WithValue(ctx, chimw.RequestIDKey, reqID)
	return logger.WithRequest(ctx, reqID, "")
}

// WithEngine records the detection engine serving the request
func WithEngine(ctx context.Context, name string) context.Context {
	if name == "" {
		return ctx
	}
	ctx = context.WithValue(ctx, keyEngine, name)
	return logger.WithRequest(ctx, "", name)
}

// RequestID returns the request id on the context if present
func RequestID(ctx context.Context) string {
	return chimw.GetReqID(ctx)
}

// Engine returns the engine name on the context if present
func Engine(ctx context.Context) string {
	if v, ok := ctx.Value(keyEngine).(string); ok {
		return v
	}
	return ""
}
