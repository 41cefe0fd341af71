package httpx

import (
	"context"
	"net/http"

	"bookcatalog/internal/logger"
)

// RequestIDFrom retrieves the request id set by RequestIDMiddleware.
func RequestIDFrom(r *http.Request) string {
	return logger.RequestIDFrom(r.Context())
}

// ContextWithRequestID returns a new context carrying the request id.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return logger.ContextWithRequestID(ctx, id)
}
