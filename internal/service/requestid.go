// ABOUTME: Request id carried in the context of every gRPC call
// ABOUTME: The gateway interceptor sets it; handlers attach it to their log lines

package service

import "context"

// requestIDKey is the context key for the request id
type requestIDKey struct{}

// WithRequestID returns a new context carrying the given request id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromContext returns the request id, or "" if none is set.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
