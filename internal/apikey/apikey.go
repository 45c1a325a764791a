// Package apikey propagates the caller's AgentPay API key through the
// request context.
//
// The key is bound by the authorization middleware for the duration of a
// single inbound request and read back by the metered tool handlers. Because
// the binding lives on the request's own context, concurrent requests never
// observe each other's keys, and the binding is released when the request
// context is discarded.
package apikey

import "context"

// contextKey is the context key for the API key binding.
type contextKey struct{}

// WithAPIKey returns a context carrying the given API key. An empty key is
// treated as absent and the parent context is returned unchanged.
func WithAPIKey(ctx context.Context, key string) context.Context {
	if key == "" {
		return ctx
	}
	return context.WithValue(ctx, contextKey{}, key)
}

// FromContext retrieves the API key bound to the context. The second return
// value reports whether a key is present.
func FromContext(ctx context.Context) (string, bool) {
	key, ok := ctx.Value(contextKey{}).(string)
	if !ok || key == "" {
		return "", false
	}
	return key, true
}
