package contextkeys

import "context"

// contextKey is an unexported type to prevent collisions with context keys defined in
// other packages.
type contextKey string

// String makes contextKey satisfy the Stringer interface to assist with debugging.
func (c contextKey) String() string {
	return "league-backend context key " + string(c)
}

// RequestIDKey is the key for the per-request correlation ID in context.Context
const RequestIDKey = contextKey("requestID")

// WithRequestID returns a child context carrying the given request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

// RequestIDFromContext retrieves the request ID from the context.
// The second return value reports whether a request ID was present.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	val := ctx.Value(RequestIDKey)
	if val == nil {
		return "", false
	}
	requestID, ok := val.(string)
	if !ok {
		return "", false
	}
	return requestID, true
}
