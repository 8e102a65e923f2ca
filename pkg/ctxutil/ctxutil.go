package ctxutil

import "context"

type ctxKey string

const (
	bridgeKey    ctxKey = "bridge"
	requestIDKey ctxKey = "request_id"
)

// WithBridge stores the authenticated chat bridge name in the context.
func WithBridge(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, bridgeKey, name)
}

// BridgeFromCtx extracts the chat bridge name. Returns "" if absent.
func BridgeFromCtx(ctx context.Context) string {
	name, _ := ctx.Value(bridgeKey).(string)
	return name
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
