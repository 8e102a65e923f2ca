package middleware

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/wordtrainer/internal/config"
)

// Middleware wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain composes mws so the first one runs outermost. Nil entries are
// skipped, which lets callers leave out optional stages inline.
func Chain(mws ...Middleware) Middleware {
	return func(final http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			if mws[i] != nil {
				final = mws[i](final)
			}
		}
		return final
	}
}

// Edge is the stack every request passes through, health endpoints included.
// RequestID runs first so a recovered panic is logged with the request ID
// and the 500 still carries the X-Request-Id header.
func Edge(logger *slog.Logger, cors config.CORSConfig) Middleware {
	return Chain(
		RequestID(),
		Recovery(logger),
		CORS(cors),
	)
}

// Bridge is the stack in front of the bridge API. Authentication comes
// before the limiter so rejected tokens never consume a bridge's budget.
// The limiter stage is left out when limiter is nil or perMinute is not
// positive.
func Bridge(validator tokenValidator, logger *slog.Logger, limiter *RateLimiter, perMinute int) Middleware {
	var limit Middleware
	if limiter != nil && perMinute > 0 {
		limit = limiter.Limit(perMinute, BridgeOrIP)
	}
	return Chain(
		Auth(validator),
		Logger(logger),
		limit,
	)
}
