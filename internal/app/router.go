package app

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/wordtrainer/internal/config"
	"github.com/heartmarshall/wordtrainer/internal/transport/middleware"
	"github.com/heartmarshall/wordtrainer/internal/transport/rest"
)

type tokenValidator interface {
	ValidateToken(token string) (string, error)
}

// NewRouter builds the HTTP handler: health endpoints without auth and the
// bridge API behind a bridge token. The returned func stops background
// work started for the router.
func NewRouter(
	cfg *config.Config,
	logger *slog.Logger,
	svc *Services,
	store *Store,
	tokens tokenValidator,
) (http.Handler, func()) {
	limiter := middleware.NewRateLimiter(5 * time.Minute)

	bridge := rest.NewBridgeHandler(svc.Chat, svc.Quiz, logger)
	health := rest.NewHealthHandler(store, svc.Quiz, BuildVersion(), logger)

	api := middleware.Bridge(tokens, logger, limiter, cfg.Chat.RequestsPerMinute())

	mux := http.NewServeMux()
	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)
	mux.Handle("POST /api/v1/updates", api(http.HandlerFunc(bridge.Update)))
	mux.Handle("GET /api/v1/users/{userID}/ratings", api(http.HandlerFunc(bridge.Rating)))

	handler := middleware.Edge(logger, cfg.CORS)(mux)

	return handler, limiter.Stop
}
