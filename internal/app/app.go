// Package app wires the HTTP stack shared by the catalog and lending
// services.
package app

import (
	"context"
	"net/http"
	"time"

	"bookshelf/internal/config"
	"bookshelf/internal/httpx"

	"github.com/rs/zerolog"
)

// Routes registers a service's handlers on the mux.
type Routes interface {
	Register(mux *http.ServeMux)
}

// Handler builds the router with health checks and the middleware chain.
// The rate limiter's janitor stops when ctx is done.
func Handler(ctx context.Context, cfg *config.Config, log zerolog.Logger, errorKey string, routes Routes) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	routes.Register(mux)

	limiter := httpx.NewRateLimitMiddleware(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst, errorKey)

	return httpx.Chain(mux,
		httpx.RequestIDMiddleware,
		httpx.AccessLogMiddleware(log),
		httpx.RecoveryMiddleware(log, errorKey),
		httpx.SecurityHeadersMiddleware,
		httpx.CORSMiddleware(cfg.CORSAllowedOrigins),
		limiter.Middleware,
		httpx.RequestSizeLimitMiddleware(cfg.MaxBodyBytes),
	)
}

// Run serves routes on cfg.Addr until ctx is canceled.
func Run(ctx context.Context, cfg *config.Config, log zerolog.Logger, errorKey string, routes Routes) error {
	srv := httpx.NewServer(cfg.Addr, Handler(ctx, cfg, log, errorKey, routes))
	return httpx.Serve(ctx, log, srv, 10*time.Second)
}
