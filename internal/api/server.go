// Copyright (c) 2026 HypeHub. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the composition root for the HTTP transport (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/hypehub/api/internal/catalog/item"
	"github.com/hypehub/api/internal/catalog/outfit"
	"github.com/hypehub/api/internal/platform/apperr"
	"github.com/hypehub/api/internal/platform/config"
	"github.com/hypehub/api/internal/platform/constants"
	"github.com/hypehub/api/internal/platform/metrics"
	"github.com/hypehub/api/internal/platform/middleware"
	"github.com/hypehub/api/internal/platform/ratelimit"
	"github.com/hypehub/api/internal/platform/respond"
	"github.com/hypehub/api/internal/users/auth"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
type Handlers struct {
	// Liveness is the /health handler.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler.
	Readiness http.HandlerFunc

	// Auth handles the session routes.
	Auth *auth.Handler

	// Item handles the clothing catalog.
	Item *item.Handler

	// Outfit handles outfits and their pictures.
	Outfit *outfit.Handler
}

// Dependencies are the cross-cutting collaborators of the middleware chain.
type Dependencies struct {
	Verifier middleware.TokenVerifier
	Limiter  ratelimit.Limiter
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(cfg *config.Config, log *slog.Logger, deps Dependencies, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Every error response below the recovery layer is rendered by respond.Error.
	if cfg.TrustProxyHeaders {
		// Rewrites RemoteAddr from the proxy headers before anything keys on it.
		r.Use(chimw.RealIP)
	}
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(metrics.Instrument)
	r.Use(middleware.PanicRecovery())
	r.Use(middleware.CORS(cfg, cfg.AllowedOriginSuffix))
	r.Use(middleware.RateLimit(deps.Limiter))
	r.Use(middleware.Authenticate(deps.Verifier))
	r.Use(chimw.CleanPath)

	r.NotFound(func(writer http.ResponseWriter, request *http.Request) {
		respond.Error(writer, request, apperr.NotFound("Resource not found."))
	})
	r.MethodNotAllowed(func(writer http.ResponseWriter, request *http.Request) {
		respond.Error(writer, request, apperr.BadRequest("Method not allowed."))
	})

	// # Infrastructure Endpoints
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)
	r.Handle("/metrics", metrics.Handler())

	// # Application API
	r.Route("/api/v1", func(api chi.Router) {
		api.Mount("/auth", h.Auth.Routes())
		api.Mount("/items", h.Item.Routes())
		api.Mount("/outfits", h.Outfit.Routes())
	})

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler { return s.router }

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server_starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}
