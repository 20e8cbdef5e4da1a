// Copyright (c) 2026 HypeHub. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the HypeHub HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Run database migrations (idempotent).
//  4. Connect to PostgreSQL (pgxpool).
//  5. Connect to Redis when configured, and pick the rate limiter.
//  6. Wire services and HTTP handlers.
//  7. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hypehub/api/internal/api"
	"github.com/hypehub/api/internal/catalog/item"
	"github.com/hypehub/api/internal/catalog/outfit"
	"github.com/hypehub/api/internal/platform/config"
	"github.com/hypehub/api/internal/platform/constants"
	"github.com/hypehub/api/internal/platform/migration"
	pgstore "github.com/hypehub/api/internal/platform/postgres"
	"github.com/hypehub/api/internal/platform/ratelimit"
	redisstore "github.com/hypehub/api/internal/platform/redis"
	"github.com/hypehub/api/internal/platform/sec"
	"github.com/hypehub/api/internal/users/auth"
)

func main() {
	log := newLogger(slog.LevelInfo)
	if err := run(log); err != nil {
		log.Error("startup_failure", slog.Any("error", err))
		os.Exit(1)
	}
}

// run wires and serves the API until a shutdown signal arrives.
//
// Every failure is returned so deferred cleanups run before main exits.
func run(log *slog.Logger) error {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	log.Info("service_initializing", slog.String("version", constants.AppVersion))

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	if cfg.Debug {
		log = newLogger(slog.LevelDebug)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)

	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// Long-lived context for background workers such as the limiter sweep.
	appCtx, appCancel := context.WithCancel(context.Background())
	defer appCancel()

	// ── 3. Migrations ─────────────────────────────────────────────────────
	if err := migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	// ── 4. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	if err != nil {
		return fmt.Errorf("connect to postgres: %w", err)
	}
	defer func() {
		log.Info("closing_postgres_pool")
		pool.Close()
	}()

	health := api.HealthDependencies{
		Database: func(ctx context.Context) error { return pgstore.Ping(ctx, pool) },
	}

	// ── 5. Redis & Rate Limiting ──────────────────────────────────────────
	var limiter ratelimit.Limiter
	if cfg.RedisURL != "" {
		rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
		if err != nil {
			return fmt.Errorf("connect to redis: %w", err)
		}
		defer func() {
			log.Info("closing_redis_client")
			if cerr := rdb.Close(); cerr != nil {
				log.Error("redis_close_failed", slog.Any("error", cerr))
			}
		}()

		limiter = ratelimit.NewRedisFromRate(rdb, cfg.RateLimitRPS, cfg.RateLimitBurst)
		health.Cache = func(ctx context.Context) error { return redisstore.Ping(ctx, rdb) }
	} else {
		log.Warn("redis_not_configured", slog.String("rate_limiter", "memory"))
		limiter = ratelimit.NewMemory(appCtx, cfg.RateLimitRPS, cfg.RateLimitBurst)
	}

	// ── 6. Domain Wiring ──────────────────────────────────────────────────
	tokens, err := sec.NewTokenService(cfg.JWTPrivKeyPath, cfg.JWTPubKeyPath, cfg.JWTIssuer)
	if err != nil {
		return fmt.Errorf("initialize jwt service: %w", err)
	}

	authService := auth.NewService(auth.NewPostgresStore(pool), tokens, auth.Config{
		AccessTokenTTL:  cfg.AccessTokenTTL,
		RefreshTokenTTL: cfg.RefreshTokenTTL(),
	})
	itemService := item.NewService(item.NewPostgresRepository(pool))
	outfitService := outfit.NewService(outfit.NewPostgresRepository(pool))

	liveness, readiness := api.NewHealthHandlers(health, log)

	server := api.NewServer(cfg, log,
		api.Dependencies{Verifier: tokens, Limiter: limiter},
		api.Handlers{
			Liveness:  liveness,
			Readiness: readiness,
			Auth:      auth.NewHandler(authService),
			Item:      item.NewHandler(itemService),
			Outfit:    outfit.NewHandler(outfitService),
		},
	)

	// ── 7. Graceful Shutdown ──────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	defer signal.Stop(quit)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	var listenErr error
	select {
	case sig := <-quit:
		log.Info("shutdown_signal_received", slog.String("signal", sig.String()))
	case listenErr = <-serverErr:
		log.Error("server_listen_failed", slog.Any("error", listenErr))
	}

	log.Info("shutting_down_server", slog.Duration("timeout", constants.ShutdownTimeout))
	if err := server.Shutdown(constants.ShutdownTimeout); err != nil {
		return errors.Join(listenErr, fmt.Errorf("shutdown server: %w", err))
	}
	if listenErr != nil {
		return fmt.Errorf("serve http: %w", listenErr)
	}

	log.Info("server_stopped_cleanly")
	return nil
}

// newLogger builds the JSON logger and installs it as the default.
func newLogger(level slog.Level) *slog.Logger {
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})).
		With(slog.String(constants.FieldApp, constants.AppName))
	slog.SetDefault(log)
	return log
}
