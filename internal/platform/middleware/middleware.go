// Copyright (c) 2026 HypeHub. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package middleware provides the cross-cutting HTTP processing chain.

It acts as a series of decorators around the standard http.Handler, injecting
traceability, safety, and security into every request lifecycle.

Standard Stack:

  - Trace: RequestID generation for log correlation.
  - Log: Structured activity logging (slog).
  - Guard: Rate limiting and CORS validation.
  - Safe: Panic recovery to prevent server crashes.
*/
package middleware

import (
	"fmt"
	"log/slog"
	"math"
	"net"
	"net/http"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hypehub/api/internal/platform/apperr"
	"github.com/hypehub/api/internal/platform/constants"
	"github.com/hypehub/api/internal/platform/ctxutil"
	"github.com/hypehub/api/internal/platform/ratelimit"
	"github.com/hypehub/api/internal/platform/respond"
)

// # Request Tracing

// RequestID attaches a correlation ID to every request for log tracing.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {

			// 1. Check if the client already provided an ID
			requestID := request.Header.Get(constants.HeaderRequestID)

			// 2. Generate a time-sortable one if missing
			if requestID == "" {
				if id, err := uuid.NewV7(); err == nil {
					requestID = id.String()
				} else {
					requestID = uuid.New().String()
				}
			}

			// 3. Inject into context and response headers
			ctx := ctxutil.WithRequestID(request.Context(), requestID)
			writer.Header().Set(constants.HeaderRequestID, requestID)

			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// # Activity Logging

// StructuredLogger logs every request status and latency.
// It also injects a request-specific logger into the context and wraps the
// writer in a [respond.Recorder] so errors are rendered at most once.
func StructuredLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {

			startTime := time.Now()
			requestLogger := logger.With(
				slog.String("request_id", ctxutil.GetRequestID(request.Context())),
				slog.String("method", request.Method),
				slog.String("path", request.URL.Path),
				slog.String("ip", RealIP(request)),
			)

			ctx := ctxutil.WithLogger(request.Context(), requestLogger)
			recorder := respond.Track(writer)
			request = request.WithContext(ctx)

			next.ServeHTTP(recorder, request)

			logLevel := slog.LevelInfo
			if recorder.Status() >= 500 {
				logLevel = slog.LevelError
			} else if recorder.Status() >= 400 {
				logLevel = slog.LevelWarn
			}

			attrs := []any{
				slog.Int("status", recorder.Status()),
				slog.Int64("latency_ms", time.Since(startTime).Milliseconds()),
				slog.String("user_agent", request.UserAgent()),
			}

			requestLogger.Log(ctx, logLevel, "http_request_finished", attrs...)
		})
	}
}

// # Rate Limiting

// RateLimit rejects clients that exceed the limiter's budget with 429.
// Clients are keyed by [RealIP].
//
// Limiter backend failures are logged and the request is let through.
func RateLimit(limiter ratelimit.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			allowed, retryAfter, err := limiter.Allow(request.Context(), RealIP(request))
			if err != nil {
				ctxutil.GetLogger(request.Context()).WarnContext(request.Context(), "rate_limit_unavailable",
					slog.Any("error", err),
				)
				next.ServeHTTP(writer, request)
				return
			}

			if !allowed {
				seconds := int(math.Ceil(retryAfter.Seconds()))
				if seconds < 1 {
					seconds = 1
				}
				writer.Header().Set(constants.HeaderRetryAfter, strconv.Itoa(seconds))
				respond.Error(writer, request, apperr.TooManyRequests(seconds))
				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}

// # Reliability & Safety

// PanicRecovery recovers from panics, logs the stack trace, and renders an
// opaque 500 through [respond.Error].
func PanicRecovery() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			defer func() {
				recovered := recover()
				if recovered == nil {
					return
				}
				if recovered == http.ErrAbortHandler {
					panic(recovered)
				}

				stackTrace := make([]byte, 4096)
				length := runtime.Stack(stackTrace, false)

				ctxutil.GetLogger(request.Context()).ErrorContext(request.Context(), "panic_recovered",
					slog.Any("error", recovered),
					slog.String("stack", string(stackTrace[:length])),
				)

				respond.Error(writer, request, apperr.Internal(fmt.Errorf("panic: %v", recovered)))
			}()

			next.ServeHTTP(writer, request)
		})
	}
}

// # Cross-Origin Resource Sharing

// AppConfig defines the behavior needed by the CORS middleware.
type AppConfig interface {
	IsDevelopment() bool
}

// CORS handles Cross-Origin Resource Sharing based on application environment.
// Outside development only origins ending in allowedSuffix are accepted.
func CORS(cfg AppConfig, allowedSuffix string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {

			origin := request.Header.Get(constants.HeaderOrigin)
			if origin == "" {
				next.ServeHTTP(writer, request)
				return
			}

			isAllowed := cfg.IsDevelopment() || (allowedSuffix != "" && strings.HasSuffix(origin, allowedSuffix))

			if isAllowed {
				header := writer.Header()
				header.Set("Access-Control-Allow-Origin", origin)
				header.Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
				header.Set("Access-Control-Allow-Headers", "Accept, Content-Type, Content-Length, Authorization, X-Request-ID")
				header.Set("Access-Control-Expose-Headers", "Content-Length, X-Request-ID, Retry-After")
				header.Set("Access-Control-Allow-Credentials", "true")
				header.Set("Access-Control-Max-Age", "300")
				header.Add("Vary", "Origin")
			}

			// Pre-flight
			if request.Method == http.MethodOptions {
				writer.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}

// # Middleware Helpers

// RealIP returns the host part of the peer address.
//
// Client-supplied forwarding headers are ignored here. Behind a trusted proxy
// the router installs chi's RealIP first, which rewrites RemoteAddr.
func RealIP(request *http.Request) string {
	host, _, err := net.SplitHostPort(request.RemoteAddr)
	if err != nil {
		return request.RemoteAddr
	}
	return host
}
