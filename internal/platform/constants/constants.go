// Copyright (c) 2026 HypeHub. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package constants provides centralized, immutable values for the entire platform.

It defines default timeouts, rate limits, and cross-cutting keys that are shared
between different layers of the system.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "hypehub-api"
	AppVersion = "0.1.0-dev"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	DefaultReadTimeout = 5 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out writes of the response.
	DefaultWriteTimeout = 10 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle.
	GlobalRequestTimeout = 30 * time.Second

	// ShutdownTimeout is how long we wait for in-flight requests to complete during shutdown.
	ShutdownTimeout = 30 * time.Second

	// ReadinessTimeout bounds each dependency ping in /ready.
	ReadinessTimeout = 2 * time.Second

	// MaxRequestBodyBytes caps JSON request bodies (1 MiB).
	MaxRequestBodyBytes = 1 << 20
)

// # Rate Limiting

const (
	// RateLimitWindow is the fixed window used by the Redis limiter.
	RateLimitWindow = 1 * time.Second

	// RateLimitCleanupInterval is how often old IP entries are removed from memory.
	RateLimitCleanupInterval = 1 * time.Minute

	// RateLimitClientTTL is how long a client must be idle before its entry is deleted.
	RateLimitClientTTL = 3 * time.Minute
)

// # Authentication

const (
	// RefreshTokenBytes is the entropy of an opaque refresh token.
	RefreshTokenBytes = 32

	// HeaderAuthorization carries the bearer access token.
	HeaderAuthorization = "Authorization"

	// HeaderRequestID is echoed on every response.
	HeaderRequestID = "X-Request-ID"

	// HeaderRetryAfter accompanies 429 responses.
	HeaderRetryAfter = "Retry-After"

	HeaderOrigin = "Origin"
)

// # JSON Field Identifiers

const (
	FieldStatus  = "status"
	FieldApp     = "app"
	FieldVersion = "version"
	FieldChecks  = "checks"
)

// # Database Schemas

const (
	SchemaUsers   = "users"
	SchemaCatalog = "catalog"
)

// # Redis Prefixes

const (
	RedisPrefixRateLimit = "ratelimit:"
)
