// Copyright (c) 2026 HypeHub. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Once loaded, configuration is read-only and passed to components through
their constructors.
*/
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// # Configuration Schema

// Config holds all runtime configuration for the HypeHub API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Relational Database (PostgreSQL)
	DatabaseURL string `env:"DATABASE_URL,required,notEmpty"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// RedisURL enables the shared rate limiter. Empty means in-process limiting.
	RedisURL string `env:"REDIS_URL"`

	// Token signing
	JWTPrivKeyPath string `env:"JWT_PRIVATE_KEY_PATH,required,notEmpty"`
	JWTPubKeyPath  string `env:"JWT_PUBLIC_KEY_PATH,required,notEmpty"`
	JWTIssuer      string `env:"JWT_ISSUER" envDefault:"hypehub.app"`

	// Session lifetimes
	AccessTokenTTL           time.Duration `env:"ACCESS_TOKEN_TTL"            envDefault:"15m"`
	RefreshTokenValidityDays int           `env:"REFRESH_TOKEN_VALIDITY_DAYS" envDefault:"7"`

	// Rate limiting per client IP
	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS"   envDefault:"100"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" envDefault:"150"`

	// TrustProxyHeaders takes the client IP from X-Real-IP / X-Forwarded-For.
	// Enable only behind a proxy that overwrites those headers.
	TrustProxyHeaders bool `env:"TRUST_PROXY_HEADERS" envDefault:"false"`

	// Cross-Origin Resource Sharing
	AllowedOriginSuffix string `env:"ALLOWED_ORIGIN_SUFFIX" envDefault:".hypehub.app"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {
	cfg := &Config{}

	// Fails if any field marked 'required' is missing or 'notEmpty' is blank.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.AccessTokenTTL <= 0 {
		return fmt.Errorf("config: ACCESS_TOKEN_TTL must be positive, got %s", c.AccessTokenTTL)
	}
	if c.RefreshTokenValidityDays <= 0 {
		return fmt.Errorf("config: REFRESH_TOKEN_VALIDITY_DAYS must be positive, got %d", c.RefreshTokenValidityDays)
	}
	if c.RateLimitRPS <= 0 || c.RateLimitBurst <= 0 {
		return fmt.Errorf("config: rate limit values must be positive")
	}
	return nil
}

// RefreshTokenTTL is the refresh token lifetime as a duration.
func (c *Config) RefreshTokenTTL() time.Duration {
	return time.Duration(c.RefreshTokenValidityDays) * 24 * time.Hour
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
