// Copyright (c) 2026 HypeHub. All rights reserved.
// Author: tai.buivan.jp@gmail.com

//go:build integration

package ratelimit

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	redisstore "github.com/hypehub/api/internal/platform/redis"
)

func startRedis(t *testing.T) *redis.Client {
	t.Helper()

	if os.Getenv("SKIP_DOCKER") == "1" {
		t.Skip("SKIP_DOCKER=1 set; skipping integration test")
	}
	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Skipf("docker not available: %v", err)
	}
	if err := pool.Client.Ping(); err != nil {
		t.Skipf("docker not available: %v", err)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{Repository: "redis", Tag: "7-alpine"},
		func(config *docker.HostConfig) {
			config.AutoRemove = true
			config.RestartPolicy = docker.RestartPolicy{Name: "no"}
		})
	require.NoError(t, err)
	t.Cleanup(func() { _ = pool.Purge(resource) })

	url := "redis://localhost:" + resource.GetPort("6379/tcp") + "/0"

	var client *redis.Client
	require.NoError(t, pool.Retry(func() error {
		client, err = redisstore.NewClient(context.Background(), url, slog.New(slog.DiscardHandler))
		return err
	}))
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestRedis_FixedWindow(t *testing.T) {
	limiter := NewRedis(startRedis(t), 2, time.Hour)
	ctx := context.Background()

	for range 2 {
		allowed, _, err := limiter.Allow(ctx, "10.0.0.1")
		require.NoError(t, err)
		assert.True(t, allowed)
	}

	allowed, retry, err := limiter.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.False(t, allowed)
	assert.Greater(t, retry, time.Duration(0))
	assert.LessOrEqual(t, retry, time.Hour)

	// Keys are independent.
	allowed, _, err = limiter.Allow(ctx, "10.0.0.2")
	require.NoError(t, err)
	assert.True(t, allowed)
}
