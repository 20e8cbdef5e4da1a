// Copyright (c) 2026 HypeHub. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package ratelimit decides whether a client may issue another request.

Two backends are provided:

  - Memory: a token bucket per key using golang.org/x/time/rate. Good for a
    single instance.
  - Redis: a fixed-window counter shared by every API instance.
*/
package ratelimit

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"

	"github.com/hypehub/api/internal/platform/constants"
)

// Limiter reports whether a request identified by key is allowed.
//
// When the request is rejected, retryAfter is the suggested wait.
type Limiter interface {
	Allow(ctx context.Context, key string) (allowed bool, retryAfter time.Duration, err error)
}

// # In-memory Token Bucket

type memoryClient struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Memory is a per-key token bucket limiter held in process memory.
type Memory struct {
	mu      sync.Mutex
	clients map[string]*memoryClient
	rps     rate.Limit
	burst   int
	now     func() time.Time
}

// NewMemory builds a [Memory] limiter and starts a cleanup goroutine that
// exits when ctx is cancelled.
func NewMemory(ctx context.Context, rps float64, burst int) *Memory {
	limiter := &Memory{
		clients: make(map[string]*memoryClient),
		rps:     rate.Limit(rps),
		burst:   burst,
		now:     time.Now,
	}

	go func() {
		ticker := time.NewTicker(constants.RateLimitCleanupInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				limiter.sweep(constants.RateLimitClientTTL)
			case <-ctx.Done():
				return
			}
		}
	}()

	return limiter
}

// Allow consumes one token for key.
func (m *Memory) Allow(_ context.Context, key string) (bool, time.Duration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	client, found := m.clients[key]
	if !found {
		client = &memoryClient{limiter: rate.NewLimiter(m.rps, m.burst)}
		m.clients[key] = client
	}
	client.lastSeen = now

	reservation := client.limiter.ReserveN(now, 1)
	if !reservation.OK() {
		return false, time.Second, nil
	}
	if delay := reservation.DelayFrom(now); delay > 0 {
		reservation.CancelAt(now)
		return false, delay, nil
	}
	return true, 0, nil
}

// sweep drops clients idle for longer than ttl.
func (m *Memory) sweep(ttl time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	for key, client := range m.clients {
		if now.Sub(client.lastSeen) > ttl {
			delete(m.clients, key)
		}
	}
}

// Len returns the number of tracked keys.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.clients)
}

// # Redis Fixed Window

// Redis counts requests per key in fixed windows stored in Redis.
type Redis struct {
	client *redis.Client
	limit  int64
	window time.Duration
}

// NewRedis builds a [Redis] limiter allowing limit requests per window.
func NewRedis(client *redis.Client, limit int, window time.Duration) *Redis {
	return &Redis{client: client, limit: int64(limit), window: window}
}

// NewRedisFromRate converts a requests-per-second budget plus burst into a
// one second window limit.
func NewRedisFromRate(client *redis.Client, rps float64, burst int) *Redis {
	limit := int(math.Max(math.Ceil(rps), float64(burst)))
	return NewRedis(client, limit, constants.RateLimitWindow)
}

// Allow increments the counter of the current window for key.
func (r *Redis) Allow(ctx context.Context, key string) (bool, time.Duration, error) {
	bucket := time.Now().UnixNano() / int64(r.window)
	redisKey := fmt.Sprintf("%s%s:%d", constants.RedisPrefixRateLimit, key, bucket)

	pipe := r.client.TxPipeline()
	incr := pipe.Incr(ctx, redisKey)
	pipe.Expire(ctx, redisKey, r.window)
	ttl := pipe.PTTL(ctx, redisKey)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, 0, fmt.Errorf("ratelimit: redis pipeline: %w", err)
	}

	if incr.Val() > r.limit {
		retry := ttl.Val()
		if retry <= 0 {
			retry = r.window
		}
		return false, retry, nil
	}
	return true, 0, nil
}
