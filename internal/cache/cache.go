// Copyright 2026 Una Social Contributors
// SPDX-License-Identifier: AGPL-3.0

// Package cache is the Redis read-through cache for colleague lookups.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/una-social/onboarding-service/internal/logging"
	"github.com/una-social/onboarding-service/internal/monitoring"
	"github.com/una-social/onboarding-service/internal/tracing"
	"github.com/una-social/onboarding-service/internal/types"
)

const colleaguesKeyPrefix = "colleagues:"

// ErrCacheMiss reports an absent key; callers fall back to the registry.
var ErrCacheMiss = errors.New("cache miss")

type Cache struct {
	client *redis.Client
	ttl    time.Duration

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewCache(ctx context.Context, redisURL string, ttl time.Duration, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*Cache, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}

	opt.PoolSize = 10
	opt.MinIdleConns = 2
	opt.PoolTimeout = 4 * time.Second
	opt.ConnMaxIdleTime = 5 * time.Minute

	client := redis.NewClient(opt)

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return &Cache{
		client:  client,
		ttl:     ttl,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}, nil
}

// GetColleagues returns the cached colleague list for an organizational
// unit, or ErrCacheMiss.
func (c *Cache) GetColleagues(ctx context.Context, orgUnit string) ([]*types.Affiliate, error) {
	ctx, span := c.tracer.Start(ctx, "cache.Cache.GetColleagues")
	defer span.End()

	raw, err := c.client.Get(ctx, colleaguesKeyPrefix+orgUnit).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var colleagues []*types.Affiliate
	if err := json.Unmarshal(raw, &colleagues); err != nil {
		// A stale encoding is treated as a miss, not an error.
		c.logger.Debugf("dropping undecodable cache entry for %q: %v", orgUnit, err)
		return nil, ErrCacheMiss
	}

	return colleagues, nil
}

func (c *Cache) SetColleagues(ctx context.Context, orgUnit string, colleagues []*types.Affiliate) error {
	ctx, span := c.tracer.Start(ctx, "cache.Cache.SetColleagues")
	defer span.End()

	raw, err := json.Marshal(colleagues)
	if err != nil {
		return fmt.Errorf("failed to encode colleague list: %w", err)
	}

	if err := c.client.Set(ctx, colleaguesKeyPrefix+orgUnit, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}

	return nil
}

func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *Cache) Close() error {
	return c.client.Close()
}
