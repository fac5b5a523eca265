// Copyright 2026 Una Social Contributors
// SPDX-License-Identifier: AGPL-3.0

package cache

import (
	"context"

	"github.com/una-social/onboarding-service/internal/types"
)

// NoopCache misses on every read, for deployments without Redis.
type NoopCache struct{}

func NewNoopCache() *NoopCache {
	return &NoopCache{}
}

func (c *NoopCache) GetColleagues(ctx context.Context, orgUnit string) ([]*types.Affiliate, error) {
	return nil, ErrCacheMiss
}

func (c *NoopCache) SetColleagues(ctx context.Context, orgUnit string, colleagues []*types.Affiliate) error {
	return nil
}

func (c *NoopCache) Ping(ctx context.Context) error {
	return nil
}

func (c *NoopCache) Close() error {
	return nil
}
