// Copyright 2026 Una Social Contributors
// SPDX-License-Identifier: AGPL-3.0

package cache

import (
	"context"

	"github.com/una-social/onboarding-service/internal/types"
)

type CacheInterface interface {
	GetColleagues(ctx context.Context, orgUnit string) ([]*types.Affiliate, error)
	SetColleagues(ctx context.Context, orgUnit string, colleagues []*types.Affiliate) error
	Ping(ctx context.Context) error
	Close() error
}
