// Copyright 2026 Una Social Contributors
// SPDX-License-Identifier: AGPL-3.0

package colleagues

import (
	"context"

	"github.com/una-social/onboarding-service/internal/types"
)

// RegistryInterface is the slice of the storage layer backed by the
// university personnel registry.
type RegistryInterface interface {
	GetAffiliateByEmail(ctx context.Context, email string) (*types.Affiliate, error)
	ListColleagues(ctx context.Context, orgUnit, excludeEmail string) ([]*types.Affiliate, error)
}

// CacheInterface caches colleague lists per organizational unit.
type CacheInterface interface {
	GetColleagues(ctx context.Context, orgUnit string) ([]*types.Affiliate, error)
	SetColleagues(ctx context.Context, orgUnit string, colleagues []*types.Affiliate) error
}

// ServiceInterface defines the colleague lookup operations.
type ServiceInterface interface {
	ListColleagues(ctx context.Context, caller *types.Principal) ([]*types.Affiliate, error)
}
