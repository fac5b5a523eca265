// Copyright 2026 Una Social Contributors
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	"github.com/una-social/onboarding-service/internal/types"
)

type StorageInterface interface {
	GetAffiliateByEmail(ctx context.Context, email string) (*types.Affiliate, error)
	ListColleagues(ctx context.Context, orgUnit, excludingEmail string) ([]*types.Affiliate, error)
	CreateInvite(ctx context.Context, inviterID, invitedEmail, token string) (*types.Invitation, error)
	GetInviteByToken(ctx context.Context, token string) (*types.Invitation, error)
	ListInvitesByInviter(ctx context.Context, inviterID string) ([]*types.Invitation, error)
	UpdateInviteStatus(ctx context.Context, id, status string) error
}
