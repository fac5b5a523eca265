// Copyright 2026 Una Social Contributors
// SPDX-License-Identifier: AGPL-3.0

package invites

import (
	"context"

	"github.com/una-social/onboarding-service/internal/mail"
	"github.com/una-social/onboarding-service/internal/types"
)

// DirectoryInterface is the slice of the identity provider client used by
// the invite flows.
type DirectoryInterface interface {
	FindAccountByEmail(ctx context.Context, email string) (*types.Account, error)
	GenerateVerificationLink(ctx context.Context, email string) (string, error)
}

// LedgerInterface is the slice of the storage layer holding the invite
// ledger.
type LedgerInterface interface {
	CreateInvite(ctx context.Context, inviterID, invitedEmail, token string) (*types.Invitation, error)
	GetInviteByToken(ctx context.Context, token string) (*types.Invitation, error)
	ListInvitesByInviter(ctx context.Context, inviterID string) ([]*types.Invitation, error)
	UpdateInviteStatus(ctx context.Context, id, status string) error
}

// EmailServiceInterface sends invite notifications.
type EmailServiceInterface interface {
	Send(ctx context.Context, to string, template mail.TemplateType, data mail.TemplateData) error
}

// ServiceInterface defines the peer invitation operations.
type ServiceInterface interface {
	IssuePeerInvite(ctx context.Context, inviter *types.Principal, email string) (*InviteResult, error)
	ListMyInvites(ctx context.Context, inviterID string) ([]*types.Invitation, error)
	AcceptInvite(ctx context.Context, token string) (*types.Invitation, error)
}
