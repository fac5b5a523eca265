// Copyright 2026 Una Social Contributors
// SPDX-License-Identifier: AGPL-3.0

package accounts

import (
	"context"

	"github.com/una-social/onboarding-service/internal/kratos"
	"github.com/una-social/onboarding-service/internal/mail"
	"github.com/una-social/onboarding-service/internal/types"
)

// DirectoryInterface is the slice of the identity provider client used by
// the accounts flows.
type DirectoryInterface interface {
	FindAccountByEmail(ctx context.Context, email string) (*types.Account, error)
	CreateAccount(ctx context.Context, params kratos.CreateAccountParams) (*types.Account, error)
	UpdateAccountCredential(ctx context.Context, account *types.Account, password string) error
	GenerateVerificationLink(ctx context.Context, email string) (string, error)
	Authenticate(ctx context.Context, email, password string) (*types.Session, error)
}

// RegistryInterface is the slice of the storage layer backed by the
// university personnel registry.
type RegistryInterface interface {
	GetAffiliateByEmail(ctx context.Context, email string) (*types.Affiliate, error)
}

// EmailServiceInterface sends onboarding notifications.
type EmailServiceInterface interface {
	Send(ctx context.Context, to string, template mail.TemplateType, data mail.TemplateData) error
}

// ServiceInterface defines the account onboarding operations.
type ServiceInterface interface {
	VerifyDomainEmail(ctx context.Context, email string) (*VerificationResult, error)
	VerifyAffiliateEmail(ctx context.Context, email string) (*AffiliateVerificationResult, error)
	SetInitialCredential(ctx context.Context, email, password string) (*types.Session, error)
	Register(ctx context.Context, email, password string, mode types.ConfirmMode) (*RegisterResult, error)
}
