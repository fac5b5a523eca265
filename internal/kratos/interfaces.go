// Copyright 2026 Una Social Contributors
// SPDX-License-Identifier: AGPL-3.0

package kratos

import (
	"context"

	"github.com/una-social/onboarding-service/internal/types"
)

type ClientInterface interface {
	FindAccountByEmail(ctx context.Context, email string) (*types.Account, error)
	CreateAccount(ctx context.Context, params CreateAccountParams) (*types.Account, error)
	UpdateAccountCredential(ctx context.Context, account *types.Account, password string) error
	GenerateVerificationLink(ctx context.Context, email string) (string, error)
	Authenticate(ctx context.Context, email, password string) (*types.Session, error)
	GetCaller(ctx context.Context, sessionToken string) (*types.Principal, error)
}
