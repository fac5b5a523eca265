// Copyright 2026 Una Social Contributors
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"

	"github.com/coreos/go-oidc/v3/oidc"

	"github.com/una-social/onboarding-service/internal/types"
)

type ProviderInterface interface {
	// Verifier returns the token verifier associated with the specified OIDC issuer
	Verifier(*oidc.Config) *oidc.IDTokenVerifier
}

type TokenVerifierInterface interface {
	// VerifyToken verifies a raw bearer token and resolves the calling
	// principal. Returns an error when the token is invalid or unauthorized.
	VerifyToken(ctx context.Context, rawToken string) (*types.Principal, error)
}
