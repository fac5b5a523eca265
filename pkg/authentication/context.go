// Copyright 2026 Una Social Contributors
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"

	"github.com/una-social/onboarding-service/internal/types"
)

// Define a private custom type to avoid collisions
type contextKey struct{}

var principalContextKey = contextKey{}

// WithPrincipal returns a new context carrying the authenticated caller.
func WithPrincipal(ctx context.Context, principal *types.Principal) context.Context {
	return context.WithValue(ctx, principalContextKey, principal)
}

// GetPrincipal retrieves the authenticated caller from the context.
// Returns nil and false if no principal is present.
func GetPrincipal(ctx context.Context) (*types.Principal, bool) {
	principal, ok := ctx.Value(principalContextKey).(*types.Principal)
	return principal, ok
}
