// Copyright 2026 Una Social Contributors
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"errors"
	"fmt"
)

// Error kinds form the total failure taxonomy of the onboarding flows.
// Every error crossing a package boundary wraps exactly one of these
// sentinels so the gateway can translate it into a stable response kind.
var (
	// ErrValidation marks missing or malformed caller input.
	ErrValidation = errors.New("validation error")
	// ErrDomainNotAuthorized rejects emails outside the allow-listed domains.
	ErrDomainNotAuthorized = errors.New("email domain not authorized")
	// ErrAlreadyRegistered is a conflict, not a failure: the caller should
	// be redirected to the standard login.
	ErrAlreadyRegistered = errors.New("account already registered")
	// ErrAccountNotFound signals a sequencing violation: verification must
	// complete before a credential can be set.
	ErrAccountNotFound = errors.New("account not found")
	ErrCredentialTooWeak = errors.New("credential too weak")
	// ErrProviderUnavailable marks transient identity provider failures.
	ErrProviderUnavailable = errors.New("identity provider unavailable")
	// ErrTokenExtraction marks a provider contract change: the generated
	// link carried no recognizable token in fragment or query.
	ErrTokenExtraction = errors.New("unable to extract token from verification link")
	// ErrNotificationFailed reports a failed email send after the primary
	// state change already landed; the operation is not rolled back.
	ErrNotificationFailed = errors.New("notification delivery failed")
	ErrCredentialUpdateFailed = errors.New("credential update failed")
	// ErrPostUpdateLoginFailed means the credential is set but the
	// follow-up login did not produce a session.
	ErrPostUpdateLoginFailed = errors.New("login failed after credential update")
)

// Kind returns the stable machine-readable kind for a taxonomy error, or
// "internal" when the error does not wrap a known sentinel.
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrValidation):
		return "validation_error"
	case errors.Is(err, ErrDomainNotAuthorized):
		return "domain_not_authorized"
	case errors.Is(err, ErrAlreadyRegistered):
		return "already_registered"
	case errors.Is(err, ErrAccountNotFound):
		return "account_not_found"
	case errors.Is(err, ErrCredentialTooWeak):
		return "credential_too_weak"
	case errors.Is(err, ErrProviderUnavailable):
		return "provider_unavailable"
	case errors.Is(err, ErrTokenExtraction):
		return "token_extraction_failed"
	case errors.Is(err, ErrNotificationFailed):
		return "notification_failed"
	case errors.Is(err, ErrCredentialUpdateFailed):
		return "credential_update_failed"
	case errors.Is(err, ErrPostUpdateLoginFailed):
		return "post_update_login_failed"
	default:
		return "internal"
	}
}

// ValidationErrorf wraps ErrValidation with a caller-facing message.
func ValidationErrorf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
