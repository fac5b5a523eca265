// Copyright 2026 Una Social Contributors
// SPDX-License-Identifier: AGPL-3.0

// Package accounts implements the onboarding flows: domain and registry
// verification, credential bootstrap and external registration. The
// identity provider owns the account entities; this package only
// orchestrates transitions between absent, present-without-credential and
// present-with-credential.
package accounts

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/una-social/onboarding-service/internal/kratos"
	"github.com/una-social/onboarding-service/internal/logging"
	"github.com/una-social/onboarding-service/internal/mail"
	"github.com/una-social/onboarding-service/internal/monitoring"
	"github.com/una-social/onboarding-service/internal/storage"
	"github.com/una-social/onboarding-service/internal/tracing"
	"github.com/una-social/onboarding-service/internal/types"
)

const minPasswordLength = 6

// VerificationResult carries the outcome of an email verification: the
// resolved account state and the single-use action token the caller needs
// to finish credential bootstrap.
type VerificationResult struct {
	State types.AccountState `json:"state"`
	Token string             `json:"token"`
}

// AffiliateVerificationResult reports the personnel registry check. State
// and Token are only meaningful when ExistsInRegistry is true.
type AffiliateVerificationResult struct {
	ExistsInRegistry bool               `json:"exists_in_registry"`
	State            types.AccountState `json:"state,omitempty"`
	Token            string             `json:"token,omitempty"`
}

// RegisterResult is the outcome of an external registration. Session is
// set in auto-confirm mode; EmailSent reports the confirmation email in
// email-confirm mode.
type RegisterResult struct {
	State     types.AccountState `json:"state"`
	Session   *types.Session     `json:"session,omitempty"`
	EmailSent bool               `json:"email_sent"`
}

type Service struct {
	directory      DirectoryInterface
	registry       RegistryInterface
	mail           EmailServiceInterface
	allowedDomains []string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	directory DirectoryInterface,
	registry RegistryInterface,
	mailService EmailServiceInterface,
	allowedDomains []string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		directory:      directory,
		registry:       registry,
		mail:           mailService,
		allowedDomains: allowedDomains,
		tracer:         tracer,
		monitor:        monitor,
		logger:         logger,
	}
}

// VerifyDomainEmail runs the self-service verification flow: the email
// must belong to an allow-listed university domain. An absent account is
// provisioned confirmed and uncredentialed; an account that already holds
// a credential is reported through State with no token, so the caller
// routes to the standard login.
func (s *Service) VerifyDomainEmail(ctx context.Context, email string) (*VerificationResult, error) {
	ctx, span := s.tracer.Start(ctx, "accounts.Service.VerifyDomainEmail")
	defer span.End()

	// The domain gate is an exact suffix match on the input as typed;
	// only the local part survives lowercasing afterwards.
	email = strings.TrimSpace(email)
	if err := s.checkDomain(email); err != nil {
		return nil, err
	}
	email = strings.ToLower(email)

	attrs := map[string]string{
		types.AttrDomain:   domainOf(email),
		types.AttrUserType: types.UserTypeUniversity,
	}

	return s.verify(ctx, email, attrs)
}

// VerifyAffiliateEmail runs the registry-backed verification flow. An
// email that is not an affiliate's primary address short-circuits with
// ExistsInRegistry false and no provider call; the caller decides how to
// route from there.
func (s *Service) VerifyAffiliateEmail(ctx context.Context, email string) (*AffiliateVerificationResult, error) {
	ctx, span := s.tracer.Start(ctx, "accounts.Service.VerifyAffiliateEmail")
	defer span.End()

	email = normalizeEmail(email)

	affiliate, err := s.registry.GetAffiliateByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return &AffiliateVerificationResult{ExistsInRegistry: false}, nil
		}
		return nil, err
	}

	attrs := map[string]string{
		types.AttrDomain:   domainOf(email),
		types.AttrUserType: types.UserTypeUniversity,
		"org_unit":         affiliate.OrgUnit,
	}

	result, err := s.verify(ctx, email, attrs)
	if err != nil {
		return nil, err
	}

	return &AffiliateVerificationResult{
		ExistsInRegistry: true,
		State:            result.State,
		Token:            result.Token,
	}, nil
}

func (s *Service) verify(ctx context.Context, email string, attrs map[string]string) (*VerificationResult, error) {
	account, err := s.directory.FindAccountByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	state := s.resolveState(account, false)
	if state == types.AccountWithCredential {
		// Not an error: the caller routes to the standard login.
		return &VerificationResult{State: state}, nil
	}

	if account == nil {
		account, err = s.directory.CreateAccount(ctx, kratos.CreateAccountParams{
			Email:      email,
			Attributes: attrs,
			Confirmed:  true,
		})
		if err != nil {
			return nil, err
		}
		state = s.resolveState(account, true)
	}

	link, err := s.directory.GenerateVerificationLink(ctx, email)
	if err != nil {
		return nil, err
	}

	token, err := kratos.ExtractActionToken(link)
	if err != nil {
		s.logger.Security().ProviderContractViolation("generate_verification_link", err.Error())
		return nil, err
	}

	return &VerificationResult{State: state, Token: token}, nil
}

// SetInitialCredential finishes bootstrap: it sets the password together
// with the has_set_password flag in one provider call, then logs in to
// mint the first session. Weak passwords fail before any provider call.
func (s *Service) SetInitialCredential(ctx context.Context, email, password string) (*types.Session, error) {
	ctx, span := s.tracer.Start(ctx, "accounts.Service.SetInitialCredential")
	defer span.End()

	if len(password) < minPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", types.ErrCredentialTooWeak, minPasswordLength)
	}

	email = normalizeEmail(email)

	account, err := s.directory.FindAccountByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, fmt.Errorf("%w: %s must verify before setting a credential", types.ErrAccountNotFound, email)
	}

	if s.resolveState(account, false) == types.AccountWithCredential {
		return nil, fmt.Errorf("%w: %s already holds a credential", types.ErrAlreadyRegistered, email)
	}

	if err := s.directory.UpdateAccountCredential(ctx, account, password); err != nil {
		return nil, err
	}

	session, err := s.directory.Authenticate(ctx, email, password)
	if err != nil {
		// The credential landed; only the session mint failed. The caller
		// can recover through the standard login.
		return nil, fmt.Errorf("%w: %v", types.ErrPostUpdateLoginFailed, err)
	}

	s.logger.Security().AuthnSuccess(session.SubjectID)

	return session, nil
}

// Register provisions an external (non-university) account. In auto mode
// the account is created confirmed with its credential and a session is
// minted immediately; in email mode a confirmation email is sent instead.
func (s *Service) Register(ctx context.Context, email, password string, mode types.ConfirmMode) (*RegisterResult, error) {
	ctx, span := s.tracer.Start(ctx, "accounts.Service.Register")
	defer span.End()

	if len(password) < minPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", types.ErrCredentialTooWeak, minPasswordLength)
	}

	email = normalizeEmail(email)

	account, err := s.directory.FindAccountByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	switch s.resolveState(account, false) {
	case types.AccountWithCredential:
		return nil, fmt.Errorf("%w: %s already holds a credential", types.ErrAlreadyRegistered, email)
	case types.AccountNoCredential:
		// Typically an invited account finishing up through the
		// registration form instead of the invite deep link.
		if err := s.directory.UpdateAccountCredential(ctx, account, password); err != nil {
			return nil, err
		}
	default:
		params := kratos.CreateAccountParams{
			Email:      email,
			Attributes: map[string]string{types.AttrUserType: types.UserTypeInvitedExternal, types.AttrHasSetPassword: "true"},
			Confirmed:  mode == types.ConfirmModeAuto,
			Password:   password,
		}
		if _, err := s.directory.CreateAccount(ctx, params); err != nil {
			return nil, err
		}
	}

	if mode == types.ConfirmModeEmail {
		link, err := s.directory.GenerateVerificationLink(ctx, email)
		if err != nil {
			return nil, err
		}
		if err := s.mail.Send(ctx, email, mail.SignupTemplate, mail.TemplateData{ActionLink: link}); err != nil {
			return nil, err
		}
		return &RegisterResult{State: types.AccountNoCredential, EmailSent: true}, nil
	}

	session, err := s.directory.Authenticate(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrPostUpdateLoginFailed, err)
	}

	s.logger.Security().AuthnSuccess(session.SubjectID)

	return &RegisterResult{State: types.AccountWithCredential, Session: session}, nil
}

// resolveState classifies an account using ordered heuristics. The
// provider exposes no credential boolean, so the classification leans on
// creation recency, session history and the explicit flag, in that order.
func (s *Service) resolveState(account *types.Account, createdNow bool) types.AccountState {
	if account == nil {
		return types.AccountAbsent
	}
	if createdNow {
		return types.AccountNoCredential
	}
	if account.LastAuthenticatedAt != nil {
		return types.AccountWithCredential
	}
	if account.HasSetPasswordFlag() {
		return types.AccountWithCredential
	}
	return types.AccountNoCredential
}

func (s *Service) checkDomain(email string) error {
	if !strings.Contains(email, "@") {
		return types.ValidationErrorf("%q is not an email address", email)
	}
	for _, domain := range s.allowedDomains {
		if strings.HasSuffix(email, domain) {
			return nil
		}
	}
	return fmt.Errorf("%w: %s is outside the allowed domains", types.ErrDomainNotAuthorized, email)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func domainOf(email string) string {
	if i := strings.LastIndex(email, "@"); i >= 0 {
		return email[i+1:]
	}
	return ""
}
