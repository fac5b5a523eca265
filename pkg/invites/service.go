// Copyright 2026 Una Social Contributors
// SPDX-License-Identifier: AGPL-3.0

// Package invites implements peer invitations. Every issued invite is
// recorded in a local ledger before any email leaves the building, so a
// failed notification never loses the invite.
package invites

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/una-social/onboarding-service/internal/kratos"
	"github.com/una-social/onboarding-service/internal/logging"
	"github.com/una-social/onboarding-service/internal/mail"
	"github.com/una-social/onboarding-service/internal/monitoring"
	"github.com/una-social/onboarding-service/internal/storage"
	"github.com/una-social/onboarding-service/internal/tracing"
	"github.com/una-social/onboarding-service/internal/types"
)

// InviteResult reports an issued invite. EmailSent is false when the
// ledger write succeeded but the notification did not; the invite link is
// still valid and can be delivered out of band.
type InviteResult struct {
	Invite    *types.Invitation `json:"invite"`
	Link      string            `json:"link"`
	EmailSent bool              `json:"email_sent"`
}

type Service struct {
	directory     DirectoryInterface
	ledger        LedgerInterface
	mail          EmailServiceInterface
	inviteBaseURL string
	tokenLifetime time.Duration

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	directory DirectoryInterface,
	ledger LedgerInterface,
	mailService EmailServiceInterface,
	inviteBaseURL string,
	tokenLifetime time.Duration,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		directory:     directory,
		ledger:        ledger,
		mail:          mailService,
		inviteBaseURL: inviteBaseURL,
		tokenLifetime: tokenLifetime,
		tracer:        tracer,
		monitor:       monitor,
		logger:        logger,
	}
}

// IssuePeerInvite invites an external email on behalf of an authenticated
// member. Already-registered addresses are a conflict. The ledger row is
// written before the notification; a failed send is reported through
// EmailSent, never by rolling the invite back.
func (s *Service) IssuePeerInvite(ctx context.Context, inviter *types.Principal, email string) (*InviteResult, error) {
	ctx, span := s.tracer.Start(ctx, "invites.Service.IssuePeerInvite")
	defer span.End()

	email = strings.ToLower(strings.TrimSpace(email))

	account, err := s.directory.FindAccountByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if hasCredential(account) {
		return nil, fmt.Errorf("%w: %s already holds a credential", types.ErrAlreadyRegistered, email)
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

	invite, err := s.ledger.CreateInvite(ctx, inviter.ID, email, token)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			return nil, fmt.Errorf("%w: an invite for %s is already pending", types.ErrAlreadyRegistered, email)
		}
		return nil, err
	}

	deepLink := s.deepLink(token)

	result := &InviteResult{Invite: invite, Link: deepLink, EmailSent: true}

	err = s.mail.Send(ctx, email, mail.InviteTemplate, mail.TemplateData{
		InviterEmail: inviter.Email,
		ActionLink:   deepLink,
	})
	if err != nil {
		s.logger.Warnf("invite %s recorded but notification failed: %v", invite.ID, err)
		result.EmailSent = false
	}

	return result, nil
}

func (s *Service) ListMyInvites(ctx context.Context, inviterID string) ([]*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "invites.Service.ListMyInvites")
	defer span.End()

	return s.ledger.ListInvitesByInviter(ctx, inviterID)
}

// AcceptInvite redeems an invite token, moving the ledger row to accepted.
// A token past its lifetime is marked expired instead.
func (s *Service) AcceptInvite(ctx context.Context, token string) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "invites.Service.AcceptInvite")
	defer span.End()

	invite, err := s.ledger.GetInviteByToken(ctx, token)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, types.ValidationErrorf("unknown invite token")
		}
		return nil, err
	}

	if invite.Status != types.InviteStatusPending {
		return nil, types.ValidationErrorf("invite is %s", invite.Status)
	}

	if s.tokenLifetime > 0 && time.Since(invite.CreatedAt) > s.tokenLifetime {
		if err := s.ledger.UpdateInviteStatus(ctx, invite.ID, types.InviteStatusExpired); err != nil {
			s.logger.Errorf("failed to expire invite %s: %v", invite.ID, err)
		}
		return nil, types.ValidationErrorf("invite has expired")
	}

	if err := s.ledger.UpdateInviteStatus(ctx, invite.ID, types.InviteStatusAccepted); err != nil {
		return nil, err
	}

	invite.Status = types.InviteStatusAccepted

	return invite, nil
}

func (s *Service) deepLink(token string) string {
	return fmt.Sprintf("%s?token=%s", s.inviteBaseURL, url.QueryEscape(token))
}

func hasCredential(account *types.Account) bool {
	return account != nil && (account.LastAuthenticatedAt != nil || account.HasSetPasswordFlag())
}
