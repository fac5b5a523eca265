// Copyright 2026 Una Social Contributors
// SPDX-License-Identifier: AGPL-3.0

package invites

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/una-social/onboarding-service/internal/mail"
	"github.com/una-social/onboarding-service/internal/storage"
	"github.com/una-social/onboarding-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package invites -destination ./mock_invites.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package invites -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package invites -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package invites -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

const inviteBaseURL = "https://una-social.example.com/invite"

type serviceMocks struct {
	directory *MockDirectoryInterface
	ledger    *MockLedgerInterface
	mail      *MockEmailServiceInterface
	logger    *MockLoggerInterface
	security  *MockSecurityLoggerInterface
}

func newTestService(t *testing.T, spanName string) (*Service, serviceMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mocks := serviceMocks{
		directory: NewMockDirectoryInterface(ctrl),
		ledger:    NewMockLedgerInterface(ctrl),
		mail:      NewMockEmailServiceInterface(ctrl),
		logger:    NewMockLoggerInterface(ctrl),
		security:  NewMockSecurityLoggerInterface(ctrl),
	}

	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)

	ctx := context.Background()
	mockTracer.EXPECT().Start(gomock.Any(), spanName).Return(ctx, trace.SpanFromContext(ctx))
	mocks.logger.EXPECT().Security().Return(mocks.security).AnyTimes()

	s := NewService(mocks.directory, mocks.ledger, mocks.mail, inviteBaseURL, 24*time.Hour, mockTracer, mockMonitor, mocks.logger)

	return s, mocks
}

func TestService_IssuePeerInvite(t *testing.T) {
	inviter := &types.Principal{ID: "user-1", Email: "mario.rossi@unibo.it"}
	link := "https://auth.example.com/verify#access_token=tok-1"

	t.Run("ledger row before notification", func(t *testing.T) {
		s, mocks := newTestService(t, "invites.Service.IssuePeerInvite")

		mocks.directory.EXPECT().FindAccountByEmail(gomock.Any(), "friend@example.com").Return(nil, nil)
		mocks.directory.EXPECT().GenerateVerificationLink(gomock.Any(), "friend@example.com").Return(link, nil)

		ledgerWritten := false
		mocks.ledger.EXPECT().CreateInvite(gomock.Any(), "user-1", "friend@example.com", "tok-1").DoAndReturn(
			func(_ context.Context, inviterID, invitedEmail, token string) (*types.Invitation, error) {
				ledgerWritten = true
				return &types.Invitation{
					ID:           "invite-1",
					InviterID:    inviterID,
					InvitedEmail: invitedEmail,
					Token:        token,
					Status:       types.InviteStatusPending,
				}, nil
			})
		mocks.mail.EXPECT().Send(gomock.Any(), "friend@example.com", mail.InviteTemplate, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, _ mail.TemplateType, data mail.TemplateData) error {
				if !ledgerWritten {
					t.Error("notification sent before the ledger write")
				}
				if data.InviterEmail != "mario.rossi@unibo.it" {
					t.Errorf("expected inviter email in template, got %q", data.InviterEmail)
				}
				return nil
			})

		result, err := s.IssuePeerInvite(context.Background(), inviter, "friend@example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.EmailSent {
			t.Error("expected EmailSent")
		}
		if result.Link != inviteBaseURL+"?token=tok-1" {
			t.Errorf("unexpected deep link %q", result.Link)
		}
	})

	t.Run("failed notification keeps the invite", func(t *testing.T) {
		s, mocks := newTestService(t, "invites.Service.IssuePeerInvite")

		mocks.directory.EXPECT().FindAccountByEmail(gomock.Any(), "friend@example.com").Return(nil, nil)
		mocks.directory.EXPECT().GenerateVerificationLink(gomock.Any(), "friend@example.com").Return(link, nil)
		mocks.ledger.EXPECT().CreateInvite(gomock.Any(), "user-1", "friend@example.com", "tok-1").
			Return(&types.Invitation{ID: "invite-1", Status: types.InviteStatusPending}, nil)
		mocks.mail.EXPECT().Send(gomock.Any(), "friend@example.com", mail.InviteTemplate, gomock.Any()).
			Return(errors.New("smtp down"))
		mocks.logger.EXPECT().Warnf(gomock.Any(), gomock.Any(), gomock.Any())

		result, err := s.IssuePeerInvite(context.Background(), inviter, "friend@example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.EmailSent {
			t.Error("expected EmailSent to be false")
		}
		if result.Invite.ID != "invite-1" {
			t.Error("expected the ledger row in the result")
		}
	})

	t.Run("already registered invitee", func(t *testing.T) {
		s, mocks := newTestService(t, "invites.Service.IssuePeerInvite")

		mocks.directory.EXPECT().FindAccountByEmail(gomock.Any(), "friend@example.com").
			Return(&types.Account{ID: "id-9", Attributes: map[string]string{types.AttrHasSetPassword: "true"}}, nil)

		_, err := s.IssuePeerInvite(context.Background(), inviter, "friend@example.com")
		if !errors.Is(err, types.ErrAlreadyRegistered) {
			t.Fatalf("expected conflict, got %v", err)
		}
	})

	t.Run("duplicate pending invite", func(t *testing.T) {
		s, mocks := newTestService(t, "invites.Service.IssuePeerInvite")

		mocks.directory.EXPECT().FindAccountByEmail(gomock.Any(), "friend@example.com").Return(nil, nil)
		mocks.directory.EXPECT().GenerateVerificationLink(gomock.Any(), "friend@example.com").Return(link, nil)
		mocks.ledger.EXPECT().CreateInvite(gomock.Any(), "user-1", "friend@example.com", "tok-1").Return(nil, storage.ErrDuplicateKey)

		_, err := s.IssuePeerInvite(context.Background(), inviter, "friend@example.com")
		if !errors.Is(err, types.ErrAlreadyRegistered) {
			t.Fatalf("expected conflict, got %v", err)
		}
	})

	t.Run("link without token", func(t *testing.T) {
		s, mocks := newTestService(t, "invites.Service.IssuePeerInvite")

		mocks.directory.EXPECT().FindAccountByEmail(gomock.Any(), "friend@example.com").Return(nil, nil)
		mocks.directory.EXPECT().GenerateVerificationLink(gomock.Any(), "friend@example.com").
			Return("https://auth.example.com/verify", nil)
		mocks.security.EXPECT().ProviderContractViolation("generate_verification_link", gomock.Any())

		_, err := s.IssuePeerInvite(context.Background(), inviter, "friend@example.com")
		if !errors.Is(err, types.ErrTokenExtraction) {
			t.Fatalf("expected token extraction error, got %v", err)
		}
	})
}

func TestService_ListMyInvites(t *testing.T) {
	s, mocks := newTestService(t, "invites.Service.ListMyInvites")

	expected := []*types.Invitation{
		{ID: "invite-1", InvitedEmail: "a@example.com"},
		{ID: "invite-2", InvitedEmail: "b@example.com"},
	}
	mocks.ledger.EXPECT().ListInvitesByInviter(gomock.Any(), "user-1").Return(expected, nil)

	invites, err := s.ListMyInvites(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(invites) != 2 {
		t.Fatalf("expected 2 invites, got %d", len(invites))
	}
}

func TestService_AcceptInvite(t *testing.T) {
	t.Run("pending invite is accepted", func(t *testing.T) {
		s, mocks := newTestService(t, "invites.Service.AcceptInvite")

		mocks.ledger.EXPECT().GetInviteByToken(gomock.Any(), "tok-1").Return(&types.Invitation{
			ID:        "invite-1",
			Token:     "tok-1",
			Status:    types.InviteStatusPending,
			CreatedAt: time.Now().Add(-time.Hour),
		}, nil)
		mocks.ledger.EXPECT().UpdateInviteStatus(gomock.Any(), "invite-1", types.InviteStatusAccepted).Return(nil)

		invite, err := s.AcceptInvite(context.Background(), "tok-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if invite.Status != types.InviteStatusAccepted {
			t.Errorf("expected accepted, got %q", invite.Status)
		}
	})

	t.Run("unknown token", func(t *testing.T) {
		s, mocks := newTestService(t, "invites.Service.AcceptInvite")

		mocks.ledger.EXPECT().GetInviteByToken(gomock.Any(), "bogus").Return(nil, storage.ErrNotFound)

		_, err := s.AcceptInvite(context.Background(), "bogus")
		if !errors.Is(err, types.ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("stale invite is expired", func(t *testing.T) {
		s, mocks := newTestService(t, "invites.Service.AcceptInvite")

		mocks.ledger.EXPECT().GetInviteByToken(gomock.Any(), "tok-1").Return(&types.Invitation{
			ID:        "invite-1",
			Status:    types.InviteStatusPending,
			CreatedAt: time.Now().Add(-48 * time.Hour),
		}, nil)
		mocks.ledger.EXPECT().UpdateInviteStatus(gomock.Any(), "invite-1", types.InviteStatusExpired).Return(nil)

		_, err := s.AcceptInvite(context.Background(), "tok-1")
		if !errors.Is(err, types.ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("already accepted", func(t *testing.T) {
		s, mocks := newTestService(t, "invites.Service.AcceptInvite")

		mocks.ledger.EXPECT().GetInviteByToken(gomock.Any(), "tok-1").Return(&types.Invitation{
			ID:     "invite-1",
			Status: types.InviteStatusAccepted,
		}, nil)

		_, err := s.AcceptInvite(context.Background(), "tok-1")
		if !errors.Is(err, types.ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})
}
