// Copyright 2026 Una Social Contributors
// SPDX-License-Identifier: AGPL-3.0

package accounts

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/una-social/onboarding-service/internal/kratos"
	"github.com/una-social/onboarding-service/internal/mail"
	"github.com/una-social/onboarding-service/internal/storage"
	"github.com/una-social/onboarding-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package accounts -destination ./mock_accounts.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package accounts -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package accounts -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package accounts -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

var allowedDomains = []string{"@unibo.it", "@studio.unibo.it"}

type serviceMocks struct {
	directory *MockDirectoryInterface
	registry  *MockRegistryInterface
	mail      *MockEmailServiceInterface
	security  *MockSecurityLoggerInterface
}

func newTestService(t *testing.T, spanName string) (*Service, serviceMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mocks := serviceMocks{
		directory: NewMockDirectoryInterface(ctrl),
		registry:  NewMockRegistryInterface(ctrl),
		mail:      NewMockEmailServiceInterface(ctrl),
		security:  NewMockSecurityLoggerInterface(ctrl),
	}

	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)

	ctx := context.Background()
	mockTracer.EXPECT().Start(gomock.Any(), spanName).Return(ctx, trace.SpanFromContext(ctx))
	mockLogger.EXPECT().Security().Return(mocks.security).AnyTimes()
	mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any()).AnyTimes()

	s := NewService(mocks.directory, mocks.registry, mocks.mail, allowedDomains, mockTracer, mockMonitor, mockLogger)

	return s, mocks
}

func TestService_VerifyDomainEmail(t *testing.T) {
	lastWeek := time.Now().Add(-7 * 24 * time.Hour)
	verificationLink := "https://auth.example.com/verify#access_token=abc123&type=magiclink"

	tests := []struct {
		name        string
		email       string
		setupMocks  func(serviceMocks)
		wantState   types.AccountState
		wantToken   string
		expectedErr error
	}{
		{
			name:        "domain not allowed",
			email:       "mario.rossi@gmail.com",
			setupMocks:  func(m serviceMocks) {},
			expectedErr: types.ErrDomainNotAuthorized,
		},
		{
			name:  "absent account is provisioned",
			email: "mario.rossi@unibo.it",
			setupMocks: func(m serviceMocks) {
				m.directory.EXPECT().FindAccountByEmail(gomock.Any(), "mario.rossi@unibo.it").Return(nil, nil)
				m.directory.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, params kratos.CreateAccountParams) (*types.Account, error) {
						if !params.Confirmed {
							t.Error("expected a confirmed account")
						}
						if params.Password != "" {
							t.Error("expected an uncredentialed account")
						}
						if params.Attributes[types.AttrUserType] != types.UserTypeUniversity {
							t.Errorf("unexpected user type %q", params.Attributes[types.AttrUserType])
						}
						return &types.Account{ID: "id-1", Email: params.Email}, nil
					})
				m.directory.EXPECT().GenerateVerificationLink(gomock.Any(), "mario.rossi@unibo.it").Return(verificationLink, nil)
			},
			wantState: types.AccountNoCredential,
			wantToken: "abc123",
		},
		{
			name:  "present without credential is not recreated",
			email: "mario.rossi@studio.unibo.it",
			setupMocks: func(m serviceMocks) {
				m.directory.EXPECT().FindAccountByEmail(gomock.Any(), "mario.rossi@studio.unibo.it").
					Return(&types.Account{ID: "id-1", Email: "mario.rossi@studio.unibo.it"}, nil)
				m.directory.EXPECT().GenerateVerificationLink(gomock.Any(), "mario.rossi@studio.unibo.it").Return(verificationLink, nil)
			},
			wantState: types.AccountNoCredential,
			wantToken: "abc123",
		},
		{
			name:  "credentialed by session history reports the state without a token",
			email: "mario.rossi@unibo.it",
			setupMocks: func(m serviceMocks) {
				m.directory.EXPECT().FindAccountByEmail(gomock.Any(), "mario.rossi@unibo.it").
					Return(&types.Account{ID: "id-1", LastAuthenticatedAt: &lastWeek}, nil)
			},
			wantState: types.AccountWithCredential,
			wantToken: "",
		},
		{
			name:  "credentialed by password flag reports the state without a token",
			email: "mario.rossi@unibo.it",
			setupMocks: func(m serviceMocks) {
				m.directory.EXPECT().FindAccountByEmail(gomock.Any(), "mario.rossi@unibo.it").
					Return(&types.Account{ID: "id-1", Attributes: map[string]string{types.AttrHasSetPassword: "true"}}, nil)
			},
			wantState: types.AccountWithCredential,
			wantToken: "",
		},
		{
			name:  "link without token",
			email: "mario.rossi@unibo.it",
			setupMocks: func(m serviceMocks) {
				m.directory.EXPECT().FindAccountByEmail(gomock.Any(), "mario.rossi@unibo.it").
					Return(&types.Account{ID: "id-1"}, nil)
				m.directory.EXPECT().GenerateVerificationLink(gomock.Any(), "mario.rossi@unibo.it").
					Return("https://auth.example.com/verify?type=magiclink", nil)
				m.security.EXPECT().ProviderContractViolation("generate_verification_link", gomock.Any())
			},
			expectedErr: types.ErrTokenExtraction,
		},
		{
			name:  "uppercase local part is normalized",
			email: "Mario.Rossi@unibo.it",
			setupMocks: func(m serviceMocks) {
				m.directory.EXPECT().FindAccountByEmail(gomock.Any(), "mario.rossi@unibo.it").
					Return(&types.Account{ID: "id-1"}, nil)
				m.directory.EXPECT().GenerateVerificationLink(gomock.Any(), "mario.rossi@unibo.it").Return(verificationLink, nil)
			},
			wantState: types.AccountNoCredential,
			wantToken: "abc123",
		},
		{
			name:        "uppercase domain fails the suffix match",
			email:       "mario.rossi@UNIBO.IT",
			setupMocks:  func(m serviceMocks) {},
			expectedErr: types.ErrDomainNotAuthorized,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, mocks := newTestService(t, "accounts.Service.VerifyDomainEmail")
			tc.setupMocks(mocks)

			result, err := s.VerifyDomainEmail(context.Background(), tc.email)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.State != tc.wantState {
				t.Errorf("expected state %q, got %q", tc.wantState, result.State)
			}
			if result.Token != tc.wantToken {
				t.Errorf("expected token %q, got %q", tc.wantToken, result.Token)
			}
		})
	}
}

func TestService_VerifyAffiliateEmail(t *testing.T) {
	verificationLink := "https://auth.example.com/verify?token=abc123"

	t.Run("unknown affiliate short-circuits without a provider call", func(t *testing.T) {
		s, mocks := newTestService(t, "accounts.Service.VerifyAffiliateEmail")
		mocks.registry.EXPECT().GetAffiliateByEmail(gomock.Any(), "nobody@unibo.it").Return(nil, storage.ErrNotFound)

		result, err := s.VerifyAffiliateEmail(context.Background(), "nobody@unibo.it")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.ExistsInRegistry {
			t.Error("expected the registry miss to be reported")
		}
		if result.Token != "" {
			t.Errorf("expected no token, got %q", result.Token)
		}
	})

	t.Run("affiliate gets org unit attribute", func(t *testing.T) {
		s, mocks := newTestService(t, "accounts.Service.VerifyAffiliateEmail")
		mocks.registry.EXPECT().GetAffiliateByEmail(gomock.Any(), "anna.verdi@unibo.it").
			Return(&types.Affiliate{PrimaryEmail: "anna.verdi@unibo.it", OrgUnit: "DISI"}, nil)
		mocks.directory.EXPECT().FindAccountByEmail(gomock.Any(), "anna.verdi@unibo.it").Return(nil, nil)
		mocks.directory.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, params kratos.CreateAccountParams) (*types.Account, error) {
				if params.Attributes["org_unit"] != "DISI" {
					t.Errorf("expected org unit attribute, got %v", params.Attributes)
				}
				return &types.Account{ID: "id-2", Email: params.Email}, nil
			})
		mocks.directory.EXPECT().GenerateVerificationLink(gomock.Any(), "anna.verdi@unibo.it").Return(verificationLink, nil)

		result, err := s.VerifyAffiliateEmail(context.Background(), "anna.verdi@unibo.it")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.ExistsInRegistry {
			t.Error("expected the affiliate to be reported as registered")
		}
		if result.State != types.AccountNoCredential {
			t.Errorf("expected state %q, got %q", types.AccountNoCredential, result.State)
		}
		if result.Token != "abc123" {
			t.Errorf("expected token abc123, got %q", result.Token)
		}
	})

	t.Run("registry failure is passed through", func(t *testing.T) {
		s, mocks := newTestService(t, "accounts.Service.VerifyAffiliateEmail")
		dbErr := errors.New("db down")
		mocks.registry.EXPECT().GetAffiliateByEmail(gomock.Any(), "anna.verdi@unibo.it").Return(nil, dbErr)

		_, err := s.VerifyAffiliateEmail(context.Background(), "anna.verdi@unibo.it")
		if !errors.Is(err, dbErr) {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestService_SetInitialCredential(t *testing.T) {
	account := &types.Account{ID: "id-1", Email: "mario.rossi@unibo.it"}
	session := &types.Session{Token: "session-token", SubjectID: "id-1", Email: "mario.rossi@unibo.it"}
	lastWeek := time.Now().Add(-7 * 24 * time.Hour)

	tests := []struct {
		name        string
		password    string
		setupMocks  func(serviceMocks)
		expectedErr error
	}{
		{
			name:        "weak password fails before any provider call",
			password:    "short",
			setupMocks:  func(m serviceMocks) {},
			expectedErr: types.ErrCredentialTooWeak,
		},
		{
			name:     "absent account",
			password: "secret1",
			setupMocks: func(m serviceMocks) {
				m.directory.EXPECT().FindAccountByEmail(gomock.Any(), "mario.rossi@unibo.it").Return(nil, nil)
			},
			expectedErr: types.ErrAccountNotFound,
		},
		{
			name:     "credential already set",
			password: "secret1",
			setupMocks: func(m serviceMocks) {
				m.directory.EXPECT().FindAccountByEmail(gomock.Any(), "mario.rossi@unibo.it").
					Return(&types.Account{ID: "id-1", LastAuthenticatedAt: &lastWeek}, nil)
			},
			expectedErr: types.ErrAlreadyRegistered,
		},
		{
			name:     "update failure",
			password: "secret1",
			setupMocks: func(m serviceMocks) {
				m.directory.EXPECT().FindAccountByEmail(gomock.Any(), "mario.rossi@unibo.it").Return(account, nil)
				m.directory.EXPECT().UpdateAccountCredential(gomock.Any(), account, "secret1").
					Return(fmt.Errorf("%w: boom", types.ErrCredentialUpdateFailed))
			},
			expectedErr: types.ErrCredentialUpdateFailed,
		},
		{
			name:     "login failure after update",
			password: "secret1",
			setupMocks: func(m serviceMocks) {
				m.directory.EXPECT().FindAccountByEmail(gomock.Any(), "mario.rossi@unibo.it").Return(account, nil)
				m.directory.EXPECT().UpdateAccountCredential(gomock.Any(), account, "secret1").Return(nil)
				m.directory.EXPECT().Authenticate(gomock.Any(), "mario.rossi@unibo.it", "secret1").Return(nil, errors.New("login failed"))
			},
			expectedErr: types.ErrPostUpdateLoginFailed,
		},
		{
			name:     "success mints a session",
			password: "secret1",
			setupMocks: func(m serviceMocks) {
				m.directory.EXPECT().FindAccountByEmail(gomock.Any(), "mario.rossi@unibo.it").Return(account, nil)
				m.directory.EXPECT().UpdateAccountCredential(gomock.Any(), account, "secret1").Return(nil)
				m.directory.EXPECT().Authenticate(gomock.Any(), "mario.rossi@unibo.it", "secret1").Return(session, nil)
				m.security.EXPECT().AuthnSuccess("id-1")
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, mocks := newTestService(t, "accounts.Service.SetInitialCredential")
			tc.setupMocks(mocks)

			got, err := s.SetInitialCredential(context.Background(), "mario.rossi@unibo.it", tc.password)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Token != session.Token {
				t.Errorf("expected session token %q, got %q", session.Token, got.Token)
			}
		})
	}
}

func TestService_Register(t *testing.T) {
	session := &types.Session{Token: "session-token", SubjectID: "id-3"}

	t.Run("auto confirm creates a credentialed account and logs in", func(t *testing.T) {
		s, mocks := newTestService(t, "accounts.Service.Register")
		mocks.directory.EXPECT().FindAccountByEmail(gomock.Any(), "ext@example.com").Return(nil, nil)
		mocks.directory.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, params kratos.CreateAccountParams) (*types.Account, error) {
				if !params.Confirmed {
					t.Error("expected a confirmed account in auto mode")
				}
				if params.Password != "secret1" {
					t.Error("expected the credential at creation")
				}
				if params.Attributes[types.AttrUserType] != types.UserTypeInvitedExternal {
					t.Errorf("unexpected user type %q", params.Attributes[types.AttrUserType])
				}
				return &types.Account{ID: "id-3", Email: params.Email}, nil
			})
		mocks.directory.EXPECT().Authenticate(gomock.Any(), "ext@example.com", "secret1").Return(session, nil)
		mocks.security.EXPECT().AuthnSuccess("id-3")

		result, err := s.Register(context.Background(), "ext@example.com", "secret1", types.ConfirmModeAuto)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Session == nil || result.Session.Token != "session-token" {
			t.Fatalf("expected a session, got %+v", result)
		}
	})

	t.Run("email confirm sends a signup email instead", func(t *testing.T) {
		s, mocks := newTestService(t, "accounts.Service.Register")
		mocks.directory.EXPECT().FindAccountByEmail(gomock.Any(), "ext@example.com").Return(nil, nil)
		mocks.directory.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).Return(&types.Account{ID: "id-3"}, nil)
		mocks.directory.EXPECT().GenerateVerificationLink(gomock.Any(), "ext@example.com").Return("https://auth.example.com/confirm?token=t1", nil)
		mocks.mail.EXPECT().Send(gomock.Any(), "ext@example.com", mail.SignupTemplate, gomock.Any()).Return(nil)

		result, err := s.Register(context.Background(), "ext@example.com", "secret1", types.ConfirmModeEmail)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.EmailSent {
			t.Error("expected the confirmation email to be reported")
		}
		if result.Session != nil {
			t.Error("expected no session in email mode")
		}
	})

	t.Run("invited account finishes through registration", func(t *testing.T) {
		s, mocks := newTestService(t, "accounts.Service.Register")
		invited := &types.Account{ID: "id-4", Email: "ext@example.com"}
		mocks.directory.EXPECT().FindAccountByEmail(gomock.Any(), "ext@example.com").Return(invited, nil)
		mocks.directory.EXPECT().UpdateAccountCredential(gomock.Any(), invited, "secret1").Return(nil)
		mocks.directory.EXPECT().Authenticate(gomock.Any(), "ext@example.com", "secret1").Return(session, nil)
		mocks.security.EXPECT().AuthnSuccess("id-3")

		result, err := s.Register(context.Background(), "ext@example.com", "secret1", types.ConfirmModeAuto)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Session == nil {
			t.Fatal("expected a session")
		}
	})

	t.Run("already registered", func(t *testing.T) {
		s, mocks := newTestService(t, "accounts.Service.Register")
		mocks.directory.EXPECT().FindAccountByEmail(gomock.Any(), "ext@example.com").
			Return(&types.Account{ID: "id-3", Attributes: map[string]string{types.AttrHasSetPassword: "true"}}, nil)

		_, err := s.Register(context.Background(), "ext@example.com", "secret1", types.ConfirmModeAuto)
		if !errors.Is(err, types.ErrAlreadyRegistered) {
			t.Fatalf("expected conflict, got %v", err)
		}
	})
}

func TestService_ResolveState(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name       string
		account    *types.Account
		createdNow bool
		want       types.AccountState
	}{
		{
			name: "nil account is absent",
			want: types.AccountAbsent,
		},
		{
			name:       "created now wins over the flag",
			account:    &types.Account{Attributes: map[string]string{types.AttrHasSetPassword: "true"}},
			createdNow: true,
			want:       types.AccountNoCredential,
		},
		{
			name:    "session history wins",
			account: &types.Account{LastAuthenticatedAt: &now},
			want:    types.AccountWithCredential,
		},
		{
			name:    "flag without session history",
			account: &types.Account{Attributes: map[string]string{types.AttrHasSetPassword: "true"}},
			want:    types.AccountWithCredential,
		},
		{
			name:    "no signal means no credential",
			account: &types.Account{},
			want:    types.AccountNoCredential,
		},
	}

	s := &Service{}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := s.resolveState(tc.account, tc.createdNow); got != tc.want {
				t.Errorf("expected %q, got %q", tc.want, got)
			}
		})
	}
}
