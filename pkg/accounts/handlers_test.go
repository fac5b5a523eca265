// Copyright 2026 Una Social Contributors
// SPDX-License-Identifier: AGPL-3.0

package accounts

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	httptypes "github.com/una-social/onboarding-service/internal/http/types"
	"github.com/una-social/onboarding-service/internal/types"
)

func newTestAPI(t *testing.T) (*API, *MockServiceInterface) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockService := NewMockServiceInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)
	mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any()).AnyTimes()

	return NewAPI(mockService, mockLogger), mockService
}

func doRequest(t *testing.T, api *API, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	mux := chi.NewMux()
	api.RegisterEndpoints(mux)

	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to encode request body: %v", err)
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(raw))
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	return rr
}

func TestAPI_VerifyEmail(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
		expectedKind   string
	}{
		{
			name: "success",
			body: map[string]string{"email": "mario.rossi@unibo.it"},
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().VerifyDomainEmail(gomock.Any(), "mario.rossi@unibo.it").
					Return(&VerificationResult{State: types.AccountNoCredential, Token: "abc123"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing email",
			body:           map[string]string{},
			setupMocks:     func(m *MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedKind:   "validation_error",
		},
		{
			name:           "malformed email",
			body:           map[string]string{"email": "not-an-email"},
			setupMocks:     func(m *MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedKind:   "validation_error",
		},
		{
			name: "domain rejected",
			body: map[string]string{"email": "mario.rossi@gmail.com"},
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().VerifyDomainEmail(gomock.Any(), "mario.rossi@gmail.com").
					Return(nil, fmt.Errorf("%w: outside allowed domains", types.ErrDomainNotAuthorized))
			},
			expectedStatus: http.StatusForbidden,
			expectedKind:   "domain_not_authorized",
		},
		{
			name: "already credentialed is reported as data",
			body: map[string]string{"email": "mario.rossi@unibo.it"},
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().VerifyDomainEmail(gomock.Any(), "mario.rossi@unibo.it").
					Return(&VerificationResult{State: types.AccountWithCredential}, nil)
			},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			api, mockService := newTestAPI(t)
			tc.setupMocks(mockService)

			rr := doRequest(t, api, http.MethodPost, "/api/v0/verify-email", tc.body)

			if rr.Code != tc.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tc.expectedStatus, rr.Code, rr.Body.String())
			}

			var resp httptypes.Response
			if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if tc.expectedKind != "" && resp.Kind != tc.expectedKind {
				t.Errorf("expected kind %q, got %q", tc.expectedKind, resp.Kind)
			}
		})
	}
}

func TestAPI_VerifyAffiliate(t *testing.T) {
	t.Run("registered affiliate", func(t *testing.T) {
		api, mockService := newTestAPI(t)
		mockService.EXPECT().VerifyAffiliateEmail(gomock.Any(), "anna.verdi@unibo.it").
			Return(&AffiliateVerificationResult{ExistsInRegistry: true, State: types.AccountNoCredential, Token: "abc123"}, nil)

		rr := doRequest(t, api, http.MethodPost, "/api/v0/affiliates/verify", map[string]string{"email": "anna.verdi@unibo.it"})

		if rr.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d: %s", rr.Code, rr.Body.String())
		}
	})

	t.Run("unknown affiliate is not an error", func(t *testing.T) {
		api, mockService := newTestAPI(t)
		mockService.EXPECT().VerifyAffiliateEmail(gomock.Any(), "nobody@unibo.it").
			Return(&AffiliateVerificationResult{ExistsInRegistry: false}, nil)

		rr := doRequest(t, api, http.MethodPost, "/api/v0/affiliates/verify", map[string]string{"email": "nobody@unibo.it"})

		if rr.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d: %s", rr.Code, rr.Body.String())
		}

		var resp struct {
			Data AffiliateVerificationResult `json:"data"`
		}
		if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if resp.Data.ExistsInRegistry {
			t.Error("expected the registry miss to be reported")
		}
	})
}

func TestAPI_SetPassword(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
		expectedKind   string
	}{
		{
			name: "success",
			body: map[string]string{"email": "mario.rossi@unibo.it", "password": "secret1"},
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().SetInitialCredential(gomock.Any(), "mario.rossi@unibo.it", "secret1").
					Return(&types.Session{Token: "session-token", SubjectID: "id-1"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "weak password",
			body: map[string]string{"email": "mario.rossi@unibo.it", "password": "short"},
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().SetInitialCredential(gomock.Any(), "mario.rossi@unibo.it", "short").
					Return(nil, types.ErrCredentialTooWeak)
			},
			expectedStatus: http.StatusBadRequest,
			expectedKind:   "credential_too_weak",
		},
		{
			name: "account not found",
			body: map[string]string{"email": "mario.rossi@unibo.it", "password": "secret1"},
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().SetInitialCredential(gomock.Any(), "mario.rossi@unibo.it", "secret1").
					Return(nil, types.ErrAccountNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedKind:   "account_not_found",
		},
		{
			name: "post update login failure",
			body: map[string]string{"email": "mario.rossi@unibo.it", "password": "secret1"},
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().SetInitialCredential(gomock.Any(), "mario.rossi@unibo.it", "secret1").
					Return(nil, types.ErrPostUpdateLoginFailed)
			},
			expectedStatus: http.StatusBadGateway,
			expectedKind:   "post_update_login_failed",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			api, mockService := newTestAPI(t)
			tc.setupMocks(mockService)

			rr := doRequest(t, api, http.MethodPost, "/api/v0/password", tc.body)

			if rr.Code != tc.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tc.expectedStatus, rr.Code, rr.Body.String())
			}

			var resp httptypes.Response
			if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if tc.expectedKind != "" && resp.Kind != tc.expectedKind {
				t.Errorf("expected kind %q, got %q", tc.expectedKind, resp.Kind)
			}
		})
	}
}

func TestAPI_Register(t *testing.T) {
	t.Run("defaults to auto confirm", func(t *testing.T) {
		api, mockService := newTestAPI(t)
		mockService.EXPECT().Register(gomock.Any(), "ext@example.com", "secret1", types.ConfirmModeAuto).
			Return(&RegisterResult{State: types.AccountWithCredential, Session: &types.Session{Token: "st"}}, nil)

		rr := doRequest(t, api, http.MethodPost, "/api/v0/register", map[string]string{
			"email":    "ext@example.com",
			"password": "secret1",
		})

		if rr.Code != http.StatusCreated {
			t.Fatalf("expected status 201, got %d: %s", rr.Code, rr.Body.String())
		}
	})

	t.Run("email confirm mode", func(t *testing.T) {
		api, mockService := newTestAPI(t)
		mockService.EXPECT().Register(gomock.Any(), "ext@example.com", "secret1", types.ConfirmModeEmail).
			Return(&RegisterResult{State: types.AccountNoCredential, EmailSent: true}, nil)

		rr := doRequest(t, api, http.MethodPost, "/api/v0/register", map[string]string{
			"email":        "ext@example.com",
			"password":     "secret1",
			"confirm_mode": "email",
		})

		if rr.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d: %s", rr.Code, rr.Body.String())
		}
	})

	t.Run("invalid confirm mode", func(t *testing.T) {
		api, _ := newTestAPI(t)

		rr := doRequest(t, api, http.MethodPost, "/api/v0/register", map[string]string{
			"email":        "ext@example.com",
			"password":     "secret1",
			"confirm_mode": "bogus",
		})

		if rr.Code != http.StatusBadRequest {
			t.Fatalf("expected status 400, got %d: %s", rr.Code, rr.Body.String())
		}
	})
}
