// Copyright 2026 Una Social Contributors
// SPDX-License-Identifier: AGPL-3.0

package invites

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	httptypes "github.com/una-social/onboarding-service/internal/http/types"
	"github.com/una-social/onboarding-service/internal/types"
	"github.com/una-social/onboarding-service/pkg/authentication"
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

// asPrincipal simulates the authentication middleware.
func asPrincipal(principal *types.Principal) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if principal != nil {
				r = r.WithContext(authentication.WithPrincipal(r.Context(), principal))
			}
			next.ServeHTTP(w, r)
		})
	}
}

func TestAPI_CreateInvite(t *testing.T) {
	principal := &types.Principal{ID: "user-1", Email: "mario.rossi@unibo.it"}

	tests := []struct {
		name           string
		principal      *types.Principal
		body           interface{}
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name:      "success",
			principal: principal,
			body:      map[string]string{"email": "friend@example.com"},
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().IssuePeerInvite(gomock.Any(), principal, "friend@example.com").
					Return(&InviteResult{Invite: &types.Invitation{ID: "invite-1"}, EmailSent: true}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "unauthenticated",
			principal:      nil,
			body:           map[string]string{"email": "friend@example.com"},
			setupMocks:     func(m *MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing email",
			principal:      principal,
			body:           map[string]string{},
			setupMocks:     func(m *MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:      "already registered",
			principal: principal,
			body:      map[string]string{"email": "friend@example.com"},
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().IssuePeerInvite(gomock.Any(), principal, "friend@example.com").
					Return(nil, types.ErrAlreadyRegistered)
			},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			api, mockService := newTestAPI(t)
			tc.setupMocks(mockService)

			mux := chi.NewMux()
			mux.Use(asPrincipal(tc.principal))
			api.RegisterEndpoints(mux)

			raw, _ := json.Marshal(tc.body)
			req := httptest.NewRequest(http.MethodPost, "/api/v0/invites", bytes.NewReader(raw))
			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, req)

			if rr.Code != tc.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tc.expectedStatus, rr.Code, rr.Body.String())
			}
		})
	}
}

func TestAPI_ListInvites(t *testing.T) {
	principal := &types.Principal{ID: "user-1", Email: "mario.rossi@unibo.it"}

	api, mockService := newTestAPI(t)
	mockService.EXPECT().ListMyInvites(gomock.Any(), "user-1").
		Return([]*types.Invitation{{ID: "invite-1"}, {ID: "invite-2"}}, nil)

	mux := chi.NewMux()
	mux.Use(asPrincipal(principal))
	api.RegisterEndpoints(mux)

	req := httptest.NewRequest(http.MethodGet, "/api/v0/invites", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp httptypes.Response
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	list, ok := resp.Data.([]interface{})
	if !ok || len(list) != 2 {
		t.Fatalf("expected 2 invites, got %v", resp.Data)
	}
}

func TestAPI_AcceptInvite(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		api, mockService := newTestAPI(t)
		mockService.EXPECT().AcceptInvite(gomock.Any(), "tok-1").
			Return(&types.Invitation{ID: "invite-1", Status: types.InviteStatusAccepted}, nil)

		mux := chi.NewMux()
		api.RegisterPublicEndpoints(mux)

		raw, _ := json.Marshal(map[string]string{"token": "tok-1"})
		req := httptest.NewRequest(http.MethodPost, "/api/v0/invites/accept", bytes.NewReader(raw))
		rr := httptest.NewRecorder()
		mux.ServeHTTP(rr, req)

		if rr.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d: %s", rr.Code, rr.Body.String())
		}
	})

	t.Run("unknown token", func(t *testing.T) {
		api, mockService := newTestAPI(t)
		mockService.EXPECT().AcceptInvite(gomock.Any(), "bogus").
			Return(nil, types.ValidationErrorf("unknown invite token"))

		mux := chi.NewMux()
		api.RegisterPublicEndpoints(mux)

		raw, _ := json.Marshal(map[string]string{"token": "bogus"})
		req := httptest.NewRequest(http.MethodPost, "/api/v0/invites/accept", bytes.NewReader(raw))
		rr := httptest.NewRecorder()
		mux.ServeHTTP(rr, req)

		if rr.Code != http.StatusBadRequest {
			t.Fatalf("expected status 400, got %d: %s", rr.Code, rr.Body.String())
		}
	})
}
