// Copyright 2026 Una Social Contributors
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/una-social/onboarding-service/internal/types"
)

func TestStatusForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", types.ValidationErrorf("bad input"), http.StatusBadRequest},
		{"weak credential", types.ErrCredentialTooWeak, http.StatusBadRequest},
		{"domain", types.ErrDomainNotAuthorized, http.StatusForbidden},
		{"not found", types.ErrAccountNotFound, http.StatusNotFound},
		{"conflict", fmt.Errorf("%w: taken", types.ErrAlreadyRegistered), http.StatusConflict},
		{"provider", types.ErrProviderUnavailable, http.StatusBadGateway},
		{"token extraction", types.ErrTokenExtraction, http.StatusBadGateway},
		{"unknown", fmt.Errorf("boom"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := StatusForError(tc.err); got != tc.want {
				t.Errorf("expected %d, got %d", tc.want, got)
			}
		})
	}
}

func TestWriteError(t *testing.T) {
	rr := httptest.NewRecorder()
	WriteError(rr, fmt.Errorf("%w: gmail.com is not allowed", types.ErrDomainNotAuthorized))

	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected status 403, got %d", rr.Code)
	}

	var resp Response
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Kind != "domain_not_authorized" {
		t.Errorf("expected kind domain_not_authorized, got %q", resp.Kind)
	}
	if resp.Status != http.StatusForbidden {
		t.Errorf("expected status field 403, got %d", resp.Status)
	}
}
