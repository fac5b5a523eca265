// Copyright 2026 Una Social Contributors
// SPDX-License-Identifier: AGPL-3.0

package kratos

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"
)

type captureTransport struct {
	req *http.Request
}

func (t *captureTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	t.req = req
	return httptest.NewRecorder().Result(), nil
}

func TestServiceTokenTransport(t *testing.T) {
	capture := &captureTransport{}
	transport := newServiceTokenTransport("test-secret", capture)

	req, err := http.NewRequest(http.MethodGet, "http://kratos-admin/admin/identities", nil)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}

	if _, err := transport.RoundTrip(req); err != nil {
		t.Fatalf("round trip failed: %v", err)
	}

	auth := capture.req.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		t.Fatalf("expected a bearer token, got %q", auth)
	}

	token, err := jwt.Parse(strings.TrimPrefix(auth, "Bearer "), func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		t.Fatalf("token does not verify: %v", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatal("expected map claims")
	}
	if claims["role"] != "service_role" {
		t.Errorf("expected service_role, got %v", claims["role"])
	}
	if _, ok := claims["exp"]; !ok {
		t.Error("expected an expiry claim")
	}

	// The original request must not be mutated.
	if req.Header.Get("Authorization") != "" {
		t.Error("expected the original request to stay untouched")
	}
}
