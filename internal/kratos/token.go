// Copyright 2026 Una Social Contributors
// SPDX-License-Identifier: AGPL-3.0

package kratos

import (
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const serviceTokenLifetime = time.Hour

// serviceTokenTransport signs a short-lived HS256 service-role token and
// attaches it to every outgoing admin API request. Tokens are minted per
// request so a long-lived process never sends an expired one.
type serviceTokenTransport struct {
	secret []byte
	next   http.RoundTripper
}

func newServiceTokenTransport(secret string, next http.RoundTripper) *serviceTokenTransport {
	return &serviceTokenTransport{
		secret: []byte(secret),
		next:   next,
	}
}

func (t *serviceTokenTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	token, err := t.mint()
	if err != nil {
		return nil, fmt.Errorf("failed to sign service token: %w", err)
	}

	req = req.Clone(req.Context())
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))

	return t.next.RoundTrip(req)
}

func (t *serviceTokenTransport) mint() (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"role": "service_role",
		"iat":  now.Unix(),
		"exp":  now.Add(serviceTokenLifetime).Unix(),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}
