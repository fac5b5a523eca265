// Copyright 2026 Una Social Contributors
// SPDX-License-Identifier: AGPL-3.0

package kratos

import (
	"fmt"
	"net/url"

	"github.com/una-social/onboarding-service/internal/types"
)

// ExtractActionToken pulls the single-use token out of a provider-generated
// verification link. Providers have shipped two encodings over time: the
// token in the URL fragment under "access_token", and the token in the
// query string under "token". Both are accepted; anything else is a
// provider contract violation surfaced as a TokenExtraction error.
func ExtractActionToken(link string) (string, error) {
	u, err := url.Parse(link)
	if err != nil {
		return "", fmt.Errorf("%w: malformed link: %v", types.ErrTokenExtraction, err)
	}

	if u.Fragment != "" {
		if params, err := url.ParseQuery(u.Fragment); err == nil {
			for _, key := range []string{"access_token", "token"} {
				if token := params.Get(key); token != "" {
					return token, nil
				}
			}
		}
	}

	query := u.Query()
	for _, key := range []string{"token", "access_token"} {
		if token := query.Get(key); token != "" {
			return token, nil
		}
	}

	return "", fmt.Errorf("%w: no token in fragment or query of %q", types.ErrTokenExtraction, link)
}
