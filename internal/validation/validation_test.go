// Copyright 2026 Una Social Contributors
// SPDX-License-Identifier: AGPL-3.0

package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/una-social/onboarding-service/internal/types"
)

type payload struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

func TestStructValid(t *testing.T) {
	err := Struct(payload{Email: "mario.rossi@unibo.it", Password: "secret1"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestStructInvalid(t *testing.T) {
	tests := []struct {
		name    string
		payload payload
		want    string
	}{
		{
			name:    "MissingEmail",
			payload: payload{Password: "secret1"},
			want:    "email is required",
		},
		{
			name:    "MalformedEmail",
			payload: payload{Email: "not-an-email", Password: "secret1"},
			want:    "email must be a valid email address",
		},
		{
			name:    "ShortPassword",
			payload: payload{Email: "a@unibo.it", Password: "short"},
			want:    "password must be at least 6 characters",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := Struct(test.payload)
			if err == nil {
				t.Fatal("expected an error, got nil")
			}
			if !errors.Is(err, types.ErrValidation) {
				t.Fatalf("expected a validation error, got %v", err)
			}
			if !strings.Contains(err.Error(), test.want) {
				t.Fatalf("expected %q in %q", test.want, err.Error())
			}
		})
	}
}
