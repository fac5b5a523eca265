// Copyright 2026 Una Social Contributors
// SPDX-License-Identifier: AGPL-3.0

// Package validation checks gateway request payloads before they reach the
// services, so malformed input never turns into a provider call.
package validation

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/una-social/onboarding-service/internal/types"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Struct validates a decoded request payload against its struct tags and
// translates failures into the caller-facing validation error kind.
func Struct(payload interface{}) error {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return types.ValidationErrorf("invalid payload: %v", err)
	}

	fields := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		fields = append(fields, describe(fe))
	}

	return types.ValidationErrorf("%s", strings.Join(fields, "; "))
}

func describe(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "min":
		return field + " must be at least " + fe.Param() + " characters"
	case "oneof":
		return field + " must be one of " + fe.Param()
	default:
		return field + " is invalid"
	}
}
