// Copyright 2026 Una Social Contributors
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/una-social/onboarding-service/internal/types"
)

// Response is the JSON envelope returned by every gateway endpoint.
type Response struct {
	Status  int         `json:"status"`
	Kind    string      `json:"kind,omitempty"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// StatusForError maps a taxonomy error onto an HTTP status code.
// Conflicts and sequencing violations are caller-visible 4xx codes; only
// provider outages and unknown errors surface as 5xx.
func StatusForError(err error) int {
	switch {
	case errors.Is(err, types.ErrValidation),
		errors.Is(err, types.ErrCredentialTooWeak):
		return http.StatusBadRequest
	case errors.Is(err, types.ErrDomainNotAuthorized):
		return http.StatusForbidden
	case errors.Is(err, types.ErrAccountNotFound):
		return http.StatusNotFound
	case errors.Is(err, types.ErrAlreadyRegistered):
		return http.StatusConflict
	case errors.Is(err, types.ErrProviderUnavailable),
		errors.Is(err, types.ErrCredentialUpdateFailed),
		errors.Is(err, types.ErrPostUpdateLoginFailed):
		return http.StatusBadGateway
	case errors.Is(err, types.ErrTokenExtraction):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// WriteJSON writes data inside the response envelope.
func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(Response{
		Status: status,
		Data:   data,
	})
}

// WriteError translates err into the envelope with its stable kind.
func WriteError(w http.ResponseWriter, err error) {
	status := StatusForError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(Response{
		Status:  status,
		Kind:    types.Kind(err),
		Message: err.Error(),
	})
}
