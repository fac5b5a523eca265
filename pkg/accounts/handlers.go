// Copyright 2026 Una Social Contributors
// SPDX-License-Identifier: AGPL-3.0

package accounts

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/una-social/onboarding-service/internal/http/types"
	"github.com/una-social/onboarding-service/internal/logging"
	"github.com/una-social/onboarding-service/internal/types"
	"github.com/una-social/onboarding-service/internal/validation"
)

type API struct {
	service ServiceInterface

	logger logging.LoggerInterface
}

func NewAPI(service ServiceInterface, logger logging.LoggerInterface) *API {
	return &API{
		service: service,
		logger:  logger,
	}
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Post("/api/v0/verify-email", a.verifyEmail)
	mux.Post("/api/v0/affiliates/verify", a.verifyAffiliate)
	mux.Post("/api/v0/password", a.setPassword)
	mux.Post("/api/v0/register", a.register)
}

type verifyEmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type setPasswordRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type registerRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required"`
	ConfirmMode string `json:"confirm_mode" validate:"omitempty,oneof=auto email"`
}

func (a *API) verifyEmail(w http.ResponseWriter, r *http.Request) {
	req, ok := decode[verifyEmailRequest](w, r)
	if !ok {
		return
	}

	result, err := a.service.VerifyDomainEmail(r.Context(), req.Email)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, result)
}

func (a *API) verifyAffiliate(w http.ResponseWriter, r *http.Request) {
	req, ok := decode[verifyEmailRequest](w, r)
	if !ok {
		return
	}

	result, err := a.service.VerifyAffiliateEmail(r.Context(), req.Email)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, result)
}

func (a *API) setPassword(w http.ResponseWriter, r *http.Request) {
	req, ok := decode[setPasswordRequest](w, r)
	if !ok {
		return
	}

	session, err := a.service.SetInitialCredential(r.Context(), req.Email, req.Password)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, session)
}

func (a *API) register(w http.ResponseWriter, r *http.Request) {
	req, ok := decode[registerRequest](w, r)
	if !ok {
		return
	}

	mode := types.ConfirmMode(req.ConfirmMode)
	if mode == "" {
		mode = types.ConfirmModeAuto
	}

	result, err := a.service.Register(r.Context(), req.Email, req.Password, mode)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	status := http.StatusOK
	if result.Session != nil {
		status = http.StatusCreated
	}

	httptypes.WriteJSON(w, status, result)
}

// decode unmarshals and validates the request body, writing the error
// response itself on failure.
func decode[T any](w http.ResponseWriter, r *http.Request) (T, bool) {
	var req T
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httptypes.WriteError(w, types.ValidationErrorf("invalid request body"))
		return req, false
	}
	if err := validation.Struct(req); err != nil {
		httptypes.WriteError(w, err)
		return req, false
	}
	return req, true
}
