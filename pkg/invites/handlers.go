// Copyright 2026 Una Social Contributors
// SPDX-License-Identifier: AGPL-3.0

package invites

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/una-social/onboarding-service/internal/http/types"
	"github.com/una-social/onboarding-service/internal/logging"
	"github.com/una-social/onboarding-service/internal/types"
	"github.com/una-social/onboarding-service/internal/validation"
	"github.com/una-social/onboarding-service/pkg/authentication"
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

// RegisterEndpoints mounts the authenticated invite routes. The accept
// route is public: the redeeming user holds a token, not a session.
func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Post("/api/v0/invites", a.createInvite)
	mux.Get("/api/v0/invites", a.listInvites)
}

func (a *API) RegisterPublicEndpoints(mux chi.Router) {
	mux.Post("/api/v0/invites/accept", a.acceptInvite)
}

type createInviteRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type acceptInviteRequest struct {
	Token string `json:"token" validate:"required"`
}

func (a *API) createInvite(w http.ResponseWriter, r *http.Request) {
	principal, ok := authentication.GetPrincipal(r.Context())
	if !ok {
		httptypes.WriteError(w, types.ValidationErrorf("no authenticated caller"))
		return
	}

	var req createInviteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httptypes.WriteError(w, types.ValidationErrorf("invalid request body"))
		return
	}
	if err := validation.Struct(req); err != nil {
		httptypes.WriteError(w, err)
		return
	}

	result, err := a.service.IssuePeerInvite(r.Context(), principal, req.Email)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusCreated, result)
}

func (a *API) listInvites(w http.ResponseWriter, r *http.Request) {
	principal, ok := authentication.GetPrincipal(r.Context())
	if !ok {
		httptypes.WriteError(w, types.ValidationErrorf("no authenticated caller"))
		return
	}

	invites, err := a.service.ListMyInvites(r.Context(), principal.ID)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, invites)
}

func (a *API) acceptInvite(w http.ResponseWriter, r *http.Request) {
	var req acceptInviteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httptypes.WriteError(w, types.ValidationErrorf("invalid request body"))
		return
	}
	if err := validation.Struct(req); err != nil {
		httptypes.WriteError(w, err)
		return
	}

	invite, err := a.service.AcceptInvite(r.Context(), req.Token)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, invite)
}
