// Copyright 2026 Una Social Contributors
// SPDX-License-Identifier: AGPL-3.0

package colleagues

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/una-social/onboarding-service/internal/http/types"
	"github.com/una-social/onboarding-service/internal/logging"
	"github.com/una-social/onboarding-service/internal/types"
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

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/api/v0/colleagues", a.listColleagues)
}

func (a *API) listColleagues(w http.ResponseWriter, r *http.Request) {
	principal, ok := authentication.GetPrincipal(r.Context())
	if !ok {
		httptypes.WriteError(w, types.ValidationErrorf("no authenticated caller"))
		return
	}

	colleagues, err := a.service.ListColleagues(r.Context(), principal)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, colleagues)
}
