// Copyright 2026 Una Social Contributors
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"

	"github.com/una-social/onboarding-service/internal/db"
	"github.com/una-social/onboarding-service/internal/logging"
	"github.com/una-social/onboarding-service/internal/monitoring"
	"github.com/una-social/onboarding-service/internal/tracing"
	"github.com/una-social/onboarding-service/pkg/accounts"
	"github.com/una-social/onboarding-service/pkg/authentication"
	"github.com/una-social/onboarding-service/pkg/colleagues"
	"github.com/una-social/onboarding-service/pkg/invites"
	"github.com/una-social/onboarding-service/pkg/metrics"
	"github.com/una-social/onboarding-service/pkg/status"
)

func NewRouter(
	accountsAPI *accounts.API,
	invitesAPI *invites.API,
	colleaguesAPI *colleagues.API,
	authMiddleware *authentication.Middleware,
	dbClient db.DBClientInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS([]string{"*"}),
		db.TransactionMiddleware(dbClient, logger),
	)

	router.Use(middlewares...)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(tracer, monitor, logger).RegisterEndpoints(router)

	// Onboarding flows are reachable without a session: the callers are
	// users who do not have a credential yet.
	accountsAPI.RegisterEndpoints(router)
	invitesAPI.RegisterPublicEndpoints(router)

	router.Group(func(r chi.Router) {
		r.Use(authMiddleware.Authenticate())
		invitesAPI.RegisterEndpoints(r)
		colleaguesAPI.RegisterEndpoints(r)
	})

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}
