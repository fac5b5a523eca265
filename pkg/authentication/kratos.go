// Copyright 2026 Una Social Contributors
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"fmt"

	"github.com/una-social/onboarding-service/internal/kratos"
	"github.com/una-social/onboarding-service/internal/logging"
	"github.com/una-social/onboarding-service/internal/monitoring"
	"github.com/una-social/onboarding-service/internal/tracing"
	"github.com/una-social/onboarding-service/internal/types"
)

// SessionVerifier resolves bearer tokens as identity provider session
// tokens. This is the default backend: the same provider that mints
// sessions during credential bootstrap verifies them on later calls.
type SessionVerifier struct {
	kratos kratos.ClientInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewSessionVerifier(kratosClient kratos.ClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *SessionVerifier {
	return &SessionVerifier{
		kratos:  kratosClient,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (v *SessionVerifier) VerifyToken(ctx context.Context, rawToken string) (*types.Principal, error) {
	ctx, span := v.tracer.Start(ctx, "authentication.SessionVerifier.VerifyToken")
	defer span.End()

	principal, err := v.kratos.GetCaller(ctx, rawToken)
	if err != nil {
		v.logger.Security().AuthnFailure("unknown", "invalid session token")
		return nil, fmt.Errorf("session verification failed: %v", err)
	}

	return principal, nil
}
