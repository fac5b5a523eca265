// Copyright 2026 Una Social Contributors
// SPDX-License-Identifier: AGPL-3.0

package mail

import (
	"context"

	"github.com/una-social/onboarding-service/internal/logging"
)

// NoopService logs instead of sending, for local development without a
// mail provider API key.
type NoopService struct {
	logger logging.LoggerInterface
}

func NewNoopService(logger logging.LoggerInterface) *NoopService {
	return &NoopService{logger: logger}
}

func (s *NoopService) Send(ctx context.Context, to string, template TemplateType, data TemplateData) error {
	s.logger.Infof("mail disabled, skipping %s email to %s (link %s)", template, to, data.ActionLink)
	return nil
}
