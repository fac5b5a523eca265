// Copyright 2026 Una Social Contributors
// SPDX-License-Identifier: AGPL-3.0

// Package mail delivers onboarding notifications through Resend.
package mail

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"

	"github.com/una-social/onboarding-service/internal/logging"
	"github.com/una-social/onboarding-service/internal/monitoring"
	"github.com/una-social/onboarding-service/internal/tracing"
	"github.com/una-social/onboarding-service/internal/types"
)

// Mode selects the delivery behaviour. In development every message is
// redirected to the configured test recipient, with the original address
// prefixed to the subject so flows remain traceable without emailing real
// users.
type Mode string

const (
	ModeProduction  Mode = "production"
	ModeDevelopment Mode = "development"
)

type Config struct {
	APIKey        string
	Sender        string
	Mode          Mode
	TestRecipient string
}

type Service struct {
	client        *resend.Client
	sender        string
	mode          Mode
	testRecipient string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(cfg Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	return &Service{
		client:        resend.NewClient(cfg.APIKey),
		sender:        cfg.Sender,
		mode:          cfg.Mode,
		testRecipient: cfg.TestRecipient,
		tracer:        tracer,
		monitor:       monitor,
		logger:        logger,
	}
}

func (s *Service) Send(ctx context.Context, to string, template TemplateType, data TemplateData) error {
	ctx, span := s.tracer.Start(ctx, "mail.Service.Send")
	defer span.End()

	subject, html, err := render(template, data)
	if err != nil {
		return fmt.Errorf("%w: %v", types.ErrNotificationFailed, err)
	}

	recipient := to
	if s.mode == ModeDevelopment && s.testRecipient != "" {
		recipient = s.testRecipient
		subject = fmt.Sprintf("[dev: %s] %s", to, subject)
	}

	sent, err := s.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    s.sender,
		To:      []string{recipient},
		Subject: subject,
		Html:    html,
	})
	if err != nil {
		s.logger.Errorf("failed to send %s email to %s: %v", template, recipient, err)
		return fmt.Errorf("%w: %v", types.ErrNotificationFailed, err)
	}

	s.logger.Debugf("sent %s email %s to %s", template, sent.Id, recipient)

	return nil
}
