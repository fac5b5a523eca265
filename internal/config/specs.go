// Copyright 2026 Una Social Contributors
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"time"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	KratosAdminURL  string `envconfig:"kratos_admin_url" required:"true"`
	KratosPublicURL string `envconfig:"kratos_public_url" required:"true"`

	// ServiceJWTSecret, when set, is used to self-sign short-lived HS256
	// service tokens attached to admin API calls.
	ServiceJWTSecret string `envconfig:"service_jwt_secret"`

	// AllowedEmailDomains gates the self-service verification flow.
	AllowedEmailDomains []string `envconfig:"allowed_email_domains" default:"@unibo.it,@studio.unibo.it"`

	TokenLifetime string `envconfig:"token_lifetime" default:"24h"`

	// InviteLifetime bounds how long an issued invite token is redeemable.
	InviteLifetime time.Duration `envconfig:"invite_lifetime" default:"24h"`

	// InviteBaseURL is the public deep-link base embedded in invite emails.
	InviteBaseURL string `envconfig:"invite_base_url" default:"https://una-social.uno-alla-luna.it/invite"`

	MailAPIKey        string `envconfig:"mail_api_key"`
	MailSender        string `envconfig:"mail_sender" default:"Una Social <onboarding@uno-alla-luna.it>"`
	MailMode          string `envconfig:"mail_mode" default:"production"`
	MailTestRecipient string `envconfig:"mail_test_recipient"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port int `envconfig:"port" default:"8080"`

	DSN string `envconfig:"DSN" required:"true"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`

	RedisURL          string        `envconfig:"redis_url"`
	ColleagueCacheTTL time.Duration `envconfig:"colleague_cache_ttl" default:"5m"`

	// AuthBackend selects how inbound bearer tokens are verified:
	// "kratos" (session whoami), "jwt" (OIDC/JWKS) or "noop" (development).
	AuthBackend     string   `envconfig:"auth_backend" default:"kratos"`
	JWTIssuer       string   `envconfig:"jwt_issuer"`
	JWKSURL         string   `envconfig:"jwks_url"`
	AllowedSubjects []string `envconfig:"allowed_subjects"`
	RequiredScope   string   `envconfig:"required_scope"`
}
