// Copyright 2026 Una Social Contributors
// SPDX-License-Identifier: AGPL-3.0

package kratos

import (
	"context"
	"fmt"
	"net/http"
	"time"

	ory "github.com/ory/client-go"

	"github.com/una-social/onboarding-service/internal/logging"
	"github.com/una-social/onboarding-service/internal/monitoring"
	"github.com/una-social/onboarding-service/internal/tracing"
	"github.com/una-social/onboarding-service/internal/types"
)

// CreateAccountParams carries everything the directory needs to provision
// an account. Password is optional; when empty the account is created
// uncredentialed.
type CreateAccountParams struct {
	Email      string
	Attributes map[string]string
	Confirmed  bool
	Password   string
}

type Client struct {
	admin  *ory.APIClient
	public *ory.APIClient

	tokenLifetime string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Config collects the connection settings for the admin and public Kratos
// endpoints. JWTSecret enables the self-signed service-role token attached
// to every admin call; without it the admin API is assumed to be reachable
// on a trusted network only.
type Config struct {
	AdminURL      string
	PublicURL     string
	JWTSecret     string
	TokenLifetime string
}

func NewClient(cfg Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Client {
	adminConf := ory.NewConfiguration()
	adminConf.Servers = ory.ServerConfigurations{{URL: cfg.AdminURL}}
	if cfg.JWTSecret != "" {
		adminConf.HTTPClient = &http.Client{
			Transport: newServiceTokenTransport(cfg.JWTSecret, http.DefaultTransport),
		}
	}

	publicConf := ory.NewConfiguration()
	publicConf.Servers = ory.ServerConfigurations{{URL: cfg.PublicURL}}

	return &Client{
		admin:         ory.NewAPIClient(adminConf),
		public:        ory.NewAPIClient(publicConf),
		tokenLifetime: cfg.TokenLifetime,
		tracer:        tracer,
		monitor:       monitor,
		logger:        logger,
	}
}

// FindAccountByEmail returns nil when no account carries the email.
func (c *Client) FindAccountByEmail(ctx context.Context, email string) (*types.Account, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.Client.FindAccountByEmail")
	defer span.End()

	// NOTE: we are setting an empty page token because of https://github.com/ory/sdk/issues/461
	ids, r, err := c.admin.IdentityAPI.ListIdentities(ctx).CredentialsIdentifier(email).PageToken("").Execute()
	if err != nil {
		if r != nil && r.StatusCode == http.StatusNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: failed to list identities: %v", types.ErrProviderUnavailable, err)
	}

	if len(ids) == 0 {
		return nil, nil
	}

	// Email is unique on the provider side.
	account := c.toAccount(&ids[0])

	lastAuth, err := c.lastAuthenticatedAt(ctx, account.ID)
	if err != nil {
		// Session history is a heuristic input, not a hard dependency.
		c.logger.Debugf("failed to fetch session history for %s: %v", account.ID, err)
	}
	account.LastAuthenticatedAt = lastAuth

	return account, nil
}

func (c *Client) CreateAccount(ctx context.Context, params CreateAccountParams) (*types.Account, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.Client.CreateAccount")
	defer span.End()

	body := ory.CreateIdentityBody{
		SchemaId:       "default",
		Traits:         map[string]interface{}{"email": params.Email},
		MetadataPublic: attributesToMetadata(params.Attributes),
	}

	if params.Confirmed {
		body.VerifiableAddresses = []ory.VerifiableIdentityAddress{{
			Status:   "completed",
			Value:    params.Email,
			Verified: true,
			Via:      "email",
		}}
	}

	if params.Password != "" {
		body.Credentials = &ory.IdentityWithCredentials{
			Password: &ory.IdentityWithCredentialsPassword{
				Config: &ory.IdentityWithCredentialsPasswordConfig{
					Password: &params.Password,
				},
			},
		}
	}

	identity, r, err := c.admin.IdentityAPI.CreateIdentity(ctx).CreateIdentityBody(body).Execute()
	if err != nil {
		if r != nil && r.StatusCode == http.StatusConflict {
			return nil, types.ErrAlreadyRegistered
		}
		return nil, fmt.Errorf("%w: failed to create identity: %v", types.ErrProviderUnavailable, err)
	}

	return c.toAccount(identity), nil
}

// UpdateAccountCredential sets the password and the has_set_password flag
// in a single identity update. The provider call is the atomicity boundary:
// a crash can never leave the credential set without the flag.
func (c *Client) UpdateAccountCredential(ctx context.Context, account *types.Account, password string) error {
	ctx, span := c.tracer.Start(ctx, "kratos.Client.UpdateAccountCredential")
	defer span.End()

	attrs := make(map[string]string, len(account.Attributes)+1)
	for k, v := range account.Attributes {
		attrs[k] = v
	}
	attrs[types.AttrHasSetPassword] = "true"

	body := ory.UpdateIdentityBody{
		SchemaId:       "default",
		State:          "active",
		Traits:         map[string]interface{}{"email": account.Email},
		MetadataPublic: attributesToMetadata(attrs),
		Credentials: &ory.IdentityWithCredentials{
			Password: &ory.IdentityWithCredentialsPassword{
				Config: &ory.IdentityWithCredentialsPasswordConfig{
					Password: &password,
				},
			},
		},
	}

	_, _, err := c.admin.IdentityAPI.UpdateIdentity(ctx, account.ID).UpdateIdentityBody(body).Execute()
	if err != nil {
		return fmt.Errorf("%w: %v", types.ErrCredentialUpdateFailed, err)
	}

	return nil
}

// GenerateVerificationLink returns a single-use recovery link for the
// email's account, provisioning a confirmed, uncredentialed account first
// when none exists. The embedded token authorizes one credential-setting
// request.
func (c *Client) GenerateVerificationLink(ctx context.Context, email string) (string, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.Client.GenerateVerificationLink")
	defer span.End()

	account, err := c.FindAccountByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if account == nil {
		account, err = c.CreateAccount(ctx, CreateAccountParams{Email: email, Confirmed: true})
		if err != nil {
			return "", err
		}
	}

	body := ory.CreateRecoveryLinkForIdentityBody{
		IdentityId: account.ID,
		ExpiresIn:  &c.tokenLifetime,
	}

	link, _, err := c.admin.IdentityAPI.CreateRecoveryLinkForIdentity(ctx).CreateRecoveryLinkForIdentityBody(body).Execute()
	if err != nil {
		return "", fmt.Errorf("%w: failed to create recovery link: %v", types.ErrProviderUnavailable, err)
	}

	return link.RecoveryLink, nil
}

// Authenticate performs a password login through the self-service flow and
// returns the minted session.
func (c *Client) Authenticate(ctx context.Context, email, password string) (*types.Session, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.Client.Authenticate")
	defer span.End()

	flow, _, err := c.public.FrontendAPI.CreateNativeLoginFlow(ctx).Execute()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create login flow: %v", types.ErrProviderUnavailable, err)
	}

	login, _, err := c.public.FrontendAPI.UpdateLoginFlow(ctx).
		Flow(flow.Id).
		UpdateLoginFlowBody(ory.UpdateLoginFlowBody{
			UpdateLoginFlowWithPasswordMethod: &ory.UpdateLoginFlowWithPasswordMethod{
				Method:     "password",
				Identifier: email,
				Password:   password,
			},
		}).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("login failed: %v", err)
	}

	session := &types.Session{
		SubjectID: login.Session.Identity.Id,
		Email:     email,
		ExpiresAt: login.Session.ExpiresAt,
	}
	if login.SessionToken != nil {
		session.Token = *login.SessionToken
	}

	return session, nil
}

// GetCaller resolves a bearer session token into the owning principal.
func (c *Client) GetCaller(ctx context.Context, sessionToken string) (*types.Principal, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.Client.GetCaller")
	defer span.End()

	session, _, err := c.public.FrontendAPI.ToSession(ctx).XSessionToken(sessionToken).Execute()
	if err != nil {
		return nil, fmt.Errorf("invalid session token: %v", err)
	}
	if session.Identity == nil {
		return nil, fmt.Errorf("session carries no identity")
	}

	principal := &types.Principal{ID: session.Identity.Id}
	if traits, ok := session.Identity.Traits.(map[string]interface{}); ok {
		if e, ok := traits["email"].(string); ok {
			principal.Email = e
		}
	}

	return principal, nil
}

func (c *Client) lastAuthenticatedAt(ctx context.Context, identityID string) (*time.Time, error) {
	sessions, r, err := c.admin.IdentityAPI.ListIdentitySessions(ctx, identityID).PageSize(1).Execute()
	if err != nil {
		if r != nil && r.StatusCode == http.StatusNotFound {
			return nil, nil
		}
		return nil, err
	}
	if len(sessions) == 0 {
		return nil, nil
	}

	return sessions[0].AuthenticatedAt, nil
}

func (c *Client) toAccount(identity *ory.Identity) *types.Account {
	account := &types.Account{
		ID:         identity.Id,
		Email:      traitEmail(identity),
		Attributes: metadataToAttributes(identity.MetadataPublic),
	}
	if identity.CreatedAt != nil {
		account.CreatedAt = *identity.CreatedAt
	}

	return account
}

func traitEmail(identity *ory.Identity) string {
	if traits, ok := identity.Traits.(map[string]interface{}); ok {
		if e, ok := traits["email"].(string); ok {
			return e
		}
	}
	return ""
}

func attributesToMetadata(attrs map[string]string) map[string]interface{} {
	if len(attrs) == 0 {
		return nil
	}
	md := make(map[string]interface{}, len(attrs))
	for k, v := range attrs {
		md[k] = v
	}
	return md
}

func metadataToAttributes(md map[string]interface{}) map[string]string {
	attrs := make(map[string]string, len(md))
	for k, v := range md {
		if s, ok := v.(string); ok {
			attrs[k] = s
		}
	}
	return attrs
}
