// Copyright 2026 Una Social Contributors
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

// AccountState classifies a provider-side account for the onboarding flows.
type AccountState string

const (
	AccountAbsent         AccountState = "absent"
	AccountNoCredential   AccountState = "present_no_credential"
	AccountWithCredential AccountState = "present_with_credential"
)

// Account is the slice of the identity provider's user entity that the
// onboarding flows consume. The provider owns the entity; this struct is a
// read model, never persisted locally.
type Account struct {
	ID                  string
	Email               string
	Attributes          map[string]string
	CreatedAt           time.Time
	LastAuthenticatedAt *time.Time
}

// HasSetPasswordFlag reports the explicit provider-side attribute flag.
// The flag is a proxy: the provider exposes no direct credential boolean.
func (a *Account) HasSetPasswordFlag() bool {
	return a != nil && a.Attributes[AttrHasSetPassword] == "true"
}

// Provider attribute keys carried on accounts.
const (
	AttrHasSetPassword = "has_set_password"
	AttrDomain         = "domain"
	AttrUserType       = "user_type"
)

// User types recorded at account creation.
const (
	UserTypeUniversity      = "unibo"
	UserTypeInvitedExternal = "invited_external"
)

// Affiliate is a read-only row from the university personnel registry.
type Affiliate struct {
	Surname      string `db:"surname" json:"surname"`
	GivenName    string `db:"given_name" json:"given_name"`
	PrimaryEmail string `db:"primary_email" json:"primary_email"`
	OrgUnit      string `db:"org_unit" json:"org_unit"`
}

// Invitation statuses.
const (
	InviteStatusPending  = "pending"
	InviteStatusAccepted = "accepted"
	InviteStatusExpired  = "expired"
)

// Invitation is a row in the invite ledger.
type Invitation struct {
	ID           string    `db:"id"`
	InviterID    string    `db:"inviter_id"`
	InvitedEmail string    `db:"invited_email"`
	Token        string    `db:"token"`
	Status       string    `db:"status"`
	CreatedAt    time.Time `db:"created_at"`
}

// Session is an authenticated provider session minted after credential
// bootstrap. Token lifetime and revocation stay with the provider.
type Session struct {
	Token     string     `json:"token"`
	SubjectID string     `json:"subject_id"`
	Email     string     `json:"email"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// Principal is the authenticated caller extracted from a bearer token.
type Principal struct {
	ID    string
	Email string
}

// ConfirmMode selects the registration variant: create the account
// pre-confirmed, or require an email round-trip first.
type ConfirmMode string

const (
	ConfirmModeAuto  ConfirmMode = "auto"
	ConfirmModeEmail ConfirmMode = "email"
)
