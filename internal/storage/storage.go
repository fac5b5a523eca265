// Copyright 2026 Una Social Contributors
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/una-social/onboarding-service/internal/db"
	"github.com/una-social/onboarding-service/internal/logging"
	"github.com/una-social/onboarding-service/internal/monitoring"
	"github.com/una-social/onboarding-service/internal/tracing"
	"github.com/una-social/onboarding-service/internal/types"
)

var _ StorageInterface = (*Storage)(nil)

type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}

// GetAffiliateByEmail looks up a personnel registry row by primary email.
// The registry is owned by the university ETL; this service only reads it.
func (s *Storage) GetAffiliateByEmail(ctx context.Context, email string) (*types.Affiliate, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetAffiliateByEmail")
	defer span.End()

	var a types.Affiliate
	err := s.db.Statement(ctx).
		Select("surname", "given_name", "primary_email", "org_unit").
		From("affiliates").
		Where(sq.Eq{"primary_email": email}).
		QueryRowContext(ctx).
		Scan(&a.Surname, &a.GivenName, &a.PrimaryEmail, &a.OrgUnit)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get affiliate: %w", err)
	}

	return &a, nil
}

// ListColleagues returns every registry row sharing orgUnit, excluding the
// caller's own row.
func (s *Storage) ListColleagues(ctx context.Context, orgUnit, excludingEmail string) ([]*types.Affiliate, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListColleagues")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("surname", "given_name", "primary_email", "org_unit").
		From("affiliates").
		Where(sq.Eq{"org_unit": orgUnit}).
		Where(sq.NotEq{"primary_email": excludingEmail}).
		OrderBy("surname", "given_name").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list colleagues: %w", err)
	}
	defer rows.Close()

	var colleagues []*types.Affiliate
	for rows.Next() {
		var a types.Affiliate
		if err := rows.Scan(&a.Surname, &a.GivenName, &a.PrimaryEmail, &a.OrgUnit); err != nil {
			return nil, fmt.Errorf("failed to scan affiliate: %w", err)
		}
		colleagues = append(colleagues, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return colleagues, nil
}

// CreateInvite appends a pending invitation row to the ledger.
func (s *Storage) CreateInvite(ctx context.Context, inviterID, invitedEmail, token string) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateInvite")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate invite ID: %w", err)
	}

	var inv types.Invitation
	err = s.db.Statement(ctx).
		Insert("invites").
		Columns("id", "inviter_id", "invited_email", "token", "status").
		Values(id.String(), inviterID, invitedEmail, token, types.InviteStatusPending).
		Suffix("RETURNING id, inviter_id, invited_email, token, status, created_at").
		QueryRowContext(ctx).
		Scan(&inv.ID, &inv.InviterID, &inv.InvitedEmail, &inv.Token, &inv.Status, &inv.CreatedAt)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		return nil, fmt.Errorf("failed to insert invite: %w", err)
	}

	return &inv, nil
}

func (s *Storage) GetInviteByToken(ctx context.Context, token string) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetInviteByToken")
	defer span.End()

	var inv types.Invitation
	err := s.db.Statement(ctx).
		Select("id", "inviter_id", "invited_email", "token", "status", "created_at").
		From("invites").
		Where(sq.Eq{"token": token}).
		QueryRowContext(ctx).
		Scan(&inv.ID, &inv.InviterID, &inv.InvitedEmail, &inv.Token, &inv.Status, &inv.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get invite: %w", err)
	}

	return &inv, nil
}

func (s *Storage) ListInvitesByInviter(ctx context.Context, inviterID string) ([]*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListInvitesByInviter")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "inviter_id", "invited_email", "token", "status", "created_at").
		From("invites").
		Where(sq.Eq{"inviter_id": inviterID}).
		OrderBy("created_at DESC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list invites: %w", err)
	}
	defer rows.Close()

	var invites []*types.Invitation
	for rows.Next() {
		var inv types.Invitation
		if err := rows.Scan(&inv.ID, &inv.InviterID, &inv.InvitedEmail, &inv.Token, &inv.Status, &inv.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan invite: %w", err)
		}
		invites = append(invites, &inv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return invites, nil
}

func (s *Storage) UpdateInviteStatus(ctx context.Context, id, status string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateInviteStatus")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("invites").
		Set("status", status).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to update invite status: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}
