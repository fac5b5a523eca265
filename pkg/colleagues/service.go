// Copyright 2026 Una Social Contributors
// SPDX-License-Identifier: AGPL-3.0

// Package colleagues resolves the caller's organizational unit in the
// personnel registry and returns the other affiliates of that unit.
package colleagues

import (
	"context"
	"errors"
	"fmt"

	"github.com/una-social/onboarding-service/internal/cache"
	"github.com/una-social/onboarding-service/internal/logging"
	"github.com/una-social/onboarding-service/internal/monitoring"
	"github.com/una-social/onboarding-service/internal/storage"
	"github.com/una-social/onboarding-service/internal/tracing"
	"github.com/una-social/onboarding-service/internal/types"
)

type Service struct {
	registry RegistryInterface
	cache    CacheInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	registry RegistryInterface,
	cacheClient CacheInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		registry: registry,
		cache:    cacheClient,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

// ListColleagues returns the affiliates sharing the caller's unit, caller
// excluded. The per-unit cache is read-through: the exclusion is applied
// after the cache so one entry serves the whole unit.
func (s *Service) ListColleagues(ctx context.Context, caller *types.Principal) ([]*types.Affiliate, error) {
	ctx, span := s.tracer.Start(ctx, "colleagues.Service.ListColleagues")
	defer span.End()

	affiliate, err := s.registry.GetAffiliateByEmail(ctx, caller.Email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s is not in the personnel registry", types.ErrAccountNotFound, caller.Email)
		}
		return nil, err
	}

	unit, err := s.cache.GetColleagues(ctx, affiliate.OrgUnit)
	if err != nil {
		if !errors.Is(err, cache.ErrCacheMiss) {
			s.logger.Warnf("colleague cache read failed for %q: %v", affiliate.OrgUnit, err)
		}
		unit, err = s.registry.ListColleagues(ctx, affiliate.OrgUnit, "")
		if err != nil {
			return nil, err
		}
		if err := s.cache.SetColleagues(ctx, affiliate.OrgUnit, unit); err != nil {
			s.logger.Warnf("colleague cache write failed for %q: %v", affiliate.OrgUnit, err)
		}
	}

	colleagues := make([]*types.Affiliate, 0, len(unit))
	for _, c := range unit {
		if c.PrimaryEmail == affiliate.PrimaryEmail {
			continue
		}
		colleagues = append(colleagues, c)
	}

	return colleagues, nil
}
