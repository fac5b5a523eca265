// Copyright 2026 Una Social Contributors
// SPDX-License-Identifier: AGPL-3.0

package colleagues

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/una-social/onboarding-service/internal/cache"
	"github.com/una-social/onboarding-service/internal/storage"
	"github.com/una-social/onboarding-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package colleagues -destination ./mock_colleagues.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package colleagues -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package colleagues -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package colleagues -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

type serviceMocks struct {
	registry *MockRegistryInterface
	cache    *MockCacheInterface
	logger   *MockLoggerInterface
}

func newTestService(t *testing.T) (*Service, serviceMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mocks := serviceMocks{
		registry: NewMockRegistryInterface(ctrl),
		cache:    NewMockCacheInterface(ctrl),
		logger:   NewMockLoggerInterface(ctrl),
	}

	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)

	ctx := context.Background()
	mockTracer.EXPECT().Start(gomock.Any(), "colleagues.Service.ListColleagues").Return(ctx, trace.SpanFromContext(ctx))

	s := NewService(mocks.registry, mocks.cache, mockTracer, mockMonitor, mocks.logger)

	return s, mocks
}

func TestService_ListColleagues(t *testing.T) {
	caller := &types.Principal{ID: "user-1", Email: "anna.verdi@unibo.it"}
	self := &types.Affiliate{Surname: "Verdi", GivenName: "Anna", PrimaryEmail: "anna.verdi@unibo.it", OrgUnit: "DISI"}
	unit := []*types.Affiliate{
		{Surname: "Bianchi", GivenName: "Luca", PrimaryEmail: "luca.bianchi@unibo.it", OrgUnit: "DISI"},
		self,
		{Surname: "Rossi", GivenName: "Mario", PrimaryEmail: "mario.rossi@unibo.it", OrgUnit: "DISI"},
	}

	t.Run("cache miss falls back to the registry", func(t *testing.T) {
		s, mocks := newTestService(t)

		mocks.registry.EXPECT().GetAffiliateByEmail(gomock.Any(), caller.Email).Return(self, nil)
		mocks.cache.EXPECT().GetColleagues(gomock.Any(), "DISI").Return(nil, cache.ErrCacheMiss)
		mocks.registry.EXPECT().ListColleagues(gomock.Any(), "DISI", "").Return(unit, nil)
		mocks.cache.EXPECT().SetColleagues(gomock.Any(), "DISI", unit).Return(nil)

		colleagues, err := s.ListColleagues(context.Background(), caller)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(colleagues) != 2 {
			t.Fatalf("expected 2 colleagues, got %d", len(colleagues))
		}
		for _, c := range colleagues {
			if c.PrimaryEmail == caller.Email {
				t.Error("caller must be excluded from the colleague list")
			}
		}
	})

	t.Run("cache hit skips the registry list", func(t *testing.T) {
		s, mocks := newTestService(t)

		mocks.registry.EXPECT().GetAffiliateByEmail(gomock.Any(), caller.Email).Return(self, nil)
		mocks.cache.EXPECT().GetColleagues(gomock.Any(), "DISI").Return(unit, nil)

		colleagues, err := s.ListColleagues(context.Background(), caller)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(colleagues) != 2 {
			t.Fatalf("expected 2 colleagues, got %d", len(colleagues))
		}
	})

	t.Run("cache failure does not break the lookup", func(t *testing.T) {
		s, mocks := newTestService(t)

		mocks.registry.EXPECT().GetAffiliateByEmail(gomock.Any(), caller.Email).Return(self, nil)
		mocks.cache.EXPECT().GetColleagues(gomock.Any(), "DISI").Return(nil, errors.New("redis down"))
		mocks.registry.EXPECT().ListColleagues(gomock.Any(), "DISI", "").Return(unit, nil)
		mocks.cache.EXPECT().SetColleagues(gomock.Any(), "DISI", unit).Return(errors.New("redis down"))
		mocks.logger.EXPECT().Warnf(gomock.Any(), gomock.Any(), gomock.Any()).Times(2)

		colleagues, err := s.ListColleagues(context.Background(), caller)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(colleagues) != 2 {
			t.Fatalf("expected 2 colleagues, got %d", len(colleagues))
		}
	})

	t.Run("caller not in registry", func(t *testing.T) {
		s, mocks := newTestService(t)

		mocks.registry.EXPECT().GetAffiliateByEmail(gomock.Any(), caller.Email).Return(nil, storage.ErrNotFound)

		_, err := s.ListColleagues(context.Background(), caller)
		if !errors.Is(err, types.ErrAccountNotFound) {
			t.Fatalf("expected not found error, got %v", err)
		}
	})
}
