package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"adaptiveui/internal/cache"
)

// Customer statuses as reported by the profile collaborator. The engine
// treats the value as opaque; this list only feeds the static provider.
var customerStatuses = []string{"new", "regular", "vip", "inactive"}

// StatusProvider resolves a user's customer status from an external
// profile/CRM system
type StatusProvider interface {
	CustomerStatus(ctx context.Context, userID int64) (string, error)
}

// StaticStatusProvider buckets users deterministically by id. Stands in for
// a real CRM connector in development and tests.
type StaticStatusProvider struct{}

// NewStaticStatusProvider creates the deterministic provider
func NewStaticStatusProvider() *StaticStatusProvider {
	return &StaticStatusProvider{}
}

// CustomerStatus maps the user id onto one of the known statuses.
func (p *StaticStatusProvider) CustomerStatus(_ context.Context, userID int64) (string, error) {
	return customerStatuses[userID%int64(len(customerStatuses))], nil
}

// StatusService looks up customer statuses through the provider with a Redis
// cache in front
type StatusService struct {
	provider StatusProvider
	cache    cache.StatusCache
	logger   *zap.Logger
}

// NewStatusService creates a new status service. cache may be nil.
func NewStatusService(provider StatusProvider, statusCache cache.StatusCache, logger *zap.Logger) *StatusService {
	return &StatusService{
		provider: provider,
		cache:    statusCache,
		logger:   logger,
	}
}

// Lookup returns the user's customer status, serving from cache when possible.
func (s *StatusService) Lookup(ctx context.Context, userID int64) (string, error) {
	if s.cache != nil {
		status, err := s.cache.GetStatus(ctx, userID)
		if err != nil {
			s.logger.Warn("status cache read failed", zap.Int64("userId", userID), zap.Error(err))
		} else if status != "" {
			return status, nil
		}
	}

	status, err := s.provider.CustomerStatus(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("customer status lookup: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.SetStatus(ctx, userID, status); err != nil {
			s.logger.Warn("status cache write failed", zap.Int64("userId", userID), zap.Error(err))
		}
	}
	return status, nil
}
