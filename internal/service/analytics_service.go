package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"adaptiveui/internal/cache"
	"adaptiveui/internal/model"
	"adaptiveui/internal/repository"
)

// AnalyticsService aggregates statistics over the rule store and interaction
// log, with a short-lived Redis cache in front
type AnalyticsService struct {
	rules        repository.RuleRepo
	interactions repository.InteractionRepo
	cache        cache.AnalyticsCache
	logger       *zap.Logger
}

// NewAnalyticsService creates a new analytics service. cache may be nil.
func NewAnalyticsService(
	rules repository.RuleRepo,
	interactions repository.InteractionRepo,
	analyticsCache cache.AnalyticsCache,
	logger *zap.Logger,
) *AnalyticsService {
	return &AnalyticsService{
		rules:        rules,
		interactions: interactions,
		cache:        analyticsCache,
		logger:       logger,
	}
}

// Statistics returns the current aggregate snapshot.
func (s *AnalyticsService) Statistics(ctx context.Context) (*model.Statistics, error) {
	if s.cache != nil {
		cached, err := s.cache.GetStatistics(ctx)
		if err != nil {
			s.logger.Warn("analytics cache read failed", zap.Error(err))
		} else if cached != nil {
			return cached, nil
		}
	}

	total, err := s.rules.Count(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("count rules: %w", err)
	}
	active, err := s.rules.Count(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("count active rules: %w", err)
	}
	users, err := s.interactions.CountDistinctUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}

	stats := &model.Statistics{
		TotalRules:   int(total),
		ActiveRules:  int(active),
		TotalUsers:   int(users),
		Metrics:      map[string]float64{},
		DateRecorded: time.Now().UTC(),
	}
	if total > 0 {
		stats.Metrics["active_ratio"] = float64(active) / float64(total)
	}

	if s.cache != nil {
		if err := s.cache.SetStatistics(ctx, stats); err != nil {
			s.logger.Warn("analytics cache write failed", zap.Error(err))
		}
	}
	return stats, nil
}

// Report bundles the statistics snapshot with the full rule set.
func (s *AnalyticsService) Report(ctx context.Context) (*model.AnalyticsReport, error) {
	stats, err := s.Statistics(ctx)
	if err != nil {
		return nil, err
	}
	rules, err := s.rules.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list rules: %w", err)
	}

	return &model.AnalyticsReport{
		Summary:   *stats,
		Rules:     rules,
		Timestamp: time.Now().UTC(),
	}, nil
}
