package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"adaptiveui/internal/model"
)

const statisticsKey = "analytics:statistics"

// AnalyticsCache handles Redis caching of the statistics snapshot so the
// dashboard does not recount rules and users on every poll
type AnalyticsCache interface {
	GetStatistics(ctx context.Context) (*model.Statistics, error)
	SetStatistics(ctx context.Context, stats *model.Statistics) error
}

type analyticsCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewAnalyticsCache creates a new analytics cache
func NewAnalyticsCache(client *redis.Client, ttl time.Duration) AnalyticsCache {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &analyticsCache{
		client: client,
		ttl:    ttl,
	}
}

// GetStatistics returns the cached snapshot, or nil on a miss.
func (c *analyticsCache) GetStatistics(ctx context.Context) (*model.Statistics, error) {
	data, err := c.client.Get(ctx, statisticsKey).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var stats model.Statistics
	if err := json.Unmarshal([]byte(data), &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *analyticsCache) SetStatistics(ctx context.Context, stats *model.Statistics) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, statisticsKey, data, c.ttl).Err()
}
