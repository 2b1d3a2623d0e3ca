package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// StatusCache handles Redis caching of customer-status lookups so the CRM
// collaborator is not hit on every adaptation request
type StatusCache interface {
	GetStatus(ctx context.Context, userID int64) (string, error)
	SetStatus(ctx context.Context, userID int64, status string) error
}

type statusCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStatusCache creates a new customer-status cache
func NewStatusCache(client *redis.Client, ttl time.Duration) StatusCache {
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &statusCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *statusCache) key(userID int64) string {
	return fmt.Sprintf("user:%d:status", userID)
}

// GetStatus returns the cached status, or "" on a miss.
func (c *statusCache) GetStatus(ctx context.Context, userID int64) (string, error) {
	val, err := c.client.Get(ctx, c.key(userID)).Result()
	if err == redis.Nil {
		return "", nil
	}
	return val, err
}

func (c *statusCache) SetStatus(ctx context.Context, userID int64, status string) error {
	return c.client.Set(ctx, c.key(userID), status, c.ttl).Err()
}
