// Package redis provides a Redis-backed catalog snapshot cache so repeated
// recommendation calls do not refetch provider APIs.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/davidbz/modelscout/internal/domain"
)

const defaultCatalogKey = "modelscout:catalog"

// CatalogCache implements domain.CatalogCache on top of Redis, storing the
// whole catalog as one JSON snapshot with a TTL.
type CatalogCache struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

// NewCatalogCache creates a new Redis catalog cache.
func NewCatalogCache(client *redis.Client, ttl time.Duration) (*CatalogCache, error) {
	if client == nil {
		return nil, errors.New("redis client cannot be nil")
	}
	if ttl <= 0 {
		return nil, errors.New("cache TTL must be positive")
	}

	return &CatalogCache{
		client: client,
		key:    defaultCatalogKey,
		ttl:    ttl,
	}, nil
}

// Get returns the cached snapshot, reporting whether one was present.
// A missing key is not an error.
func (c *CatalogCache) Get(ctx context.Context) ([]domain.Model, bool, error) {
	payload, err := c.client.Get(ctx, c.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read catalog cache: %w", err)
	}

	var models []domain.Model
	if err := json.Unmarshal(payload, &models); err != nil {
		return nil, false, fmt.Errorf("failed to decode catalog cache: %w", err)
	}

	return models, true, nil
}

// Set stores a snapshot under the configured TTL.
func (c *CatalogCache) Set(ctx context.Context, models []domain.Model) error {
	payload, err := json.Marshal(models)
	if err != nil {
		return fmt.Errorf("failed to encode catalog cache: %w", err)
	}

	if err := c.client.Set(ctx, c.key, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write catalog cache: %w", err)
	}

	return nil
}
