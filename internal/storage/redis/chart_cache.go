package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"xrpl-money-flow/internal/domain"
	"xrpl-money-flow/internal/storage"
)

// ChartCache implements storage.ChartCache on Redis. Bundles are stored
// as JSON under smartmoney:chart:<tokenID>.
type ChartCache struct {
	client *Client
}

// NewChartCache creates a new ChartCache.
func NewChartCache(client *Client) *ChartCache {
	return &ChartCache{client: client}
}

// Compile-time interface check.
var _ storage.ChartCache = (*ChartCache)(nil)

// Put stores the bundle under its token id for ttl.
func (c *ChartCache) Put(ctx context.Context, bundle *domain.ChartBundle, ttl time.Duration) error {
	if bundle == nil || bundle.TokenID == "" {
		return storage.ErrInvalidInput
	}

	data, err := json.Marshal(bundle)
	if err != nil {
		return fmt.Errorf("marshal chart bundle: %w", err)
	}

	if err := c.client.Set(ctx, chartKey(bundle.TokenID), data, ttl).Err(); err != nil {
		return fmt.Errorf("set chart bundle: %w", err)
	}
	return nil
}

// Get retrieves a cached bundle. Returns ErrNotFound on miss or expiry.
func (c *ChartCache) Get(ctx context.Context, tokenID string) (*domain.ChartBundle, error) {
	data, err := c.client.Get(ctx, chartKey(tokenID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("get chart bundle: %w", err)
	}

	var bundle domain.ChartBundle
	if err := json.Unmarshal(data, &bundle); err != nil {
		return nil, fmt.Errorf("unmarshal chart bundle: %w", err)
	}
	return &bundle, nil
}

func chartKey(tokenID string) string {
	return "smartmoney:chart:" + tokenID
}
