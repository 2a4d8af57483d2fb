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

// SeriesCache implements storage.SeriesCache on Redis. Series are stored
// as JSON under smartmoney:series:<address>.
type SeriesCache struct {
	client *Client
}

// NewSeriesCache creates a new SeriesCache.
func NewSeriesCache(client *Client) *SeriesCache {
	return &SeriesCache{client: client}
}

// Compile-time interface check.
var _ storage.SeriesCache = (*SeriesCache)(nil)

// Put stores the series under its address for ttl.
func (c *SeriesCache) Put(ctx context.Context, series *domain.AccountSeries, ttl time.Duration) error {
	if series == nil || series.Address == "" {
		return storage.ErrInvalidInput
	}

	data, err := json.Marshal(series)
	if err != nil {
		return fmt.Errorf("marshal series: %w", err)
	}

	if err := c.client.Set(ctx, seriesKey(series.Address), data, ttl).Err(); err != nil {
		return fmt.Errorf("set series: %w", err)
	}
	return nil
}

// Get retrieves a cached series. Returns ErrNotFound on miss or expiry.
func (c *SeriesCache) Get(ctx context.Context, address string) (*domain.AccountSeries, error) {
	data, err := c.client.Get(ctx, seriesKey(address)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("get series: %w", err)
	}

	var series domain.AccountSeries
	if err := json.Unmarshal(data, &series); err != nil {
		return nil, fmt.Errorf("unmarshal series: %w", err)
	}
	return &series, nil
}

func seriesKey(address string) string {
	return "smartmoney:series:" + address
}
