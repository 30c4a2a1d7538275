package availability

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// CachedSource caches blocked-day lookups in Redis. A cache miss, a decode
// failure, or Redis being down all fall through to the inner source, so the
// cache can never make availability wrong for longer than its TTL.
type CachedSource struct {
	Inner  Source
	Client *redis.Client
	TTL    time.Duration
}

func NewCachedSource(inner Source, client *redis.Client, ttl time.Duration) CachedSource {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return CachedSource{Inner: inner, Client: client, TTL: ttl}
}

func (c CachedSource) BlockedDays(ctx context.Context, voyageID int64, year int, month time.Month) (map[int]bool, error) {
	if c.Client == nil {
		return c.Inner.BlockedDays(ctx, voyageID, year, month)
	}

	key := cacheKey(voyageID, year, month)
	if data, err := c.Client.Get(ctx, key).Bytes(); err == nil {
		var days []int
		if err := json.Unmarshal(data, &days); err == nil {
			out := make(map[int]bool, len(days))
			for _, d := range days {
				out[d] = true
			}
			return out, nil
		}
	}

	blocked, err := c.Inner.BlockedDays(ctx, voyageID, year, month)
	if err != nil {
		return nil, err
	}

	days := make([]int, 0, len(blocked))
	for d := range blocked {
		days = append(days, d)
	}
	if data, err := json.Marshal(days); err == nil {
		_ = c.Client.Set(ctx, key, data, c.TTL).Err()
	}
	return blocked, nil
}

func cacheKey(voyageID int64, year int, month time.Month) string {
	return fmt.Sprintf("availability:%d:%04d-%02d", voyageID, year, int(month))
}
