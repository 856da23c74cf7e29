package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"rideshare/internal/registry"
)

// StatsCache holds a recent stats snapshot in Redis so repeated reporting
// requests don't take the ledger lock every time. Entries expire quickly;
// a served snapshot may be up to StatsTTL stale.
type StatsCache struct {
	client *redis.Client
}

// StatsTTL bounds the staleness of a cached stats report.
const StatsTTL = 5 * time.Second

const statsKey = "cache:stats"

// NewStatsCache creates a new StatsCache.
func NewStatsCache(client *redis.Client) *StatsCache {
	return &StatsCache{client: client}
}

// Get returns the cached stats rows, or nil on a cache miss.
func (s *StatsCache) Get(ctx context.Context) ([]registry.UserStats, error) {
	data, err := s.client.Get(ctx, statsKey).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var rows []registry.UserStats
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// Set stores a stats snapshot with the standard TTL.
func (s *StatsCache) Set(ctx context.Context, rows []registry.UserStats) error {
	data, err := json.Marshal(rows)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, statsKey, data, StatsTTL).Err()
}

// Invalidate drops the cached snapshot after a mutation.
func (s *StatsCache) Invalidate(ctx context.Context) error {
	return s.client.Del(ctx, statsKey).Err()
}
