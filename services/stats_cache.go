package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"goalquest/model"
)

// StatsCache keeps assembled user statistics in Redis for a short TTL,
// so repeated dashboard loads do not hit Mongo for every widget.
type StatsCache struct {
	client *redis.Client
	ttl    time.Duration
}

// GlobalStatsCache is the shared instance, initialized at startup. A nil
// cache is valid and means stats are always recomputed.
var GlobalStatsCache *StatsCache

func NewStatsCache(redisURL string, ttl time.Duration) (*StatsCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %v", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %v", err)
	}

	return &StatsCache{client: client, ttl: ttl}, nil
}

func statsKey(userID string) string {
	return "stats:" + userID
}

// Get returns the cached stats for a user, or nil on a miss.
func (sc *StatsCache) Get(ctx context.Context, userID string) (*model.UserStats, error) {
	if sc == nil {
		return nil, nil
	}

	data, err := sc.client.Get(ctx, statsKey(userID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var stats model.UserStats
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// Set caches the assembled stats for the configured TTL.
func (sc *StatsCache) Set(ctx context.Context, userID string, stats *model.UserStats) error {
	if sc == nil {
		return nil
	}

	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return sc.client.Set(ctx, statsKey(userID), data, sc.ttl).Err()
}

// Invalidate drops a user's cached stats; called whenever a goal or task
// mutation would change them.
func (sc *StatsCache) Invalidate(ctx context.Context, userID string) error {
	if sc == nil {
		return nil
	}
	return sc.client.Del(ctx, statsKey(userID)).Err()
}

// Close closes the Redis connection
func (sc *StatsCache) Close() error {
	if sc == nil {
		return nil
	}
	return sc.client.Close()
}
