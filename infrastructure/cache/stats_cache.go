package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"my-tube/domain/model"
	"my-tube/domain/repository"
	"my-tube/infrastructure/logger"
)

const statsTTL = 60 * time.Second

// StatsCache keeps dashboard channel stats in redis with a short TTL. All
// methods are no-ops when the client is nil so the API keeps working without
// a cache.
type StatsCache struct {
	client *redis.Client
}

func NewStatsCache(client *redis.Client) repository.IStatsCache {
	return &StatsCache{client: client}
}

func statsKey(userID string) string {
	return "dashboard:stats:" + userID
}

func (c *StatsCache) GetChannelStats(ctx context.Context, userID string) (*model.ChannelStats, error) {
	if c.client == nil {
		return nil, nil
	}
	raw, err := c.client.Get(ctx, statsKey(userID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	var stats model.ChannelStats
	if err := json.Unmarshal([]byte(raw), &stats); err != nil {
		logger.GetLogger().WithField("error", err).Warn("Corrupt cached stats entry, dropping")
		_ = c.client.Del(ctx, statsKey(userID)).Err()
		return nil, nil
	}
	return &stats, nil
}

func (c *StatsCache) SetChannelStats(ctx context.Context, userID string, stats model.ChannelStats) error {
	if c.client == nil {
		return nil
	}
	raw, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, statsKey(userID), raw, statsTTL).Err()
}

func (c *StatsCache) InvalidateChannelStats(ctx context.Context, userID string) error {
	if c.client == nil {
		return nil
	}
	return c.client.Del(ctx, statsKey(userID)).Err()
}
