package repository

import (
	"context"

	"my-tube/domain/model"
)

// IStatsCache caches dashboard channel stats. A nil hit returns (nil, nil);
// implementations must be safe to call when the backing cache is down.
type IStatsCache interface {
	GetChannelStats(ctx context.Context, userID string) (*model.ChannelStats, error)
	SetChannelStats(ctx context.Context, userID string, stats model.ChannelStats) error
	InvalidateChannelStats(ctx context.Context, userID string) error
}
