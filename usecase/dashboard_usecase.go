package usecase

import (
	"context"

	"golang.org/x/sync/errgroup"

	"my-tube/domain/model"
	"my-tube/domain/repository"
	"my-tube/infrastructure/logger"
)

type IDashboardUsecase interface {
	GetChannelStats(ctx context.Context, caller model.User) (model.ChannelStats, error)
	GetChannelVideos(ctx context.Context, caller model.User) ([]model.Video, error)
}

type dashboardUsecase struct {
	videoRepo repository.IVideo
	likeRepo  repository.ILike
	subRepo   repository.ISubscription
	stats     repository.IStatsCache
}

func NewDashboardUsecase(videoRepo repository.IVideo, likeRepo repository.ILike, subRepo repository.ISubscription, stats repository.IStatsCache) IDashboardUsecase {
	return &dashboardUsecase{videoRepo: videoRepo, likeRepo: likeRepo, subRepo: subRepo, stats: stats}
}

// GetChannelStats serves from the cache when fresh, otherwise gathers the
// four aggregates concurrently and caches the result. A cache failure only
// costs the recomputation.
func (u *dashboardUsecase) GetChannelStats(ctx context.Context, caller model.User) (model.ChannelStats, error) {
	if cached, err := u.stats.GetChannelStats(ctx, caller.ID.Hex()); err != nil {
		logger.GetLogger().WithField("error", err).Warn("Stats cache read failed")
	} else if cached != nil {
		return *cached, nil
	}

	var stats model.ChannelStats
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := u.videoRepo.CountByOwner(gctx, caller.ID)
		stats.TotalVideos = n
		return err
	})
	g.Go(func() error {
		n, err := u.videoRepo.SumViewsByOwner(gctx, caller.ID)
		stats.TotalViews = n
		return err
	})
	g.Go(func() error {
		n, err := u.likeRepo.CountReceived(gctx, caller.ID)
		stats.TotalLikes = n
		return err
	})
	g.Go(func() error {
		n, err := u.subRepo.CountByChannel(gctx, caller.ID)
		stats.TotalSubscribers = n
		return err
	})
	if err := g.Wait(); err != nil {
		return model.ChannelStats{}, err
	}

	if err := u.stats.SetChannelStats(ctx, caller.ID.Hex(), stats); err != nil {
		logger.GetLogger().WithField("error", err).Warn("Stats cache write failed")
	}
	return stats, nil
}

// GetChannelVideos lists every video the caller owns, published or not.
func (u *dashboardUsecase) GetChannelVideos(ctx context.Context, caller model.User) ([]model.Video, error) {
	videos, err := u.videoRepo.ListByOwner(ctx, caller.ID)
	if err != nil {
		return nil, err
	}
	if videos == nil {
		videos = []model.Video{}
	}
	return videos, nil
}
