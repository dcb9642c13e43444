package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/v2/bson"

	"my-tube/domain/model"
	"my-tube/usecase"
)

func newDashboardFixture() (*MockVideoRepo, *MockLikeRepo, *MockSubscriptionRepo, *MockStatsCache, usecase.IDashboardUsecase) {
	videoRepo := new(MockVideoRepo)
	likeRepo := new(MockLikeRepo)
	subRepo := new(MockSubscriptionRepo)
	stats := new(MockStatsCache)
	return videoRepo, likeRepo, subRepo, stats, usecase.NewDashboardUsecase(videoRepo, likeRepo, subRepo, stats)
}

func TestChannelStatsComputedAndCached(t *testing.T) {
	videoRepo, likeRepo, subRepo, stats, uc := newDashboardFixture()
	caller := model.User{ID: bson.NewObjectID()}

	stats.On("GetChannelStats", mock.Anything, caller.ID.Hex()).Return(nil, nil).Once()
	videoRepo.On("CountByOwner", mock.Anything, caller.ID).Return(int64(4), nil).Once()
	videoRepo.On("SumViewsByOwner", mock.Anything, caller.ID).Return(int64(1234), nil).Once()
	likeRepo.On("CountReceived", mock.Anything, caller.ID).Return(int64(56), nil).Once()
	subRepo.On("CountByChannel", mock.Anything, caller.ID).Return(int64(7), nil).Once()
	stats.On("SetChannelStats", mock.Anything, caller.ID.Hex(), model.ChannelStats{
		TotalVideos:      4,
		TotalViews:       1234,
		TotalLikes:       56,
		TotalSubscribers: 7,
	}).Return(nil).Once()

	got, err := uc.GetChannelStats(context.Background(), caller)

	assert.NoError(t, err)
	assert.Equal(t, int64(4), got.TotalVideos)
	assert.Equal(t, int64(1234), got.TotalViews)
	assert.Equal(t, int64(56), got.TotalLikes)
	assert.Equal(t, int64(7), got.TotalSubscribers)
	stats.AssertExpectations(t)
	videoRepo.AssertExpectations(t)
}

func TestChannelStatsServedFromCache(t *testing.T) {
	videoRepo, _, _, stats, uc := newDashboardFixture()
	caller := model.User{ID: bson.NewObjectID()}
	cached := model.ChannelStats{TotalVideos: 9, TotalSubscribers: 3}

	stats.On("GetChannelStats", mock.Anything, caller.ID.Hex()).Return(&cached, nil).Once()

	got, err := uc.GetChannelStats(context.Background(), caller)

	assert.NoError(t, err)
	assert.Equal(t, cached, got)
	videoRepo.AssertNotCalled(t, "CountByOwner", mock.Anything, mock.Anything)
}

func TestChannelVideosIncludesUnpublished(t *testing.T) {
	videoRepo, _, _, _, uc := newDashboardFixture()
	caller := model.User{ID: bson.NewObjectID()}

	videoRepo.On("ListByOwner", mock.Anything, caller.ID).Return([]model.Video{
		{Owner: caller.ID, IsPublished: true},
		{Owner: caller.ID, IsPublished: false},
	}, nil).Once()

	videos, err := uc.GetChannelVideos(context.Background(), caller)

	assert.NoError(t, err)
	assert.Len(t, videos, 2)
}
