package usecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/v2/bson"

	"my-tube/domain/model"
	"my-tube/domain/repository"
)

// Mock implementations of the repository contracts.

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user model.User) (model.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserRepo) GetByID(ctx context.Context, id bson.ObjectID) (model.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserRepo) GetByUsername(ctx context.Context, username string) (model.User, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserRepo) GetByUsernameOrEmail(ctx context.Context, username, email string) (model.User, error) {
	args := m.Called(ctx, username, email)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserRepo) UpdateFields(ctx context.Context, id bson.ObjectID, fields map[string]interface{}) (model.User, error) {
	args := m.Called(ctx, id, fields)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserRepo) SetRefreshToken(ctx context.Context, id bson.ObjectID, token string) error {
	args := m.Called(ctx, id, token)
	return args.Error(0)
}

func (m *MockUserRepo) AddWatchHistory(ctx context.Context, userID, videoID bson.ObjectID) error {
	args := m.Called(ctx, userID, videoID)
	return args.Error(0)
}

func (m *MockUserRepo) GetChannelProfile(ctx context.Context, username string, caller bson.ObjectID) (model.ChannelProfile, error) {
	args := m.Called(ctx, username, caller)
	return args.Get(0).(model.ChannelProfile), args.Error(1)
}

func (m *MockUserRepo) GetWatchHistory(ctx context.Context, userID bson.ObjectID) ([]model.WatchedVideo, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.WatchedVideo), args.Error(1)
}

type MockVideoRepo struct {
	mock.Mock
}

func (m *MockVideoRepo) Create(ctx context.Context, video model.Video) (model.Video, error) {
	args := m.Called(ctx, video)
	return args.Get(0).(model.Video), args.Error(1)
}

func (m *MockVideoRepo) GetByID(ctx context.Context, id bson.ObjectID) (model.Video, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Video), args.Error(1)
}

func (m *MockVideoRepo) List(ctx context.Context, filter repository.VideoFilter) ([]model.Video, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]model.Video), args.Get(1).(int64), args.Error(2)
}

func (m *MockVideoRepo) ListByOwner(ctx context.Context, owner bson.ObjectID) ([]model.Video, error) {
	args := m.Called(ctx, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Video), args.Error(1)
}

func (m *MockVideoRepo) UpdateFields(ctx context.Context, id bson.ObjectID, fields map[string]interface{}) (model.Video, error) {
	args := m.Called(ctx, id, fields)
	return args.Get(0).(model.Video), args.Error(1)
}

func (m *MockVideoRepo) Delete(ctx context.Context, id bson.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockVideoRepo) IncrementViews(ctx context.Context, id bson.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockVideoRepo) CountByOwner(ctx context.Context, owner bson.ObjectID) (int64, error) {
	args := m.Called(ctx, owner)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockVideoRepo) SumViewsByOwner(ctx context.Context, owner bson.ObjectID) (int64, error) {
	args := m.Called(ctx, owner)
	return args.Get(0).(int64), args.Error(1)
}

type MockCommentRepo struct {
	mock.Mock
}

func (m *MockCommentRepo) Create(ctx context.Context, comment model.Comment) (model.Comment, error) {
	args := m.Called(ctx, comment)
	return args.Get(0).(model.Comment), args.Error(1)
}

func (m *MockCommentRepo) GetByID(ctx context.Context, id bson.ObjectID) (model.Comment, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Comment), args.Error(1)
}

func (m *MockCommentRepo) UpdateContent(ctx context.Context, id bson.ObjectID, content string) (model.Comment, error) {
	args := m.Called(ctx, id, content)
	return args.Get(0).(model.Comment), args.Error(1)
}

func (m *MockCommentRepo) Delete(ctx context.Context, id bson.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCommentRepo) ListByVideo(ctx context.Context, videoID, caller bson.ObjectID, skip, limit int64) ([]model.CommentView, int64, error) {
	args := m.Called(ctx, videoID, caller, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]model.CommentView), args.Get(1).(int64), args.Error(2)
}

type MockTweetRepo struct {
	mock.Mock
}

func (m *MockTweetRepo) Create(ctx context.Context, tweet model.Tweet) (model.Tweet, error) {
	args := m.Called(ctx, tweet)
	return args.Get(0).(model.Tweet), args.Error(1)
}

func (m *MockTweetRepo) GetByID(ctx context.Context, id bson.ObjectID) (model.Tweet, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Tweet), args.Error(1)
}

func (m *MockTweetRepo) ListByOwner(ctx context.Context, owner bson.ObjectID) ([]model.Tweet, error) {
	args := m.Called(ctx, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Tweet), args.Error(1)
}

func (m *MockTweetRepo) UpdateContent(ctx context.Context, id bson.ObjectID, content string) (model.Tweet, error) {
	args := m.Called(ctx, id, content)
	return args.Get(0).(model.Tweet), args.Error(1)
}

func (m *MockTweetRepo) Delete(ctx context.Context, id bson.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockPlaylistRepo struct {
	mock.Mock
}

func (m *MockPlaylistRepo) Create(ctx context.Context, playlist model.Playlist) (model.Playlist, error) {
	args := m.Called(ctx, playlist)
	return args.Get(0).(model.Playlist), args.Error(1)
}

func (m *MockPlaylistRepo) GetByID(ctx context.Context, id bson.ObjectID) (model.Playlist, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Playlist), args.Error(1)
}

func (m *MockPlaylistRepo) ListByOwner(ctx context.Context, owner bson.ObjectID) ([]model.Playlist, error) {
	args := m.Called(ctx, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Playlist), args.Error(1)
}

func (m *MockPlaylistRepo) UpdateFields(ctx context.Context, id bson.ObjectID, fields map[string]interface{}) (model.Playlist, error) {
	args := m.Called(ctx, id, fields)
	return args.Get(0).(model.Playlist), args.Error(1)
}

func (m *MockPlaylistRepo) Delete(ctx context.Context, id bson.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPlaylistRepo) AddVideo(ctx context.Context, playlistID, videoID bson.ObjectID) (model.Playlist, error) {
	args := m.Called(ctx, playlistID, videoID)
	return args.Get(0).(model.Playlist), args.Error(1)
}

func (m *MockPlaylistRepo) RemoveVideo(ctx context.Context, playlistID, videoID bson.ObjectID) (model.Playlist, error) {
	args := m.Called(ctx, playlistID, videoID)
	return args.Get(0).(model.Playlist), args.Error(1)
}

type MockLikeRepo struct {
	mock.Mock
}

func (m *MockLikeRepo) Find(ctx context.Context, target model.LikeTarget, targetID, userID bson.ObjectID) (model.Like, error) {
	args := m.Called(ctx, target, targetID, userID)
	return args.Get(0).(model.Like), args.Error(1)
}

func (m *MockLikeRepo) Create(ctx context.Context, like model.Like) (model.Like, error) {
	args := m.Called(ctx, like)
	return args.Get(0).(model.Like), args.Error(1)
}

func (m *MockLikeRepo) Delete(ctx context.Context, id bson.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockLikeRepo) ListLikedVideos(ctx context.Context, userID bson.ObjectID) ([]model.WatchedVideo, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.WatchedVideo), args.Error(1)
}

func (m *MockLikeRepo) CountReceived(ctx context.Context, owner bson.ObjectID) (int64, error) {
	args := m.Called(ctx, owner)
	return args.Get(0).(int64), args.Error(1)
}

type MockSubscriptionRepo struct {
	mock.Mock
}

func (m *MockSubscriptionRepo) Find(ctx context.Context, subscriber, channel bson.ObjectID) (model.Subscription, error) {
	args := m.Called(ctx, subscriber, channel)
	return args.Get(0).(model.Subscription), args.Error(1)
}

func (m *MockSubscriptionRepo) Create(ctx context.Context, sub model.Subscription) (model.Subscription, error) {
	args := m.Called(ctx, sub)
	return args.Get(0).(model.Subscription), args.Error(1)
}

func (m *MockSubscriptionRepo) Delete(ctx context.Context, id bson.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSubscriptionRepo) CountByChannel(ctx context.Context, channel bson.ObjectID) (int64, error) {
	args := m.Called(ctx, channel)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSubscriptionRepo) CountBySubscriber(ctx context.Context, subscriber bson.ObjectID) (int64, error) {
	args := m.Called(ctx, subscriber)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSubscriptionRepo) ListSubscribers(ctx context.Context, channel bson.ObjectID) ([]model.ChannelUser, error) {
	args := m.Called(ctx, channel)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ChannelUser), args.Error(1)
}

func (m *MockSubscriptionRepo) ListSubscribedChannels(ctx context.Context, subscriber bson.ObjectID) ([]model.ChannelUser, error) {
	args := m.Called(ctx, subscriber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ChannelUser), args.Error(1)
}

type MockMediaStorage struct {
	mock.Mock
}

func (m *MockMediaStorage) Upload(ctx context.Context, localPath, contentType string) (repository.UploadResult, error) {
	args := m.Called(ctx, localPath, contentType)
	return args.Get(0).(repository.UploadResult), args.Error(1)
}

type MockStatsCache struct {
	mock.Mock
}

func (m *MockStatsCache) GetChannelStats(ctx context.Context, userID string) (*model.ChannelStats, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ChannelStats), args.Error(1)
}

func (m *MockStatsCache) SetChannelStats(ctx context.Context, userID string, stats model.ChannelStats) error {
	args := m.Called(ctx, userID, stats)
	return args.Error(0)
}

func (m *MockStatsCache) InvalidateChannelStats(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}
