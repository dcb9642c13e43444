package usecase

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"

	"my-tube/domain/apperror"
	"my-tube/domain/dto"
	"my-tube/domain/model"
	"my-tube/domain/repository"
	"my-tube/infrastructure/logger"
)

type IVideoUsecase interface {
	Publish(ctx context.Context, caller model.User, req dto.PublishVideoRequest, videoPath, thumbnailPath string) (model.Video, error)
	List(ctx context.Context, q dto.ListVideosQuery, caller model.User) (dto.Page, error)
	GetByID(ctx context.Context, videoID string, caller model.User) (model.Video, error)
	UpdateDetails(ctx context.Context, caller model.User, videoID string, req dto.UpdateVideoRequest, thumbnailPath string) (model.Video, error)
	Delete(ctx context.Context, caller model.User, videoID string) error
	TogglePublish(ctx context.Context, caller model.User, videoID string) (model.Video, error)
}

type videoUsecase struct {
	videoRepo repository.IVideo
	userRepo  repository.IUser
	media     repository.IMediaStorage
	stats     repository.IStatsCache
}

func NewVideoUsecase(videoRepo repository.IVideo, userRepo repository.IUser, media repository.IMediaStorage, stats repository.IStatsCache) IVideoUsecase {
	return &videoUsecase{videoRepo: videoRepo, userRepo: userRepo, media: media, stats: stats}
}

// Publish uploads both assets before creating the document, so a half-failed
// publish never leaves a video without media. The video goes live immediately.
func (u *videoUsecase) Publish(ctx context.Context, caller model.User, req dto.PublishVideoRequest, videoPath, thumbnailPath string) (model.Video, error) {
	if strings.TrimSpace(req.Title) == "" {
		return model.Video{}, apperror.InvalidInput("title is required")
	}
	if videoPath == "" {
		return model.Video{}, apperror.InvalidInput("video file is required")
	}
	if thumbnailPath == "" {
		return model.Video{}, apperror.InvalidInput("thumbnail is required")
	}

	videoAsset, err := u.media.Upload(ctx, videoPath, "")
	if err != nil {
		return model.Video{}, err
	}
	thumbAsset, err := u.media.Upload(ctx, thumbnailPath, "")
	if err != nil {
		return model.Video{}, err
	}

	duration := videoAsset.Duration
	if duration == 0 {
		duration = req.Duration
	}

	video, err := u.videoRepo.Create(ctx, model.Video{
		VideoFile:   videoAsset.URL,
		Thumbnail:   thumbAsset.URL,
		Title:       req.Title,
		Description: req.Description,
		Duration:    duration,
		IsPublished: true,
		Owner:       caller.ID,
	})
	if err != nil {
		return model.Video{}, err
	}
	u.invalidateStats(ctx, caller.ID)
	return video, nil
}

func (u *videoUsecase) List(ctx context.Context, q dto.ListVideosQuery, caller model.User) (dto.Page, error) {
	page, limit, skip := NormalizePage(q.Page, q.Limit)

	filter := repository.VideoFilter{
		Query:    strings.TrimSpace(q.Query),
		SortBy:   q.SortBy,
		SortDesc: strings.ToLower(q.SortType) != "asc",
		Skip:     skip,
		Limit:    limit,
	}
	if q.UserID != "" {
		owner, err := parseID(q.UserID, "user id")
		if err != nil {
			return dto.Page{}, err
		}
		filter.Owner = &owner
	}
	if !caller.ID.IsZero() {
		callerID := caller.ID
		filter.Caller = &callerID
	}

	videos, total, err := u.videoRepo.List(ctx, filter)
	if err != nil {
		return dto.Page{}, err
	}
	if videos == nil {
		videos = []model.Video{}
	}
	return dto.NewPage(videos, total, page, limit), nil
}

// GetByID returns the video, bumps its view count and records it in the
// caller's watch history. Unpublished videos are visible only to their owner.
func (u *videoUsecase) GetByID(ctx context.Context, videoID string, caller model.User) (model.Video, error) {
	id, err := parseID(videoID, "video id")
	if err != nil {
		return model.Video{}, err
	}
	video, err := u.videoRepo.GetByID(ctx, id)
	if err != nil {
		return model.Video{}, err
	}
	if !video.IsPublished && !CanMutate(caller.ID, video.Owner) {
		return model.Video{}, apperror.NotFound("video not found")
	}

	if err := u.videoRepo.IncrementViews(ctx, id); err != nil {
		logger.GetLogger().WithField("error", err).Warn("Unable to bump view count")
	} else {
		video.Views++
	}
	if err := u.userRepo.AddWatchHistory(ctx, caller.ID, id); err != nil {
		logger.GetLogger().WithField("error", err).Warn("Unable to record watch history")
	}
	return video, nil
}

func (u *videoUsecase) UpdateDetails(ctx context.Context, caller model.User, videoID string, req dto.UpdateVideoRequest, thumbnailPath string) (model.Video, error) {
	id, err := parseID(videoID, "video id")
	if err != nil {
		return model.Video{}, err
	}
	video, err := u.videoRepo.GetByID(ctx, id)
	if err != nil {
		return model.Video{}, err
	}
	if err := requireOwner(caller.ID, video.Owner, "video"); err != nil {
		return model.Video{}, err
	}

	fields := map[string]interface{}{
		"title":       req.Title,
		"description": req.Description,
	}
	if thumbnailPath != "" {
		thumb, err := u.media.Upload(ctx, thumbnailPath, "")
		if err != nil {
			return model.Video{}, err
		}
		fields["thumbnail"] = thumb.URL
	}
	return u.videoRepo.UpdateFields(ctx, id, fields)
}

func (u *videoUsecase) Delete(ctx context.Context, caller model.User, videoID string) error {
	id, err := parseID(videoID, "video id")
	if err != nil {
		return err
	}
	video, err := u.videoRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := requireOwner(caller.ID, video.Owner, "video"); err != nil {
		return err
	}
	if err := u.videoRepo.Delete(ctx, id); err != nil {
		return err
	}
	u.invalidateStats(ctx, caller.ID)
	return nil
}

func (u *videoUsecase) TogglePublish(ctx context.Context, caller model.User, videoID string) (model.Video, error) {
	id, err := parseID(videoID, "video id")
	if err != nil {
		return model.Video{}, err
	}
	video, err := u.videoRepo.GetByID(ctx, id)
	if err != nil {
		return model.Video{}, err
	}
	if err := requireOwner(caller.ID, video.Owner, "video"); err != nil {
		return model.Video{}, err
	}
	return u.videoRepo.UpdateFields(ctx, id, map[string]interface{}{
		"isPublished": !video.IsPublished,
	})
}

func (u *videoUsecase) invalidateStats(ctx context.Context, owner bson.ObjectID) {
	if err := u.stats.InvalidateChannelStats(ctx, owner.Hex()); err != nil {
		logger.GetLogger().WithField("error", err).Warn("Unable to invalidate cached channel stats")
	}
}
