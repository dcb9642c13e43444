package usecase

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"my-tube/domain/apperror"
	"my-tube/domain/model"
	"my-tube/domain/repository"
)

// ToggleResult reports the like state after a toggle.
type ToggleResult struct {
	Liked bool `json:"liked"`
}

type ILikeUsecase interface {
	ToggleVideoLike(ctx context.Context, caller model.User, videoID string) (ToggleResult, error)
	ToggleCommentLike(ctx context.Context, caller model.User, commentID string) (ToggleResult, error)
	ToggleTweetLike(ctx context.Context, caller model.User, tweetID string) (ToggleResult, error)
	ListLikedVideos(ctx context.Context, caller model.User) ([]model.WatchedVideo, error)
}

type likeUsecase struct {
	likeRepo    repository.ILike
	videoRepo   repository.IVideo
	commentRepo repository.IComment
	tweetRepo   repository.ITweet
}

func NewLikeUsecase(likeRepo repository.ILike, videoRepo repository.IVideo, commentRepo repository.IComment, tweetRepo repository.ITweet) ILikeUsecase {
	return &likeUsecase{likeRepo: likeRepo, videoRepo: videoRepo, commentRepo: commentRepo, tweetRepo: tweetRepo}
}

func (u *likeUsecase) ToggleVideoLike(ctx context.Context, caller model.User, videoID string) (ToggleResult, error) {
	id, err := parseID(videoID, "video id")
	if err != nil {
		return ToggleResult{}, err
	}
	if _, err := u.videoRepo.GetByID(ctx, id); err != nil {
		return ToggleResult{}, err
	}
	return u.toggle(ctx, caller.ID, model.LikeTargetVideo, id)
}

func (u *likeUsecase) ToggleCommentLike(ctx context.Context, caller model.User, commentID string) (ToggleResult, error) {
	id, err := parseID(commentID, "comment id")
	if err != nil {
		return ToggleResult{}, err
	}
	if _, err := u.commentRepo.GetByID(ctx, id); err != nil {
		return ToggleResult{}, err
	}
	return u.toggle(ctx, caller.ID, model.LikeTargetComment, id)
}

func (u *likeUsecase) ToggleTweetLike(ctx context.Context, caller model.User, tweetID string) (ToggleResult, error) {
	id, err := parseID(tweetID, "tweet id")
	if err != nil {
		return ToggleResult{}, err
	}
	if _, err := u.tweetRepo.GetByID(ctx, id); err != nil {
		return ToggleResult{}, err
	}
	return u.toggle(ctx, caller.ID, model.LikeTargetTweet, id)
}

func (u *likeUsecase) ListLikedVideos(ctx context.Context, caller model.User) ([]model.WatchedVideo, error) {
	videos, err := u.likeRepo.ListLikedVideos(ctx, caller.ID)
	if err != nil {
		return nil, err
	}
	if videos == nil {
		videos = []model.WatchedVideo{}
	}
	return videos, nil
}

// toggle deletes the like row when one exists and creates one otherwise, so
// toggling twice always restores the starting state. Each row references
// exactly one target kind.
func (u *likeUsecase) toggle(ctx context.Context, userID bson.ObjectID, target model.LikeTarget, targetID bson.ObjectID) (ToggleResult, error) {
	existing, err := u.likeRepo.Find(ctx, target, targetID, userID)
	if err == nil {
		if err := u.likeRepo.Delete(ctx, existing.ID); err != nil {
			return ToggleResult{}, err
		}
		return ToggleResult{Liked: false}, nil
	}
	if apperror.KindOf(err) != apperror.KindNotFound {
		return ToggleResult{}, err
	}

	like := model.Like{LikedBy: userID}
	switch target {
	case model.LikeTargetVideo:
		like.Video = &targetID
	case model.LikeTargetComment:
		like.Comment = &targetID
	case model.LikeTargetTweet:
		like.Tweet = &targetID
	}
	if _, err := u.likeRepo.Create(ctx, like); err != nil {
		return ToggleResult{}, err
	}
	return ToggleResult{Liked: true}, nil
}
