package usecase

import (
	"context"
	"strings"

	"my-tube/domain/apperror"
	"my-tube/domain/model"
	"my-tube/domain/repository"
)

type ITweetUsecase interface {
	Create(ctx context.Context, caller model.User, content string) (model.Tweet, error)
	ListByUser(ctx context.Context, userID string) ([]model.Tweet, error)
	Update(ctx context.Context, caller model.User, tweetID, content string) (model.Tweet, error)
	Delete(ctx context.Context, caller model.User, tweetID string) error
}

type tweetUsecase struct {
	tweetRepo repository.ITweet
}

func NewTweetUsecase(tweetRepo repository.ITweet) ITweetUsecase {
	return &tweetUsecase{tweetRepo: tweetRepo}
}

func (u *tweetUsecase) Create(ctx context.Context, caller model.User, content string) (model.Tweet, error) {
	if strings.TrimSpace(content) == "" {
		return model.Tweet{}, apperror.InvalidInput("content is required")
	}
	return u.tweetRepo.Create(ctx, model.Tweet{
		Content: content,
		Owner:   caller.ID,
	})
}

func (u *tweetUsecase) ListByUser(ctx context.Context, userID string) ([]model.Tweet, error) {
	id, err := parseID(userID, "user id")
	if err != nil {
		return nil, err
	}
	tweets, err := u.tweetRepo.ListByOwner(ctx, id)
	if err != nil {
		return nil, err
	}
	if tweets == nil {
		tweets = []model.Tweet{}
	}
	return tweets, nil
}

func (u *tweetUsecase) Update(ctx context.Context, caller model.User, tweetID, content string) (model.Tweet, error) {
	if strings.TrimSpace(content) == "" {
		return model.Tweet{}, apperror.InvalidInput("content is required")
	}
	id, err := parseID(tweetID, "tweet id")
	if err != nil {
		return model.Tweet{}, err
	}
	tweet, err := u.tweetRepo.GetByID(ctx, id)
	if err != nil {
		return model.Tweet{}, err
	}
	if err := requireOwner(caller.ID, tweet.Owner, "tweet"); err != nil {
		return model.Tweet{}, err
	}
	return u.tweetRepo.UpdateContent(ctx, id, content)
}

func (u *tweetUsecase) Delete(ctx context.Context, caller model.User, tweetID string) error {
	id, err := parseID(tweetID, "tweet id")
	if err != nil {
		return err
	}
	tweet, err := u.tweetRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := requireOwner(caller.ID, tweet.Owner, "tweet"); err != nil {
		return err
	}
	return u.tweetRepo.Delete(ctx, id)
}
