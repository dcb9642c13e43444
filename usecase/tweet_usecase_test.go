package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/v2/bson"

	"my-tube/domain/apperror"
	"my-tube/domain/model"
	"my-tube/usecase"
)

func TestTweetCreate(t *testing.T) {
	tweetRepo := new(MockTweetRepo)
	uc := usecase.NewTweetUsecase(tweetRepo)
	caller := model.User{ID: bson.NewObjectID()}

	tweetRepo.On("Create", mock.Anything, mock.MatchedBy(func(tw model.Tweet) bool {
		return tw.Content == "hello" && tw.Owner == caller.ID
	})).Return(model.Tweet{Content: "hello", Owner: caller.ID}, nil).Once()

	tweet, err := uc.Create(context.Background(), caller, "hello")

	assert.NoError(t, err)
	assert.Equal(t, caller.ID, tweet.Owner)
	tweetRepo.AssertExpectations(t)
}

func TestTweetCreateRejectsEmptyContent(t *testing.T) {
	uc := usecase.NewTweetUsecase(new(MockTweetRepo))

	_, err := uc.Create(context.Background(), model.User{}, "")

	assert.Equal(t, apperror.KindInvalidInput, apperror.KindOf(err))
}

func TestTweetMutationOwnership(t *testing.T) {
	owner := model.User{ID: bson.NewObjectID()}
	stranger := model.User{ID: bson.NewObjectID()}
	tweet := model.Tweet{ID: bson.NewObjectID(), Owner: owner.ID, Content: "old"}

	t.Run("non-owner cannot update", func(t *testing.T) {
		tweetRepo := new(MockTweetRepo)
		uc := usecase.NewTweetUsecase(tweetRepo)
		tweetRepo.On("GetByID", mock.Anything, tweet.ID).Return(tweet, nil).Once()

		_, err := uc.Update(context.Background(), stranger, tweet.ID.Hex(), "new")

		assert.Equal(t, apperror.KindForbidden, apperror.KindOf(err))
		tweetRepo.AssertNotCalled(t, "UpdateContent", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("non-owner cannot delete", func(t *testing.T) {
		tweetRepo := new(MockTweetRepo)
		uc := usecase.NewTweetUsecase(tweetRepo)
		tweetRepo.On("GetByID", mock.Anything, tweet.ID).Return(tweet, nil).Once()

		err := uc.Delete(context.Background(), stranger, tweet.ID.Hex())

		assert.Equal(t, apperror.KindForbidden, apperror.KindOf(err))
		tweetRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("owner updates", func(t *testing.T) {
		tweetRepo := new(MockTweetRepo)
		uc := usecase.NewTweetUsecase(tweetRepo)
		tweetRepo.On("GetByID", mock.Anything, tweet.ID).Return(tweet, nil).Once()
		tweetRepo.On("UpdateContent", mock.Anything, tweet.ID, "new").
			Return(model.Tweet{ID: tweet.ID, Owner: owner.ID, Content: "new"}, nil).Once()

		got, err := uc.Update(context.Background(), owner, tweet.ID.Hex(), "new")

		assert.NoError(t, err)
		assert.Equal(t, "new", got.Content)
	})
}

func TestTweetListByUserEmpty(t *testing.T) {
	tweetRepo := new(MockTweetRepo)
	uc := usecase.NewTweetUsecase(tweetRepo)
	userID := bson.NewObjectID()

	tweetRepo.On("ListByOwner", mock.Anything, userID).Return(nil, nil).Once()

	tweets, err := uc.ListByUser(context.Background(), userID.Hex())

	assert.NoError(t, err)
	assert.NotNil(t, tweets)
	assert.Empty(t, tweets)
}
