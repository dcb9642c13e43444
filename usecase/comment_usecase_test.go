package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/v2/bson"

	"my-tube/domain/apperror"
	"my-tube/domain/dto"
	"my-tube/domain/model"
	"my-tube/usecase"
)

func newCommentFixture() (*MockCommentRepo, *MockVideoRepo, usecase.ICommentUsecase) {
	commentRepo := new(MockCommentRepo)
	videoRepo := new(MockVideoRepo)
	return commentRepo, videoRepo, usecase.NewCommentUsecase(commentRepo, videoRepo)
}

// A video with zero comments is an ordinary success, not an error.
func TestCommentListEmptyIsSuccess(t *testing.T) {
	commentRepo, videoRepo, uc := newCommentFixture()
	caller := model.User{ID: bson.NewObjectID()}
	video := model.Video{ID: bson.NewObjectID(), IsPublished: true}

	videoRepo.On("GetByID", mock.Anything, video.ID).Return(video, nil).Once()
	commentRepo.On("ListByVideo", mock.Anything, video.ID, caller.ID, int64(0), int64(10)).
		Return([]model.CommentView{}, int64(0), nil).Once()

	page, err := uc.List(context.Background(), video.ID.Hex(), caller, dto.PageQuery{Page: 1, Limit: 10})

	assert.NoError(t, err)
	assert.Equal(t, int64(0), page.Total)
	assert.NotNil(t, page.Items)
}

func TestCommentListMissingVideo(t *testing.T) {
	_, videoRepo, uc := newCommentFixture()
	videoID := bson.NewObjectID()

	videoRepo.On("GetByID", mock.Anything, videoID).
		Return(model.Video{}, apperror.NotFound("video not found")).Once()

	_, err := uc.List(context.Background(), videoID.Hex(), model.User{}, dto.PageQuery{})

	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}

func TestCommentAdd(t *testing.T) {
	commentRepo, videoRepo, uc := newCommentFixture()
	caller := model.User{ID: bson.NewObjectID()}
	video := model.Video{ID: bson.NewObjectID(), IsPublished: true}

	videoRepo.On("GetByID", mock.Anything, video.ID).Return(video, nil).Once()
	commentRepo.On("Create", mock.Anything, mock.MatchedBy(func(c model.Comment) bool {
		return c.Content == "nice one" && c.Owner == caller.ID && c.Video == video.ID
	})).Return(model.Comment{Content: "nice one"}, nil).Once()

	comment, err := uc.Add(context.Background(), caller, video.ID.Hex(), "nice one")

	assert.NoError(t, err)
	assert.Equal(t, "nice one", comment.Content)
	commentRepo.AssertExpectations(t)
}

func TestCommentUpdateOwnership(t *testing.T) {
	commentRepo, _, uc := newCommentFixture()
	owner := model.User{ID: bson.NewObjectID()}
	stranger := model.User{ID: bson.NewObjectID()}
	comment := model.Comment{ID: bson.NewObjectID(), Owner: owner.ID, Content: "old"}

	commentRepo.On("GetByID", mock.Anything, comment.ID).Return(comment, nil).Once()

	_, err := uc.Update(context.Background(), stranger, comment.ID.Hex(), "new")

	assert.Equal(t, apperror.KindForbidden, apperror.KindOf(err))
	commentRepo.AssertNotCalled(t, "UpdateContent", mock.Anything, mock.Anything, mock.Anything)
}

func TestCommentDeleteByOwner(t *testing.T) {
	commentRepo, _, uc := newCommentFixture()
	owner := model.User{ID: bson.NewObjectID()}
	comment := model.Comment{ID: bson.NewObjectID(), Owner: owner.ID}

	commentRepo.On("GetByID", mock.Anything, comment.ID).Return(comment, nil).Once()
	commentRepo.On("Delete", mock.Anything, comment.ID).Return(nil).Once()

	err := uc.Delete(context.Background(), owner, comment.ID.Hex())

	assert.NoError(t, err)
	commentRepo.AssertExpectations(t)
}

func TestCommentAddRejectsEmptyContent(t *testing.T) {
	_, _, uc := newCommentFixture()

	_, err := uc.Add(context.Background(), model.User{}, bson.NewObjectID().Hex(), "   ")

	assert.Equal(t, apperror.KindInvalidInput, apperror.KindOf(err))
}
