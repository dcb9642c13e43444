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

func newPlaylistFixture() (*MockPlaylistRepo, *MockVideoRepo, usecase.IPlaylistUsecase) {
	playlistRepo := new(MockPlaylistRepo)
	videoRepo := new(MockVideoRepo)
	return playlistRepo, videoRepo, usecase.NewPlaylistUsecase(playlistRepo, videoRepo)
}

func TestPlaylistCreate(t *testing.T) {
	playlistRepo, _, uc := newPlaylistFixture()
	caller := model.User{ID: bson.NewObjectID()}

	playlistRepo.On("Create", mock.Anything, mock.MatchedBy(func(p model.Playlist) bool {
		return p.Name == "favorites" && p.Owner == caller.ID && len(p.Videos) == 0
	})).Return(model.Playlist{Name: "favorites", Owner: caller.ID}, nil).Once()

	playlist, err := uc.Create(context.Background(), caller, dto.CreatePlaylistRequest{Name: "favorites", Description: "d"})

	assert.NoError(t, err)
	assert.Equal(t, "favorites", playlist.Name)
	playlistRepo.AssertExpectations(t)
}

// Adding a video that is already in the playlist must not grow it.
func TestPlaylistDuplicateAddRejected(t *testing.T) {
	playlistRepo, videoRepo, uc := newPlaylistFixture()
	owner := model.User{ID: bson.NewObjectID()}
	videoID := bson.NewObjectID()
	playlist := model.Playlist{
		ID:     bson.NewObjectID(),
		Owner:  owner.ID,
		Videos: []bson.ObjectID{videoID},
	}

	playlistRepo.On("GetByID", mock.Anything, playlist.ID).Return(playlist, nil).Once()
	videoRepo.On("GetByID", mock.Anything, videoID).Return(model.Video{ID: videoID}, nil).Once()

	_, err := uc.AddVideo(context.Background(), owner, playlist.ID.Hex(), videoID.Hex())

	assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))
	playlistRepo.AssertNotCalled(t, "AddVideo", mock.Anything, mock.Anything, mock.Anything)
}

func TestPlaylistAddVideo(t *testing.T) {
	playlistRepo, videoRepo, uc := newPlaylistFixture()
	owner := model.User{ID: bson.NewObjectID()}
	videoID := bson.NewObjectID()
	playlist := model.Playlist{ID: bson.NewObjectID(), Owner: owner.ID}

	playlistRepo.On("GetByID", mock.Anything, playlist.ID).Return(playlist, nil).Once()
	videoRepo.On("GetByID", mock.Anything, videoID).Return(model.Video{ID: videoID}, nil).Once()
	updated := playlist
	updated.Videos = []bson.ObjectID{videoID}
	playlistRepo.On("AddVideo", mock.Anything, playlist.ID, videoID).Return(updated, nil).Once()

	got, err := uc.AddVideo(context.Background(), owner, playlist.ID.Hex(), videoID.Hex())

	assert.NoError(t, err)
	assert.Len(t, got.Videos, 1)
	playlistRepo.AssertExpectations(t)
}

func TestPlaylistRemoveMissingVideo(t *testing.T) {
	playlistRepo, _, uc := newPlaylistFixture()
	owner := model.User{ID: bson.NewObjectID()}
	playlist := model.Playlist{ID: bson.NewObjectID(), Owner: owner.ID}

	playlistRepo.On("GetByID", mock.Anything, playlist.ID).Return(playlist, nil).Once()

	_, err := uc.RemoveVideo(context.Background(), owner, playlist.ID.Hex(), bson.NewObjectID().Hex())

	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
	playlistRepo.AssertNotCalled(t, "RemoveVideo", mock.Anything, mock.Anything, mock.Anything)
}

func TestPlaylistMutationOwnership(t *testing.T) {
	playlistRepo, _, uc := newPlaylistFixture()
	owner := model.User{ID: bson.NewObjectID()}
	stranger := model.User{ID: bson.NewObjectID()}
	playlist := model.Playlist{ID: bson.NewObjectID(), Owner: owner.ID}

	playlistRepo.On("GetByID", mock.Anything, playlist.ID).Return(playlist, nil)

	_, err := uc.Update(context.Background(), stranger, playlist.ID.Hex(), dto.UpdatePlaylistRequest{Name: "n", Description: "d"})
	assert.Equal(t, apperror.KindForbidden, apperror.KindOf(err))

	err = uc.Delete(context.Background(), stranger, playlist.ID.Hex())
	assert.Equal(t, apperror.KindForbidden, apperror.KindOf(err))

	playlistRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	playlistRepo.AssertNotCalled(t, "UpdateFields", mock.Anything, mock.Anything, mock.Anything)
}
