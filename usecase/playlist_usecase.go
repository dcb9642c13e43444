package usecase

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"my-tube/domain/apperror"
	"my-tube/domain/dto"
	"my-tube/domain/model"
	"my-tube/domain/repository"
)

type IPlaylistUsecase interface {
	Create(ctx context.Context, caller model.User, req dto.CreatePlaylistRequest) (model.Playlist, error)
	GetByID(ctx context.Context, playlistID string) (model.Playlist, error)
	ListByUser(ctx context.Context, userID string) ([]model.Playlist, error)
	Update(ctx context.Context, caller model.User, playlistID string, req dto.UpdatePlaylistRequest) (model.Playlist, error)
	Delete(ctx context.Context, caller model.User, playlistID string) error
	AddVideo(ctx context.Context, caller model.User, playlistID, videoID string) (model.Playlist, error)
	RemoveVideo(ctx context.Context, caller model.User, playlistID, videoID string) (model.Playlist, error)
}

type playlistUsecase struct {
	playlistRepo repository.IPlaylist
	videoRepo    repository.IVideo
}

func NewPlaylistUsecase(playlistRepo repository.IPlaylist, videoRepo repository.IVideo) IPlaylistUsecase {
	return &playlistUsecase{playlistRepo: playlistRepo, videoRepo: videoRepo}
}

func (u *playlistUsecase) Create(ctx context.Context, caller model.User, req dto.CreatePlaylistRequest) (model.Playlist, error) {
	return u.playlistRepo.Create(ctx, model.Playlist{
		Name:        req.Name,
		Description: req.Description,
		Owner:       caller.ID,
		Videos:      []bson.ObjectID{},
	})
}

func (u *playlistUsecase) GetByID(ctx context.Context, playlistID string) (model.Playlist, error) {
	id, err := parseID(playlistID, "playlist id")
	if err != nil {
		return model.Playlist{}, err
	}
	return u.playlistRepo.GetByID(ctx, id)
}

func (u *playlistUsecase) ListByUser(ctx context.Context, userID string) ([]model.Playlist, error) {
	id, err := parseID(userID, "user id")
	if err != nil {
		return nil, err
	}
	playlists, err := u.playlistRepo.ListByOwner(ctx, id)
	if err != nil {
		return nil, err
	}
	if playlists == nil {
		playlists = []model.Playlist{}
	}
	return playlists, nil
}

func (u *playlistUsecase) Update(ctx context.Context, caller model.User, playlistID string, req dto.UpdatePlaylistRequest) (model.Playlist, error) {
	playlist, err := u.ownedPlaylist(ctx, caller, playlistID)
	if err != nil {
		return model.Playlist{}, err
	}
	return u.playlistRepo.UpdateFields(ctx, playlist.ID, map[string]interface{}{
		"name":        req.Name,
		"description": req.Description,
	})
}

func (u *playlistUsecase) Delete(ctx context.Context, caller model.User, playlistID string) error {
	playlist, err := u.ownedPlaylist(ctx, caller, playlistID)
	if err != nil {
		return err
	}
	return u.playlistRepo.Delete(ctx, playlist.ID)
}

// AddVideo rejects duplicates before touching the store; the repository's
// $addToSet keeps the set property even under concurrent adds.
func (u *playlistUsecase) AddVideo(ctx context.Context, caller model.User, playlistID, videoID string) (model.Playlist, error) {
	playlist, err := u.ownedPlaylist(ctx, caller, playlistID)
	if err != nil {
		return model.Playlist{}, err
	}
	vid, err := parseID(videoID, "video id")
	if err != nil {
		return model.Playlist{}, err
	}
	if _, err := u.videoRepo.GetByID(ctx, vid); err != nil {
		return model.Playlist{}, err
	}
	if playlist.Contains(vid) {
		return model.Playlist{}, apperror.Conflict("video is already in the playlist")
	}
	return u.playlistRepo.AddVideo(ctx, playlist.ID, vid)
}

func (u *playlistUsecase) RemoveVideo(ctx context.Context, caller model.User, playlistID, videoID string) (model.Playlist, error) {
	playlist, err := u.ownedPlaylist(ctx, caller, playlistID)
	if err != nil {
		return model.Playlist{}, err
	}
	vid, err := parseID(videoID, "video id")
	if err != nil {
		return model.Playlist{}, err
	}
	if !playlist.Contains(vid) {
		return model.Playlist{}, apperror.NotFound("video is not in the playlist")
	}
	return u.playlistRepo.RemoveVideo(ctx, playlist.ID, vid)
}

func (u *playlistUsecase) ownedPlaylist(ctx context.Context, caller model.User, playlistID string) (model.Playlist, error) {
	id, err := parseID(playlistID, "playlist id")
	if err != nil {
		return model.Playlist{}, err
	}
	playlist, err := u.playlistRepo.GetByID(ctx, id)
	if err != nil {
		return model.Playlist{}, err
	}
	if err := requireOwner(caller.ID, playlist.Owner, "playlist"); err != nil {
		return model.Playlist{}, err
	}
	return playlist, nil
}
