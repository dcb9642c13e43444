package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"my-tube/domain/model"
)

type IPlaylist interface {
	Create(ctx context.Context, playlist model.Playlist) (model.Playlist, error)
	GetByID(ctx context.Context, id bson.ObjectID) (model.Playlist, error)
	ListByOwner(ctx context.Context, owner bson.ObjectID) ([]model.Playlist, error)
	UpdateFields(ctx context.Context, id bson.ObjectID, fields map[string]interface{}) (model.Playlist, error)
	Delete(ctx context.Context, id bson.ObjectID) error
	AddVideo(ctx context.Context, playlistID, videoID bson.ObjectID) (model.Playlist, error)
	RemoveVideo(ctx context.Context, playlistID, videoID bson.ObjectID) (model.Playlist, error)
}
