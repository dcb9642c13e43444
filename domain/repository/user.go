package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"my-tube/domain/model"
)

// IUser is the user collection contract. Lookups return a NotFound app error
// when no document matches; malformed ids never reach the store.
type IUser interface {
	Create(ctx context.Context, user model.User) (model.User, error)
	GetByID(ctx context.Context, id bson.ObjectID) (model.User, error)
	GetByUsername(ctx context.Context, username string) (model.User, error)
	GetByUsernameOrEmail(ctx context.Context, username, email string) (model.User, error)
	UpdateFields(ctx context.Context, id bson.ObjectID, fields map[string]interface{}) (model.User, error)
	SetRefreshToken(ctx context.Context, id bson.ObjectID, token string) error
	AddWatchHistory(ctx context.Context, userID, videoID bson.ObjectID) error
	GetChannelProfile(ctx context.Context, username string, caller bson.ObjectID) (model.ChannelProfile, error)
	GetWatchHistory(ctx context.Context, userID bson.ObjectID) ([]model.WatchedVideo, error)
}
