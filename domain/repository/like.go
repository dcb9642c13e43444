package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"my-tube/domain/model"
)

type ILike interface {
	// Find returns the single like row for (user, target), NotFound otherwise.
	Find(ctx context.Context, target model.LikeTarget, targetID, userID bson.ObjectID) (model.Like, error)
	Create(ctx context.Context, like model.Like) (model.Like, error)
	Delete(ctx context.Context, id bson.ObjectID) error
	// ListLikedVideos resolves the user's video likes to video documents with
	// the owner flattened in.
	ListLikedVideos(ctx context.Context, userID bson.ObjectID) ([]model.WatchedVideo, error)
	// CountReceived counts likes on any content owned by the given user.
	CountReceived(ctx context.Context, owner bson.ObjectID) (int64, error)
}
