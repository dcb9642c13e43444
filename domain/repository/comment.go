package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"my-tube/domain/model"
)

type IComment interface {
	Create(ctx context.Context, comment model.Comment) (model.Comment, error)
	GetByID(ctx context.Context, id bson.ObjectID) (model.Comment, error)
	UpdateContent(ctx context.Context, id bson.ObjectID, content string) (model.Comment, error)
	Delete(ctx context.Context, id bson.ObjectID) error
	// ListByVideo runs the comment read pipeline: like counts, caller's like
	// state and author username, newest first, windowed by skip/limit.
	ListByVideo(ctx context.Context, videoID, caller bson.ObjectID, skip, limit int64) ([]model.CommentView, int64, error)
}
