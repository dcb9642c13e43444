package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"my-tube/domain/model"
)

// VideoFilter is the normalized query for the video listing: match, sort and
// page are decided by the caller; the repository only translates them.
type VideoFilter struct {
	Query    string         // case-insensitive title match
	Owner    *bson.ObjectID // restrict to one owner
	Caller   *bson.ObjectID // unpublished videos are visible only to this user
	SortBy   string         // createdAt | views | title | duration
	SortDesc bool
	Skip     int64
	Limit    int64
}

type IVideo interface {
	Create(ctx context.Context, video model.Video) (model.Video, error)
	GetByID(ctx context.Context, id bson.ObjectID) (model.Video, error)
	List(ctx context.Context, filter VideoFilter) ([]model.Video, int64, error)
	ListByOwner(ctx context.Context, owner bson.ObjectID) ([]model.Video, error)
	UpdateFields(ctx context.Context, id bson.ObjectID, fields map[string]interface{}) (model.Video, error)
	Delete(ctx context.Context, id bson.ObjectID) error
	IncrementViews(ctx context.Context, id bson.ObjectID) error
	CountByOwner(ctx context.Context, owner bson.ObjectID) (int64, error)
	SumViewsByOwner(ctx context.Context, owner bson.ObjectID) (int64, error)
}
