package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"my-tube/domain/model"
)

type ISubscription interface {
	Find(ctx context.Context, subscriber, channel bson.ObjectID) (model.Subscription, error)
	Create(ctx context.Context, sub model.Subscription) (model.Subscription, error)
	Delete(ctx context.Context, id bson.ObjectID) error
	CountByChannel(ctx context.Context, channel bson.ObjectID) (int64, error)
	CountBySubscriber(ctx context.Context, subscriber bson.ObjectID) (int64, error)
	ListSubscribers(ctx context.Context, channel bson.ObjectID) ([]model.ChannelUser, error)
	ListSubscribedChannels(ctx context.Context, subscriber bson.ObjectID) ([]model.ChannelUser, error)
}
