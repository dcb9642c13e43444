package persistence

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"my-tube/domain/model"
	"my-tube/domain/repository"
	"my-tube/infrastructure/logger"
)

type SubscriptionRepository struct {
	db     *mongo.Client
	dbName string
}

func NewSubscriptionRepository(db *mongo.Client, dbName string) repository.ISubscription {
	return &SubscriptionRepository{db: db, dbName: dbName}
}

func (r *SubscriptionRepository) collection() *mongo.Collection {
	return r.db.Database(r.dbName).Collection(CollectionSubscriptions)
}

func (r *SubscriptionRepository) Find(ctx context.Context, subscriber, channel bson.ObjectID) (model.Subscription, error) {
	filter := bson.M{"subscriber": subscriber, "channel": channel}
	var sub model.Subscription
	err := r.collection().FindOne(ctx, filter).Decode(&sub)
	if err != nil {
		return model.Subscription{}, convertMongoError(err, "subscription not found")
	}
	return sub, nil
}

func (r *SubscriptionRepository) Create(ctx context.Context, sub model.Subscription) (model.Subscription, error) {
	sub.ID = bson.NewObjectID()
	sub.CreatedAt = time.Now().UTC()

	if _, err := r.collection().InsertOne(ctx, sub); err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while inserting subscription")
		return model.Subscription{}, convertMongoError(err, "subscription not found")
	}
	return sub, nil
}

func (r *SubscriptionRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	res, err := r.collection().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return convertMongoError(err, "subscription not found")
	}
	if res.DeletedCount == 0 {
		return convertMongoError(mongo.ErrNoDocuments, "subscription not found")
	}
	return nil
}

func (r *SubscriptionRepository) CountByChannel(ctx context.Context, channel bson.ObjectID) (int64, error) {
	total, err := r.collection().CountDocuments(ctx, bson.M{"channel": channel})
	if err != nil {
		return 0, convertMongoError(err, "subscription not found")
	}
	return total, nil
}

func (r *SubscriptionRepository) CountBySubscriber(ctx context.Context, subscriber bson.ObjectID) (int64, error) {
	total, err := r.collection().CountDocuments(ctx, bson.M{"subscriber": subscriber})
	if err != nil {
		return 0, convertMongoError(err, "subscription not found")
	}
	return total, nil
}

func (r *SubscriptionRepository) ListSubscribers(ctx context.Context, channel bson.ObjectID) ([]model.ChannelUser, error) {
	return r.listUsers(ctx, bson.M{"channel": channel}, "subscriber")
}

func (r *SubscriptionRepository) ListSubscribedChannels(ctx context.Context, subscriber bson.ObjectID) ([]model.ChannelUser, error) {
	return r.listUsers(ctx, bson.M{"subscriber": subscriber}, "channel")
}

// listUsers resolves one side of the subscription join to sanitized user
// projections.
func (r *SubscriptionRepository) listUsers(ctx context.Context, match bson.M, side string) ([]model.ChannelUser, error) {
	pipeline := []bson.M{
		{"$match": match},
		{"$lookup": bson.M{
			"from":         CollectionUsers,
			"localField":   side,
			"foreignField": "_id",
			"as":           "user",
			"pipeline": []bson.M{
				{"$project": bson.M{"username": 1, "fullName": 1, "avatar": 1}},
			},
		}},
		{"$unwind": "$user"},
		{"$replaceRoot": bson.M{"newRoot": "$user"}},
	}

	cursor, err := r.collection().Aggregate(ctx, pipeline)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while aggregating subscriptions")
		return nil, convertMongoError(err, "subscription not found")
	}
	defer func() {
		if err := cursor.Close(ctx); err != nil {
			logger.GetLogger().WithField("error", err).Error("Error while closing cursor")
		}
	}()

	users := []model.ChannelUser{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, convertMongoError(err, "subscription not found")
	}
	return users, nil
}
