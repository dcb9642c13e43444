package persistence

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"my-tube/domain/model"
	"my-tube/domain/repository"
	"my-tube/infrastructure/logger"
)

type TweetRepository struct {
	db     *mongo.Client
	dbName string
}

func NewTweetRepository(db *mongo.Client, dbName string) repository.ITweet {
	return &TweetRepository{db: db, dbName: dbName}
}

func (r *TweetRepository) collection() *mongo.Collection {
	return r.db.Database(r.dbName).Collection(CollectionTweets)
}

func (r *TweetRepository) Create(ctx context.Context, tweet model.Tweet) (model.Tweet, error) {
	now := time.Now().UTC()
	tweet.ID = bson.NewObjectID()
	tweet.CreatedAt = now
	tweet.UpdatedAt = now

	if _, err := r.collection().InsertOne(ctx, tweet); err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while inserting tweet")
		return model.Tweet{}, convertMongoError(err, "tweet not found")
	}
	return tweet, nil
}

func (r *TweetRepository) GetByID(ctx context.Context, id bson.ObjectID) (model.Tweet, error) {
	var tweet model.Tweet
	err := r.collection().FindOne(ctx, bson.M{"_id": id}).Decode(&tweet)
	if err != nil {
		return model.Tweet{}, convertMongoError(err, "tweet not found")
	}
	return tweet, nil
}

func (r *TweetRepository) ListByOwner(ctx context.Context, owner bson.ObjectID) ([]model.Tweet, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection().Find(ctx, bson.M{"owner": owner}, opts)
	if err != nil {
		return nil, convertMongoError(err, "tweet not found")
	}
	defer func() {
		if err := cursor.Close(ctx); err != nil {
			logger.GetLogger().WithField("error", err).Error("Error while closing cursor")
		}
	}()

	tweets := []model.Tweet{}
	if err := cursor.All(ctx, &tweets); err != nil {
		return nil, convertMongoError(err, "tweet not found")
	}
	return tweets, nil
}

func (r *TweetRepository) UpdateContent(ctx context.Context, id bson.ObjectID, content string) (model.Tweet, error) {
	update := bson.M{"$set": bson.M{"content": content, "updatedAt": time.Now().UTC()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var tweet model.Tweet
	err := r.collection().FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&tweet)
	if err != nil {
		return model.Tweet{}, convertMongoError(err, "tweet not found")
	}
	return tweet, nil
}

func (r *TweetRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	res, err := r.collection().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return convertMongoError(err, "tweet not found")
	}
	if res.DeletedCount == 0 {
		return convertMongoError(mongo.ErrNoDocuments, "tweet not found")
	}
	return nil
}
