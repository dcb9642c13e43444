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

type LikeRepository struct {
	db     *mongo.Client
	dbName string
}

func NewLikeRepository(db *mongo.Client, dbName string) repository.ILike {
	return &LikeRepository{db: db, dbName: dbName}
}

func (r *LikeRepository) collection() *mongo.Collection {
	return r.db.Database(r.dbName).Collection(CollectionLikes)
}

func (r *LikeRepository) Find(ctx context.Context, target model.LikeTarget, targetID, userID bson.ObjectID) (model.Like, error) {
	filter := bson.M{
		string(target): targetID,
		"likedBy":      userID,
	}
	var like model.Like
	err := r.collection().FindOne(ctx, filter).Decode(&like)
	if err != nil {
		return model.Like{}, convertMongoError(err, "like not found")
	}
	return like, nil
}

func (r *LikeRepository) Create(ctx context.Context, like model.Like) (model.Like, error) {
	like.ID = bson.NewObjectID()
	like.CreatedAt = time.Now().UTC()

	if _, err := r.collection().InsertOne(ctx, like); err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while inserting like")
		return model.Like{}, convertMongoError(err, "like not found")
	}
	return like, nil
}

func (r *LikeRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	res, err := r.collection().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return convertMongoError(err, "like not found")
	}
	if res.DeletedCount == 0 {
		return convertMongoError(mongo.ErrNoDocuments, "like not found")
	}
	return nil
}

// ListLikedVideos resolves the user's video likes to video documents with the
// owner flattened in, newest like first.
func (r *LikeRepository) ListLikedVideos(ctx context.Context, userID bson.ObjectID) ([]model.WatchedVideo, error) {
	pipeline := []bson.M{
		{"$match": bson.M{
			"likedBy": userID,
			"video":   bson.M{"$exists": true},
		}},
		{"$sort": bson.M{"createdAt": -1}},
		{"$lookup": bson.M{
			"from":         CollectionVideos,
			"localField":   "video",
			"foreignField": "_id",
			"as":           "video",
			"pipeline": []bson.M{
				{"$lookup": bson.M{
					"from":         CollectionUsers,
					"localField":   "owner",
					"foreignField": "_id",
					"as":           "owner",
					"pipeline": []bson.M{
						{"$project": bson.M{"username": 1, "fullName": 1, "avatar": 1}},
					},
				}},
				{"$addFields": bson.M{"owner": bson.M{"$first": "$owner"}}},
			},
		}},
		{"$unwind": "$video"},
		{"$replaceRoot": bson.M{"newRoot": "$video"}},
	}

	cursor, err := r.collection().Aggregate(ctx, pipeline)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while aggregating liked videos")
		return nil, convertMongoError(err, "like not found")
	}
	defer func() {
		if err := cursor.Close(ctx); err != nil {
			logger.GetLogger().WithField("error", err).Error("Error while closing cursor")
		}
	}()

	videos := []model.WatchedVideo{}
	if err := cursor.All(ctx, &videos); err != nil {
		return nil, convertMongoError(err, "like not found")
	}
	return videos, nil
}

// CountReceived counts likes landing on any content the user owns, across
// videos, comments and tweets.
func (r *LikeRepository) CountReceived(ctx context.Context, owner bson.ObjectID) (int64, error) {
	var total int64
	targets := []struct {
		from       string
		localField string
	}{
		{CollectionVideos, "video"},
		{CollectionComments, "comment"},
		{CollectionTweets, "tweet"},
	}

	for _, t := range targets {
		n, err := r.countReceivedFor(ctx, owner, t.from, t.localField)
		if err != nil {
			return 0, err
		}
		total += n
	}
	return total, nil
}

func (r *LikeRepository) countReceivedFor(ctx context.Context, owner bson.ObjectID, from, localField string) (int64, error) {
	pipeline := []bson.M{
		{"$match": bson.M{localField: bson.M{"$exists": true}}},
		{"$lookup": bson.M{
			"from":         from,
			"localField":   localField,
			"foreignField": "_id",
			"as":           "target",
		}},
		{"$unwind": "$target"},
		{"$match": bson.M{"target.owner": owner}},
		{"$count": "n"},
	}

	cursor, err := r.collection().Aggregate(ctx, pipeline)
	if err != nil {
		return 0, convertMongoError(err, "like not found")
	}
	defer func() {
		if err := cursor.Close(ctx); err != nil {
			logger.GetLogger().WithField("error", err).Error("Error while closing cursor")
		}
	}()

	var results []struct {
		N int64 `bson:"n"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, convertMongoError(err, "like not found")
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].N, nil
}
