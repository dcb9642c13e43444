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

type CommentRepository struct {
	db     *mongo.Client
	dbName string
}

func NewCommentRepository(db *mongo.Client, dbName string) repository.IComment {
	return &CommentRepository{db: db, dbName: dbName}
}

func (r *CommentRepository) collection() *mongo.Collection {
	return r.db.Database(r.dbName).Collection(CollectionComments)
}

func (r *CommentRepository) Create(ctx context.Context, comment model.Comment) (model.Comment, error) {
	now := time.Now().UTC()
	comment.ID = bson.NewObjectID()
	comment.CreatedAt = now
	comment.UpdatedAt = now

	if _, err := r.collection().InsertOne(ctx, comment); err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while inserting comment")
		return model.Comment{}, convertMongoError(err, "comment not found")
	}
	return comment, nil
}

func (r *CommentRepository) GetByID(ctx context.Context, id bson.ObjectID) (model.Comment, error) {
	var comment model.Comment
	err := r.collection().FindOne(ctx, bson.M{"_id": id}).Decode(&comment)
	if err != nil {
		return model.Comment{}, convertMongoError(err, "comment not found")
	}
	return comment, nil
}

func (r *CommentRepository) UpdateContent(ctx context.Context, id bson.ObjectID, content string) (model.Comment, error) {
	update := bson.M{"$set": bson.M{"content": content, "updatedAt": time.Now().UTC()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var comment model.Comment
	err := r.collection().FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&comment)
	if err != nil {
		return model.Comment{}, convertMongoError(err, "comment not found")
	}
	return comment, nil
}

func (r *CommentRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	res, err := r.collection().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return convertMongoError(err, "comment not found")
	}
	if res.DeletedCount == 0 {
		return convertMongoError(mongo.ErrNoDocuments, "comment not found")
	}
	return nil
}

// ListByVideo runs the comment read pipeline: match the video, join likes for
// the count and the caller's like state, join users for the author username,
// newest first, then window by skip/limit. An empty window is a valid result.
func (r *CommentRepository) ListByVideo(ctx context.Context, videoID, caller bson.ObjectID, skip, limit int64) ([]model.CommentView, int64, error) {
	total, err := r.collection().CountDocuments(ctx, bson.M{"video": videoID})
	if err != nil {
		return nil, 0, convertMongoError(err, "comment not found")
	}

	pipeline := []bson.M{
		{"$match": bson.M{"video": videoID}},
		{"$lookup": bson.M{
			"from":         CollectionLikes,
			"localField":   "_id",
			"foreignField": "comment",
			"as":           "likeRows",
		}},
		{"$lookup": bson.M{
			"from":         CollectionUsers,
			"localField":   "owner",
			"foreignField": "_id",
			"as":           "user",
		}},
		{"$addFields": bson.M{
			"likes":    bson.M{"$size": "$likeRows"},
			"isLiked":  bson.M{"$in": bson.A{caller, "$likeRows.likedBy"}},
			"username": bson.M{"$arrayElemAt": bson.A{"$user.username", 0}},
		}},
		{"$project": bson.M{
			"content":   1,
			"username":  1,
			"likes":     1,
			"isLiked":   1,
			"createdAt": 1,
		}},
		{"$sort": bson.M{"createdAt": -1}},
		{"$skip": skip},
		{"$limit": limit},
	}

	cursor, err := r.collection().Aggregate(ctx, pipeline)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while aggregating comments")
		return nil, 0, convertMongoError(err, "comment not found")
	}
	defer func() {
		if err := cursor.Close(ctx); err != nil {
			logger.GetLogger().WithField("error", err).Error("Error while closing cursor")
		}
	}()

	views := []model.CommentView{}
	if err := cursor.All(ctx, &views); err != nil {
		return nil, 0, convertMongoError(err, "comment not found")
	}
	return views, total, nil
}
