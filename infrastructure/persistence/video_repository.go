package persistence

import (
	"context"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"my-tube/domain/model"
	"my-tube/domain/repository"
	"my-tube/infrastructure/logger"
)

type VideoRepository struct {
	db     *mongo.Client
	dbName string
}

func NewVideoRepository(db *mongo.Client, dbName string) repository.IVideo {
	return &VideoRepository{db: db, dbName: dbName}
}

func (r *VideoRepository) collection() *mongo.Collection {
	return r.db.Database(r.dbName).Collection(CollectionVideos)
}

func (r *VideoRepository) Create(ctx context.Context, video model.Video) (model.Video, error) {
	now := time.Now().UTC()
	video.ID = bson.NewObjectID()
	video.CreatedAt = now
	video.UpdatedAt = now

	if _, err := r.collection().InsertOne(ctx, video); err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while inserting video")
		return model.Video{}, convertMongoError(err, "video not found")
	}
	return video, nil
}

func (r *VideoRepository) GetByID(ctx context.Context, id bson.ObjectID) (model.Video, error) {
	var video model.Video
	err := r.collection().FindOne(ctx, bson.M{"_id": id}).Decode(&video)
	if err != nil {
		return model.Video{}, convertMongoError(err, "video not found")
	}
	return video, nil
}

// List applies the normalized filter: free-text title match, optional owner
// restriction, and publish visibility (unpublished videos only for their
// owner). Returns the window plus the total count of the filtered set.
func (r *VideoRepository) List(ctx context.Context, filter repository.VideoFilter) ([]model.Video, int64, error) {
	match := bson.M{}
	if filter.Query != "" {
		match["title"] = bson.M{"$regex": regexp.QuoteMeta(filter.Query), "$options": "i"}
	}
	if filter.Owner != nil {
		match["owner"] = *filter.Owner
	}
	if filter.Caller != nil {
		match["$or"] = []bson.M{
			{"isPublished": true},
			{"owner": *filter.Caller},
		}
	} else {
		match["isPublished"] = true
	}

	total, err := r.collection().CountDocuments(ctx, match)
	if err != nil {
		return nil, 0, convertMongoError(err, "video not found")
	}

	sortBy := filter.SortBy
	switch sortBy {
	case "views", "title", "duration", "createdAt":
	default:
		sortBy = "createdAt"
	}
	order := 1
	if filter.SortDesc {
		order = -1
	}

	opts := options.Find().
		SetSort(bson.D{{Key: sortBy, Value: order}}).
		SetSkip(filter.Skip).
		SetLimit(filter.Limit)

	cursor, err := r.collection().Find(ctx, match, opts)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while listing videos")
		return nil, 0, convertMongoError(err, "video not found")
	}
	defer func() {
		if err := cursor.Close(ctx); err != nil {
			logger.GetLogger().WithField("error", err).Error("Error while closing cursor")
		}
	}()

	videos := []model.Video{}
	if err := cursor.All(ctx, &videos); err != nil {
		return nil, 0, convertMongoError(err, "video not found")
	}
	return videos, total, nil
}

func (r *VideoRepository) ListByOwner(ctx context.Context, owner bson.ObjectID) ([]model.Video, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection().Find(ctx, bson.M{"owner": owner}, opts)
	if err != nil {
		return nil, convertMongoError(err, "video not found")
	}
	defer func() {
		if err := cursor.Close(ctx); err != nil {
			logger.GetLogger().WithField("error", err).Error("Error while closing cursor")
		}
	}()

	videos := []model.Video{}
	if err := cursor.All(ctx, &videos); err != nil {
		return nil, convertMongoError(err, "video not found")
	}
	return videos, nil
}

func (r *VideoRepository) UpdateFields(ctx context.Context, id bson.ObjectID, fields map[string]interface{}) (model.Video, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	for k, v := range fields {
		set[k] = v
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var video model.Video
	err := r.collection().FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&video)
	if err != nil {
		return model.Video{}, convertMongoError(err, "video not found")
	}
	return video, nil
}

func (r *VideoRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	res, err := r.collection().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return convertMongoError(err, "video not found")
	}
	if res.DeletedCount == 0 {
		return convertMongoError(mongo.ErrNoDocuments, "video not found")
	}
	return nil
}

func (r *VideoRepository) IncrementViews(ctx context.Context, id bson.ObjectID) error {
	_, err := r.collection().UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{"views": 1}})
	return convertMongoError(err, "video not found")
}

func (r *VideoRepository) CountByOwner(ctx context.Context, owner bson.ObjectID) (int64, error) {
	total, err := r.collection().CountDocuments(ctx, bson.M{"owner": owner})
	if err != nil {
		return 0, convertMongoError(err, "video not found")
	}
	return total, nil
}

// SumViewsByOwner groups the owner's videos and sums the view counters.
func (r *VideoRepository) SumViewsByOwner(ctx context.Context, owner bson.ObjectID) (int64, error) {
	pipeline := []bson.M{
		{"$match": bson.M{"owner": owner}},
		{"$group": bson.M{
			"_id":        nil,
			"totalViews": bson.M{"$sum": "$views"},
		}},
	}

	cursor, err := r.collection().Aggregate(ctx, pipeline)
	if err != nil {
		return 0, convertMongoError(err, "video not found")
	}
	defer func() {
		if err := cursor.Close(ctx); err != nil {
			logger.GetLogger().WithField("error", err).Error("Error while closing cursor")
		}
	}()

	var results []struct {
		TotalViews int64 `bson:"totalViews"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, convertMongoError(err, "video not found")
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].TotalViews, nil
}
