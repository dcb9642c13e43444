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

type UserRepository struct {
	db     *mongo.Client
	dbName string
}

func NewUserRepository(db *mongo.Client, dbName string) repository.IUser {
	return &UserRepository{db: db, dbName: dbName}
}

func (r *UserRepository) collection() *mongo.Collection {
	return r.db.Database(r.dbName).Collection(CollectionUsers)
}

func (r *UserRepository) Create(ctx context.Context, user model.User) (model.User, error) {
	now := time.Now().UTC()
	user.ID = bson.NewObjectID()
	user.CreatedAt = now
	user.UpdatedAt = now

	if _, err := r.collection().InsertOne(ctx, user); err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while inserting user")
		return model.User{}, convertMongoError(err, "user not found")
	}
	return user, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id bson.ObjectID) (model.User, error) {
	var user model.User
	err := r.collection().FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		return model.User{}, convertMongoError(err, "user not found")
	}
	return user, nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (model.User, error) {
	var user model.User
	err := r.collection().FindOne(ctx, bson.M{"username": username}).Decode(&user)
	if err != nil {
		return model.User{}, convertMongoError(err, "user not found")
	}
	return user, nil
}

func (r *UserRepository) GetByUsernameOrEmail(ctx context.Context, username, email string) (model.User, error) {
	filter := bson.M{"$or": []bson.M{
		{"username": username},
		{"email": email},
	}}
	var user model.User
	err := r.collection().FindOne(ctx, filter).Decode(&user)
	if err != nil {
		return model.User{}, convertMongoError(err, "user not found")
	}
	return user, nil
}

func (r *UserRepository) UpdateFields(ctx context.Context, id bson.ObjectID, fields map[string]interface{}) (model.User, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	for k, v := range fields {
		set[k] = v
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var user model.User
	err := r.collection().FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&user)
	if err != nil {
		return model.User{}, convertMongoError(err, "user not found")
	}
	return user, nil
}

func (r *UserRepository) SetRefreshToken(ctx context.Context, id bson.ObjectID, token string) error {
	update := bson.M{"$set": bson.M{"refreshToken": token, "updatedAt": time.Now().UTC()}}
	res, err := r.collection().UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return convertMongoError(err, "user not found")
	}
	if res.MatchedCount == 0 {
		return convertMongoError(mongo.ErrNoDocuments, "user not found")
	}
	return nil
}

func (r *UserRepository) AddWatchHistory(ctx context.Context, userID, videoID bson.ObjectID) error {
	update := bson.M{"$addToSet": bson.M{"watchHistory": videoID}}
	_, err := r.collection().UpdateOne(ctx, bson.M{"_id": userID}, update)
	return convertMongoError(err, "user not found")
}

// GetChannelProfile joins both sides of the subscriptions collection to build
// the channel view: subscriber count, subscribed-to count and whether the
// caller is subscribed.
func (r *UserRepository) GetChannelProfile(ctx context.Context, username string, caller bson.ObjectID) (model.ChannelProfile, error) {
	pipeline := []bson.M{
		{"$match": bson.M{"username": username}},
		{"$lookup": bson.M{
			"from":         CollectionSubscriptions,
			"localField":   "_id",
			"foreignField": "channel",
			"as":           "subscribers",
		}},
		{"$lookup": bson.M{
			"from":         CollectionSubscriptions,
			"localField":   "_id",
			"foreignField": "subscriber",
			"as":           "subscribedTo",
		}},
		{"$addFields": bson.M{
			"subscriberCount":           bson.M{"$size": "$subscribers"},
			"channelsSubscribedToCount": bson.M{"$size": "$subscribedTo"},
			"isSubscribed":              bson.M{"$in": bson.A{caller, "$subscribers.subscriber"}},
		}},
		{"$project": bson.M{
			"username":                  1,
			"fullName":                  1,
			"avatar":                    1,
			"coverImage":                1,
			"email":                     1,
			"subscriberCount":           1,
			"channelsSubscribedToCount": 1,
			"isSubscribed":              1,
		}},
	}

	cursor, err := r.collection().Aggregate(ctx, pipeline)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while aggregating channel profile")
		return model.ChannelProfile{}, convertMongoError(err, "channel not found")
	}
	defer func() {
		if err := cursor.Close(ctx); err != nil {
			logger.GetLogger().WithField("error", err).Error("Error while closing cursor")
		}
	}()

	var profiles []model.ChannelProfile
	if err := cursor.All(ctx, &profiles); err != nil {
		return model.ChannelProfile{}, convertMongoError(err, "channel not found")
	}
	if len(profiles) == 0 {
		return model.ChannelProfile{}, convertMongoError(mongo.ErrNoDocuments, "channel not found")
	}
	return profiles[0], nil
}

// GetWatchHistory resolves the user's watched video ids to video documents
// with the owner flattened in.
func (r *UserRepository) GetWatchHistory(ctx context.Context, userID bson.ObjectID) ([]model.WatchedVideo, error) {
	pipeline := []bson.M{
		{"$match": bson.M{"_id": userID}},
		{"$lookup": bson.M{
			"from":         CollectionVideos,
			"localField":   "watchHistory",
			"foreignField": "_id",
			"as":           "watchHistory",
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
		{"$project": bson.M{"watchHistory": 1}},
	}

	cursor, err := r.collection().Aggregate(ctx, pipeline)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while aggregating watch history")
		return nil, convertMongoError(err, "user not found")
	}
	defer func() {
		if err := cursor.Close(ctx); err != nil {
			logger.GetLogger().WithField("error", err).Error("Error while closing cursor")
		}
	}()

	var docs []struct {
		WatchHistory []model.WatchedVideo `bson:"watchHistory"`
	}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, convertMongoError(err, "user not found")
	}
	if len(docs) == 0 {
		return nil, convertMongoError(mongo.ErrNoDocuments, "user not found")
	}
	return docs[0].WatchHistory, nil
}
