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

type PlaylistRepository struct {
	db     *mongo.Client
	dbName string
}

func NewPlaylistRepository(db *mongo.Client, dbName string) repository.IPlaylist {
	return &PlaylistRepository{db: db, dbName: dbName}
}

func (r *PlaylistRepository) collection() *mongo.Collection {
	return r.db.Database(r.dbName).Collection(CollectionPlaylists)
}

func (r *PlaylistRepository) Create(ctx context.Context, playlist model.Playlist) (model.Playlist, error) {
	now := time.Now().UTC()
	playlist.ID = bson.NewObjectID()
	if playlist.Videos == nil {
		playlist.Videos = []bson.ObjectID{}
	}
	playlist.CreatedAt = now
	playlist.UpdatedAt = now

	if _, err := r.collection().InsertOne(ctx, playlist); err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while inserting playlist")
		return model.Playlist{}, convertMongoError(err, "playlist not found")
	}
	return playlist, nil
}

func (r *PlaylistRepository) GetByID(ctx context.Context, id bson.ObjectID) (model.Playlist, error) {
	var playlist model.Playlist
	err := r.collection().FindOne(ctx, bson.M{"_id": id}).Decode(&playlist)
	if err != nil {
		return model.Playlist{}, convertMongoError(err, "playlist not found")
	}
	return playlist, nil
}

func (r *PlaylistRepository) ListByOwner(ctx context.Context, owner bson.ObjectID) ([]model.Playlist, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection().Find(ctx, bson.M{"owner": owner}, opts)
	if err != nil {
		return nil, convertMongoError(err, "playlist not found")
	}
	defer func() {
		if err := cursor.Close(ctx); err != nil {
			logger.GetLogger().WithField("error", err).Error("Error while closing cursor")
		}
	}()

	playlists := []model.Playlist{}
	if err := cursor.All(ctx, &playlists); err != nil {
		return nil, convertMongoError(err, "playlist not found")
	}
	return playlists, nil
}

func (r *PlaylistRepository) UpdateFields(ctx context.Context, id bson.ObjectID, fields map[string]interface{}) (model.Playlist, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	for k, v := range fields {
		set[k] = v
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var playlist model.Playlist
	err := r.collection().FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&playlist)
	if err != nil {
		return model.Playlist{}, convertMongoError(err, "playlist not found")
	}
	return playlist, nil
}

func (r *PlaylistRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	res, err := r.collection().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return convertMongoError(err, "playlist not found")
	}
	if res.DeletedCount == 0 {
		return convertMongoError(mongo.ErrNoDocuments, "playlist not found")
	}
	return nil
}

// AddVideo appends the reference with $addToSet so a concurrent duplicate add
// cannot slip past the usecase-level check.
func (r *PlaylistRepository) AddVideo(ctx context.Context, playlistID, videoID bson.ObjectID) (model.Playlist, error) {
	update := bson.M{
		"$addToSet": bson.M{"videos": videoID},
		"$set":      bson.M{"updatedAt": time.Now().UTC()},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var playlist model.Playlist
	err := r.collection().FindOneAndUpdate(ctx, bson.M{"_id": playlistID}, update, opts).Decode(&playlist)
	if err != nil {
		return model.Playlist{}, convertMongoError(err, "playlist not found")
	}
	return playlist, nil
}

func (r *PlaylistRepository) RemoveVideo(ctx context.Context, playlistID, videoID bson.ObjectID) (model.Playlist, error) {
	update := bson.M{
		"$pull": bson.M{"videos": videoID},
		"$set":  bson.M{"updatedAt": time.Now().UTC()},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var playlist model.Playlist
	err := r.collection().FindOneAndUpdate(ctx, bson.M{"_id": playlistID}, update, opts).Decode(&playlist)
	if err != nil {
		return model.Playlist{}, convertMongoError(err, "playlist not found")
	}
	return playlist, nil
}
