package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Video is an uploaded video document. Media lives on the external media
// host; only the URLs are stored here.
type Video struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"id"`
	VideoFile   string        `bson:"videoFile" json:"videoFile"`
	Thumbnail   string        `bson:"thumbnail" json:"thumbnail"`
	Title       string        `bson:"title" json:"title"`
	Description string        `bson:"description" json:"description"`
	Duration    float64       `bson:"duration" json:"duration"`
	Views       int64         `bson:"views" json:"views"`
	IsPublished bool          `bson:"isPublished" json:"isPublished"`
	Owner       bson.ObjectID `bson:"owner" json:"owner"`
	CreatedAt   time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time     `bson:"updatedAt" json:"updatedAt"`
}

// VideoOwner is the embedded owner projection used by watch history and
// liked-videos read models.
type VideoOwner struct {
	Username string `bson:"username" json:"username"`
	FullName string `bson:"fullName" json:"fullName"`
	Avatar   string `bson:"avatar" json:"avatar"`
}

// WatchedVideo is a history entry with its owner flattened in.
type WatchedVideo struct {
	ID        bson.ObjectID `bson:"_id" json:"id"`
	VideoFile string        `bson:"videoFile" json:"videoFile"`
	Thumbnail string        `bson:"thumbnail" json:"thumbnail"`
	Title     string        `bson:"title" json:"title"`
	Duration  float64       `bson:"duration" json:"duration"`
	Views     int64         `bson:"views" json:"views"`
	Owner     VideoOwner    `bson:"owner" json:"owner"`
	CreatedAt time.Time     `bson:"createdAt" json:"createdAt"`
}
