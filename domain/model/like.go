package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Like is a polymorphic join row: exactly one of Video, Comment or Tweet is
// set per document. Toggle-off deletes the row; there is no "unliked" state.
type Like struct {
	ID        bson.ObjectID  `bson:"_id,omitempty" json:"id"`
	Video     *bson.ObjectID `bson:"video,omitempty" json:"video,omitempty"`
	Comment   *bson.ObjectID `bson:"comment,omitempty" json:"comment,omitempty"`
	Tweet     *bson.ObjectID `bson:"tweet,omitempty" json:"tweet,omitempty"`
	LikedBy   bson.ObjectID  `bson:"likedBy" json:"likedBy"`
	CreatedAt time.Time      `bson:"createdAt" json:"createdAt"`
}

// LikeTarget names the single entity kind a like row points at.
type LikeTarget string

const (
	LikeTargetVideo   LikeTarget = "video"
	LikeTargetComment LikeTarget = "comment"
	LikeTargetTweet   LikeTarget = "tweet"
)
