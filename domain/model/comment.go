package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Comment struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Content   string        `bson:"content" json:"content"`
	Owner     bson.ObjectID `bson:"owner" json:"owner"`
	Video     bson.ObjectID `bson:"video" json:"video"`
	CreatedAt time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time     `bson:"updatedAt" json:"updatedAt"`
}

// CommentView is the listed comment with like count, caller's like state and
// the author's username resolved by aggregation.
type CommentView struct {
	ID        bson.ObjectID `bson:"_id" json:"id"`
	Content   string        `bson:"content" json:"content"`
	Username  string        `bson:"username" json:"username"`
	Likes     int64         `bson:"likes" json:"likes"`
	IsLiked   bool          `bson:"isLiked" json:"isLiked"`
	CreatedAt time.Time     `bson:"createdAt" json:"createdAt"`
}
