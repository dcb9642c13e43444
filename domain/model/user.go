package model

import (
	"time"

	"github.com/golang-jwt/jwt"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// User is a registered account. A user is also a channel: subscriptions
// reference users on both sides.
type User struct {
	ID           bson.ObjectID   `bson:"_id,omitempty" json:"id"`
	Username     string          `bson:"username" json:"username"`
	Email        string          `bson:"email" json:"email"`
	FullName     string          `bson:"fullName" json:"fullName"`
	Avatar       string          `bson:"avatar" json:"avatar"`
	CoverImage   string          `bson:"coverImage,omitempty" json:"coverImage,omitempty"`
	Password     string          `bson:"password" json:"-"`
	RefreshToken string          `bson:"refreshToken,omitempty" json:"-"`
	WatchHistory []bson.ObjectID `bson:"watchHistory,omitempty" json:"watchHistory,omitempty"`
	CreatedAt    time.Time       `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time       `bson:"updatedAt" json:"updatedAt"`
}

// UserClaims is the payload of the short-lived access token.
type UserClaims struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	jwt.StandardClaims
}

// ChannelProfile is the denormalized channel view assembled by aggregation.
type ChannelProfile struct {
	ID                        bson.ObjectID `bson:"_id" json:"id"`
	Username                  string        `bson:"username" json:"username"`
	FullName                  string        `bson:"fullName" json:"fullName"`
	Avatar                    string        `bson:"avatar" json:"avatar"`
	CoverImage                string        `bson:"coverImage,omitempty" json:"coverImage,omitempty"`
	Email                     string        `bson:"email" json:"email"`
	SubscriberCount           int64         `bson:"subscriberCount" json:"subscriberCount"`
	ChannelsSubscribedToCount int64         `bson:"channelsSubscribedToCount" json:"channelsSubscribedToCount"`
	IsSubscribed              bool          `bson:"isSubscribed" json:"isSubscribed"`
}
