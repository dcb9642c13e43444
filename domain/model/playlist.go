package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Playlist holds an ordered set of video references. Videos must not repeat;
// the usecase rejects duplicate adds before touching the store.
type Playlist struct {
	ID          bson.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name        string          `bson:"name" json:"name"`
	Description string          `bson:"description" json:"description"`
	Owner       bson.ObjectID   `bson:"owner" json:"owner"`
	Videos      []bson.ObjectID `bson:"videos" json:"videos"`
	CreatedAt   time.Time       `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time       `bson:"updatedAt" json:"updatedAt"`
}

// Contains reports whether the playlist already references the video.
func (p *Playlist) Contains(videoID bson.ObjectID) bool {
	for _, v := range p.Videos {
		if v == videoID {
			return true
		}
	}
	return false
}
