package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Image is one stored gallery record. Width and Height are unset for
// records ingested before dimensions were recorded.
type Image struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	SourceAddr   string             `bson:"source_addr"`
	Visible      bool               `bson:"visible"`
	Author       string             `bson:"author,omitempty"`
	AuthorID     string             `bson:"author_id,omitempty"`
	Title        string             `bson:"title,omitempty"`
	CreatedAt    time.Time          `bson:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at"`
	StorageKey   string             `bson:"storage_key"`
	OriginWorkID int64              `bson:"origin_work_id"`
	Deleted      bool               `bson:"deleted"`
	Width        *int               `bson:"width,omitempty"`
	Height       *int               `bson:"height,omitempty"`
	Tags         []Tag              `bson:"tags"`
}

type Tag struct {
	Name        string `bson:"name"`
	Translation string `bson:"translation,omitempty"`
	Visible     *bool  `bson:"visible,omitempty"` // reserved, never queried
}
