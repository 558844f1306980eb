package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Image is an uploaded picture stored in MongoDB. Posts reference it by the
// hex object ID; the bytes themselves never pass through PostgreSQL.
type Image struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Filename    string             `json:"filename" bson:"filename"`
	ContentType string             `json:"content_type" bson:"content_type"`
	Data        []byte             `json:"-" bson:"data"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
}
