package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Brand represents a product brand.
// Name and URL are required at write time; required-ness is enforced by the
// repository layer through the validate tags, not by the storage engine.
type Brand struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name" validate:"required"`
	URL       string             `json:"url" bson:"url" validate:"required,url"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updated_at"`
}
