package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product represents a catalog product.
//
// Price is deliberately a string: the stored sample data uses values like
// "250" and clients depend on the exact representation. Description is free
// text even though the sample data fills it with image URLs.
//
// Brand holds the ObjectID of a Brand document. It is optional and the
// reference is not checked against the brands collection, so a dangling
// reference is representable.
type Product struct {
	ID          primitive.ObjectID  `json:"id" bson:"_id,omitempty"`
	Title       string              `json:"title" bson:"title" validate:"required"`
	Description string              `json:"description" bson:"description" validate:"required"`
	Price       string              `json:"price" bson:"price" validate:"required"`
	Brand       *primitive.ObjectID `json:"brand,omitempty" bson:"brand,omitempty"`
	CreatedAt   time.Time           `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at" bson:"updated_at"`
}
