package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/gadgetmart/catalog/internal/domain"
	apperrors "github.com/gadgetmart/catalog/pkg/errors"
	"github.com/gadgetmart/catalog/pkg/validator"
)

// BrandRepository implements brand persistence operations using MongoDB.
type BrandRepository struct {
	coll *mongo.Collection
}

// NewBrandRepository binds the brand schema to the brands collection.
func NewBrandRepository(db *mongo.Database) *BrandRepository {
	return &BrandRepository{coll: db.Collection(brandCollection)}
}

// Create validates and inserts a new brand. A fresh ObjectID and timestamps
// are assigned when not already set.
func (r *BrandRepository) Create(ctx context.Context, b *domain.Brand) error {
	if err := validator.Validate(b); err != nil {
		return apperrors.InvalidInput(err.Error())
	}

	if b.ID.IsZero() {
		b.ID = primitive.NewObjectID()
	}
	now := time.Now().UTC()
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	b.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, b); err != nil {
		return fmt.Errorf("insert brand: %w", err)
	}

	return nil
}

// GetByID retrieves a brand by its identifier.
func (r *BrandRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Brand, error) {
	var b domain.Brand

	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&b)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NotFound("Brand")
		}
		return nil, fmt.Errorf("find brand %s: %w", id.Hex(), err)
	}

	return &b, nil
}

// ListAll returns all brands ordered by name.
func (r *BrandRepository) ListAll(ctx context.Context) ([]domain.Brand, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list brands: %w", err)
	}
	defer cursor.Close(ctx)

	brands := []domain.Brand{}
	if err := cursor.All(ctx, &brands); err != nil {
		return nil, fmt.Errorf("decode brands: %w", err)
	}

	return brands, nil
}

// Count returns the number of stored brands.
func (r *BrandRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count brands: %w", err)
	}
	return n, nil
}
