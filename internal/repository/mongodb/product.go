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
	"github.com/gadgetmart/catalog/internal/repository"
	apperrors "github.com/gadgetmart/catalog/pkg/errors"
	"github.com/gadgetmart/catalog/pkg/validator"
)

// ProductRepository implements repository.ProductRepository using MongoDB.
type ProductRepository struct {
	coll *mongo.Collection
}

// NewProductRepository binds the product schema to the products collection.
func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{coll: db.Collection(productCollection)}
}

// Create validates and inserts a new product. A fresh ObjectID and timestamps
// are assigned when not already set. The brand reference, when present, is
// NOT checked against the brands collection.
func (r *ProductRepository) Create(ctx context.Context, p *domain.Product) error {
	if err := validator.Validate(p); err != nil {
		return apperrors.InvalidInput(err.Error())
	}

	stamp(p)

	if _, err := r.coll.InsertOne(ctx, p); err != nil {
		return fmt.Errorf("insert product: %w", err)
	}

	return nil
}

// CreateMany validates and inserts products in a single batch operation.
// The batch is all-or-nothing at the validation layer: no document is
// inserted if any of them fails validation.
func (r *ProductRepository) CreateMany(ctx context.Context, products []domain.Product) error {
	if len(products) == 0 {
		return nil
	}

	docs := make([]any, len(products))
	for i := range products {
		if err := validator.Validate(&products[i]); err != nil {
			return apperrors.InvalidInput(fmt.Sprintf("product %d: %s", i, err.Error()))
		}
		stamp(&products[i])
		docs[i] = products[i]
	}

	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("insert products: %w", err)
	}

	return nil
}

// GetByID retrieves a product by its identifier.
func (r *ProductRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Product, error) {
	var p domain.Product

	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NotFound("Product")
		}
		return nil, fmt.Errorf("find product %s: %w", id.Hex(), err)
	}

	return &p, nil
}

// List returns products matching the given filter, newest first.
func (r *ProductRepository) List(ctx context.Context, filter repository.ProductFilter) ([]domain.Product, error) {
	query := bson.M{}
	if filter.Brand != nil {
		query["brand"] = *filter.Brand
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer cursor.Close(ctx)

	products := []domain.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}

	return products, nil
}

// Count returns the number of stored products.
func (r *ProductRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}

func stamp(p *domain.Product) {
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	now := time.Now().UTC()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
}
