package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/gadgetmart/catalog/internal/domain"
)

// ProductFilter defines optional filter criteria for listing products.
type ProductFilter struct {
	Brand *primitive.ObjectID
}

// BrandRepository defines the interface for brand persistence operations.
type BrandRepository interface {
	// Create validates and inserts a new brand, assigning its identifier
	// and timestamps.
	Create(ctx context.Context, brand *domain.Brand) error

	// GetByID retrieves a brand by its identifier.
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Brand, error)

	// ListAll returns all brands.
	ListAll(ctx context.Context) ([]domain.Brand, error)

	// Count returns the number of stored brands.
	Count(ctx context.Context) (int64, error)
}

// ProductRepository defines the interface for product persistence operations.
type ProductRepository interface {
	// Create validates and inserts a new product, assigning its identifier
	// and timestamps.
	Create(ctx context.Context, product *domain.Product) error

	// CreateMany validates and inserts products in a single batch.
	CreateMany(ctx context.Context, products []domain.Product) error

	// GetByID retrieves a product by its identifier.
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Product, error)

	// List returns products matching the given filter.
	List(ctx context.Context, filter ProductFilter) ([]domain.Product, error)

	// Count returns the number of stored products.
	Count(ctx context.Context) (int64, error)
}
