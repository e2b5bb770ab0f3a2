// Package seed holds the fixed sample data and the batch logic that loads it.
// It is invoked by cmd/seed, never by the HTTP server.
package seed

import (
	"context"
	"fmt"
	"log"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/gadgetmart/catalog/internal/domain"
	"github.com/gadgetmart/catalog/internal/repository"
)

type brandDef struct {
	name string
	url  string
}

type productDef struct {
	title       string
	description string
	price       string
	brandIdx    int // index into the brand list
}

// Fixed sample data. Descriptions carry image URLs, matching how the
// storefront consumes them.
var (
	brandDefs = []brandDef{
		{name: "Apple", url: "https://www.apple.com"},
		{name: "Samsung", url: "https://www.samsung.com"},
		{name: "Sony", url: "https://www.sony.com"},
		{name: "Bose", url: "https://www.bose.com"},
		{name: "JBL", url: "https://www.jbl.com"},
	}

	productDefs = []productDef{
		{title: "Apple AirPods", description: "https://images.gadgetmart.test/apple-airpods.jpg", price: "250", brandIdx: 0},
		{title: "Apple iPad Air", description: "https://images.gadgetmart.test/apple-ipad-air.jpg", price: "599", brandIdx: 0},
		{title: "Samsung Galaxy Buds", description: "https://images.gadgetmart.test/samsung-galaxy-buds.jpg", price: "150", brandIdx: 1},
		{title: "Samsung Galaxy Watch", description: "https://images.gadgetmart.test/samsung-galaxy-watch.jpg", price: "179", brandIdx: 1},
		{title: "Sony WH-1000XM4", description: "https://images.gadgetmart.test/sony-wh-1000xm4.jpg", price: "349", brandIdx: 2},
		{title: "Bose SoundLink Revolve", description: "https://images.gadgetmart.test/bose-soundlink-revolve.jpg", price: "199", brandIdx: 3},
		{title: "JBL Flip 5", description: "https://images.gadgetmart.test/jbl-flip-5.jpg", price: "99", brandIdx: 4},
	}
)

// BrandCount and ProductCount expose the size of the fixed data set.
const (
	BrandCount   = 5
	ProductCount = 7
)

// Run inserts the sample brands one at a time, capturing each generated
// identifier, then inserts all sample products referencing those identifiers
// in a single batch. It is NOT idempotent: running it twice duplicates every
// record. Callers wanting a clean slate must reset the collections first.
func Run(
	ctx context.Context,
	brandRepo repository.BrandRepository,
	productRepo repository.ProductRepository,
	out *log.Logger,
) error {
	out.Printf("Seeding %d brands...", len(brandDefs))

	brandIDs := make([]primitive.ObjectID, len(brandDefs))
	for i, def := range brandDefs {
		b := domain.Brand{Name: def.name, URL: def.url}
		if err := brandRepo.Create(ctx, &b); err != nil {
			return fmt.Errorf("seed brand %q: %w", def.name, err)
		}
		brandIDs[i] = b.ID
		out.Printf("  Brand: %s (id=%s)", b.Name, b.ID.Hex())
	}

	out.Printf("Seeding %d products...", len(productDefs))

	products := make([]domain.Product, len(productDefs))
	for i, def := range productDefs {
		brandID := brandIDs[def.brandIdx]
		products[i] = domain.Product{
			Title:       def.title,
			Description: def.description,
			Price:       def.price,
			Brand:       &brandID,
		}
	}

	if err := productRepo.CreateMany(ctx, products); err != nil {
		return fmt.Errorf("seed products: %w", err)
	}

	for _, p := range products {
		out.Printf("  Product: %s (price=%s)", p.Title, p.Price)
	}

	out.Printf("Seed complete! Created %d brands and %d products.", len(brandDefs), len(productDefs))
	return nil
}
