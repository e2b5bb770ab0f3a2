// Package mongodb implements the repository interfaces on top of the
// MongoDB Go driver. Each repository binds a schema type to a fixed
// collection name on an injected *mongo.Database handle.
package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
)

// Collection names used by the catalog.
const (
	brandCollection   = "brands"
	productCollection = "products"
)

// DropCollections removes both catalog collections. The seed binary uses it
// as an explicit reset step, since seeding itself is not idempotent.
func DropCollections(ctx context.Context, db *mongo.Database) error {
	for _, name := range []string{brandCollection, productCollection} {
		if err := db.Collection(name).Drop(ctx); err != nil {
			return fmt.Errorf("drop collection %s: %w", name, err)
		}
	}
	return nil
}
