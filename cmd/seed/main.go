// Command seed populates the catalog database with fixed sample data:
// five brands and seven products referencing them. It is run manually and
// is not part of the HTTP server.
//
// Seeding is not idempotent; each run inserts a fresh copy of every record.
// Pass -reset to drop both collections first.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/gadgetmart/catalog/internal/config"
	"github.com/gadgetmart/catalog/internal/repository/mongodb"
	"github.com/gadgetmart/catalog/internal/seed"
	"github.com/gadgetmart/catalog/pkg/database"
)

func main() {
	reset := flag.Bool("reset", false, "drop the brands and products collections before seeding")
	flag.Parse()

	log.SetFlags(log.Ltime | log.Lmsgprefix)
	log.SetPrefix("[seed] ")

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	log.Printf("Connecting to %s (database %q)...", database.RedactURI(cfg.MongoURI), cfg.MongoDB)

	mongoCfg := database.DefaultMongoConfig()
	mongoCfg.URI = cfg.MongoURI
	mongoCfg.Database = cfg.MongoDB

	client, err := database.NewMongoClient(ctx, mongoCfg)
	if err != nil {
		log.Fatalf("create mongo client: %v", err)
	}

	if err := database.Ping(ctx, client); err != nil {
		log.Fatalf("ping mongodb: %v", err)
	}
	log.Println("Connected.")

	db := client.Database(cfg.MongoDB)

	if *reset {
		log.Println("Dropping existing collections...")
		if err := mongodb.DropCollections(ctx, db); err != nil {
			log.Fatalf("reset collections: %v", err)
		}
	}

	brandRepo := mongodb.NewBrandRepository(db)
	productRepo := mongodb.NewProductRepository(db)

	if err := seed.Run(ctx, brandRepo, productRepo, log.Default()); err != nil {
		log.Fatalf("seed: %v", err)
	}

	if err := database.Disconnect(ctx, client); err != nil {
		log.Fatalf("disconnect: %v", err)
	}
}
