package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoConfig holds MongoDB connection configuration.
type MongoConfig struct {
	URI      string
	Database string

	ConnectTimeout  time.Duration
	MaxPoolSize     uint64
	MinPoolSize     uint64
	MaxConnIdleTime time.Duration
}

// DefaultMongoConfig returns sensible defaults for a local MongoDB instance.
func DefaultMongoConfig() MongoConfig {
	return MongoConfig{
		URI:             "mongodb://localhost:27017",
		Database:        "shop",
		ConnectTimeout:  10 * time.Second,
		MaxPoolSize:     100,
		MinPoolSize:     0,
		MaxConnIdleTime: 5 * time.Minute,
	}
}

// NewMongoClient creates a MongoDB client for the given configuration.
// The driver connects lazily; an error here means the URI or options are
// invalid, not that the server is unreachable. Use Ping to verify liveness.
func NewMongoClient(ctx context.Context, cfg MongoConfig) (*mongo.Client, error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetServerSelectionTimeout(cfg.ConnectTimeout).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetMinPoolSize(cfg.MinPoolSize).
		SetMaxConnIdleTime(cfg.MaxConnIdleTime)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}

	return client, nil
}

// Ping verifies that the MongoDB deployment is reachable.
func Ping(ctx context.Context, client *mongo.Client) error {
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("ping mongodb: %w", err)
	}
	return nil
}

// Disconnect closes the client and all its connections.
func Disconnect(ctx context.Context, client *mongo.Client) error {
	if err := client.Disconnect(ctx); err != nil {
		return fmt.Errorf("disconnect mongodb: %w", err)
	}
	return nil
}

// RedactURI hides credentials from a MongoDB URI for safe logging.
func RedactURI(uri string) string {
	schemeEnd := strings.Index(uri, "://")
	if schemeEnd == -1 {
		return uri
	}
	rest := uri[schemeEnd+3:]
	at := strings.LastIndex(rest, "@")
	if at == -1 {
		return uri
	}
	return uri[:schemeEnd+3] + "***:***@" + rest[at+1:]
}
