package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/gadgetmart/catalog/internal/config"
	handler "github.com/gadgetmart/catalog/internal/handler/http"
	"github.com/gadgetmart/catalog/internal/repository/mongodb"
	"github.com/gadgetmart/catalog/pkg/database"
	"github.com/gadgetmart/catalog/pkg/health"
)

// App wires together all dependencies and runs the catalog service.
type App struct {
	cfg        *config.Config
	logger     *slog.Logger
	client     *mongo.Client
	httpServer *http.Server
}

// NewApp creates a new application instance, initializing all dependencies.
//
// A failed MongoDB ping at startup is logged but not fatal: the driver
// reconnects on demand, so queries fail individually until the server comes
// back, and the readiness probe reports down in the meantime.
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	mongoCfg := database.DefaultMongoConfig()
	mongoCfg.URI = cfg.MongoURI
	mongoCfg.Database = cfg.MongoDB

	client, err := database.NewMongoClient(ctx, mongoCfg)
	if err != nil {
		return nil, fmt.Errorf("create mongo client: %w", err)
	}

	if err := database.Ping(ctx, client); err != nil {
		logger.Error("mongodb unreachable at startup, queries will fail until it recovers",
			slog.String("uri", database.RedactURI(cfg.MongoURI)),
			slog.String("database", cfg.MongoDB),
			slog.String("error", err.Error()),
		)
	} else {
		logger.Info("connected to MongoDB",
			slog.String("uri", database.RedactURI(cfg.MongoURI)),
			slog.String("database", cfg.MongoDB),
		)
	}

	db := client.Database(cfg.MongoDB)

	// Build the dependency graph.
	productRepo := mongodb.NewProductRepository(db)
	brandRepo := mongodb.NewBrandRepository(db)

	// Health checks.
	healthHandler := health.NewHandler()
	healthHandler.Register("mongodb", func(ctx context.Context) error {
		return database.Ping(ctx, client)
	})

	// HTTP router.
	router := handler.NewRouter(productRepo, brandRepo, healthHandler, logger)

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &App{
		cfg:        cfg,
		logger:     logger,
		client:     client,
		httpServer: httpServer,
	}, nil
}

// Run starts the HTTP server and blocks until the context is canceled.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info("starting HTTP server",
			slog.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.Shutdown()
}

// Shutdown gracefully stops all components.
func (a *App) Shutdown() error {
	a.logger.Info("shutting down application...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("http server shutdown error", slog.String("error", err.Error()))
	}

	if err := database.Disconnect(shutdownCtx, a.client); err != nil {
		a.logger.Error("mongodb disconnect error", slog.String("error", err.Error()))
	}

	a.logger.Info("application shutdown complete")
	return nil
}
