package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gadgetmart/catalog/internal/repository"
	"github.com/gadgetmart/catalog/pkg/health"
	"github.com/gadgetmart/catalog/pkg/httputil"
	"github.com/gadgetmart/catalog/pkg/middleware"
)

// NewRouter creates a chi router with all catalog routes registered.
func NewRouter(
	productRepo repository.ProductRepository,
	brandRepo repository.BrandRepository,
	healthHandler *health.Handler,
	logger *slog.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestLogging(logger))
	r.Use(middleware.PrometheusMetrics("catalog"))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteText(w, http.StatusOK, "This is root")
	})

	// Health check endpoints
	r.Get("/health/live", healthHandler.LivenessHandler())
	r.Get("/health/ready", healthHandler.ReadinessHandler())

	// Prometheus metrics
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	// Product API endpoints
	productHandler := NewProductHandler(productRepo, logger)

	r.Route("/products", func(r chi.Router) {
		r.Get("/", productHandler.ListProducts)
		r.Get("/{id}", productHandler.GetProduct)
	})

	// Brand API endpoints
	brandHandler := NewBrandHandler(brandRepo, logger)

	r.Route("/brands", func(r chi.Router) {
		r.Get("/", brandHandler.ListBrands)
		r.Get("/{id}", brandHandler.GetBrand)
	})

	return r
}
