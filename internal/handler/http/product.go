package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gadgetmart/catalog/internal/repository"
	"github.com/gadgetmart/catalog/pkg/httputil"
)

// ProductHandler handles HTTP requests for product endpoints.
type ProductHandler struct {
	repo   repository.ProductRepository
	logger *slog.Logger
}

// NewProductHandler creates a new product HTTP handler.
func NewProductHandler(repo repository.ProductRepository, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		repo:   repo,
		logger: logger,
	}
}

// ListProducts handles GET /products
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.repo.List(r.Context(), repository.ProductFilter{})
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: products})
}

// GetProduct handles GET /products/{id}
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseObjectID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	product, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: product})
}
