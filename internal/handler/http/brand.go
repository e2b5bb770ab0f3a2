package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gadgetmart/catalog/internal/repository"
	"github.com/gadgetmart/catalog/pkg/httputil"
)

// BrandHandler handles HTTP requests for brand endpoints.
type BrandHandler struct {
	repo   repository.BrandRepository
	logger *slog.Logger
}

// NewBrandHandler creates a new brand HTTP handler.
func NewBrandHandler(repo repository.BrandRepository, logger *slog.Logger) *BrandHandler {
	return &BrandHandler{
		repo:   repo,
		logger: logger,
	}
}

// ListBrands handles GET /brands
func (h *BrandHandler) ListBrands(w http.ResponseWriter, r *http.Request) {
	brands, err := h.repo.ListAll(r.Context())
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: brands})
}

// GetBrand handles GET /brands/{id}
func (h *BrandHandler) GetBrand(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseObjectID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	brand, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: brand})
}
