package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestCORS_Wildcard(t *testing.T) {
	handler := CORS(DefaultCORSConfig())(okHandler())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	req.Header.Set("Origin", "https://storefront.example")

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "GET")
}

func TestCORS_ExplicitOrigin(t *testing.T) {
	cfg := CORSConfig{
		AllowedOrigins: []string{"https://storefront.example"},
		Environment:    "production",
	}
	handler := CORS(cfg)(okHandler())

	t.Run("allowed origin echoed back", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/products", nil)
		req.Header.Set("Origin", "https://storefront.example")

		handler.ServeHTTP(rec, req)

		assert.Equal(t, "https://storefront.example", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "Origin", rec.Header().Get("Vary"))
	})

	t.Run("unknown origin gets no allow header", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/products", nil)
		req.Header.Set("Origin", "https://evil.example")

		handler.ServeHTTP(rec, req)

		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestCORS_Preflight(t *testing.T) {
	handler := CORS(DefaultCORSConfig())(okHandler())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/products", nil)
	req.Header.Set("Origin", "https://storefront.example")
	req.Header.Set("Access-Control-Request-Method", "GET")

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "3600", rec.Header().Get("Access-Control-Max-Age"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "X-Correlation-ID")
}
