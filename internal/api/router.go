package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"freight-quotation-service/internal/api/handlers"
	"freight-quotation-service/internal/cache"
	"freight-quotation-service/internal/match"
	"freight-quotation-service/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. This is the API composition root; handlers stay unaware
// of concrete adapters.
func NewRouter(c *cache.DatasetCache, source ports.RateSource, matcher *match.LocationMatcher) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger)

	quotations := &handlers.QuotationHandler{Provider: c, Matcher: matcher}
	analytics := &handlers.AnalyticsHandler{Provider: c}
	catalog := &handlers.CatalogHandler{Provider: c}
	rates := &handlers.RateHandler{Provider: c, Source: source, Cache: c}
	health := &handlers.HealthHandler{Cache: c}

	r.Get("/api/health", health.Check)
	r.Post("/api/quotations/search", quotations.Search)
	r.Get("/api/analytics", analytics.Summary)
	r.Get("/api/vendors", catalog.Vendors)
	r.Get("/api/locations", catalog.Locations)
	r.Get("/api/vehicle-types", catalog.VehicleTypes)
	r.Get("/api/rates", rates.List)
	r.Put("/api/rates/{index}", rates.Update)

	return r
}
