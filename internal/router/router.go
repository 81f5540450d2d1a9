package router

import (
	"net/http"

	"showcase/internal/handler"
	"showcase/internal/middleware"

	"github.com/rs/zerolog"
)

// PublicPaths are served without an API key.
var PublicPaths = []string{"/health", "/metrics"}

// Handlers groups the handlers the router dispatches to.
type Handlers struct {
	Showcase  *handler.ShowcaseHandler
	Catalogue *handler.CatalogueHandler
	Square    *handler.SquareHandler
	// Metrics serves /metrics when set.
	Metrics http.Handler
}

// New creates a new HTTP router with all routes and middleware configured.
func New(h Handlers, apiKey string, logger zerolog.Logger) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint (no authentication required)
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	if h.Metrics != nil {
		mux.Handle("GET /metrics", h.Metrics)
	}

	mux.HandleFunc("GET /api/format", h.Showcase.Format)
	mux.HandleFunc("POST /api/ratings/filter", h.Showcase.FilterRatings)
	mux.HandleFunc("POST /api/concat", h.Showcase.Concat)
	mux.HandleFunc("GET /api/cars", h.Showcase.Car)
	mux.HandleFunc("POST /api/values", h.Showcase.Value)
	mux.HandleFunc("GET /api/days/{day}", h.Showcase.Day)

	mux.HandleFunc("GET /api/ratings/top", h.Catalogue.TopRated)
	mux.HandleFunc("GET /api/products/most-expensive", h.Catalogue.MostExpensive)
	mux.HandleFunc("POST /api/products/most-expensive", h.Catalogue.MostExpensiveOf)

	mux.HandleFunc("GET /api/square/{n}", h.Square.Square)

	// Outermost first: Correlation ID -> Logging -> Recovery -> CORS -> APIKeyAuth
	var handler http.Handler = mux
	handler = middleware.APIKeyAuth(apiKey, PublicPaths, logger)(handler)
	handler = middleware.CORS(handler)
	handler = middleware.Recovery(logger)(handler)
	handler = middleware.Logging(logger)(handler)
	handler = middleware.WithCorrelationID(handler)

	return handler
}
