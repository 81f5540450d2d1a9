package handler

import (
	"net/http"

	"showcase/internal/catalog"
	"showcase/internal/model"
	"showcase/internal/service"

	"github.com/rs/zerolog"
)

// CatalogueHandler handles catalogue-related HTTP requests.
type CatalogueHandler struct {
	service service.CatalogueService
	logger  zerolog.Logger
}

// NewCatalogueHandler creates a new catalogue handler.
func NewCatalogueHandler(service service.CatalogueService, logger zerolog.Logger) *CatalogueHandler {
	return &CatalogueHandler{
		service: service,
		logger:  logger.With().Str("handler", "catalogue").Logger(),
	}
}

// TopRated handles GET /api/ratings/top requests.
func (h *CatalogueHandler) TopRated(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.TopRated(r.Context())
	if err != nil {
		writeFailure(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, items)
}

// MostExpensive handles GET /api/products/most-expensive requests.
func (h *CatalogueHandler) MostExpensive(w http.ResponseWriter, r *http.Request) {
	product, err := h.service.MostExpensive(r.Context())
	if err != nil {
		writeFailure(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// MostExpensiveOf handles POST /api/products/most-expensive requests over
// the products in the request body.
func (h *CatalogueHandler) MostExpensiveOf(w http.ResponseWriter, r *http.Request) {
	var products []model.Product
	if err := decodeJSON(w, r, &products); err != nil {
		writeFailure(w, r, err, h.logger)
		return
	}

	best, ok := catalog.MostExpensive(products)
	if !ok {
		writeFailure(w, r, model.ErrEmptyCatalogue, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, best)
}
