package handler

import (
	"context"
	"errors"
	"math"
	"net/http"
	"strconv"

	"showcase/internal/model"
	"showcase/internal/service"

	"github.com/rs/zerolog"
)

// SquareHandler handles delayed square requests.
type SquareHandler struct {
	service service.SquareService
	logger  zerolog.Logger
}

// NewSquareHandler creates a new square handler.
func NewSquareHandler(service service.SquareService, logger zerolog.Logger) *SquareHandler {
	return &SquareHandler{
		service: service,
		logger:  logger.With().Str("handler", "square").Logger(),
	}
}

// Square handles GET /api/square/{n} requests. The response is written once
// the delayed computation resolves.
func (h *SquareHandler) Square(w http.ResponseWriter, r *http.Request) {
	n, err := strconv.ParseFloat(r.PathValue("n"), 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidValue, "n must be a finite number", h.logger)
		return
	}

	v, err := h.service.Square(r.Context(), n)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			writeError(w, r, http.StatusGatewayTimeout, model.ErrCodeInternalError, "request ended before the result was ready", h.logger)
			return
		}
		writeFailure(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, resultResponse[float64]{Result: v})
}
