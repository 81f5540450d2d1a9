package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"showcase/internal/catalog"
	"showcase/internal/collection"
	"showcase/internal/model"
	"showcase/internal/textcase"

	"github.com/rs/zerolog"
)

// ShowcaseHandler serves the stateless operations.
type ShowcaseHandler struct {
	logger zerolog.Logger
}

// NewShowcaseHandler creates a new showcase handler.
func NewShowcaseHandler(logger zerolog.Logger) *ShowcaseHandler {
	return &ShowcaseHandler{
		logger: logger.With().Str("handler", "showcase").Logger(),
	}
}

type resultResponse[T any] struct {
	Result T `json:"result"`
}

// Format handles GET /api/format?input=..&upper=true|false requests.
func (h *ShowcaseHandler) Format(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	if !query.Has("input") {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeMissingField, "input parameter is required", h.logger)
		return
	}

	var opts []textcase.Option
	if upperStr := query.Get("upper"); upperStr != "" {
		upper, err := strconv.ParseBool(upperStr)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidValue, "invalid upper parameter", h.logger)
			return
		}
		opts = append(opts, textcase.WithUpper(upper))
	}

	writeJSON(w, http.StatusOK, resultResponse[string]{Result: textcase.Format(query.Get("input"), opts...)})
}

// FilterRatings handles POST /api/ratings/filter requests.
func (h *ShowcaseHandler) FilterRatings(w http.ResponseWriter, r *http.Request) {
	var items []model.RatedItem
	if err := decodeJSON(w, r, &items); err != nil {
		writeFailure(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, catalog.FilterByRating(items))
}

// Concat handles POST /api/concat requests. The body is an array of arrays
// of arbitrary JSON values.
func (h *ShowcaseHandler) Concat(w http.ResponseWriter, r *http.Request) {
	var parts [][]json.RawMessage
	if err := decodeJSON(w, r, &parts); err != nil {
		writeFailure(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, collection.Concat(parts...))
}

type carResponse struct {
	Info  string `json:"info"`
	Model string `json:"model"`
}

// Car handles GET /api/cars?make=..&year=..&model=.. requests.
func (h *ShowcaseHandler) Car(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	for _, field := range []string{"make", "year", "model"} {
		if query.Get(field) == "" {
			writeError(w, r, http.StatusBadRequest, model.ErrCodeMissingField, field+" parameter is required", h.logger)
			return
		}
	}

	year, err := strconv.Atoi(query.Get("year"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidValue, "invalid year parameter", h.logger)
		return
	}

	car := model.NewCar(query.Get("make"), year, query.Get("model"))
	writeJSON(w, http.StatusOK, carResponse{Info: car.Info(), Model: car.Model()})
}

// valueRequest carries exactly one of Text or Number.
type valueRequest struct {
	Text   *string  `json:"text,omitempty"`
	Number *float64 `json:"number,omitempty"`
}

func (req valueRequest) value() (model.Value, error) {
	switch {
	case req.Text != nil && req.Number == nil:
		return model.Text(*req.Text), nil
	case req.Number != nil && req.Text == nil:
		return model.Number(*req.Number), nil
	default:
		return nil, model.ErrInvalidValue
	}
}

// Value handles POST /api/values requests.
func (h *ShowcaseHandler) Value(w http.ResponseWriter, r *http.Request) {
	var req valueRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeFailure(w, r, err, h.logger)
		return
	}

	v, err := req.value()
	if err != nil {
		writeFailure(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, resultResponse[float64]{Result: model.ProcessValue(v)})
}

type dayResponse struct {
	Day  string        `json:"day"`
	Type model.DayType `json:"type"`
}

// Day handles GET /api/days/{day} requests.
func (h *ShowcaseHandler) Day(w http.ResponseWriter, r *http.Request) {
	day, err := model.ParseDay(r.PathValue("day"))
	if err != nil {
		writeFailure(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, dayResponse{Day: day.String(), Type: day.Type()})
}
