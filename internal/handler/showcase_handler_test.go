package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"showcase/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowcaseHandler_Format(t *testing.T) {
	h := NewShowcaseHandler(zerolog.Nop())

	tests := []struct {
		name           string
		query          string
		expectedStatus int
		expected       string
	}{
		{name: "Default upper", query: "?input=Hello", expectedStatus: http.StatusOK, expected: "HELLO"},
		{name: "Explicit upper", query: "?input=Hello&upper=true", expectedStatus: http.StatusOK, expected: "HELLO"},
		{name: "Lower", query: "?input=Hello&upper=false", expectedStatus: http.StatusOK, expected: "hello"},
		{name: "Empty input", query: "?input=", expectedStatus: http.StatusOK, expected: ""},
		{name: "Missing input", query: "", expectedStatus: http.StatusBadRequest},
		{name: "Invalid upper", query: "?input=Hello&upper=maybe", expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/format"+tt.query, nil)
			w := httptest.NewRecorder()

			h.Format(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				var resp resultResponse[string]
				require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, tt.expected, resp.Result)
			}
		})
	}
}

func TestShowcaseHandler_FilterRatings(t *testing.T) {
	h := NewShowcaseHandler(zerolog.Nop())

	tests := []struct {
		name           string
		body           string
		expectedStatus int
		expected       []model.RatedItem
	}{
		{
			name:           "Success",
			body:           `[{"title":"Book A","rating":4.5},{"title":"Book B","rating":3.2},{"title":"Book C","rating":5}]`,
			expectedStatus: http.StatusOK,
			expected:       []model.RatedItem{{Title: "Book A", Rating: 4.5}, {Title: "Book C", Rating: 5}},
		},
		{
			name:           "Empty list",
			body:           `[]`,
			expectedStatus: http.StatusOK,
			expected:       []model.RatedItem{},
		},
		{
			name:           "Invalid JSON",
			body:           `{"title":`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/ratings/filter", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			h.FilterRatings(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				var got []model.RatedItem
				require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
				assert.Equal(t, tt.expected, got)
			} else {
				var resp model.ErrorResponse
				require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, model.ErrCodeInvalidJSON, resp.Error)
			}
		})
	}
}

func TestShowcaseHandler_Concat(t *testing.T) {
	h := NewShowcaseHandler(zerolog.Nop())

	tests := []struct {
		name           string
		body           string
		expectedStatus int
		expected       string
	}{
		{name: "Strings", body: `[["a","b"],["c"]]`, expectedStatus: http.StatusOK, expected: `["a","b","c"]`},
		{name: "Numbers", body: `[[1,2],[3,4],[5]]`, expectedStatus: http.StatusOK, expected: `[1,2,3,4,5]`},
		{name: "No arrays", body: `[]`, expectedStatus: http.StatusOK, expected: `[]`},
		{name: "Not nested", body: `[1,2]`, expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/concat", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			h.Concat(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				assert.JSONEq(t, tt.expected, w.Body.String())
			}
		})
	}
}

func TestShowcaseHandler_Car(t *testing.T) {
	h := NewShowcaseHandler(zerolog.Nop())

	tests := []struct {
		name           string
		query          string
		expectedStatus int
		expected       carResponse
	}{
		{
			name:           "Success",
			query:          "?make=Toyota&year=2020&model=Corolla",
			expectedStatus: http.StatusOK,
			expected:       carResponse{Info: "Make: Toyota, Year: 2020", Model: "Model: Corolla"},
		},
		{name: "Missing model", query: "?make=Toyota&year=2020", expectedStatus: http.StatusBadRequest},
		{name: "Invalid year", query: "?make=Toyota&year=soon&model=Corolla", expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/cars"+tt.query, nil)
			w := httptest.NewRecorder()

			h.Car(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				var got carResponse
				require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}

func TestShowcaseHandler_Value(t *testing.T) {
	h := NewShowcaseHandler(zerolog.Nop())

	tests := []struct {
		name           string
		body           string
		expectedStatus int
		expected       float64
		expectedCode   string
	}{
		{name: "Text", body: `{"text":"hello"}`, expectedStatus: http.StatusOK, expected: 5},
		{name: "Number", body: `{"number":10}`, expectedStatus: http.StatusOK, expected: 20},
		{name: "Empty text", body: `{"text":""}`, expectedStatus: http.StatusOK, expected: 0},
		{name: "Both variants", body: `{"text":"a","number":1}`, expectedStatus: http.StatusBadRequest, expectedCode: model.ErrCodeInvalidValue},
		{name: "Neither variant", body: `{}`, expectedStatus: http.StatusBadRequest, expectedCode: model.ErrCodeInvalidValue},
		{name: "Invalid JSON", body: `nope`, expectedStatus: http.StatusBadRequest, expectedCode: model.ErrCodeInvalidJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/values", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			h.Value(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				var resp resultResponse[float64]
				require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, tt.expected, resp.Result)
			} else {
				var resp model.ErrorResponse
				require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, tt.expectedCode, resp.Error)
			}
		})
	}
}

func TestShowcaseHandler_Day(t *testing.T) {
	h := NewShowcaseHandler(zerolog.Nop())

	tests := []struct {
		name           string
		day            string
		expectedStatus int
		expected       dayResponse
	}{
		{name: "Monday", day: "Monday", expectedStatus: http.StatusOK, expected: dayResponse{Day: "Monday", Type: model.Weekday}},
		{name: "Sunday lower case", day: "sunday", expectedStatus: http.StatusOK, expected: dayResponse{Day: "Sunday", Type: model.Weekend}},
		{name: "Unknown", day: "Funday", expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/days/"+tt.day, nil)
			req.SetPathValue("day", tt.day)
			w := httptest.NewRecorder()

			h.Day(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				var got dayResponse
				require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
				assert.Equal(t, tt.expected, got)
			} else {
				var resp model.ErrorResponse
				require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, model.ErrCodeUnknownDay, resp.Error)
			}
		})
	}
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, statusFor(model.ErrCodeInvalidJSON))
	assert.Equal(t, http.StatusUnprocessableEntity, statusFor(model.ErrCodeNegativeNumber))
	assert.Equal(t, http.StatusNotFound, statusFor(model.ErrCodeEmptyCatalogue))
	assert.Equal(t, http.StatusUnauthorized, statusFor(model.ErrCodeUnauthorised))
	assert.Equal(t, http.StatusInternalServerError, statusFor("SOMETHING_ELSE"))
}
