package services

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/yatrika/travel-assistant/backend/internal/model/travel"
	"github.com/yatrika/travel-assistant/backend/pkg/utils"
)

// Searcher runs the per-category travel searches.
type Searcher interface {
	SearchFlights(ctx context.Context, departure, destination, date string) travel.CategoryResult
	SearchHotels(ctx context.Context, city, area, checkin, checkout string) travel.CategoryResult
	SearchTrains(ctx context.Context, departure, destination, date string) travel.CategoryResult
	SearchBuses(ctx context.Context, departure, destination, date string) travel.CategoryResult
	SearchIntercityCab(ctx context.Context, departure, destination, date string) travel.CategoryResult
	SearchLocalCab(ctx context.Context, departure, destination string) travel.CategoryResult
}

// Handler serves the category search endpoints.
type Handler struct {
	searcher Searcher
}

// New creates the services handler.
func New(searcher Searcher) *Handler {
	return &Handler{searcher: searcher}
}

// RegisterRoutes mounts the search routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/flights/search", h.handleFlights)
	r.Post("/hotels/search", h.handleHotels)
	r.Post("/transport/search", h.handleTransport)
	r.Post("/cabs/local", h.handleLocalCabs)
}

type searchRequest struct {
	Departure   string `json:"departure"`
	Destination string `json:"destination"`
	Date        string `json:"date"`
	Area        string `json:"area"`
	Checkin     string `json:"checkin"`
	Checkout    string `json:"checkout"`
}

func decodeSearch(w http.ResponseWriter, r *http.Request) (searchRequest, bool) {
	var payload searchRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Request body is required")
		return searchRequest{}, false
	}
	return payload, true
}

func (h *Handler) handleFlights(w http.ResponseWriter, r *http.Request) {
	payload, ok := decodeSearch(w, r)
	if !ok {
		return
	}
	if payload.Departure == "" || payload.Destination == "" {
		utils.RespondError(w, http.StatusBadRequest, "departure and destination are required")
		return
	}

	utils.RespondJSON(w, http.StatusOK, h.searcher.SearchFlights(r.Context(), payload.Departure, payload.Destination, payload.Date))
}

func (h *Handler) handleHotels(w http.ResponseWriter, r *http.Request) {
	payload, ok := decodeSearch(w, r)
	if !ok {
		return
	}
	if payload.Destination == "" {
		utils.RespondError(w, http.StatusBadRequest, "destination is required")
		return
	}

	utils.RespondJSON(w, http.StatusOK, h.searcher.SearchHotels(r.Context(), payload.Destination, payload.Area, payload.Checkin, payload.Checkout))
}

// handleTransport searches trains, buses and intercity cabs in one request.
func (h *Handler) handleTransport(w http.ResponseWriter, r *http.Request) {
	payload, ok := decodeSearch(w, r)
	if !ok {
		return
	}
	if payload.Departure == "" || payload.Destination == "" {
		utils.RespondError(w, http.StatusBadRequest, "departure and destination are required")
		return
	}

	ctx := r.Context()
	utils.RespondJSON(w, http.StatusOK, map[string]travel.CategoryResult{
		"trains": h.searcher.SearchTrains(ctx, payload.Departure, payload.Destination, payload.Date),
		"buses":  h.searcher.SearchBuses(ctx, payload.Departure, payload.Destination, payload.Date),
		"cabs":   h.searcher.SearchIntercityCab(ctx, payload.Departure, payload.Destination, payload.Date),
	})
}

func (h *Handler) handleLocalCabs(w http.ResponseWriter, r *http.Request) {
	payload, ok := decodeSearch(w, r)
	if !ok {
		return
	}
	if payload.Departure == "" || payload.Destination == "" {
		utils.RespondError(w, http.StatusBadRequest, "departure and destination are required")
		return
	}

	utils.RespondJSON(w, http.StatusOK, h.searcher.SearchLocalCab(r.Context(), payload.Departure, payload.Destination))
}
