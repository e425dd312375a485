package travel

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	travelmodel "github.com/yatrika/travel-assistant/backend/internal/model/travel"
	sessionservice "github.com/yatrika/travel-assistant/backend/internal/service/session"
	"github.com/yatrika/travel-assistant/backend/pkg/utils"
)

// Planner generates itineraries.
type Planner interface {
	Plan(ctx context.Context, departure, destination string, dates *travelmodel.DateRange, profile map[string]any) travelmodel.Itinerary
}

// GuideProvider builds destination guides.
type GuideProvider interface {
	ForCity(ctx context.Context, city string) travelmodel.Guide
}

// Handler serves session lifecycle, itinerary and guide endpoints.
type Handler struct {
	store   *sessionservice.Store
	planner Planner
	guides  GuideProvider
}

// New creates the travel handler.
func New(store *sessionservice.Store, planner Planner, guides GuideProvider) *Handler {
	return &Handler{store: store, planner: planner, guides: guides}
}

// RegisterRoutes mounts the travel routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/sessions/create", h.handleCreateSession)
	r.Get("/sessions/current/{sessionKey}", h.handleGetSession)
	r.Post("/itinerary/generate", h.handleGenerateItinerary)
	r.Post("/guide", h.handleGuide)
	r.Get("/map", h.handleMap)
}

func (h *Handler) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		UserID string `json:"user_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if payload.UserID == "" {
		utils.RespondError(w, http.StatusBadRequest, "user_id is required")
		return
	}

	session, err := h.store.Create(r.Context(), payload.UserID)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Session creation failed: "+err.Error())
		return
	}

	utils.RespondJSON(w, http.StatusOK, session)
}

func (h *Handler) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sessionKey := chi.URLParam(r, "sessionKey")

	session, err := h.store.Get(r.Context(), sessionKey)
	if err != nil {
		if errors.Is(err, sessionservice.ErrSessionNotFound) {
			utils.RespondError(w, http.StatusNotFound, "Session not found")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "Failed to get session: "+err.Error())
		return
	}

	utils.RespondJSON(w, http.StatusOK, session)
}

func (h *Handler) handleGenerateItinerary(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		DepartureLocation   string                 `json:"departure_location"`
		DestinationLocation string                 `json:"destination_location"`
		TravelDates         *travelmodel.DateRange `json:"travel_dates"`
		UserProfile         map[string]any         `json:"user_profile"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if payload.DestinationLocation == "" {
		utils.RespondError(w, http.StatusBadRequest, "destination_location is required")
		return
	}

	itinerary := h.planner.Plan(r.Context(), payload.DepartureLocation, payload.DestinationLocation, payload.TravelDates, payload.UserProfile)
	utils.RespondJSON(w, http.StatusOK, itinerary)
}

func (h *Handler) handleGuide(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Destination string `json:"destination"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if payload.Destination == "" {
		utils.RespondError(w, http.StatusBadRequest, "destination is required")
		return
	}

	utils.RespondJSON(w, http.StatusOK, h.guides.ForCity(r.Context(), payload.Destination))
}

// handleMap returns an external map link centered on the requested
// coordinates, defaulting to an all-India view.
func (h *Handler) handleMap(w http.ResponseWriter, r *http.Request) {
	lat := queryFloat(r, "lat", 20.5937)
	lon := queryFloat(r, "lon", 78.9629)
	zoom := queryInt(r, "zoom", 4)

	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"map_url": fmt.Sprintf("https://www.openstreetmap.org/#map=%d/%.4f/%.4f", zoom, lat, lon),
		"lat":     lat,
		"lon":     lon,
		"zoom":    zoom,
	})
}

func queryFloat(r *http.Request, key string, fallback float64) float64 {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	val, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}
	return val
}

func queryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return val
}
