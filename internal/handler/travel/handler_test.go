package travel

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	travelmodel "github.com/yatrika/travel-assistant/backend/internal/model/travel"
	sessionservice "github.com/yatrika/travel-assistant/backend/internal/service/session"
)

type stubPlanner struct {
	lastDestination string
}

func (s *stubPlanner) Plan(_ context.Context, _, destination string, _ *travelmodel.DateRange, _ map[string]any) travelmodel.Itinerary {
	s.lastDestination = destination
	return travelmodel.Itinerary{
		Traveler:    "Traveler",
		Destination: destination,
		Duration:    "2 Day(s)",
		Itinerary:   "day plans",
		GeneratedAt: "2024-06-01 12:00:00",
	}
}

type stubGuides struct{}

func (stubGuides) ForCity(_ context.Context, city string) travelmodel.Guide {
	return travelmodel.Guide{
		YouTubeLinksMD:  "No valid videos found.",
		GoogleEarthLink: "https://earth.google.com/web/search/" + city,
		City:            city,
	}
}

func setupRouter() (*chi.Mux, *sessionservice.Store, *stubPlanner) {
	store := sessionservice.NewStore()
	plannerStub := &stubPlanner{}
	handler := New(store, plannerStub, stubGuides{})

	r := chi.NewRouter()
	handler.RegisterRoutes(r)
	return r, store, plannerStub
}

func postJSON(r http.Handler, path string, body map[string]any) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestCreateSessionRoundTrip(t *testing.T) {
	r, _, _ := setupRouter()

	resp := postJSON(r, "/sessions/create", map[string]any{"user_id": "user-7"})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var created travelmodel.Session
	if err := json.Unmarshal(resp.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode err: %v", err)
	}
	if created.SessionKey == "" || created.UserID != "user-7" {
		t.Fatalf("unexpected session: %+v", created)
	}

	getResp := httptest.NewRecorder()
	r.ServeHTTP(getResp, httptest.NewRequest(http.MethodGet, "/sessions/current/"+created.SessionKey, nil))
	if getResp.Code != http.StatusOK {
		t.Fatalf("expected 200 on lookup, got %d", getResp.Code)
	}
}

func TestCreateSessionMissingUserID(t *testing.T) {
	r, _, _ := setupRouter()

	resp := postJSON(r, "/sessions/create", map[string]any{})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestGetSessionNotFound(t *testing.T) {
	r, _, _ := setupRouter()

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/sessions/current/missing", nil))
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestGenerateItinerary(t *testing.T) {
	r, _, plannerStub := setupRouter()

	resp := postJSON(r, "/itinerary/generate", map[string]any{
		"departure_location":   "Pune",
		"destination_location": "Mumbai",
		"travel_dates":         map[string]string{"departure": "2024-01-01", "return": "2024-01-02"},
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if plannerStub.lastDestination != "Mumbai" {
		t.Fatalf("planner saw destination %q", plannerStub.lastDestination)
	}
}

func TestGenerateItineraryMissingDestination(t *testing.T) {
	r, _, _ := setupRouter()

	resp := postJSON(r, "/itinerary/generate", map[string]any{"departure_location": "Pune"})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestGuideEndpoint(t *testing.T) {
	r, _, _ := setupRouter()

	resp := postJSON(r, "/guide", map[string]any{"destination": "Pune"})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var guide travelmodel.Guide
	if err := json.Unmarshal(resp.Body.Bytes(), &guide); err != nil {
		t.Fatalf("decode err: %v", err)
	}
	if guide.City != "Pune" || guide.GoogleEarthLink == "" {
		t.Fatalf("unexpected guide: %+v", guide)
	}
}

func TestMapDefaults(t *testing.T) {
	r, _, _ := setupRouter()

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/map", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var decoded map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("decode err: %v", err)
	}
	if decoded["map_url"] == "" {
		t.Fatal("expected a map link")
	}
	if decoded["zoom"].(float64) != 4 {
		t.Fatalf("expected default zoom 4, got %v", decoded["zoom"])
	}
}
