package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/yatrika/travel-assistant/backend/internal/model/travel"
	sessionservice "github.com/yatrika/travel-assistant/backend/internal/service/session"
)

type echoBot struct{}

func (echoBot) Respond(_ context.Context, userMessage string, _ travel.TravelState) string {
	return "Here is what I know about: " + userMessage
}

func setupRouter() (*chi.Mux, *sessionservice.Store) {
	store := sessionservice.NewStore()
	handler := New(store, echoBot{})

	r := chi.NewRouter()
	handler.RegisterRoutes(r)
	return r, store
}

func postMessage(r http.Handler, body map[string]string) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/message", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestSendMessageMissingFields(t *testing.T) {
	r, _ := setupRouter()

	resp := postMessage(r, map[string]string{"message": "hello"})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestSendMessageUnknownSession(t *testing.T) {
	r, _ := setupRouter()

	resp := postMessage(r, map[string]string{"message": "hello", "session_key": "missing"})
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestSendMessageUpdatesHistory(t *testing.T) {
	r, store := setupRouter()
	ctx := context.Background()

	session, err := store.Create(ctx, "user-1")
	if err != nil {
		t.Fatalf("Create err: %v", err)
	}

	resp := postMessage(r, map[string]string{
		"message":     "What's the weather in Pune?",
		"session_key": session.SessionKey,
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var decoded struct {
		Response   string `json:"response"`
		SessionKey string `json:"session_key"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("decode err: %v", err)
	}
	if decoded.Response == "" {
		t.Fatal("expected a non-empty reply")
	}
	if decoded.SessionKey != session.SessionKey {
		t.Fatalf("reply keyed under %q, want %q", decoded.SessionKey, session.SessionKey)
	}

	state, err := store.GetTravelState(ctx, session.SessionKey)
	if err != nil {
		t.Fatalf("GetTravelState err: %v", err)
	}
	if len(state.ConversationHistory) != 2 {
		t.Fatalf("expected 2 turns, got %d", len(state.ConversationHistory))
	}
	if state.ConversationHistory[0].Role != "user" || state.ConversationHistory[1].Role != "assistant" {
		t.Fatalf("unexpected roles: %+v", state.ConversationHistory)
	}
	if state.ConversationHistory[0].Content != "What's the weather in Pune?" {
		t.Fatalf("user turn not recorded verbatim: %q", state.ConversationHistory[0].Content)
	}
}

func TestSendMessageAppendsAcrossTurns(t *testing.T) {
	r, store := setupRouter()
	ctx := context.Background()

	session, _ := store.Create(ctx, "user-1")
	postMessage(r, map[string]string{"message": "first", "session_key": session.SessionKey})
	postMessage(r, map[string]string{"message": "second", "session_key": session.SessionKey})

	state, _ := store.GetTravelState(ctx, session.SessionKey)
	if len(state.ConversationHistory) != 4 {
		t.Fatalf("expected 4 turns after two exchanges, got %d", len(state.ConversationHistory))
	}
}
