package chat

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/yatrika/travel-assistant/backend/internal/model/travel"
	sessionservice "github.com/yatrika/travel-assistant/backend/internal/service/session"
	"github.com/yatrika/travel-assistant/backend/pkg/utils"
)

// Responder composes a chat reply from a user message and the session's
// travel state.
type Responder interface {
	Respond(ctx context.Context, userMessage string, state travel.TravelState) string
}

// Handler serves the conversational endpoints.
type Handler struct {
	store *sessionservice.Store
	bot   Responder
}

// New creates the chat handler.
func New(store *sessionservice.Store, bot Responder) *Handler {
	return &Handler{store: store, bot: bot}
}

// RegisterRoutes mounts the chat routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/message", h.handleSendMessage)
	r.Get("/ws/{sessionKey}", h.handleWebSocket)
}

type messageRequest struct {
	Message    string `json:"message"`
	SessionKey string `json:"session_key"`
}

type messageResponse struct {
	Response   string    `json:"response"`
	SessionKey string    `json:"session_key"`
	Timestamp  time.Time `json:"timestamp"`
}

func (h *Handler) handleSendMessage(w http.ResponseWriter, r *http.Request) {
	var payload messageRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if payload.Message == "" || payload.SessionKey == "" {
		utils.RespondError(w, http.StatusBadRequest, "message and session_key are required")
		return
	}

	reply, err := h.exchange(r.Context(), payload.SessionKey, payload.Message)
	if err != nil {
		if errors.Is(err, sessionservice.ErrSessionNotFound) {
			utils.RespondError(w, http.StatusNotFound, "Session not found")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "Chat failed: "+err.Error())
		return
	}

	utils.RespondJSON(w, http.StatusOK, messageResponse{
		Response:   reply,
		SessionKey: payload.SessionKey,
		Timestamp:  time.Now().UTC(),
	})
}

// exchange runs one chat turn: respond, then append both turns to the
// session's conversation history.
func (h *Handler) exchange(ctx context.Context, sessionKey, message string) (string, error) {
	state, err := h.store.GetTravelState(ctx, sessionKey)
	if err != nil {
		return "", err
	}

	reply := h.bot.Respond(ctx, message, state)

	history := append(state.ConversationHistory,
		travel.Message{Role: "user", Content: message},
		travel.Message{Role: "assistant", Content: reply},
	)
	if ok := h.store.UpdateTravelState(ctx, sessionKey, travel.StatePatch{ConversationHistory: history}); !ok {
		return "", sessionservice.ErrSessionNotFound
	}
	h.store.Touch(sessionKey)

	return reply, nil
}
