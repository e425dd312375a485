package chat

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	sessionservice "github.com/yatrika/travel-assistant/backend/internal/service/session"
	"github.com/yatrika/travel-assistant/backend/pkg/utils"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

type wsInbound struct {
	Message string `json:"message"`
}

type wsOutbound struct {
	Response   string    `json:"response,omitempty"`
	SessionKey string    `json:"session_key,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
	Error      string    `json:"error,omitempty"`
}

// handleWebSocket runs a live chat loop over one connection. Each inbound
// message goes through the same exchange path as the REST endpoint, so the
// conversation history stays consistent between the two transports.
func (h *Handler) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	sessionKey := chi.URLParam(r, "sessionKey")
	if _, err := h.store.Get(r.Context(), sessionKey); err != nil {
		utils.RespondError(w, http.StatusNotFound, "Session not found")
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[chat] websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	log.Printf("[chat] websocket opened for session=%s", sessionKey)

	for {
		var inbound wsInbound
		if err := conn.ReadJSON(&inbound); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[chat] websocket read error for session=%s: %v", sessionKey, err)
			}
			return
		}

		if inbound.Message == "" {
			h.writeWS(conn, sessionKey, wsOutbound{Error: "message is required", Timestamp: time.Now().UTC()})
			continue
		}

		reply, err := h.exchange(r.Context(), sessionKey, inbound.Message)
		if err != nil {
			msg := "Chat failed: " + err.Error()
			if errors.Is(err, sessionservice.ErrSessionNotFound) {
				msg = "Session not found"
			}
			h.writeWS(conn, sessionKey, wsOutbound{Error: msg, Timestamp: time.Now().UTC()})
			continue
		}

		h.writeWS(conn, sessionKey, wsOutbound{
			Response:   reply,
			SessionKey: sessionKey,
			Timestamp:  time.Now().UTC(),
		})
	}
}

func (h *Handler) writeWS(conn *websocket.Conn, sessionKey string, payload wsOutbound) {
	if err := conn.WriteJSON(payload); err != nil {
		log.Printf("[chat] websocket write failed for session=%s: %v", sessionKey, err)
	}
}
