package travel

import "time"

// Session correlates a sequence of client requests with a planning conversation.
type Session struct {
	SessionKey   string    `json:"session_key"`
	UserID       string    `json:"user_id"`
	CreatedAt    time.Time `json:"created_at"`
	LastActivity time.Time `json:"last_activity"`
}
