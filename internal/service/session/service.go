package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/yatrika/travel-assistant/backend/internal/model/travel"
)

var (
	ErrUserRequired    = errors.New("user id is required")
	ErrSessionNotFound = errors.New("session not found")
)

// Store owns the in-memory session and travel-state records. It is the only
// component holding mutable shared state; the mutex makes concurrent handler
// access safe, while per-field last-write-wins semantics remain the caller's
// concern.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]travel.Session
	states   map[string]travel.TravelState
}

// NewStore bootstraps an empty in-memory store. Records live until process
// exit; there is no eviction.
func NewStore() *Store {
	return &Store{
		sessions: make(map[string]travel.Session),
		states:   make(map[string]travel.TravelState),
	}
}

// Create provisions a session for the user together with a zero-valued
// travel state under the same key.
func (s *Store) Create(_ context.Context, userID string) (travel.Session, error) {
	if userID == "" {
		return travel.Session{}, ErrUserRequired
	}

	now := time.Now().UTC()
	session := travel.Session{
		SessionKey:   uuid.NewString(),
		UserID:       userID,
		CreatedAt:    now,
		LastActivity: now,
	}

	state := travel.TravelState{
		SessionKey:          session.SessionKey,
		ConversationHistory: []travel.Message{},
		CurrentAgent:        "general",
		SelectedOptions:     map[string]any{},
		BookingStatus:       map[string]any{},
	}

	s.mu.Lock()
	s.sessions[session.SessionKey] = session
	s.states[session.SessionKey] = state
	s.mu.Unlock()

	return session, nil
}

// Get retrieves a session by key.
func (s *Store) Get(_ context.Context, key string) (travel.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[key]
	if !ok {
		return travel.Session{}, ErrSessionNotFound
	}
	return session, nil
}

// GetTravelState retrieves the travel state for a session key.
func (s *Store) GetTravelState(_ context.Context, key string) (travel.TravelState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state, ok := s.states[key]
	if !ok {
		return travel.TravelState{}, ErrSessionNotFound
	}
	return state, nil
}

// UpdateTravelState shallow-merges the patch into the stored state. It
// returns false, not an error, when the key is unknown; callers must check.
func (s *Store) UpdateTravelState(_ context.Context, key string, patch travel.StatePatch) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.states[key]
	if !ok {
		return false
	}

	state.Apply(patch)
	s.states[key] = state
	return true
}

// Touch bumps the session's last-activity timestamp.
func (s *Store) Touch(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[key]
	if !ok {
		return
	}
	session.LastActivity = time.Now().UTC()
	s.sessions[key] = session
}
