package store

import (
	"sync"

	"github.com/yachai/yachai-cli/internal/models"
)

// SessionStore holds the in-progress game session. It is transient: nothing
// here survives a restart. The chat poller runs on its own goroutine, so the
// store is guarded even though play itself is sequential.
type SessionStore struct {
	mu        sync.Mutex
	session   *models.GameSession
	topic     string
	gameType  models.GameType
	answers   []models.Answer
	isPlaying bool
}

func NewSessionStore() *SessionStore {
	return &SessionStore{}
}

// Begin installs a server-issued session and marks play as started. Any
// answers from a previous run are discarded.
func (s *SessionStore) Begin(session *models.GameSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = session
	s.answers = nil
	s.isPlaying = session != nil
	if session != nil {
		s.topic = session.Topic
		s.gameType = session.GameType
	}
}

// Topic returns the last selected topic. It survives End so a replay can
// offer the same selection.
func (s *SessionStore) Topic() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.topic
}

// GameType returns the last selected game type.
func (s *SessionStore) GameType() models.GameType {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gameType
}

// Session returns the active session, or nil.
func (s *SessionStore) Session() *models.GameSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session
}

// IsPlaying reports whether a session is in progress.
func (s *SessionStore) IsPlaying() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isPlaying
}

// AddAnswer appends one step's answer to the accumulated list.
func (s *SessionStore) AddAnswer(answer models.Answer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.answers = append(s.answers, answer)
}

// Answers returns a copy of the accumulated answer list in play order.
func (s *SessionStore) Answers() []models.Answer {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Answer, len(s.answers))
	copy(out, s.answers)
	return out
}

// End discards the session and answers after submission or abandonment. The
// last topic and game type are kept for a possible replay.
func (s *SessionStore) End() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = nil
	s.answers = nil
	s.isPlaying = false
}

// Reset is End plus the remembered selection; the play-again path starts
// completely fresh.
func (s *SessionStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = nil
	s.topic = ""
	s.gameType = ""
	s.answers = nil
	s.isPlaying = false
}
