// Package store keeps per-conversation dialogue state in memory, keyed by
// session id. State lives for the life of the process; there is no
// persistence layer.
package store

import (
	"sync"

	"eshop-chatbot/internal/dialog"
)

type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*dialog.Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]*dialog.Session)}
}

// WithSession runs fn against the session for id, creating it on first use.
// The store lock is held for the duration of fn, so turns are processed one
// at a time; this keeps concurrent HTTP callers from racing on a session and
// makes the engine's shared random source safe.
func (s *SessionStore) WithSession(id string, fn func(*dialog.Session) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		sess = dialog.NewSession()
		s.sessions[id] = sess
	}
	return fn(sess)
}

// Len reports how many sessions are live.
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
