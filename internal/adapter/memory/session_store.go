// Package memory provides the in-process session store used by a single
// instance deployment.
package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"ideaproof/internal/core/domain"
)

// SessionStore implements port.SessionStore with a map. Each call is atomic
// but nothing serialises Get-modify-Put sequences across calls, so
// concurrent requests for the same user race and the last Put wins.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]domain.Session
	now      func() time.Time
}

// NewSessionStore returns an empty store.
func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]domain.Session), now: time.Now}
}

// Get returns a copy of the stored session.
func (s *SessionStore) Get(_ context.Context, userID string) (domain.Session, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[userID]
	if !ok {
		return domain.Session{}, false, nil
	}
	sess.Accounts = slices.Clone(sess.Accounts)
	return sess, true, nil
}

// Put replaces the session of sess.UserID.
func (s *SessionStore) Put(_ context.Context, sess domain.Session) error {
	sess.Accounts = slices.Clone(sess.Accounts)
	sess.UpdatedAt = s.now().UTC()
	s.mu.Lock()
	s.sessions[sess.UserID] = sess
	s.mu.Unlock()
	return nil
}

// Delete removes the session of userID.
func (s *SessionStore) Delete(_ context.Context, userID string) error {
	s.mu.Lock()
	delete(s.sessions, userID)
	s.mu.Unlock()
	return nil
}
