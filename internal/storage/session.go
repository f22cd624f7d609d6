package storage

import (
	"context"
	"sync"

	"github.com/aliskhannn/quiz-pro-nobis/internal/domain/entities"
	"github.com/aliskhannn/quiz-pro-nobis/internal/service"
)

// SessionStorage provides in-memory storage for sessions by token.
// Sessions live as long as the process.
type SessionStorage struct {
	mu       sync.RWMutex
	sessions map[string]entities.Session
}

// NewSessionStorage creates a new SessionStorage.
func NewSessionStorage() *SessionStorage {
	return &SessionStorage{
		sessions: make(map[string]entities.Session),
	}
}

// Get returns a copy of the session stored under token.
func (s *SessionStorage) Get(_ context.Context, token string) (*entities.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[token]
	if !ok {
		return nil, service.ErrSessionNotFound
	}
	return &session, nil
}

// Save stores the session under its token, replacing any previous one.
func (s *SessionStorage) Save(_ context.Context, session *entities.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.Token] = *session
	return nil
}

// Delete removes the session stored under token.
func (s *SessionStorage) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}
