package service

import (
	"context"
	"errors"

	"github.com/aliskhannn/quiz-pro-nobis/internal/domain/entities"
)

// ErrSessionNotFound is returned by session stores when no session exists for a token.
var ErrSessionNotFound = errors.New("session not found")

type QuestionRepository interface {
	GetAll(ctx context.Context) ([]entities.Question, error)
}

type CredentialRepository interface {
	GetByEmail(email string) (entities.Credential, bool)
}

// PasswordVerifier checks a plaintext password against a one-way hash.
type PasswordVerifier interface {
	Verify(password, hash string) bool
}

// SessionStore keeps per-client sessions keyed by an opaque token.
// Implementations must make each operation atomic for a given token.
type SessionStore interface {
	Get(ctx context.Context, token string) (*entities.Session, error)
	Save(ctx context.Context, session *entities.Session) error
	Delete(ctx context.Context, token string) error
}

// TokenGenerator returns a new unguessable session token.
type TokenGenerator func() string
