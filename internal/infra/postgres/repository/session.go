package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/aliskhannn/quiz-pro-nobis/internal/domain/entities"
	"github.com/aliskhannn/quiz-pro-nobis/internal/infra/postgres"
	"github.com/aliskhannn/quiz-pro-nobis/internal/service"
)

// SessionRepository stores sessions in PostgreSQL.
type SessionRepository struct {
	db postgres.DBTX
}

// NewSessionRepository creates a new SessionRepository with the provided database handle.
func NewSessionRepository(db postgres.DBTX) *SessionRepository {
	return &SessionRepository{db: db}
}

// Get retrieves the session stored under token.
func (r *SessionRepository) Get(ctx context.Context, token string) (*entities.Session, error) {
	query := `
		SELECT token, user_email, user_name, created_at
		FROM sessions
		WHERE token = $1
	`

	var s entities.Session
	err := r.db.QueryRow(ctx, query, token).Scan(&s.Token, &s.UserEmail, &s.UserName, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrSessionNotFound
		}
		return nil, fmt.Errorf("get session: %w", err)
	}

	return &s, nil
}

// Save inserts the session or replaces the one with the same token.
func (r *SessionRepository) Save(ctx context.Context, s *entities.Session) error {
	query := `
		INSERT INTO sessions (token, user_email, user_name, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (token) DO UPDATE
		SET user_email = EXCLUDED.user_email,
		    user_name = EXCLUDED.user_name,
		    created_at = EXCLUDED.created_at
	`

	if _, err := r.db.Exec(ctx, query, s.Token, s.UserEmail, s.UserName, s.CreatedAt); err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	return nil
}

// Delete removes the session stored under token. Deleting a missing session is a no-op.
func (r *SessionRepository) Delete(ctx context.Context, token string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM sessions WHERE token = $1`, token); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	return nil
}
