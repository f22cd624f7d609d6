package repository

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/aliskhannn/quiz-pro-nobis/internal/domain/entities"
	"github.com/aliskhannn/quiz-pro-nobis/internal/infra/postgres"
	"github.com/aliskhannn/quiz-pro-nobis/internal/service"
)

// Runs only when QUIZ_TEST_DATABASE_URL points at a disposable database.
func TestSessionRepositoryPostgres(t *testing.T) {
	dsn := os.Getenv("QUIZ_TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("QUIZ_TEST_DATABASE_URL not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, dsn, postgres.PoolConfig{MaxConns: 2})
	if err != nil {
		t.Fatalf("pool: %v", err)
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, postgres.NewTransactor(pool)); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	repo := NewSessionRepository(pool)
	token := uuid.NewString()
	t.Cleanup(func() { _ = repo.Delete(context.Background(), token) })

	if _, err := repo.Get(ctx, token); !errors.Is(err, service.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}

	sess := entities.NewSession(token, entities.Credential{Email: "admin@example.com", Name: "Administrador"})
	if err := repo.Save(ctx, sess); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.Get(ctx, token)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.UserEmail != "admin@example.com" || got.UserName != "Administrador" {
		t.Fatalf("unexpected session: %+v", got)
	}

	if err := repo.Delete(ctx, token); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := repo.Delete(ctx, token); err != nil {
		t.Fatalf("second delete: %v", err)
	}
	if _, err := repo.Get(ctx, token); !errors.Is(err, service.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound after delete, got %v", err)
	}
}
