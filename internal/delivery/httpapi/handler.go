// Package httpapi exposes the quiz over HTTP with JSON payloads.
package httpapi

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/aliskhannn/quiz-pro-nobis/internal/domain/entities"
	"github.com/aliskhannn/quiz-pro-nobis/internal/service"
)

type QuestionService interface {
	ListQuestions(ctx context.Context) ([]entities.Question, error)
	GetQuestion(ctx context.Context, id string) (*entities.Question, error)
	ListCategories(ctx context.Context) ([]*entities.Category, error)
}

type AuthService interface {
	Login(ctx context.Context, currentToken string, in service.LoginInput) (*entities.Session, error)
	Logout(ctx context.Context, token string) error
	CurrentUser(ctx context.Context, token string) (*entities.User, error)
}

// CookieConfig controls the session cookie.
type CookieConfig struct {
	Name   string
	Secure bool
}

type Handler struct {
	logger          *zap.Logger
	questionService QuestionService
	authService     AuthService
	cookie          CookieConfig
}

func NewHandler(
	logger *zap.Logger,
	questionService QuestionService,
	authService AuthService,
	cookie CookieConfig,
) *Handler {
	return &Handler{
		logger:          logger,
		questionService: questionService,
		authService:     authService,
		cookie:          cookie,
	}
}

// Routes returns the HTTP handler serving every endpoint.
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()

	// Questions
	mux.HandleFunc("GET /questions", h.listQuestions)
	mux.HandleFunc("GET /questions/{id}", h.getQuestion)
	mux.HandleFunc("GET /categories", h.listCategories)

	// Auth
	mux.HandleFunc("POST /login", h.login)
	mux.HandleFunc("POST /logout", h.logout)
	mux.HandleFunc("GET /user", h.currentUser)

	mux.HandleFunc("GET /healthz", h.health)

	return h.withRecovery(h.withLogging(mux))
}

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
