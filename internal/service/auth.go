package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/aliskhannn/quiz-pro-nobis/internal/domain/entities"
)

var (
	ErrInvalidRequest     = errors.New("email and password are required")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("not authenticated")
)

// dummyHash is compared against when the email is unknown so that an
// unknown email costs the same as a wrong password.
const dummyHash = "$2a$10$7EqJtq98hPqEX7fNZaFWoOhi5BWX4Z8fQYX5Jp6.R7K9xqA4Vx0bK"

// LoginInput is the login request. Nil fields were absent from the request.
type LoginInput struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

type AuthService struct {
	credentials CredentialRepository
	verifier    PasswordVerifier
	sessions    SessionStore
	newToken    TokenGenerator
}

func NewAuthService(
	credentials CredentialRepository,
	verifier PasswordVerifier,
	sessions SessionStore,
	newToken TokenGenerator,
) *AuthService {
	return &AuthService{
		credentials: credentials,
		verifier:    verifier,
		sessions:    sessions,
		newToken:    newToken,
	}
}

// Login checks the credentials and starts a new session.
// Any session the client held under currentToken is dropped first.
func (s *AuthService) Login(ctx context.Context, currentToken string, in LoginInput) (*entities.Session, error) {
	if in.Email == nil || in.Password == nil {
		return nil, ErrInvalidRequest
	}

	cred, ok := s.credentials.GetByEmail(*in.Email)
	if !ok {
		s.verifier.Verify(*in.Password, dummyHash)
		return nil, ErrInvalidCredentials
	}
	if !s.verifier.Verify(*in.Password, cred.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	if currentToken != "" {
		if err := s.sessions.Delete(ctx, currentToken); err != nil {
			return nil, fmt.Errorf("drop previous session: %w", err)
		}
	}

	session := entities.NewSession(s.newToken(), cred)
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	return session, nil
}

// Logout clears the client's session. Clearing an absent session is not an error.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	if err := s.sessions.Delete(ctx, token); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	return nil
}

// CurrentUser returns the user of the client's session.
func (s *AuthService) CurrentUser(ctx context.Context, token string) (*entities.User, error) {
	if token == "" {
		return nil, ErrUnauthenticated
	}

	session, err := s.sessions.Get(ctx, token)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, fmt.Errorf("get session: %w", err)
	}

	user := session.User()
	return &user, nil
}
