package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/aliskhannn/quiz-pro-nobis/internal/domain/entities"
	"github.com/aliskhannn/quiz-pro-nobis/internal/service"
)

const (
	msgLoginSuccess       = "login successful"
	msgLogoutSuccess      = "logout successful"
	msgFieldsRequired     = "email and password are required"
	msgInvalidCredentials = "invalid credentials"
	msgNotAuthenticated   = "not authenticated"

	maxLoginBodyBytes = 1 << 20
)

type loginResponse struct {
	Message string        `json:"message"`
	User    entities.User `json:"user"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var in service.LoginInput
	body := http.MaxBytesReader(w, r.Body, maxLoginBodyBytes)
	if err := json.NewDecoder(body).Decode(&in); err != nil {
		h.writeError(w, http.StatusBadRequest, msgFieldsRequired)
		return
	}

	session, err := h.authService.Login(r.Context(), h.sessionToken(r), in)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRequest):
			h.writeError(w, http.StatusBadRequest, msgFieldsRequired)
		case errors.Is(err, service.ErrInvalidCredentials):
			h.logger.Info("login rejected")
			h.writeError(w, http.StatusUnauthorized, msgInvalidCredentials)
		default:
			h.internalError(w, r, err)
		}
		return
	}

	h.logger.Info("user logged in", zap.String("email", session.UserEmail))
	h.setSessionCookie(w, session.Token)
	h.writeJSON(w, http.StatusOK, loginResponse{
		Message: msgLoginSuccess,
		User:    session.User(),
	})
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if err := h.authService.Logout(r.Context(), h.sessionToken(r)); err != nil {
		h.logger.Error("failed to clear session", zap.Error(err))
	}

	h.clearSessionCookie(w)
	h.writeJSON(w, http.StatusOK, messageResponse{Message: msgLogoutSuccess})
}

func (h *Handler) currentUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.authService.CurrentUser(r.Context(), h.sessionToken(r))
	if err != nil {
		if errors.Is(err, service.ErrUnauthenticated) {
			h.writeError(w, http.StatusUnauthorized, msgNotAuthenticated)
			return
		}
		h.internalError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, user)
}

func (h *Handler) sessionToken(r *http.Request) string {
	c, err := r.Cookie(h.cookie.Name)
	if err != nil {
		return ""
	}
	return c.Value
}

func (h *Handler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookie.Name,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookie.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}
