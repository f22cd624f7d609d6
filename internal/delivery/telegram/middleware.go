package telegram

import (
	"errors"

	"go.uber.org/zap"

	"github.com/aliskhannn/quiz-pro-nobis/internal/repository"
	"github.com/aliskhannn/quiz-pro-nobis/internal/service"
)

// withErrorHandling runs fn and turns its error into a user message.
func (h *Handler) withErrorHandling(chatID int64, fn func() (string, error)) string {
	text, err := fn()
	if err == nil {
		return text
	}

	switch {
	case errors.Is(err, service.ErrQuestionNotFound):
		return msgQuestionNotFound
	case errors.Is(err, repository.ErrSourceNotFound):
		h.logger.Warn("questions source not found", zap.Int64("chat_id", chatID), zap.Error(err))
		return msgQuestionsUnavailable
	default:
		h.logger.Error("handle error",
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
		return msgInternalError
	}
}
