package httpapi

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/aliskhannn/quiz-pro-nobis/internal/domain/entities"
	"github.com/aliskhannn/quiz-pro-nobis/internal/repository"
	"github.com/aliskhannn/quiz-pro-nobis/internal/service"
)

const (
	msgSourceNotFound           = "source not found"
	msgSourceNotFoundOnLookup   = "source not found: cannot look up question"
	msgSourceNotFoundCategories = "source not found: cannot build categories"
	msgDecodeError              = "decode error"
	msgQuestionNotFound         = "question not found"
)

// categoryResponse is the wire form of a category summary.
type categoryResponse struct {
	Name          string   `json:"name"`
	PartSection   string   `json:"part_section"`
	QuestionCount int      `json:"question_count"`
	Difficulties  []string `json:"difficulties"`
}

func newCategoryResponse(c *entities.Category) categoryResponse {
	return categoryResponse{
		Name:          c.Name,
		PartSection:   c.PartSection,
		QuestionCount: c.QuestionCount,
		Difficulties:  c.Difficulties.Sorted(),
	}
}

func (h *Handler) listQuestions(w http.ResponseWriter, r *http.Request) {
	questions, err := h.questionService.ListQuestions(r.Context())
	if err != nil {
		h.writeSourceError(w, r, err, msgSourceNotFound)
		return
	}

	h.writeJSON(w, http.StatusOK, questions)
}

func (h *Handler) getQuestion(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	question, err := h.questionService.GetQuestion(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrQuestionNotFound) {
			h.writeError(w, http.StatusNotFound, msgQuestionNotFound)
			return
		}
		h.writeSourceError(w, r, err, msgSourceNotFoundOnLookup)
		return
	}

	h.writeJSON(w, http.StatusOK, question)
}

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.questionService.ListCategories(r.Context())
	if err != nil {
		h.writeSourceError(w, r, err, msgSourceNotFoundCategories)
		return
	}

	resp := make([]categoryResponse, 0, len(categories))
	for _, c := range categories {
		resp = append(resp, newCategoryResponse(c))
	}

	h.writeJSON(w, http.StatusOK, resp)
}

// writeSourceError maps question source failures to a status and message.
func (h *Handler) writeSourceError(w http.ResponseWriter, r *http.Request, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, repository.ErrSourceNotFound):
		h.logger.Warn("questions source not found",
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		h.writeError(w, http.StatusNotFound, notFoundMsg)
	case errors.Is(err, repository.ErrInvalidFormat):
		h.logger.Error("questions source is malformed",
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		h.writeError(w, http.StatusInternalServerError, msgDecodeError)
	default:
		h.internalError(w, r, err)
	}
}
