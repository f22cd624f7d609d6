package service

import (
	"context"
	"errors"

	"github.com/aliskhannn/quiz-pro-nobis/internal/domain/entities"
)

var ErrQuestionNotFound = errors.New("question not found")

type QuestionService struct {
	repository QuestionRepository
}

func NewQuestionService(repository QuestionRepository) *QuestionService {
	return &QuestionService{repository: repository}
}

// ListQuestions returns every question in source order.
func (s *QuestionService) ListQuestions(ctx context.Context) ([]entities.Question, error) {
	return s.repository.GetAll(ctx)
}

// GetQuestion returns the first question whose id matches.
// Duplicated ids shadow each other: later records are never returned.
func (s *QuestionService) GetQuestion(ctx context.Context, id string) (*entities.Question, error) {
	questions, err := s.ListQuestions(ctx)
	if err != nil {
		return nil, err
	}

	for i := range questions {
		if questions[i].QuestionID == id {
			return &questions[i], nil
		}
	}

	return nil, ErrQuestionNotFound
}

// ListCategories summarizes the questions by category in a single pass.
// Categories are returned in the order they are first seen, and the
// part_section of a category is the one of its first question.
func (s *QuestionService) ListCategories(ctx context.Context) ([]*entities.Category, error) {
	questions, err := s.ListQuestions(ctx)
	if err != nil {
		return nil, err
	}

	return SummarizeCategories(questions), nil
}

// SummarizeCategories builds category summaries from questions.
func SummarizeCategories(questions []entities.Question) []*entities.Category {
	categories := make([]*entities.Category, 0)
	byName := make(map[string]*entities.Category)

	for _, q := range questions {
		c, ok := byName[q.Category]
		if !ok {
			c = entities.NewCategory(q.Category, q.PartSection)
			byName[q.Category] = c
			categories = append(categories, c)
		}
		c.Count(q)
	}

	return categories
}
