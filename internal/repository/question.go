package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/aliskhannn/quiz-pro-nobis/internal/domain/entities"
)

var (
	ErrSourceNotFound = errors.New("questions source not found")
	ErrInvalidFormat  = errors.New("questions source has invalid format")
)

// QuestionRepository reads questions from a JSON file.
// The file is read on every call; nothing is cached between calls.
type QuestionRepository struct {
	path string
}

// NewQuestionRepository creates a QuestionRepository for the file at path.
func NewQuestionRepository(path string) *QuestionRepository {
	return &QuestionRepository{path: path}
}

// GetAll loads every question in file order.
// A missing file returns ErrSourceNotFound, unparsable content ErrInvalidFormat.
func (r *QuestionRepository) GetAll(ctx context.Context) ([]entities.Question, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read %s: %w", r.path, ErrSourceNotFound)
		}
		return nil, fmt.Errorf("read %s: %w", r.path, err)
	}

	var questions []entities.Question
	if err = json.Unmarshal(data, &questions); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	if questions == nil {
		questions = []entities.Question{}
	}

	return questions, nil
}
