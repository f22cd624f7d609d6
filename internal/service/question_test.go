package service

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/aliskhannn/quiz-pro-nobis/internal/domain/entities"
	"github.com/aliskhannn/quiz-pro-nobis/internal/repository"
)

type stubQuestionRepository struct {
	questions []entities.Question
	err       error
	calls     int
}

func (r *stubQuestionRepository) GetAll(_ context.Context) ([]entities.Question, error) {
	r.calls++
	return r.questions, r.err
}

func q(id, category, partSection, difficulty string) entities.Question {
	return entities.Question{QuestionID: id, Category: category, PartSection: partSection, Difficulty: difficulty}
}

func TestListCategoriesScenario(t *testing.T) {
	repo := &stubQuestionRepository{questions: []entities.Question{
		q("q1", "Math", "A", "easy"),
		q("q2", "Math", "A", "hard"),
	}}

	categories, err := NewQuestionService(repo).ListCategories(context.Background())
	if err != nil {
		t.Fatalf("list categories: %v", err)
	}
	if len(categories) != 1 {
		t.Fatalf("expected 1 category, got %d", len(categories))
	}

	c := categories[0]
	if c.Name != "Math" || c.PartSection != "A" || c.QuestionCount != 2 {
		t.Fatalf("unexpected summary: %+v", c)
	}
	if got := c.Difficulties.Sorted(); !reflect.DeepEqual(got, []string{"easy", "hard"}) {
		t.Fatalf("unexpected difficulties: %v", got)
	}
}

func TestListCategoriesFirstSeenOrderAndPartSection(t *testing.T) {
	repo := &stubQuestionRepository{questions: []entities.Question{
		q("q1", "History", "B", "easy"),
		q("q2", "Math", "A", "easy"),
		q("q3", "History", "C", "easy"),
		q("q4", "Math", "A", "medium"),
		q("q5", "Art", "D", "hard"),
	}}

	categories, err := NewQuestionService(repo).ListCategories(context.Background())
	if err != nil {
		t.Fatalf("list categories: %v", err)
	}

	var names []string
	for _, c := range categories {
		names = append(names, c.Name)
	}
	if !reflect.DeepEqual(names, []string{"History", "Math", "Art"}) {
		t.Fatalf("unexpected order: %v", names)
	}
	if categories[0].PartSection != "B" {
		t.Fatalf("expected first-seen part_section B, got %q", categories[0].PartSection)
	}
	if got := categories[0].Difficulties.Sorted(); !reflect.DeepEqual(got, []string{"easy"}) {
		t.Fatalf("difficulties must not repeat: %v", got)
	}
}

func TestListCategoriesCountsSumToQuestions(t *testing.T) {
	difficulties := []string{"easy", "medium", "hard"}
	cats := []string{"Math", "History", "Art", "Biology"}

	var questions []entities.Question
	for i := 0; i < 37; i++ {
		questions = append(questions, q(
			string(rune('a'+i%26)),
			cats[i%len(cats)],
			"P",
			difficulties[i%len(difficulties)],
		))
	}
	repo := &stubQuestionRepository{questions: questions}

	categories, err := NewQuestionService(repo).ListCategories(context.Background())
	if err != nil {
		t.Fatalf("list categories: %v", err)
	}

	total := 0
	for _, c := range categories {
		total += c.QuestionCount
		seen := make(map[string]bool)
		for _, d := range c.Difficulties.Sorted() {
			if seen[d] {
				t.Fatalf("duplicate difficulty %q in %s", d, c.Name)
			}
			seen[d] = true
		}
		for _, qq := range questions {
			if qq.Category == c.Name && !c.Difficulties.Has(qq.Difficulty) {
				t.Fatalf("difficulty %q missing from %s", qq.Difficulty, c.Name)
			}
		}
	}
	if total != len(questions) {
		t.Fatalf("counts sum to %d, want %d", total, len(questions))
	}
}

func TestListCategoriesEmpty(t *testing.T) {
	repo := &stubQuestionRepository{questions: []entities.Question{}}

	categories, err := NewQuestionService(repo).ListCategories(context.Background())
	if err != nil {
		t.Fatalf("list categories: %v", err)
	}
	if categories == nil || len(categories) != 0 {
		t.Fatalf("expected empty non-nil result, got %#v", categories)
	}
}

func TestGetQuestionFirstMatchWins(t *testing.T) {
	repo := &stubQuestionRepository{questions: []entities.Question{
		q("q1", "Math", "A", "easy"),
		q("q2", "Math", "A", "hard"),
		q("q1", "History", "B", "hard"),
	}}
	svc := NewQuestionService(repo)

	got, err := svc.GetQuestion(context.Background(), "q1")
	if err != nil {
		t.Fatalf("get question: %v", err)
	}
	if got.Category != "Math" {
		t.Fatalf("expected first q1 record, got %+v", got)
	}

	if _, err := svc.GetQuestion(context.Background(), "q9"); !errors.Is(err, ErrQuestionNotFound) {
		t.Fatalf("expected ErrQuestionNotFound, got %v", err)
	}
}

func TestQuestionServicePropagatesSourceErrors(t *testing.T) {
	for _, sourceErr := range []error{repository.ErrSourceNotFound, repository.ErrInvalidFormat} {
		svc := NewQuestionService(&stubQuestionRepository{err: sourceErr})

		if _, err := svc.ListQuestions(context.Background()); !errors.Is(err, sourceErr) {
			t.Fatalf("list questions: expected %v, got %v", sourceErr, err)
		}
		_, err := svc.GetQuestion(context.Background(), "q1")
		if !errors.Is(err, sourceErr) {
			t.Fatalf("get question: expected %v, got %v", sourceErr, err)
		}
		if errors.Is(err, ErrQuestionNotFound) {
			t.Fatalf("source errors must be distinguishable from a missing question")
		}
		if _, err := svc.ListCategories(context.Background()); !errors.Is(err, sourceErr) {
			t.Fatalf("list categories: expected %v, got %v", sourceErr, err)
		}
	}
}

func TestQuestionServiceLoadsOnEveryCall(t *testing.T) {
	repo := &stubQuestionRepository{questions: []entities.Question{q("q1", "Math", "A", "easy")}}
	svc := NewQuestionService(repo)

	_, _ = svc.ListQuestions(context.Background())
	_, _ = svc.GetQuestion(context.Background(), "q1")
	_, _ = svc.ListCategories(context.Background())

	if repo.calls != 3 {
		t.Fatalf("expected 3 loads, got %d", repo.calls)
	}
}
