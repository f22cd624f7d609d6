package entities

import "sort"

// DifficultySet is the set of distinct difficulty values seen for a category.
type DifficultySet map[string]struct{}

// Add puts a difficulty into the set. Adding an existing value is a no-op.
func (s DifficultySet) Add(difficulty string) {
	s[difficulty] = struct{}{}
}

// Has reports whether the difficulty is in the set.
func (s DifficultySet) Has(difficulty string) bool {
	_, ok := s[difficulty]
	return ok
}

// Sorted returns the set members in ascending order.
func (s DifficultySet) Sorted() []string {
	out := make([]string, 0, len(s))
	for d := range s {
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}

// Category is a summary of all questions sharing the same category value.
// It is derived on every request and never stored.
type Category struct {
	Name          string        // category value
	PartSection   string        // part_section of the first question seen with this category
	QuestionCount int           // number of questions with this category
	Difficulties  DifficultySet // distinct difficulties seen
}

// NewCategory starts a summary from the first question seen for a category.
func NewCategory(name, partSection string) *Category {
	return &Category{
		Name:         name,
		PartSection:  partSection,
		Difficulties: make(DifficultySet),
	}
}

// Count records one more question in the category.
func (c *Category) Count(q Question) {
	c.QuestionCount++
	c.Difficulties.Add(q.Difficulty)
}
