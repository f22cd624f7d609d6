package entities

import (
	"bytes"
	"encoding/json"
	"errors"
)

var errNullQuestion = errors.New("question record is null")

// Question is a single quiz question as stored in the questions file.
// Only the fields used for lookup and category summaries are decoded;
// everything else (prompt, options, answers) is kept in raw form and
// written back unchanged.
type Question struct {
	QuestionID  string `json:"question_id"`
	Category    string `json:"category"`
	PartSection string `json:"part_section"` // sub-grouping of the category
	Difficulty  string `json:"difficulty"`

	raw json.RawMessage
}

// UnmarshalJSON decodes the known fields and keeps the original bytes.
func (q *Question) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return errNullQuestion
	}

	type fields Question

	var f fields
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}

	*q = Question(f)
	q.raw = append(json.RawMessage(nil), data...)
	return nil
}

// MarshalJSON writes the record exactly as it was read. Questions built
// in code (without a source record) are encoded from their known fields.
func (q Question) MarshalJSON() ([]byte, error) {
	if len(q.raw) > 0 {
		return q.raw, nil
	}

	type fields Question
	return json.Marshal(fields(q))
}
