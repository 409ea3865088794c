package survey

import (
	"errors"
	"fmt"
	"strings"
)

// Errors returned for a flat question index outside the session or a demographic field
// the survey does not have.
var (
	ErrIndexOutOfRange = errors.New("question index out of range")
	ErrUnknownField    = errors.New("unknown demographic field")
)

// Field identifies one of the demographic inputs of the first section.
type Field string

const (
	FieldAge        Field = "age"
	FieldGender     Field = "gender"
	FieldScreenTime Field = "averageScreenTime"
)

// Fields lists the demographic fields in the order they are collected.
var Fields = []Field{FieldAge, FieldGender, FieldScreenTime}

// Demographics keeps the demographic fields exactly as the respondent entered them.
// Parsing happens in the validator and the payload builder.
type Demographics struct {
	Age               string `json:"age,omitempty"`
	Gender            string `json:"gender,omitempty"`
	AverageScreenTime string `json:"averageScreenTime,omitempty"`
}

// AnswerEntry is the answer given to one question of the flat question list.
type AnswerEntry struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Session is the answer state of a single respondent.
type Session struct {
	Answers      []AnswerEntry `json:"answers"`
	Demographics Demographics  `json:"demographics"`
}

// NewSession creates an empty session with one unanswered entry per question.
func NewSession(questions []string) *Session {
	answers := make([]AnswerEntry, len(questions))
	for i, q := range questions {
		answers[i] = AnswerEntry{Question: q}
	}

	return &Session{
		Answers: answers,
	}
}

// SetAnswer stores the answer for the question at flatIndex.
// It returns ErrIndexOutOfRange if flatIndex is outside the question list.
func (s *Session) SetAnswer(flatIndex int, value string) error {
	if flatIndex < 0 || flatIndex >= len(s.Answers) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, flatIndex, len(s.Answers))
	}

	s.Answers[flatIndex].Answer = value

	return nil
}

// Answer returns the stored answer for flatIndex or an empty string.
func (s *Session) Answer(flatIndex int) string {
	if flatIndex < 0 || flatIndex >= len(s.Answers) {
		return ""
	}

	return s.Answers[flatIndex].Answer
}

// SetDemographic stores the raw value of a demographic field.
func (s *Session) SetDemographic(field Field, value string) error {
	switch field {
	case FieldAge:
		s.Demographics.Age = value
	case FieldGender:
		s.Demographics.Gender = value
	case FieldScreenTime:
		s.Demographics.AverageScreenTime = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}

	return nil
}

// Demographic returns the raw value of a demographic field.
func (s *Session) Demographic(field Field) string {
	switch field {
	case FieldAge:
		return s.Demographics.Age
	case FieldGender:
		return s.Demographics.Gender
	case FieldScreenTime:
		return s.Demographics.AverageScreenTime
	default:
		return ""
	}
}

// FirstUnanswered returns the lowest flat index without an answer.
func (s *Session) FirstUnanswered() (int, bool) {
	for i, a := range s.Answers {
		if strings.TrimSpace(a.Answer) == "" {
			return i, true
		}
	}

	return 0, false
}
