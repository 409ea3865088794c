package survey

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ksysoev/feedsurvey-tgbot/pkg/core/catalog"
)

const (
	MinAge = 18
	MaxAge = 22
)

var (
	ErrValidation = errors.New("validation failed")
	ErrIncomplete = fmt.Errorf("%w: answer all questions", ErrValidation)
)

// Reason is a field-scoped validation failure code.
type Reason string

const (
	ReasonAgeRequired         Reason = "age_required"
	ReasonAgeNotNumber        Reason = "age_not_number"
	ReasonAgeOutOfRange       Reason = "age_out_of_range"
	ReasonGenderRequired      Reason = "gender_required"
	ReasonScreenTimeRequired  Reason = "screen_time_required"
	ReasonScreenTimeNotNumber Reason = "screen_time_not_number"
	ReasonScreenTimeNegative  Reason = "screen_time_negative"
)

var reasonMessages = map[Reason]string{
	ReasonAgeRequired:         "age is required",
	ReasonAgeNotNumber:        "age must be a whole number",
	ReasonAgeOutOfRange:       fmt.Sprintf("age must be between %d and %d", MinAge, MaxAge),
	ReasonGenderRequired:      "gender must be selected",
	ReasonScreenTimeRequired:  "average screen time is required",
	ReasonScreenTimeNotNumber: "average screen time must be a number",
	ReasonScreenTimeNegative:  "average screen time must be 0 or higher",
}

// ValidationError describes why a single demographic field was rejected.
type ValidationError struct {
	Field  Field
	Reason Reason
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, reasonMessages[e.Reason])
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// ValidateDemographics checks every demographic field and returns one error per failing field.
func ValidateDemographics(d Demographics) []*ValidationError {
	var errs []*ValidationError

	for _, f := range Fields {
		if err := ValidateField(d, f); err != nil {
			errs = append(errs, err)
		}
	}

	return errs
}

// ValidateField checks a single demographic field. It returns nil when the field is valid.
func ValidateField(d Demographics, field Field) *ValidationError {
	var reason Reason

	switch field {
	case FieldAge:
		reason = checkAge(d.Age)
	case FieldGender:
		reason = checkGender(d.Gender)
	case FieldScreenTime:
		reason = checkScreenTime(d.AverageScreenTime)
	default:
		return nil
	}

	if reason == "" {
		return nil
	}

	return &ValidationError{Field: field, Reason: reason}
}

func checkAge(raw string) Reason {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ReasonAgeRequired
	}

	age, err := strconv.Atoi(raw)
	if err != nil {
		return ReasonAgeNotNumber
	}

	if age < MinAge || age > MaxAge {
		return ReasonAgeOutOfRange
	}

	return ""
}

func checkGender(raw string) Reason {
	if !catalog.IsGenderOption(raw) {
		return ReasonGenderRequired
	}

	return ""
}

func checkScreenTime(raw string) Reason {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ReasonScreenTimeRequired
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return ReasonScreenTimeNotNumber
	}

	if v < 0 {
		return ReasonScreenTimeNegative
	}

	return ""
}

// ValidateCompleteness returns ErrIncomplete if any question is left without an answer.
func ValidateCompleteness(answers []AnswerEntry) error {
	for _, a := range answers {
		if strings.TrimSpace(a.Answer) == "" {
			return ErrIncomplete
		}
	}

	return nil
}
